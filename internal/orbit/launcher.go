package orbit

// Launcher is the two-press launch gesture. The first press arms it at the
// press location; the second press launches a satellite from the second
// location with velocity (second - marker) / VelScale and disarms it.
type Launcher struct {
	marker Point
	armed  bool
}

func (l *Launcher) Armed() bool { return l.armed }

// Marker returns the pending launch point, if any.
func (l *Launcher) Marker() (Point, bool) {
	return l.marker, l.armed
}

// Press feeds one pointer press into the gesture. It returns the spawned
// satellite and true when the press completes a gesture.
func (l *Launcher) Press(at Point, velScale, mass float64) (Satellite, bool) {
	if !l.armed {
		l.marker = at
		l.armed = true
		return Satellite{}, false
	}

	drag := at.Sub(l.marker)
	l.marker = Point{}
	l.armed = false

	return Satellite{
		X:    at.X,
		Y:    at.Y,
		VX:   drag.X / velScale,
		VY:   drag.Y / velScale,
		Mass: mass,
	}, true
}

// Cancel drops a pending marker without launching.
func (l *Launcher) Cancel() {
	l.marker = Point{}
	l.armed = false
}
