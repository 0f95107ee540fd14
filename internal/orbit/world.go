package orbit

// Fate records why a satellite left the simulation.
type Fate int

const (
	Alive Fate = iota
	Escaped
	Collided
)

func (f Fate) String() string {
	switch f {
	case Escaped:
		return "escaped"
	case Collided:
		return "collided"
	default:
		return "alive"
	}
}

type Stats struct {
	Launched int
	Escaped  int
	Collided int
}

// World is the state owned by the frame loop: one planet, the live
// satellites and the pending launch gesture.
type World struct {
	params     Params
	planet     Planet
	satellites []Satellite
	launcher   Launcher
	stats      Stats
	frame      int
	nextID     int

	// OnRemove, if set, is called for every satellite culled by Tick.
	OnRemove func(s *Satellite, fate Fate)
}

// NewWorld places the planet at the centre of the bounds.
func NewWorld(p Params) *World {
	c := p.Bounds.Center()
	return &World{
		params: p,
		planet: Planet{
			X:      c.X,
			Y:      c.Y,
			Mass:   p.PlanetMass,
			Radius: p.PlanetRadius,
		},
		satellites: make([]Satellite, 0),
	}
}

func (w *World) Params() Params          { return w.params }
func (w *World) Planet() Planet          { return w.planet }
func (w *World) Satellites() []Satellite { return w.satellites }
func (w *World) Stats() Stats            { return w.stats }
func (w *World) Frame() int              { return w.frame }
func (w *World) Marker() (Point, bool)   { return w.launcher.Marker() }
func (w *World) Armed() bool             { return w.launcher.Armed() }
func (w *World) Cancel()                 { w.launcher.Cancel() }
func (w *World) Bounds() Bounds          { return w.params.Bounds }

// Press forwards a pointer press to the launch gesture. When the press
// completes a gesture the new satellite joins the world and its id is
// returned.
func (w *World) Press(at Point) (int, bool) {
	s, ok := w.launcher.Press(at, w.params.VelScale, w.params.SatelliteMass)
	if !ok {
		return 0, false
	}
	return w.Add(s), true
}

// Add inserts s as a live satellite and assigns it an id.
func (w *World) Add(s Satellite) int {
	w.nextID++
	s.ID = w.nextID
	s.Born = w.frame
	if s.Trail == nil {
		s.Trail = make([]Point, 0, 64)
	}
	w.satellites = append(w.satellites, s)
	w.stats.Launched++
	return s.ID
}

// Tick integrates every live satellite once and then rebuilds the live set
// from those that are still on screen and outside the collision radius.
func (w *World) Tick() {
	for i := range w.satellites {
		Step(&w.satellites[i], w.planet, w.params.G, w.params.TrailCap)
	}

	next := make([]Satellite, 0, len(w.satellites))
	for i := range w.satellites {
		s := &w.satellites[i]
		fate := w.Classify(s)
		if fate == Alive {
			next = append(next, *s)
			continue
		}
		switch fate {
		case Escaped:
			w.stats.Escaped++
		case Collided:
			w.stats.Collided++
		}
		if w.OnRemove != nil {
			w.OnRemove(s, fate)
		}
	}
	w.satellites = next
	w.frame++
}

// Classify applies the cull rule to s without removing it. Leaving the
// bounds is checked before the collision radius.
func (w *World) Classify(s *Satellite) Fate {
	if !w.params.Bounds.Contains(s.Pos()) {
		return Escaped
	}
	if s.Pos().Dist(w.planet.Pos()) <= w.planet.Radius {
		return Collided
	}
	return Alive
}

// Reset removes every satellite and the pending marker. Counters restart.
func (w *World) Reset() {
	w.satellites = make([]Satellite, 0)
	w.launcher.Cancel()
	w.stats = Stats{}
	w.frame = 0
}
