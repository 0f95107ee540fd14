package orbit

import "math"

// Force returns the magnitude of the attraction between s and p.
func Force(s *Satellite, p Planet, g float64) float64 {
	d := s.Pos().Dist(p.Pos())
	return g * s.Mass * p.Mass / (d * d)
}

// AccelerationMagnitude returns G*M/d². The satellite mass does not appear:
// it cancels out of F/m, so every satellite at the same distance accelerates
// identically.
func AccelerationMagnitude(s *Satellite, p Planet, g float64) float64 {
	d := s.Pos().Dist(p.Pos())
	return g * p.Mass / (d * d)
}

// Acceleration returns the acceleration vector pointing from s toward p.
func Acceleration(s *Satellite, p Planet, g float64) (ax, ay float64) {
	acc := AccelerationMagnitude(s, p, g)
	angle := math.Atan2(p.Y-s.Y, p.X-s.X)
	return acc * math.Cos(angle), acc * math.Sin(angle)
}

// Step advances s by one unit time step with semi-implicit Euler: velocity
// is updated first and the new velocity moves the position. The new
// position is appended to the trail; with trailCap > 0 the oldest points are
// dropped to keep at most trailCap entries.
func Step(s *Satellite, p Planet, g float64, trailCap int) {
	ax, ay := Acceleration(s, p, g)

	s.VX += ax
	s.VY += ay

	s.X += s.VX
	s.Y += s.VY

	s.Trail = append(s.Trail, Point{X: s.X, Y: s.Y})
	if trailCap > 0 && len(s.Trail) > trailCap {
		s.Trail = s.Trail[len(s.Trail)-trailCap:]
	}
}

// SpecificEnergy returns the orbital energy per unit mass, v²/2 - GM/r.
// Negative values are bound orbits.
func SpecificEnergy(s *Satellite, p Planet, g float64) float64 {
	r := s.Pos().Dist(p.Pos())
	v2 := s.VX*s.VX + s.VY*s.VY
	return 0.5*v2 - g*p.Mass/r
}
