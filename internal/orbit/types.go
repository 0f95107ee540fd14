package orbit

import "math"

type Point struct {
	X, Y float64
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Dist returns the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return math.Sqrt((p.X-other.X)*(p.X-other.X) + (p.Y-other.Y)*(p.Y-other.Y))
}

// Planet is the fixed gravitational source. Radius is its collision radius.
type Planet struct {
	X, Y   float64
	Mass   float64
	Radius float64
}

func (p Planet) Pos() Point { return Point{X: p.X, Y: p.Y} }

type Satellite struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Mass   float64
	Trail  []Point
	// Born is the number of ticks the world had run when the satellite
	// joined it.
	Born int
}

func (s *Satellite) Pos() Point { return Point{X: s.X, Y: s.Y} }

// MinTrailPoints is the trail length from which a trail is drawn.
const MinTrailPoints = 3

func (s *Satellite) TrailVisible() bool { return len(s.Trail) >= MinTrailPoints }

// Bounds is the visible rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Params carries the fixed configuration values of a simulation.
type Params struct {
	Bounds        Bounds
	G             float64
	PlanetMass    float64
	PlanetRadius  float64
	SatelliteMass float64
	VelScale      float64
	// TrailCap bounds the trail length. Zero keeps every point.
	TrailCap int
}

func DefaultParams() Params {
	return Params{
		Bounds:        Bounds{Width: 1000, Height: 800},
		G:             9.8,
		PlanetMass:    100,
		PlanetRadius:  50,
		SatelliteMass: 5,
		VelScale:      100,
	}
}
