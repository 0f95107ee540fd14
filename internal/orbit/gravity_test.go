package orbit

import (
	"math"
	"testing"
)

func TestAccelerationMagnitude(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100, Radius: 50}
	s := &Satellite{X: 600, Y: 400, Mass: 5}

	got := AccelerationMagnitude(s, p, 9.8)
	if math.Abs(got-0.098) > 1e-12 {
		t.Errorf("AccelerationMagnitude() = %v, want 0.098", got)
	}
}

func TestAccelerationIndependentOfSatelliteMass(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100}
	masses := []float64{0.001, 1, 5, 1234.5, 1e9}

	ref := &Satellite{X: 713.25, Y: 122.5, Mass: 1}
	wantX, wantY := Acceleration(ref, p, 9.8)

	for _, m := range masses {
		s := &Satellite{X: 713.25, Y: 122.5, Mass: m}
		ax, ay := Acceleration(s, p, 9.8)
		if ax != wantX || ay != wantY {
			t.Errorf("mass %v: acceleration = (%v, %v), want (%v, %v)", m, ax, ay, wantX, wantY)
		}

		d := s.Pos().Dist(p.Pos())
		if got, want := AccelerationMagnitude(s, p, 9.8), 9.8*p.Mass/(d*d); got != want {
			t.Errorf("mass %v: magnitude = %v, want %v", m, got, want)
		}
		if got, want := Force(s, p, 9.8)/m, 9.8*p.Mass/(d*d); math.Abs(got-want) > 1e-12*want {
			t.Errorf("mass %v: F/m = %v, want %v", m, got, want)
		}
	}
}

func TestStepFromRestMovesTowardPlanet(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100, Radius: 50}
	s := &Satellite{X: 700, Y: 600, Mass: 5}
	before := s.Pos()

	Step(s, p, 9.8, 0)

	if s.Pos().Dist(p.Pos()) >= before.Dist(p.Pos()) {
		t.Errorf("distance did not shrink: before %v, after %v", before.Dist(p.Pos()), s.Pos().Dist(p.Pos()))
	}

	wantAngle := math.Atan2(p.Y-before.Y, p.X-before.X)
	gotAngle := math.Atan2(s.Y-before.Y, s.X-before.X)
	if math.Abs(gotAngle-wantAngle) > 1e-9 {
		t.Errorf("step direction = %v rad, want %v rad", gotAngle, wantAngle)
	}
}

func TestStepSemiImplicitOrder(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100}
	s := &Satellite{X: 600, Y: 400, VX: 0, VY: 1, Mass: 5}
	ax, ay := Acceleration(s, p, 9.8)

	Step(s, p, 9.8, 0)

	// position moves by the updated velocity, not the old one
	if s.VX != ax || s.VY != 1+ay {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", s.VX, s.VY, ax, 1+ay)
	}
	if s.X != 600+s.VX || s.Y != 400+s.VY {
		t.Errorf("position = (%v, %v), want (%v, %v)", s.X, s.Y, 600+s.VX, 400+s.VY)
	}
	if len(s.Trail) != 1 || s.Trail[0] != s.Pos() {
		t.Errorf("trail = %v, want [%v]", s.Trail, s.Pos())
	}
}

func TestStepDeterministic(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100}
	a := &Satellite{X: 650, Y: 330, VX: 0.4, VY: 2.1, Mass: 5}
	b := &Satellite{X: 650, Y: 330, VX: 0.4, VY: 2.1, Mass: 5}

	for i := 0; i < 1000; i++ {
		Step(a, p, 9.8, 0)
		Step(b, p, 9.8, 0)
	}
	if a.X != b.X || a.Y != b.Y || a.VX != b.VX || a.VY != b.VY {
		t.Errorf("diverged: %+v vs %+v", a.Pos(), b.Pos())
	}
}

func TestStepAtPlanetCentreIsDegenerate(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100}
	s := &Satellite{X: 500, Y: 400, Mass: 5}

	Step(s, p, 9.8, 0)

	if !math.IsNaN(s.X) && !math.IsInf(s.X, 0) {
		t.Errorf("expected non-finite position at zero distance, got %v", s.X)
	}
}

func TestSpecificEnergy(t *testing.T) {
	p := Planet{X: 500, Y: 400, Mass: 100}
	tests := []struct {
		name  string
		sat   Satellite
		bound bool
	}{
		{"at rest", Satellite{X: 600, Y: 400}, true},
		{"circular", Satellite{X: 650, Y: 400, VY: math.Sqrt(9.8 * 100 / 150)}, true},
		{"escape", Satellite{X: 650, Y: 400, VY: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := SpecificEnergy(&tt.sat, p, 9.8)
			if (e < 0) != tt.bound {
				t.Errorf("SpecificEnergy() = %v, bound = %v", e, tt.bound)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Width: 1000, Height: 800}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{1000, 800}, true},
		{Point{-0.1, 400}, false},
		{Point{1000.1, 400}, false},
		{Point{500, -1}, false},
		{Point{500, 801}, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTrailVisible(t *testing.T) {
	tests := []struct {
		points int
		want   bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, true},
		{10, true},
	}
	for _, tt := range tests {
		s := &Satellite{Trail: make([]Point, tt.points)}
		if got := s.TrailVisible(); got != tt.want {
			t.Errorf("TrailVisible() with %d points = %v, want %v", tt.points, got, tt.want)
		}
	}
}
