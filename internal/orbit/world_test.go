package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/orbit"
)

var _ = Describe("World", func() {
	var w *orbit.World

	BeforeEach(func() {
		w = orbit.NewWorld(orbit.DefaultParams())
	})

	It("places the planet at the centre of the bounds", func() {
		p := w.Planet()
		Expect(p.X).To(Equal(500.0))
		Expect(p.Y).To(Equal(400.0))
		Expect(p.Mass).To(Equal(100.0))
		Expect(p.Radius).To(Equal(50.0))
	})

	It("records the tick count at which a satellite joins", func() {
		w.Tick()
		w.Tick()
		w.Press(orbit.Point{X: 100, Y: 100})
		w.Press(orbit.Point{X: 110, Y: 100})
		Expect(w.Satellites()).To(HaveLen(1))
		Expect(w.Satellites()[0].Born).To(Equal(2))
	})

	Describe("launch gesture", func() {
		It("arms on the first press without spawning", func() {
			_, ok := w.Press(orbit.Point{X: 100, Y: 100})
			Expect(ok).To(BeFalse())
			Expect(w.Satellites()).To(BeEmpty())

			m, armed := w.Marker()
			Expect(armed).To(BeTrue())
			Expect(m).To(Equal(orbit.Point{X: 100, Y: 100}))
		})

		It("spawns exactly one satellite with scaled drag velocity on the second press", func() {
			w.Press(orbit.Point{X: 100, Y: 100})
			id, ok := w.Press(orbit.Point{X: 150, Y: 80})
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal(1))

			sats := w.Satellites()
			Expect(sats).To(HaveLen(1))
			Expect(sats[0].X).To(Equal(150.0))
			Expect(sats[0].Y).To(Equal(80.0))
			Expect(sats[0].VX).To(Equal(0.5))
			Expect(sats[0].VY).To(Equal(-0.2))
			Expect(sats[0].Mass).To(Equal(5.0))

			_, armed := w.Marker()
			Expect(armed).To(BeFalse())
		})

		It("starts a fresh gesture after a launch", func() {
			w.Press(orbit.Point{X: 100, Y: 100})
			w.Press(orbit.Point{X: 150, Y: 80})
			_, ok := w.Press(orbit.Point{X: 300, Y: 300})
			Expect(ok).To(BeFalse())
			Expect(w.Armed()).To(BeTrue())
			Expect(w.Satellites()).To(HaveLen(1))
		})

		It("drops the marker on cancel", func() {
			w.Press(orbit.Point{X: 100, Y: 100})
			w.Cancel()
			Expect(w.Armed()).To(BeFalse())
			_, ok := w.Press(orbit.Point{X: 120, Y: 100})
			Expect(ok).To(BeFalse())
		})
	})

	Describe("culling", func() {
		It("removes a satellite on the frame it leaves the bounds and not before", func() {
			w.Add(orbit.Satellite{X: 975, Y: 400, VX: 10, Mass: 5})

			w.Tick()
			Expect(w.Satellites()).To(HaveLen(1))
			w.Tick()
			Expect(w.Satellites()).To(HaveLen(1))
			Expect(w.Satellites()[0].X).To(BeNumerically("<", 1000))

			w.Tick()
			Expect(w.Satellites()).To(BeEmpty())
			Expect(w.Stats().Escaped).To(Equal(1))
		})

		It("removes a satellite inside the collision radius while still on screen", func() {
			var fates []orbit.Fate
			w.OnRemove = func(s *orbit.Satellite, f orbit.Fate) {
				Expect(w.Bounds().Contains(s.Pos())).To(BeTrue())
				fates = append(fates, f)
			}
			w.Add(orbit.Satellite{X: 560, Y: 400, VX: -15, Mass: 5})

			w.Tick()
			Expect(w.Satellites()).To(BeEmpty())
			Expect(fates).To(Equal([]orbit.Fate{orbit.Collided}))
			Expect(w.Stats().Collided).To(Equal(1))
		})

		It("keeps unrelated satellites when one is removed", func() {
			w.Add(orbit.Satellite{X: 560, Y: 400, VX: -15, Mass: 5})
			keep := w.Add(orbit.Satellite{X: 650, Y: 400, VY: -2.556, Mass: 5})

			w.Tick()
			Expect(w.Satellites()).To(HaveLen(1))
			Expect(w.Satellites()[0].ID).To(Equal(keep))
		})
	})

	Describe("trail", func() {
		It("grows by exactly one point per frame alive", func() {
			w.Add(orbit.Satellite{X: 650, Y: 400, VY: -math.Sqrt(9.8 * 100 / 150), Mass: 5})

			for i := 1; i <= 200; i++ {
				w.Tick()
				Expect(w.Satellites()).To(HaveLen(1))
				Expect(w.Satellites()[0].Trail).To(HaveLen(i))
			}
		})

		It("honours a positive trail cap", func() {
			p := orbit.DefaultParams()
			p.TrailCap = 10
			w = orbit.NewWorld(p)
			w.Add(orbit.Satellite{X: 650, Y: 400, VY: -math.Sqrt(9.8 * 100 / 150), Mass: 5})

			for i := 0; i < 50; i++ {
				w.Tick()
			}
			s := w.Satellites()[0]
			Expect(s.Trail).To(HaveLen(10))
			Expect(s.Trail[9]).To(Equal(s.Pos()))
		})
	})

	It("is deterministic across independent worlds", func() {
		run := func() []orbit.Satellite {
			v := orbit.NewWorld(orbit.DefaultParams())
			v.Press(orbit.Point{X: 700, Y: 400})
			v.Press(orbit.Point{X: 700, Y: 150})
			v.Press(orbit.Point{X: 300, Y: 200})
			v.Press(orbit.Point{X: 320, Y: 260})
			for i := 0; i < 500; i++ {
				v.Tick()
			}
			return v.Satellites()
		}
		Expect(run()).To(Equal(run()))
	})

	It("clears satellites, marker and counters on reset", func() {
		w.Press(orbit.Point{X: 700, Y: 400})
		w.Press(orbit.Point{X: 700, Y: 300})
		w.Press(orbit.Point{X: 10, Y: 10})
		w.Tick()

		w.Reset()
		Expect(w.Satellites()).To(BeEmpty())
		Expect(w.Armed()).To(BeFalse())
		Expect(w.Stats()).To(Equal(orbit.Stats{}))
		Expect(w.Frame()).To(Equal(0))
	})
})
