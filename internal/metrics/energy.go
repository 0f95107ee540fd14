package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// EnergyDrift is the largest relative change of specific orbital energy seen
// on any satellite since it was first observed.
type EnergyDrift struct {
	initial  map[int]float64
	maxDrift float64
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{initial: make(map[int]float64)}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(w *orbit.World) {
	p := w.Planet()
	g := w.Params().G
	sats := w.Satellites()
	for i := range sats {
		energy := orbit.SpecificEnergy(&sats[i], p, g)
		if math.IsNaN(energy) || math.IsInf(energy, 0) {
			continue
		}
		e0, ok := e.initial[sats[i].ID]
		if !ok {
			e.initial[sats[i].ID] = energy
			continue
		}
		if e0 != 0 {
			drift := math.Abs(energy-e0) / math.Abs(e0)
			e.maxDrift = math.Max(e.maxDrift, drift)
		}
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = make(map[int]float64)
	e.maxDrift = 0
}
