package metrics

import "github.com/san-kum/orbitsim/internal/orbit"

// Metric accumulates a scalar over the frames of a run. Observe is called
// once per frame after culling.
type Metric interface {
	Name() string
	Observe(w *orbit.World)
	Value() float64
	Reset()
}

// RemovalObserver is implemented by metrics that count satellites as they
// are culled. frame is the tick count once the removing tick completes.
type RemovalObserver interface {
	Removed(s *orbit.Satellite, fate orbit.Fate, frame int)
}

// Attach forwards the removals of w to every metric in ms that is a
// RemovalObserver. An existing OnRemove hook keeps running first.
func Attach(w *orbit.World, ms []Metric) {
	prev := w.OnRemove
	w.OnRemove = func(s *orbit.Satellite, fate orbit.Fate) {
		if prev != nil {
			prev(s, fate)
		}
		for _, m := range ms {
			if ro, ok := m.(RemovalObserver); ok {
				ro.Removed(s, fate, w.Frame()+1)
			}
		}
	}
}

// Defaults returns the metrics recorded by headless runs.
func Defaults() []Metric {
	return []Metric{
		NewEnergyDrift(),
		NewPeakPopulation(),
		NewLifetime(),
	}
}

type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(w *orbit.World) {
	if n := len(w.Satellites()); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// Lifetime is the mean number of ticks a satellite stayed in the world,
// counted over satellites that have been culled. It needs Attach.
type Lifetime struct {
	total int
	count int
}

func NewLifetime() *Lifetime { return &Lifetime{} }

func (l *Lifetime) Name() string { return "mean_lifetime" }

func (l *Lifetime) Observe(w *orbit.World) {}

func (l *Lifetime) Removed(s *orbit.Satellite, fate orbit.Fate, frame int) {
	l.total += frame - s.Born
	l.count++
}

func (l *Lifetime) Value() float64 {
	if l.count == 0 {
		return 0
	}
	return float64(l.total) / float64(l.count)
}

func (l *Lifetime) Reset() {
	l.total = 0
	l.count = 0
}
