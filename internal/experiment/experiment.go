package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
)

// Sample is one recorded satellite state.
type Sample struct {
	Frame  int
	X, Y   float64
	VX, VY float64
	Energy float64
}

// Track is the recorded history of one satellite.
type Track struct {
	ID       int
	Samples  []Sample
	Fate     orbit.Fate
	EndFrame int
}

// Radii returns the distance from the planet at every sample.
func (t *Track) Radii(p orbit.Point) []float64 {
	r := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		r[i] = orbit.Point{X: s.X, Y: s.Y}.Dist(p)
	}
	return r
}

type Result struct {
	Frames  int
	Planet  orbit.Planet
	Tracks  []*Track
	Stats   orbit.Stats
	Metrics map[string]float64
}

type Experiment struct {
	params   orbit.Params
	scenario *Scenario
	metrics  []metrics.Metric
}

func New(params orbit.Params, scenario *Scenario) *Experiment {
	return &Experiment{
		params:   params,
		scenario: scenario,
		metrics:  make([]metrics.Metric, 0),
	}
}

func (e *Experiment) AddMetric(m metrics.Metric) { e.metrics = append(e.metrics, m) }

// Run replays the scenario. Each frame delivers that frame's presses, ticks
// the world once and records every satellite, including the ones culled on
// that frame.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.scenario == nil {
		return nil, fmt.Errorf("experiment: no scenario")
	}
	if err := e.scenario.Validate(); err != nil {
		return nil, err
	}

	w := orbit.NewWorld(e.params)
	result := &Result{
		Frames:  e.scenario.Frames,
		Planet:  w.Planet(),
		Tracks:  make([]*Track, 0),
		Metrics: make(map[string]float64),
	}
	tracks := make(map[int]*Track)

	for _, m := range e.metrics {
		m.Reset()
	}

	record := func(s *orbit.Satellite, frame int) {
		tr, ok := tracks[s.ID]
		if !ok {
			tr = &Track{ID: s.ID}
			tracks[s.ID] = tr
			result.Tracks = append(result.Tracks, tr)
		}
		tr.Samples = append(tr.Samples, Sample{
			Frame:  frame,
			X:      s.X,
			Y:      s.Y,
			VX:     s.VX,
			VY:     s.VY,
			Energy: orbit.SpecificEnergy(s, w.Planet(), e.params.G),
		})
	}

	w.OnRemove = func(s *orbit.Satellite, fate orbit.Fate) {
		record(s, w.Frame()+1)
		tr := tracks[s.ID]
		tr.Fate = fate
		tr.EndFrame = w.Frame() + 1
	}
	metrics.Attach(w, e.metrics)

	presses := e.scenario.sortedPresses()
	next := 0

	for frame := 0; frame < e.scenario.Frames; frame++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for next < len(presses) && presses[next].Frame == frame {
			p := presses[next]
			if id, ok := w.Press(orbit.Point{X: p.X, Y: p.Y}); ok {
				sats := w.Satellites()
				for i := range sats {
					if sats[i].ID == id {
						record(&sats[i], frame)
					}
				}
			}
			next++
		}

		w.Tick()

		sats := w.Satellites()
		for i := range sats {
			record(&sats[i], w.Frame())
		}
		for _, m := range e.metrics {
			m.Observe(w)
		}
	}

	for _, tr := range result.Tracks {
		if tr.Fate == orbit.Alive {
			tr.EndFrame = w.Frame()
		}
	}

	result.Stats = w.Stats()
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
