package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
)

// Batch replays several scenarios concurrently. Every scenario gets its own
// World and its own metric instances, so runs share no state.
type Batch struct {
	params     orbit.Params
	scenarios  []*Scenario
	newMetrics func() []metrics.Metric
}

func NewBatch(params orbit.Params, scenarios []*Scenario, newMetrics func() []metrics.Metric) *Batch {
	return &Batch{params: params, scenarios: scenarios, newMetrics: newMetrics}
}

// Run returns one result per scenario, in scenario order. The first error
// encountered is returned once every run has finished.
func (b *Batch) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(b.scenarios))
	errs := make([]error, len(b.scenarios))

	var wg sync.WaitGroup
	for i, sc := range b.scenarios {
		wg.Add(1)
		go func(idx int, sc *Scenario) {
			defer wg.Done()

			exp := New(b.params, sc)
			if b.newMetrics != nil {
				for _, m := range b.newMetrics() {
					exp.AddMetric(m)
				}
			}
			results[idx], errs[idx] = exp.Run(ctx)
		}(i, sc)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
