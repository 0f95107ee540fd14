package optim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/orbitsim/internal/experiment"
)

var ErrEmptyGrid = errors.New("optim: empty search grid")

// Score rates a finished run. Higher is better.
type Score func(*experiment.Result) float64

// GridSearch evaluates every combination of the named parameter values and
// keeps the best scoring one. Ties keep the combination found first.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Candidate is one evaluated point of the grid.
type Candidate struct {
	Params map[string]float64
	Score  float64
}

func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	score Score,
) (Candidate, []Candidate, error) {
	if len(g.paramNames) == 0 || len(g.paramNames) != len(g.ranges) {
		return Candidate{}, nil, ErrEmptyGrid
	}
	for _, r := range g.ranges {
		if len(r) == 0 {
			return Candidate{}, nil, ErrEmptyGrid
		}
	}

	best := Candidate{Score: math.Inf(-1)}
	var all []Candidate

	err := g.searchRecursive(ctx, 0, make(map[string]float64), buildExperiment, score, &best, &all)
	if err != nil {
		return Candidate{}, nil, err
	}
	return best, all, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildExperiment func(map[string]float64) (*experiment.Experiment, error),
	score Score,
	best *Candidate,
	all *[]Candidate,
) error {
	if depth == len(g.paramNames) {
		exp, err := buildExperiment(current)
		if err != nil {
			return err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return err
		}

		c := Candidate{Params: current, Score: score(result)}
		*all = append(*all, c)
		if c.Score > best.Score {
			*best = c
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, buildExperiment, score, best, all); err != nil {
			return err
		}
	}
	return nil
}

// Survival scores a run by how many frames its first satellite stayed alive.
func Survival(r *experiment.Result) float64 {
	if len(r.Tracks) == 0 {
		return 0
	}
	tr := r.Tracks[0]
	return float64(tr.EndFrame - tr.Samples[0].Frame)
}

// Range returns from, from+step, ... up to and including to.
func Range(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}
