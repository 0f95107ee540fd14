package experiment

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/orbit"
)

var ErrInvalidScenario = errors.New("experiment: invalid scenario")

// Press is one pointer press delivered at the start of Frame.
type Press struct {
	Frame int     `yaml:"frame"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Scenario is a scripted sequence of presses replayed without a window.
type Scenario struct {
	Name    string  `yaml:"name"`
	Frames  int     `yaml:"frames"`
	Presses []Press `yaml:"presses"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = "scenario"
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if s.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidScenario, s.Frames)
	}
	for i, p := range s.Presses {
		if p.Frame < 0 || p.Frame >= s.Frames {
			return fmt.Errorf("%w: press %d at frame %d outside [0, %d)", ErrInvalidScenario, i, p.Frame, s.Frames)
		}
	}
	return nil
}

// LaunchPresses returns the two presses that launch a satellite from at
// with velocity vel: the marker is placed vel*velScale behind the launch
// point so the drag vector reproduces vel.
func LaunchPresses(frame int, at, vel orbit.Point, velScale float64) []Press {
	marker := at.Sub(vel.Scale(velScale))
	return []Press{
		{Frame: frame, X: marker.X, Y: marker.Y},
		{Frame: frame, X: at.X, Y: at.Y},
	}
}

// sortedPresses orders presses by frame, keeping file order within a frame.
func (s *Scenario) sortedPresses() []Press {
	out := make([]Press, len(s.Presses))
	copy(out, s.Presses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Frame < out[j].Frame })
	return out
}
