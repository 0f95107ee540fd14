package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/orbit"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectories.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TrackSummary struct {
	ID       int    `json:"id"`
	Fate     string `json:"fate"`
	EndFrame int    `json:"end_frame"`
	Samples  int    `json:"samples"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Params    orbit.Params       `json:"params"`
	Planet    orbit.Planet       `json:"planet"`
	Launched  int                `json:"launched"`
	Escaped   int                `json:"escaped"`
	Collided  int                `json:"collided"`
	Tracks    []TrackSummary     `json:"tracks"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(scenario string, params orbit.Params, result *experiment.Result) (string, error) {
	runID := s.newRunID(scenario)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Frames:    result.Frames,
		Params:    params,
		Planet:    result.Planet,
		Launched:  result.Stats.Launched,
		Escaped:   result.Stats.Escaped,
		Collided:  result.Stats.Collided,
		Tracks:    make([]TrackSummary, 0, len(result.Tracks)),
		Metrics:   result.Metrics,
	}
	for _, tr := range result.Tracks {
		meta.Tracks = append(meta.Tracks, TrackSummary{
			ID:       tr.ID,
			Fate:     tr.Fate.String(),
			EndFrame: tr.EndFrame,
			Samples:  len(tr.Samples),
		})
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, trajectoryFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteTracksCSV(csvFile, result.Tracks); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) newRunID(scenario string) string {
	base := fmt.Sprintf("%s_%d", dirName(scenario), time.Now().Unix())
	id := base
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, id)); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

// dirName turns a scenario name into a single path element.
func dirName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, ". ")
	if name == "" {
		return "run"
	}
	return name
}

// WriteTracksCSV writes one row per sample: satellite,frame,x,y,vx,vy,energy.
func WriteTracksCSV(out io.Writer, tracks []*experiment.Track) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"satellite", "frame", "x", "y", "vx", "vy", "energy"}); err != nil {
		return err
	}

	for _, tr := range tracks {
		for _, smp := range tr.Samples {
			row := []string{
				strconv.Itoa(tr.ID),
				strconv.Itoa(smp.Frame),
				strconv.FormatFloat(smp.X, 'f', 6, 64),
				strconv.FormatFloat(smp.Y, 'f', 6, 64),
				strconv.FormatFloat(smp.VX, 'f', 6, 64),
				strconv.FormatFloat(smp.VY, 'f', 6, 64),
				strconv.FormatFloat(smp.Energy, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// TrajectoryPath returns the csv file holding the samples of runID.
func (s *Store) TrajectoryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, trajectoryFile)
}

// LoadTracks reads the samples of runID back, grouped by satellite in id
// order. Fates come from the run metadata.
func (s *Store) LoadTracks(runID string) ([]*experiment.Track, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(s.TrajectoryPath(runID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*experiment.Track)
	order := make([]int, 0)

	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 7 {
			continue
		}

		id, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		frame, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j+2], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		tr, exists := byID[id]
		if !exists {
			tr = &experiment.Track{ID: id}
			byID[id] = tr
			order = append(order, id)
		}
		tr.Samples = append(tr.Samples, experiment.Sample{
			Frame:  frame,
			X:      vals[0],
			Y:      vals[1],
			VX:     vals[2],
			VY:     vals[3],
			Energy: vals[4],
		})
	}

	for _, ts := range meta.Tracks {
		if tr, ok := byID[ts.ID]; ok {
			tr.Fate = parseFate(ts.Fate)
			tr.EndFrame = ts.EndFrame
		}
	}

	sort.Ints(order)
	tracks := make([]*experiment.Track, 0, len(order))
	for _, id := range order {
		tracks = append(tracks, byID[id])
	}
	return tracks, nil
}

func parseFate(s string) orbit.Fate {
	switch s {
	case "escaped":
		return orbit.Escaped
	case "collided":
		return orbit.Collided
	default:
		return orbit.Alive
	}
}
