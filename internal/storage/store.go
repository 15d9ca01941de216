package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/bouncelab/internal/config"
	"github.com/san-kum/bouncelab/internal/engine"
)

// Store persists bounded runs under a base directory, one subdirectory per
// run: metadata.json plus frames.csv with per-frame body positions.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	Count        int                `json:"count"`
	FPS          int                `json:"fps"`
	Frames       int                `json:"frames"`
	Friction     float64            `json:"friction"`
	BounceEnergy float64            `json:"bounce_energy"`
	Width        float64            `json:"width"`
	Height       float64            `json:"height"`
	Radii        []float64          `json:"radii"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes one run to disk and returns its id. The CSV carries time
// plus interleaved x,y columns per body; radii are fixed per body and live
// in the metadata.
func (s *Store) Save(cfg *config.Config, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Seed:         cfg.Seed,
		Count:        cfg.Count,
		FPS:          result.FPS,
		Frames:       len(result.Snapshots),
		Friction:     cfg.Friction,
		BounceEnergy: cfg.BounceEnergy,
		Width:        cfg.Viewport.Width,
		Height:       cfg.Viewport.Height,
		Metrics:      result.Metrics,
	}
	if len(result.Snapshots) > 0 {
		for _, v := range result.Snapshots[0].Bodies {
			meta.Radii = append(meta.Radii, v.R)
		}
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "frames.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Snapshots) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for _, v := range result.Snapshots[0].Bodies {
		header = append(header, fmt.Sprintf("x%d", v.ID), fmt.Sprintf("y%d", v.ID))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, snap := range result.Snapshots {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, v := range snap.Bodies {
			row = append(row,
				strconv.FormatFloat(v.X, 'f', 6, 64),
				strconv.FormatFloat(v.Y, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ExportJSONStdout writes a full run, metadata plus frames, as indented
// JSON to stdout.
func ExportJSONStdout(meta *RunMetadata, frames [][]float64, times []float64) error {
	out := struct {
		Metadata *RunMetadata `json:"metadata"`
		Times    []float64    `json:"times"`
		Frames   [][]float64  `json:"frames"`
	}{meta, times, frames}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// LoadFrames reads back the per-frame positions: one row per frame of
// interleaved x,y pairs, plus the timestamps.
func (s *Store) LoadFrames(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "frames.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	frames := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		frame := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			frame = append(frame, val)
		}
		frames = append(frames, frame)
	}

	return frames, times, nil
}
