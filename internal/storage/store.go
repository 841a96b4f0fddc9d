package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/pde"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Equation  string             `json:"equation"`
	Scheme    string             `json:"scheme"`
	Waveform  string             `json:"waveform"`
	Timestamp time.Time          `json:"timestamp"`
	N         int                `json:"n"`
	L         float64            `json:"l"`
	CFL       float64            `json:"cfl,omitempty"`
	WaveSpeed float64            `json:"wave_speed,omitempty"`
	Viscosity float64            `json:"viscosity,omitempty"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Diverged  bool               `json:"diverged"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, dt float64, result *pde.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", cfg.Equation, cfg.Scheme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Equation:  cfg.Equation,
		Scheme:    cfg.Scheme,
		Waveform:  cfg.Waveform,
		Timestamp: time.Now(),
		N:         cfg.N,
		L:         cfg.L,
		CFL:       cfg.CFL,
		WaveSpeed: cfg.WaveSpeed,
		Viscosity: cfg.Viscosity,
		Dt:        dt,
		Steps:     result.StepsTaken,
		Diverged:  result.Diverged,
		Metrics:   result.Metrics,
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

	csvPath := filepath.Join(runDir, "snapshots.csv")
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
	for i := range result.Snapshots[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, snap := range result.Snapshots {
		row := make([]string, 0, len(snap)+1)
		row = append(row, strconv.FormatFloat(result.Times[i], 'g', -1, 64))
		for _, val := range snap {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
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

// LoadSnapshots reads the stored field history: one row per snapshot,
// time in the first column.
func (s *Store) LoadSnapshots(runID string) ([]pde.Field, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "snapshots.csv")
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
		return []pde.Field{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	snaps := make([]pde.Field, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		field := make(pde.Field, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			field = append(field, val)
		}

		times = append(times, t)
		snaps = append(snaps, field)
	}

	return snaps, times, nil
}

// ExportJSONStdout writes a run's metadata and snapshots to stdout as
// a single JSON document.
func ExportJSONStdout(meta *RunMetadata, snaps []pde.Field, times []float64) error {
	doc := struct {
		Meta      *RunMetadata `json:"meta"`
		Times     []float64    `json:"times"`
		Snapshots []pde.Field  `json:"snapshots"`
	}{meta, times, snaps}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
