// Package store persists computed stability runs under a data
// directory, one subdirectory per run: metadata.json with the inputs
// and summary metrics, curve.csv with the full curve.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/gzlab/internal/stability"
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
	Vessel    string             `json:"vessel"`
	Timestamp time.Time          `json:"timestamp"`
	Draft     float64            `json:"draft"`
	KG        float64            `json:"kg"`
	GMMethod  string             `json:"gm_method"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one computed run and returns its id. The CSV carries the
// KN ordinate alongside GZ (recovered as GZ + KG*sin(angle)) so a saved
// run is self-describing.
func (s *Store) Save(vessel string, draft, kg float64, curve *stability.Curve, sum *stability.Summary) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(vessel, " ", "-"))
	runID := fmt.Sprintf("%s_%d", slug, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Vessel:    vessel,
		Timestamp: time.Now(),
		Draft:     draft,
		KG:        kg,
		GMMethod:  sum.GMMethod,
		Metrics: map[string]float64{
			"displacement":    sum.Displacement,
			"max_gz":          sum.MaxGZ,
			"angle_of_max_gz": sum.AngleOfMaxGZ,
			"gm":              sum.GM,
		},
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "curve.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"angle", "kn", "gz"}); err != nil {
		return "", err
	}
	for _, p := range curve.Points {
		kn := p.GZ + kg*math.Sin(p.AngleDeg*math.Pi/180)
		row := []string{
			strconv.FormatFloat(p.AngleDeg, 'f', 1, 64),
			strconv.FormatFloat(kn, 'f', 6, 64),
			strconv.FormatFloat(p.GZ, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every saved run, newest first.
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCurve reconstructs a saved curve from its CSV.
func (s *Store) LoadCurve(runID string) (*stability.Curve, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "curve.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("run %s has an empty curve", runID)
	}

	curve := &stability.Curve{Displacement: meta.Metrics["displacement"]}
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		angle, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		gz, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		curve.Points = append(curve.Points, stability.Point{AngleDeg: angle, GZ: gz})
	}
	return curve, nil
}
