package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gzlab/internal/hydro"
	"github.com/san-kum/gzlab/internal/stability"
)

// Operating envelope defaults applied when a vessel file leaves the
// envelope section empty. Draft bounds default to the hydrostatic
// table's own domain.
const (
	DefaultMinKG = 5.0
	DefaultMaxKG = 15.0
	DefaultKG    = 8.5
)

// Vessel is the on-disk dataset for one ship: its hydrostatic curve,
// KN cross-curve grid, and operating envelope. Datasets are loaded once
// at startup and turned into immutable tables via Build.
type Vessel struct {
	Name         string       `yaml:"name"`
	Hydrostatics []HydroPoint `yaml:"hydrostatics"`
	KN           KNGrid       `yaml:"kn"`
	Envelope     Envelope     `yaml:"envelope"`
}

type HydroPoint struct {
	Draft        float64 `yaml:"draft"`
	Displacement float64 `yaml:"displacement"`
}

// KNGrid holds the KN values row-major: one row per displacement level,
// one column per heel angle.
type KNGrid struct {
	Displacements []float64   `yaml:"displacements"`
	Angles        []float64   `yaml:"angles"`
	Values        [][]float64 `yaml:"values"`
}

type Envelope struct {
	MinDraft  float64 `yaml:"min_draft"`
	MaxDraft  float64 `yaml:"max_draft"`
	MinKG     float64 `yaml:"min_kg"`
	MaxKG     float64 `yaml:"max_kg"`
	DefaultKG float64 `yaml:"default_kg"`
}

// Load reads and validates a vessel dataset from a YAML file.
func Load(path string) (*Vessel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v Vessel
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	// Validate eagerly so a malformed file fails at load, not first query.
	if _, err := v.Build(); err != nil {
		return nil, fmt.Errorf("invalid vessel data in %s: %w", path, err)
	}
	return &v, nil
}

// Save writes a vessel dataset to a YAML file.
func Save(path string, v *Vessel) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the immutable tables and returns a ready stability
// computer. Envelope fields left at zero fall back to the table domain
// (draft) and the documented KG defaults.
func (v *Vessel) Build() (*stability.Computer, error) {
	pts := make([]hydro.Point, len(v.Hydrostatics))
	for i, p := range v.Hydrostatics {
		pts[i] = hydro.Point{Draft: p.Draft, Displacement: p.Displacement}
	}
	ht, err := hydro.NewHydrostaticTable(pts)
	if err != nil {
		return nil, err
	}

	kt, err := hydro.NewKNTable(v.KN.Displacements, v.KN.Angles, v.KN.Values)
	if err != nil {
		return nil, err
	}

	env := stability.Envelope{
		MinDraft:  v.Envelope.MinDraft,
		MaxDraft:  v.Envelope.MaxDraft,
		MinKG:     v.Envelope.MinKG,
		MaxKG:     v.Envelope.MaxKG,
		DefaultKG: v.Envelope.DefaultKG,
	}
	if env.MinDraft == 0 && env.MaxDraft == 0 {
		env.MinDraft = ht.MinDraft()
		env.MaxDraft = ht.MaxDraft()
	}
	if env.MinKG == 0 && env.MaxKG == 0 {
		env.MinKG = DefaultMinKG
		env.MaxKG = DefaultMaxKG
	}
	if env.DefaultKG == 0 {
		env.DefaultKG = DefaultKG
	}

	return stability.NewComputer(ht, kt, env), nil
}
