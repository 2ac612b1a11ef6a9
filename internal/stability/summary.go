package stability

import "fmt"

// Summary condenses one computed curve into its headline metrics.
type Summary struct {
	Displacement float64 `json:"displacement"`
	MaxGZ        float64 `json:"max_gz"`
	AngleOfMaxGZ float64 `json:"angle_of_max_gz"`
	GM           float64 `json:"gm"`
	GMMethod     string  `json:"gm_method"`
}

// Stable reports positive initial stability.
func (s *Summary) Stable() bool { return s.GM > 0 }

// Summarize extracts peak GZ and metacentric height from a computed
// curve. The peak is the discrete maximum over tabulated angles, ties
// going to the smaller angle; its resolution is therefore limited to
// the grid's angle step, typically 5 or 10 degrees. No interpolation
// between angles is attempted.
func Summarize(curve *Curve, draft, kg float64, gm GMEstimator) (*Summary, error) {
	if len(curve.Points) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty curve")
	}
	if gm == nil {
		gm = SlopeGM{}
	}

	peak := curve.Points[0]
	for _, p := range curve.Points[1:] {
		if p.GZ > peak.GZ {
			peak = p
		}
	}

	val, err := gm.Estimate(curve, draft, kg)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Displacement: curve.Displacement,
		MaxGZ:        peak.GZ,
		AngleOfMaxGZ: peak.AngleDeg,
		GM:           val,
		GMMethod:     gm.Name(),
	}, nil
}
