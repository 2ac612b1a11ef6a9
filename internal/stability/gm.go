package stability

import (
	"fmt"
	"math"
)

// GMEstimator derives the metacentric height from a computed curve.
// The derivation the source data's author used is not recorded, so the
// method is pluggable rather than fixed.
type GMEstimator interface {
	Name() string
	Estimate(curve *Curve, draft, kg float64) (float64, error)
}

// SlopeGM estimates GM from the initial slope of the GZ curve:
// GM ~ GZ(a)/sin(a) at the smallest non-zero tabulated angle. The
// default method.
type SlopeGM struct{}

func (SlopeGM) Name() string { return "slope" }

func (SlopeGM) Estimate(curve *Curve, draft, kg float64) (float64, error) {
	for _, p := range curve.Points {
		if p.AngleDeg > 0 {
			return p.GZ / math.Sin(p.AngleDeg*math.Pi/180), nil
		}
	}
	return 0, fmt.Errorf("curve has no non-zero heel angle")
}

// FormGM estimates GM from hull-form approximations rather than the
// curve itself: KB = 0.52*draft, BM = draft^2/2, GM = KB + BM - KG.
// The coefficients are the legacy tool's cargo-vessel estimates.
type FormGM struct{}

func (FormGM) Name() string { return "form" }

func (FormGM) Estimate(curve *Curve, draft, kg float64) (float64, error) {
	kb := 0.52 * draft
	bm := draft * draft / 2
	return kb + bm - kg, nil
}

// EstimatorByName resolves a GM method name from config or CLI flags.
func EstimatorByName(name string) (GMEstimator, error) {
	switch name {
	case "", "slope":
		return SlopeGM{}, nil
	case "form":
		return FormGM{}, nil
	default:
		return nil, fmt.Errorf("unknown gm method: %s (available: slope, form)", name)
	}
}
