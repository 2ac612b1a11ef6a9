package config

import "fmt"

// Coefficients of the legacy closed-form displacement model:
//
//	displacement = 258.73*T^2 + 1982.54*T + 5000
//
// The tabulated hydrostatic curve is the ground truth for lookups; this
// formula is kept only as a data-generation method and is never
// consulted by the interpolation engine.
const (
	quadA = 258.73
	quadB = 1982.54
	quadC = 5000.0
)

// QuadraticDisplacement evaluates the legacy displacement formula.
func QuadraticDisplacement(draft float64) float64 {
	return quadA*draft*draft + quadB*draft + quadC
}

// GenerateHydrostatics synthesizes a hydrostatic table from the legacy
// quadratic formula, for building vessel files when no measured table
// is available.
func GenerateHydrostatics(minDraft, maxDraft, step float64) ([]HydroPoint, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %f", step)
	}
	if maxDraft <= minDraft {
		return nil, fmt.Errorf("max draft %.2f must exceed min draft %.2f", maxDraft, minDraft)
	}

	var pts []HydroPoint
	for d := minDraft; d <= maxDraft+1e-9; d += step {
		pts = append(pts, HydroPoint{Draft: d, Displacement: QuadraticDisplacement(d)})
	}
	return pts, nil
}
