package hydro

import (
	"fmt"
	"sort"
)

// Point is one tabulated hydrostatic entry: the displacement of the
// vessel floating at a given draft.
type Point struct {
	Draft        float64 // meters
	Displacement float64 // tonnes
}

// HydrostaticTable is an immutable draft-to-displacement curve.
type HydrostaticTable struct {
	points []Point
}

// NewHydrostaticTable validates and copies the tabulated points. Drafts
// and displacements must both be strictly increasing (a physical
// hydrostatic curve is monotonic in both).
func NewHydrostaticTable(points []Point) (*HydrostaticTable, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("hydrostatic table needs at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Draft <= points[i-1].Draft {
			return nil, fmt.Errorf("hydrostatic drafts must be strictly increasing: %.3f follows %.3f",
				points[i].Draft, points[i-1].Draft)
		}
		if points[i].Displacement <= points[i-1].Displacement {
			return nil, fmt.Errorf("hydrostatic displacements must be strictly increasing: %.1f follows %.1f",
				points[i].Displacement, points[i-1].Displacement)
		}
	}

	cp := make([]Point, len(points))
	copy(cp, points)
	return &HydrostaticTable{points: cp}, nil
}

func (t *HydrostaticTable) MinDraft() float64 { return t.points[0].Draft }
func (t *HydrostaticTable) MaxDraft() float64 { return t.points[len(t.points)-1].Draft }

// Points returns a copy of the tabulated curve.
func (t *HydrostaticTable) Points() []Point {
	cp := make([]Point, len(t.points))
	copy(cp, t.points)
	return cp
}

// Displacement linearly interpolates the displacement at the given
// draft. Drafts outside the table domain fail with ErrDraftOutOfRange;
// the table never extrapolates.
func (t *HydrostaticTable) Displacement(draft float64) (float64, error) {
	pts := t.points
	if draft < pts[0].Draft || draft > pts[len(pts)-1].Draft {
		return 0, fmt.Errorf("%w: %.3f m outside [%.3f, %.3f]",
			ErrDraftOutOfRange, draft, pts[0].Draft, pts[len(pts)-1].Draft)
	}

	i := sort.Search(len(pts), func(i int) bool { return pts[i].Draft >= draft })
	if pts[i].Draft == draft {
		// Exact table hit: return the tabulated value untouched.
		return pts[i].Displacement, nil
	}
	return lerp(draft, pts[i-1].Draft, pts[i].Draft, pts[i-1].Displacement, pts[i].Displacement), nil
}

// lerp interpolates y linearly over [x0, x1]. Endpoint queries return
// the tabulated value without introducing rounding error.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x == x0 {
		return y0
	}
	if x == x1 {
		return y1
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}
