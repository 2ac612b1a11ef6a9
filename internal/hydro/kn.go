package hydro

import (
	"fmt"
	"sort"
)

// KNTable is an immutable cross-curve grid: KN values indexed by
// displacement level (rows) and heel angle (columns). Displacement is a
// continuous query axis; heel angle is categorical and must match a
// tabulated column exactly.
type KNTable struct {
	displacements []float64   // tonnes, strictly increasing
	angles        []float64   // degrees, strictly increasing
	values        [][]float64 // values[d][a], meters
}

// NewKNTable validates and copies a rectangular KN grid.
func NewKNTable(displacements, angles []float64, values [][]float64) (*KNTable, error) {
	if len(displacements) < 2 {
		return nil, fmt.Errorf("kn grid needs at least 2 displacement levels, got %d", len(displacements))
	}
	if len(angles) == 0 {
		return nil, fmt.Errorf("kn grid needs at least 1 heel angle")
	}
	for i := 1; i < len(displacements); i++ {
		if displacements[i] <= displacements[i-1] {
			return nil, fmt.Errorf("kn displacement levels must be strictly increasing: %.1f follows %.1f",
				displacements[i], displacements[i-1])
		}
	}
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return nil, fmt.Errorf("kn angles must be strictly increasing: %.1f follows %.1f",
				angles[i], angles[i-1])
		}
	}
	if len(values) != len(displacements) {
		return nil, fmt.Errorf("kn grid has %d rows, want %d (one per displacement level)",
			len(values), len(displacements))
	}
	vcp := make([][]float64, len(values))
	for i, row := range values {
		if len(row) != len(angles) {
			return nil, fmt.Errorf("kn row %d has %d values, want %d (one per angle)", i, len(row), len(angles))
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("kn value at row %d angle %.1f is negative: %f", i, angles[j], v)
			}
		}
		vcp[i] = make([]float64, len(row))
		copy(vcp[i], row)
	}

	dcp := make([]float64, len(displacements))
	copy(dcp, displacements)
	acp := make([]float64, len(angles))
	copy(acp, angles)
	return &KNTable{displacements: dcp, angles: acp, values: vcp}, nil
}

func (t *KNTable) MinDisplacement() float64 { return t.displacements[0] }
func (t *KNTable) MaxDisplacement() float64 { return t.displacements[len(t.displacements)-1] }

// Angles returns the tabulated heel angles in ascending grid order.
func (t *KNTable) Angles() []float64 {
	cp := make([]float64, len(t.angles))
	copy(cp, t.angles)
	return cp
}

// KN interpolates the cross-curve value at the given displacement for
// one of the grid's tabulated heel angles. The angle must match a grid
// column exactly; displacement interpolates linearly between levels and
// fails with ErrDisplacementOutOfRange outside the grid domain.
func (t *KNTable) KN(displacement, angle float64) (float64, error) {
	col := -1
	for j, a := range t.angles {
		if a == angle {
			col = j
			break
		}
	}
	if col < 0 {
		return 0, fmt.Errorf("%w: %.1f deg", ErrUnknownAngle, angle)
	}

	ds := t.displacements
	if displacement < ds[0] || displacement > ds[len(ds)-1] {
		return 0, fmt.Errorf("%w: %.1f t outside [%.1f, %.1f]",
			ErrDisplacementOutOfRange, displacement, ds[0], ds[len(ds)-1])
	}

	i := sort.Search(len(ds), func(i int) bool { return ds[i] >= displacement })
	if ds[i] == displacement {
		return t.values[i][col], nil
	}
	return lerp(displacement, ds[i-1], ds[i], t.values[i-1][col], t.values[i][col]), nil
}
