// Package hydro provides the tabulated hydrostatic data the stability
// engine interpolates over: a draft-to-displacement curve and a KN
// cross-curve grid.
//
// Both tables are immutable after construction and interpolate linearly
// between tabulated values. Queries outside a table's domain fail; no
// clamping or extrapolation is performed:
//
//	ht, _ := hydro.NewHydrostaticTable(points)
//	disp, err := ht.Displacement(8.5)
//	if errors.Is(err, hydro.ErrDraftOutOfRange) {
//	    // caller picks a draft inside the table domain
//	}
//
// Heel angle is a categorical axis on [KNTable]: KN is interpolated
// across displacement only, never across angle.
package hydro
