package hydro

import (
	"errors"
	"math"
	"testing"
)

func delMontePoints() []Point {
	return []Point{
		{2.0, 10000}, {3.0, 13276}, {4.0, 17070}, {5.0, 21381},
		{6.0, 26210}, {7.0, 31556}, {8.0, 37419}, {9.0, 43800},
		{10.0, 50698}, {11.0, 58114}, {12.0, 66048}, {13.0, 74498},
		{14.0, 83467},
	}
}

func mustTable(t *testing.T, pts []Point) *HydrostaticTable {
	t.Helper()
	ht, err := NewHydrostaticTable(pts)
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}
	return ht
}

func TestDisplacementExactMatch(t *testing.T) {
	ht := mustTable(t, delMontePoints())

	disp, err := ht.Displacement(8.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if disp != 37419 {
		t.Errorf("expected exactly 37419 at tabulated draft 8.0, got %f", disp)
	}

	// Domain endpoints are table points too.
	disp, err = ht.Displacement(14.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if disp != 83467 {
		t.Errorf("expected exactly 83467 at draft 14.0, got %f", disp)
	}
}

func TestDisplacementMidpoint(t *testing.T) {
	ht := mustTable(t, delMontePoints())

	disp, err := ht.Displacement(8.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (37419.0 + 43800.0) / 2
	if disp != want {
		t.Errorf("expected %f at draft 8.5, got %f", want, disp)
	}
}

func TestDisplacementMonotonic(t *testing.T) {
	ht := mustTable(t, delMontePoints())

	prev := math.Inf(-1)
	for draft := 2.0; draft <= 14.0; draft += 0.25 {
		disp, err := ht.Displacement(draft)
		if err != nil {
			t.Fatalf("draft %.2f: %v", draft, err)
		}
		if disp < prev {
			t.Errorf("displacement decreased at draft %.2f: %f < %f", draft, disp, prev)
		}
		prev = disp
	}
}

func TestDisplacementOutOfRange(t *testing.T) {
	ht := mustTable(t, delMontePoints())

	for _, draft := range []float64{1.9, 14.1, -3.0, 100.0} {
		_, err := ht.Displacement(draft)
		if !errors.Is(err, ErrDraftOutOfRange) {
			t.Errorf("draft %.1f: expected ErrDraftOutOfRange, got %v", draft, err)
		}
	}
}

func TestNewHydrostaticTableRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		pts  []Point
	}{
		{"too short", []Point{{2.0, 10000}}},
		{"duplicate draft", []Point{{2.0, 10000}, {2.0, 13276}, {4.0, 17070}}},
		{"unsorted draft", []Point{{3.0, 13276}, {2.0, 10000}}},
		{"non-increasing displacement", []Point{{2.0, 10000}, {3.0, 10000}}},
	}
	for _, tc := range cases {
		if _, err := NewHydrostaticTable(tc.pts); err == nil {
			t.Errorf("%s: expected construction error", tc.name)
		}
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	ht := mustTable(t, delMontePoints())

	pts := ht.Points()
	pts[0].Displacement = -1

	disp, err := ht.Displacement(2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if disp != 10000 {
		t.Errorf("table mutated through Points(): got %f", disp)
	}
}
