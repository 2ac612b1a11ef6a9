package hydro

import (
	"errors"
	"testing"
)

func testGrid(t *testing.T) *KNTable {
	t.Helper()
	kt, err := NewKNTable(
		[]float64{10000, 20000, 30000},
		[]float64{0, 15, 30},
		[][]float64{
			{0, 1.0, 2.0},
			{0, 1.4, 2.6},
			{0, 2.0, 3.0},
		},
	)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	return kt
}

func TestKNExactDisplacementLevel(t *testing.T) {
	kt := testGrid(t)

	kn, err := kt.KN(20000, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kn != 1.4 {
		t.Errorf("expected exactly 1.4, got %f", kn)
	}
}

func TestKNInterpolatesAcrossDisplacement(t *testing.T) {
	kt := testGrid(t)

	kn, err := kt.KN(15000, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kn != 2.3 {
		t.Errorf("expected 2.3 midway between 2.0 and 2.6, got %f", kn)
	}
}

func TestKNUnknownAngle(t *testing.T) {
	kt := testGrid(t)

	_, err := kt.KN(20000, 17.5)
	if !errors.Is(err, ErrUnknownAngle) {
		t.Errorf("expected ErrUnknownAngle, got %v", err)
	}
}

func TestKNDisplacementOutOfRange(t *testing.T) {
	kt := testGrid(t)

	for _, d := range []float64{9999.9, 30000.1} {
		_, err := kt.KN(d, 15)
		if !errors.Is(err, ErrDisplacementOutOfRange) {
			t.Errorf("displacement %.1f: expected ErrDisplacementOutOfRange, got %v", d, err)
		}
	}
}

func TestNewKNTableRejectsMalformed(t *testing.T) {
	cases := []struct {
		name          string
		displacements []float64
		angles        []float64
		values        [][]float64
	}{
		{"single level", []float64{10000}, []float64{0}, [][]float64{{0}}},
		{"no angles", []float64{10000, 20000}, nil, [][]float64{{}, {}}},
		{"unsorted levels", []float64{20000, 10000}, []float64{0}, [][]float64{{0}, {0}}},
		{"unsorted angles", []float64{10000, 20000}, []float64{15, 0}, [][]float64{{1, 0}, {1, 0}}},
		{"missing row", []float64{10000, 20000}, []float64{0}, [][]float64{{0}}},
		{"ragged row", []float64{10000, 20000}, []float64{0, 15}, [][]float64{{0, 1}, {0}}},
		{"negative value", []float64{10000, 20000}, []float64{0, 15}, [][]float64{{0, 1}, {0, -0.1}}},
	}
	for _, tc := range cases {
		if _, err := NewKNTable(tc.displacements, tc.angles, tc.values); err == nil {
			t.Errorf("%s: expected construction error", tc.name)
		}
	}
}

func TestAnglesPreserveGridOrder(t *testing.T) {
	kt := testGrid(t)

	angles := kt.Angles()
	want := []float64{0, 15, 30}
	if len(angles) != len(want) {
		t.Fatalf("expected %d angles, got %d", len(want), len(angles))
	}
	for i := range want {
		if angles[i] != want[i] {
			t.Errorf("angle %d: expected %.0f, got %.0f", i, want[i], angles[i])
		}
	}
}
