package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gzlab/internal/hydro"
	"github.com/san-kum/gzlab/internal/stability"
)

// Flat KN(10 deg) = 1.5 m at every displacement, so the slope-method
// GM is 1.5/sin(10 deg) - kg at any draft.
func sweepComputer(t *testing.T) *stability.Computer {
	t.Helper()

	ht, err := hydro.NewHydrostaticTable([]hydro.Point{
		{Draft: 2.0, Displacement: 10000},
		{Draft: 14.0, Displacement: 90000},
	})
	require.NoError(t, err)

	kt, err := hydro.NewKNTable(
		[]float64{10000, 90000},
		[]float64{0, 10, 30},
		[][]float64{
			{0, 1.5, 3.0},
			{0, 1.5, 3.0},
		},
	)
	require.NoError(t, err)

	env := stability.Envelope{MinDraft: 2, MaxDraft: 14, MinKG: 5, MaxKG: 15, DefaultKG: 8.5}
	return stability.NewComputer(ht, kt, env)
}

func TestKGRange(t *testing.T) {
	kgs, err := KGRange(5.0, 7.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0, 5.5, 6.0, 6.5, 7.0}, kgs)

	_, err = KGRange(5.0, 7.0, 0)
	assert.Error(t, err)
	_, err = KGRange(7.0, 5.0, 0.5)
	assert.Error(t, err)
}

func TestRunPreservesInputOrder(t *testing.T) {
	c := sweepComputer(t)

	kgs := []float64{5, 6, 7, 8, 9, 10}
	results, err := Run(c, 8.0, kgs, stability.SlopeGM{})
	require.NoError(t, err)
	require.Len(t, results, len(kgs))

	gmAt := func(kg float64) float64 { return 1.5/math.Sin(10*math.Pi/180) - kg }
	for i, r := range results {
		assert.Equal(t, kgs[i], r.KG)
		assert.InDelta(t, gmAt(kgs[i]), r.Summary.GM, 1e-9)
	}
}

func TestRunAbortsOnInvalidKG(t *testing.T) {
	c := sweepComputer(t)

	_, err := Run(c, 8.0, []float64{6, 20}, stability.SlopeGM{})
	assert.ErrorIs(t, err, stability.ErrInvalidKG)
}

func TestLimitingKG(t *testing.T) {
	c := sweepComputer(t)

	// GM crosses zero at kg = 1.5/sin(10 deg) = 8.64 m.
	kgs, err := KGRange(5, 12, 1.0)
	require.NoError(t, err)

	limit, found, err := LimitingKG(c, 8.0, kgs, stability.SlopeGM{})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 8.0, limit)
}

func TestLimitingKGNoneStable(t *testing.T) {
	c := sweepComputer(t)

	_, found, err := LimitingKG(c, 8.0, []float64{10, 11, 12}, stability.SlopeGM{})
	require.NoError(t, err)
	assert.False(t, found)
}
