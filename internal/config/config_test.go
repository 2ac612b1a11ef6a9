package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelMonteBuilds(t *testing.T) {
	c, err := DelMonte().Build()
	require.NoError(t, err)

	env := c.Envelope()
	assert.Equal(t, 2.0, env.MinDraft)
	assert.Equal(t, 14.0, env.MaxDraft)
	assert.Equal(t, 5.0, env.MinKG)
	assert.Equal(t, 15.0, env.MaxKG)
	assert.Equal(t, 8.5, env.DefaultKG)

	disp, err := c.Displacement(8.0)
	require.NoError(t, err)
	assert.Equal(t, 37419.0, disp)
}

func TestDelMonteZeroHeelColumnIsZero(t *testing.T) {
	v := DelMonte()
	require.Equal(t, 0.0, v.KN.Angles[0])
	for i, row := range v.KN.Values {
		assert.Zero(t, row[0], "row %d", i)
	}
}

func TestDelMonteGridMatchesHydroDomain(t *testing.T) {
	v := DelMonte()
	require.Len(t, v.KN.Displacements, len(v.Hydrostatics))
	assert.Equal(t, v.Hydrostatics[0].Displacement, v.KN.Displacements[0])
	last := len(v.Hydrostatics) - 1
	assert.Equal(t, v.Hydrostatics[last].Displacement, v.KN.Displacements[last])
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delmonte.yaml")

	require.NoError(t, Save(path, DelMonte()))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MV Del Monte", v.Name)
	assert.Len(t, v.Hydrostatics, 13)
	assert.Len(t, v.KN.Angles, 19)

	c, err := v.Build()
	require.NoError(t, err)
	curve, err := c.Curve(10.0, 8.5)
	require.NoError(t, err)
	assert.Len(t, curve.Points, 19)
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	v := DelMonte()
	v.KN.Values = v.KN.Values[:3] // drop rows: grid no longer rectangular

	require.NoError(t, Save(path, v))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildEnvelopeDefaults(t *testing.T) {
	v := DelMonte()
	v.Envelope = Envelope{}

	c, err := v.Build()
	require.NoError(t, err)

	env := c.Envelope()
	assert.Equal(t, 2.0, env.MinDraft)
	assert.Equal(t, 14.0, env.MaxDraft)
	assert.Equal(t, DefaultMinKG, env.MinKG)
	assert.Equal(t, DefaultMaxKG, env.MaxKG)
	assert.Equal(t, DefaultKG, env.DefaultKG)
}

func TestQuadraticDisplacement(t *testing.T) {
	// The corrected endpoint figures come straight from the formula.
	assert.InDelta(t, 10000, QuadraticDisplacement(2.0), 0.5)
	assert.InDelta(t, 83467, QuadraticDisplacement(14.0), 0.5)
}

func TestGenerateHydrostatics(t *testing.T) {
	pts, err := GenerateHydrostatics(2.0, 14.0, 1.0)
	require.NoError(t, err)
	require.Len(t, pts, 13)
	assert.Equal(t, 2.0, pts[0].Draft)
	assert.Equal(t, 14.0, pts[12].Draft)

	_, err = GenerateHydrostatics(2.0, 14.0, 0)
	assert.Error(t, err)
	_, err = GenerateHydrostatics(14.0, 2.0, 1.0)
	assert.Error(t, err)
}

func TestVesselPreset(t *testing.T) {
	assert.NotNil(t, VesselPreset("delmonte"))
	assert.Nil(t, VesselPreset("titanic"))
	assert.Contains(t, ListVessels(), "delmonte")
}
