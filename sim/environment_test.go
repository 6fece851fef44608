package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassroom(t *testing.T, seed int64) *Classroom {
	t.Helper()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	return NewClassroom(cfg, rand.New(rand.NewSource(seed)))
}

func TestUpdate_RejectsNegativeStudentCount(t *testing.T) {
	c := newTestClassroom(t, 1)
	_, err := c.Update(1, -3, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestUpdate_RejectsNegativeTimeStep(t *testing.T) {
	c := newTestClassroom(t, 1)
	_, err := c.Update(-1, 10, false, false)
	require.Error(t, err)
}

func TestUpdate_AcceptsFractionalTimeStep(t *testing.T) {
	c := newTestClassroom(t, 1)
	_, err := c.Update(0.5, 10, false, false)
	require.NoError(t, err)
}

func TestUpdate_CO2ClampHoldsUnderHeavyJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter.CO2Sigma = 500
	c := NewClassroom(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		s, err := c.Update(1, 0, false, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.CO2PPM, OutdoorCO2PPM)
	}
}

func TestUpdate_NoiseClampHoldsUnderHeavyJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter.NoiseSigma = 50
	c := NewClassroom(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		s, err := c.Update(1, 0, false, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.NoiseDB, NoiseFloorDB)
	}
}

func TestUpdate_OccupancyRatioAlwaysRecomputed(t *testing.T) {
	c := newTestClassroom(t, 3)

	s, err := c.Update(1, 12, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 12.0/30.0, s.OccupancyRatio, 1e-12)

	s, err = c.Update(1, 30, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.OccupancyRatio, 1e-12)

	s, err = c.Update(1, 0, false, false)
	require.NoError(t, err)
	assert.Zero(t, s.OccupancyRatio)
	assert.Zero(t, s.StudentCount)
}

// Two classrooms with the same seed draw identical jitter, so the only
// difference between their updates is the air-change rate.
func TestUpdate_VentilationAcceleratesCO2Decay(t *testing.T) {
	fanOff := newTestClassroom(t, 11)
	fanOn := newTestClassroom(t, 11)
	fanOff.state.CO2PPM = 1200
	fanOn.state.CO2PPM = 1200

	sOff, err := fanOff.Update(1, 0, false, false)
	require.NoError(t, err)
	sOn, err := fanOn.Update(1, 0, true, false)
	require.NoError(t, err)

	assert.Less(t, sOn.CO2PPM, sOff.CO2PPM)
}

func TestUpdate_ZeroStudentsRelaxesTowardBaseline(t *testing.T) {
	c := newTestClassroom(t, 5)
	c.state.CO2PPM = 1200

	prev := c.state.CO2PPM
	for i := 0; i < 60; i++ {
		s, err := c.Update(1, 0, false, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.CO2PPM, OutdoorCO2PPM)
		// decaying trend, allowing jitter headroom
		assert.LessOrEqual(t, s.CO2PPM, prev+25)
		prev = s.CO2PPM
	}
	assert.Less(t, prev, 1190.0)
}

func TestUpdate_ACCoolsOccupiedRoom(t *testing.T) {
	acOff := newTestClassroom(t, 13)
	acOn := newTestClassroom(t, 13)

	var offTemp, onTemp float64
	for i := 0; i < 30; i++ {
		sOff, err := acOff.Update(1, 30, false, false)
		require.NoError(t, err)
		sOn, err := acOn.Update(1, 30, false, true)
		require.NoError(t, err)
		offTemp, onTemp = sOff.TemperatureC, sOn.TemperatureC
	}
	assert.Less(t, onTemp, offTemp)
}

func TestUpdate_HumidityAndLightPassThrough(t *testing.T) {
	c := newTestClassroom(t, 17)
	s, err := c.Update(1, 30, true, true)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.HumidityPct)
	assert.Equal(t, 500.0, s.LightLux)
}

func TestState_ReturnsSnapshotCopy(t *testing.T) {
	c := newTestClassroom(t, 19)
	snap := c.State()
	snap.CO2PPM = 9999
	assert.Equal(t, OutdoorCO2PPM, c.State().CO2PPM)
}
