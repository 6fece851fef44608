package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero duration", func(c *Config) { c.DurationMinutes = 0 }},
		{"zero time step", func(c *Config) { c.TimeStepMinutes = 0 }},
		{"zero monitor interval", func(c *Config) { c.MonitorIntervalMinutes = 0 }},
		{"zero log interval", func(c *Config) { c.LogIntervalMinutes = 0 }},
		{"zero capacity", func(c *Config) { c.RoomCapacity = 0 }},
		{"negative capacity", func(c *Config) { c.RoomCapacity = -5 }},
		{"zero volume", func(c *Config) { c.RoomVolumeM3 = 0 }},
		{"negative co2 rate", func(c *Config) { c.CO2PerPerson = -0.1 }},
		{"negative heat rate", func(c *Config) { c.HeatPerPersonWatts = -1 }},
		{"negative jitter", func(c *Config) { c.Jitter.CO2Sigma = -1 }},
		{"inverted temp band", func(c *Config) { c.Thresholds.TempMin = 30 }},
		{"unknown release policy", func(c *Config) { c.Actuators.ReleasePolicy = "sometimes" }},
		{"unknown failure policy", func(c *Config) { c.ClassifierFailurePolicy = "shrug" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
duration_minutes: 240
room_capacity: 25
thresholds:
  co2_max: 900
  temp_min: 19
  temp_max: 25
  noise_max: 60
  light_min: 250
actuators:
  release_policy: auto
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(240), cfg.DurationMinutes)
	assert.Equal(t, 25, cfg.RoomCapacity)
	assert.Equal(t, 900.0, cfg.Thresholds.CO2Max)
	assert.Equal(t, ReleaseAuto, cfg.Actuators.ReleasePolicy)
	// untouched fields keep their defaults
	assert.Equal(t, int64(5), cfg.MonitorIntervalMinutes)
	assert.Equal(t, 0.004, cfg.CO2PerPerson)
}

func TestLoadConfig_UnknownFieldIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duraton_minutes: 240\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("room_volume_m3: -10\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room_volume_m3")
}
