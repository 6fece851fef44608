package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds is the comfort envelope the intervention rules act on.
// Readings outside this table explain a non-conducive verdict; readings that
// violate none of them (for example temperature below temp_min) fall through
// to the unclassified action.
type Thresholds struct {
	CO2Max   float64 `yaml:"co2_max"`   // ppm
	TempMin  float64 `yaml:"temp_min"`  // degrees C
	TempMax  float64 `yaml:"temp_max"`  // degrees C
	NoiseMax float64 `yaml:"noise_max"` // dB
	LightMin float64 `yaml:"light_min"` // lux
}

// JitterConfig holds the standard deviations of the Gaussian perturbations
// applied on every environment update to emulate sensor noise.
type JitterConfig struct {
	CO2Sigma   float64 `yaml:"co2_sigma"`
	TempSigma  float64 `yaml:"temp_sigma"`
	NoiseSigma float64 `yaml:"noise_sigma"`
}

// ReleasePolicy selects how actuators turn off again once an intervention
// has switched them on.
type ReleasePolicy string

const (
	// ReleaseLatch keeps an actuator on for the rest of the run once set.
	ReleaseLatch ReleasePolicy = "latch"
	// ReleaseAuto turns an actuator off on a conducive verdict once the
	// driving reading has dropped below its threshold minus a hysteresis margin.
	ReleaseAuto ReleasePolicy = "auto"
)

// ActuatorConfig makes the actuator off-transition explicit and configurable.
type ActuatorConfig struct {
	ReleasePolicy     ReleasePolicy `yaml:"release_policy"`
	CO2ReleaseMargin  float64       `yaml:"co2_release_margin"`  // ppm below co2_max before fan releases
	TempReleaseMargin float64       `yaml:"temp_release_margin"` // degrees C below temp_max before AC releases
}

// FailurePolicy selects how the controller reacts when the classifier
// returns an error mid-run.
type FailurePolicy string

const (
	// FailOpen treats the tick as conducive and keeps the run going.
	FailOpen FailurePolicy = "fail-open"
	// FailClosed halts the run, keeping the trace collected so far.
	FailClosed FailurePolicy = "fail-closed"
)

// Config is the immutable per-run configuration. It is validated once before
// the run starts and never mutated afterwards.
type Config struct {
	DurationMinutes        int64 `yaml:"duration_minutes"`
	TimeStepMinutes        int64 `yaml:"time_step_minutes"`
	MonitorIntervalMinutes int64 `yaml:"monitor_interval_minutes"`
	LogIntervalMinutes     int64 `yaml:"log_interval_minutes"`

	RoomCapacity int     `yaml:"room_capacity"`
	RoomVolumeM3 float64 `yaml:"room_volume_m3"`

	// Per-person production rates driving the environment model.
	CO2PerPerson       float64 `yaml:"co2_per_person"`        // ppm per person-minute
	HeatPerPersonWatts float64 `yaml:"heat_per_person_watts"` // W per person

	Thresholds Thresholds     `yaml:"thresholds"`
	Actuators  ActuatorConfig `yaml:"actuators"`
	Jitter     JitterConfig   `yaml:"jitter"`

	ClassifierFailurePolicy FailurePolicy `yaml:"classifier_failure_policy"`
}

// DefaultConfig returns the reference 8-hour school day configuration.
func DefaultConfig() *Config {
	return &Config{
		DurationMinutes:        480,
		TimeStepMinutes:        1,
		MonitorIntervalMinutes: 5,
		LogIntervalMinutes:     1,
		RoomCapacity:           30,
		RoomVolumeM3:           200,
		CO2PerPerson:           0.004,
		HeatPerPersonWatts:     100,
		Thresholds: Thresholds{
			CO2Max:   1000,
			TempMin:  20,
			TempMax:  26,
			NoiseMax: 65,
			LightMin: 300,
		},
		Actuators: ActuatorConfig{
			ReleasePolicy:     ReleaseLatch,
			CO2ReleaseMargin:  150,
			TempReleaseMargin: 1.0,
		},
		Jitter: JitterConfig{
			CO2Sigma:   5,
			TempSigma:  0.1,
			NoiseSigma: 2,
		},
		ClassifierFailurePolicy: FailOpen,
	}
}

// LoadConfig reads a Config from a YAML file with strict field checking,
// so typos in field names cause errors instead of silent defaults.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects numerically nonsensical configurations. Violations are
// configuration errors; nothing is silently coerced.
func (c *Config) Validate() error {
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", c.DurationMinutes)
	}
	if c.TimeStepMinutes <= 0 {
		return fmt.Errorf("time_step_minutes must be positive, got %d", c.TimeStepMinutes)
	}
	if c.MonitorIntervalMinutes <= 0 {
		return fmt.Errorf("monitor_interval_minutes must be positive, got %d", c.MonitorIntervalMinutes)
	}
	if c.LogIntervalMinutes <= 0 {
		return fmt.Errorf("log_interval_minutes must be positive, got %d", c.LogIntervalMinutes)
	}
	if c.RoomCapacity <= 0 {
		return fmt.Errorf("room_capacity must be positive, got %d", c.RoomCapacity)
	}
	if c.RoomVolumeM3 <= 0 {
		return fmt.Errorf("room_volume_m3 must be positive, got %f", c.RoomVolumeM3)
	}
	if c.CO2PerPerson < 0 {
		return fmt.Errorf("co2_per_person must be non-negative, got %f", c.CO2PerPerson)
	}
	if c.HeatPerPersonWatts < 0 {
		return fmt.Errorf("heat_per_person_watts must be non-negative, got %f", c.HeatPerPersonWatts)
	}
	if c.Jitter.CO2Sigma < 0 || c.Jitter.TempSigma < 0 || c.Jitter.NoiseSigma < 0 {
		return fmt.Errorf("jitter sigmas must be non-negative, got %+v", c.Jitter)
	}
	if c.Thresholds.TempMin > c.Thresholds.TempMax {
		return fmt.Errorf("temp_min %f exceeds temp_max %f", c.Thresholds.TempMin, c.Thresholds.TempMax)
	}
	switch c.Actuators.ReleasePolicy {
	case ReleaseLatch, ReleaseAuto:
	default:
		return fmt.Errorf("unknown release_policy %q; valid: latch, auto", c.Actuators.ReleasePolicy)
	}
	switch c.ClassifierFailurePolicy {
	case FailOpen, FailClosed:
	default:
		return fmt.Errorf("unknown classifier_failure_policy %q; valid: fail-open, fail-closed", c.ClassifierFailurePolicy)
	}
	return nil
}
