package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// OutdoorCO2PPM is the fresh-air baseline the room relaxes toward.
const OutdoorCO2PPM = 400.0

// NoiseFloorDB is the ambient noise floor of an empty, quiet room.
const NoiseFloorDB = 30.0

// Air changes per hour, with and without active ventilation.
const (
	achFanOn  = 0.5
	achFanOff = 0.1
)

const (
	acCoolingWatts    = 2000.0
	thermalMassFactor = 1.2 // multiplies room volume as a thermal-mass proxy
)

// EnvironmentState is the sensed condition of the classroom at one instant.
// CO2PPM never drops below OutdoorCO2PPM and NoiseDB never below
// NoiseFloorDB; OccupancyRatio is always StudentCount / room capacity,
// recomputed on every update.
type EnvironmentState struct {
	CO2PPM         float64
	TemperatureC   float64
	HumidityPct    float64
	NoiseDB        float64
	LightLux       float64
	OccupancyRatio float64
	StudentCount   int
}

// Classroom evolves an EnvironmentState one discrete time step at a time.
// It knows nothing about scheduling or control; occupancy and actuator flags
// arrive as inputs on every update. The RNG is injected so runs are
// reproducible under a fixed seed.
type Classroom struct {
	cfg   *Config
	state EnvironmentState
	rng   *rand.Rand
}

// NewClassroom creates a classroom in the fresh-air/quiet initial condition.
func NewClassroom(cfg *Config, rng *rand.Rand) *Classroom {
	return &Classroom{
		cfg: cfg,
		state: EnvironmentState{
			CO2PPM:       OutdoorCO2PPM,
			TemperatureC: 22,
			HumidityPct:  50,
			NoiseDB:      40,
			LightLux:     500,
		},
		rng: rng,
	}
}

// State returns a snapshot copy of the current environment.
func (c *Classroom) State() EnvironmentState {
	return c.state
}

// Update advances the environment by dtMinutes with the given occupancy and
// actuator flags, mutating the classroom state in place and returning a
// snapshot of it. Only Update ever mutates the state.
func (c *Classroom) Update(dtMinutes float64, studentCount int, fanOn, acOn bool) (EnvironmentState, error) {
	if studentCount < 0 {
		return EnvironmentState{}, fmt.Errorf("student count must be non-negative, got %d", studentCount)
	}
	if dtMinutes < 0 || math.IsNaN(dtMinutes) || math.IsInf(dtMinutes, 0) {
		return EnvironmentState{}, fmt.Errorf("time step must be a non-negative number of minutes, got %f", dtMinutes)
	}

	s := &c.state
	s.StudentCount = studentCount
	s.OccupancyRatio = float64(studentCount) / float64(c.cfg.RoomCapacity)

	// CO2: occupant production plus first-order relaxation toward the
	// outdoor baseline. Ventilation raises the air-change rate.
	ach := achFanOff
	if fanOn {
		ach = achFanOn
	}
	s.CO2PPM += float64(studentCount) * c.cfg.CO2PerPerson * dtMinutes
	s.CO2PPM -= ach * (s.CO2PPM - OutdoorCO2PPM) * dtMinutes / 60

	// Temperature: occupant heat gain, minus fixed AC cooling when active,
	// spread over the room's thermal mass.
	heatGain := float64(studentCount) * c.cfg.HeatPerPersonWatts * dtMinutes / 3600
	if acOn {
		heatGain -= acCoolingWatts * dtMinutes / 3600
	}
	s.TemperatureC += heatGain / (c.cfg.RoomVolumeM3 * thermalMassFactor)

	// Sensor jitter. Noise is a full recompute from occupancy, not additive.
	s.CO2PPM += c.rng.NormFloat64() * c.cfg.Jitter.CO2Sigma
	s.TemperatureC += c.rng.NormFloat64() * c.cfg.Jitter.TempSigma
	s.NoiseDB = 40 + 0.8*float64(studentCount) + c.rng.NormFloat64()*c.cfg.Jitter.NoiseSigma

	// Humidity and light are static external knobs for now.

	s.CO2PPM = math.Max(OutdoorCO2PPM, s.CO2PPM)
	s.NoiseDB = math.Max(NoiseFloorDB, s.NoiseDB)
	return *s, nil
}
