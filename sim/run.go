package sim

import (
	"math/rand"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

// ActuatorState holds the controllable equipment flags. It is owned by the
// intervention controller and read by the environment model on every update.
// LightsOn is a static installation knob, always on for now.
type ActuatorState struct {
	FanOn    bool
	ACOn     bool
	LightsOn bool
}

// SimulationRun owns all mutable state of a single run: the classroom, its
// actuators, and the collected trace. Callers can hold several independent
// runs side by side for what-if comparisons; nothing here is shared or
// global.
type SimulationRun struct {
	Classroom *Classroom
	Actuators ActuatorState
	Trace     *trace.RunTrace
}

// NewSimulationRun creates a run with a fresh classroom and empty trace.
func NewSimulationRun(cfg *Config, rng *rand.Rand) *SimulationRun {
	return &SimulationRun{
		Classroom: NewClassroom(cfg, rng),
		Actuators: ActuatorState{LightsOn: true},
		Trace:     trace.NewRunTrace(),
	}
}
