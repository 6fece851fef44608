package sim

import (
	"fmt"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

// Event defines the interface for all simulation events. Each event has a
// Timestamp (simulated minutes) and an Execute method that advances
// simulation state when invoked. Events due at the same minute execute in
// ascending Priority order, so monitoring always observes a fully updated
// environment and logging sees the tick's final actuator state.
type Event interface {
	Timestamp() int64
	Priority() int
	Execute(*Simulator)
}

// Fixed same-tick ordering: environment advance, then monitoring, then logging.
const (
	priorityEnvironment = iota
	priorityMonitor
	priorityLog
)

// EnvironmentTickEvent advances the scenario schedule and the environment
// model by one time step, then reschedules itself.
type EnvironmentTickEvent struct {
	time int64
}

// Timestamp returns the scheduled time of the EnvironmentTickEvent.
func (e *EnvironmentTickEvent) Timestamp() int64 { return e.time }

// Priority orders the event first within its tick.
func (e *EnvironmentTickEvent) Priority() int { return priorityEnvironment }

// Execute feeds the scheduled occupancy and current actuator flags into the
// environment model.
func (e *EnvironmentTickEvent) Execute(sim *Simulator) {
	students := sim.schedule.Students(e.time)
	act := sim.RunState.Actuators
	if _, err := sim.RunState.Classroom.Update(float64(sim.cfg.TimeStepMinutes), students, act.FanOn, act.ACOn); err != nil {
		sim.halt(fmt.Errorf("environment update at %dmin: %w", e.time, err))
		return
	}
	if next := e.time + sim.cfg.TimeStepMinutes; next < sim.Duration {
		sim.Schedule(&EnvironmentTickEvent{time: next})
	}
}

// MonitorEvent runs one controller evaluation against the current
// environment snapshot, then reschedules itself.
type MonitorEvent struct {
	time int64
}

// Timestamp returns the scheduled time of the MonitorEvent.
func (e *MonitorEvent) Timestamp() int64 { return e.time }

// Priority orders the event after the environment advance within its tick.
func (e *MonitorEvent) Priority() int { return priorityMonitor }

// Execute evaluates the controller and appends the resulting intervention
// record. A fail-closed classifier error halts the run.
func (e *MonitorEvent) Execute(sim *Simulator) {
	rec, err := sim.controller.Evaluate(e.time, sim.RunState.Classroom.State(), &sim.RunState.Actuators)
	if err != nil {
		sim.halt(err)
		return
	}
	sim.RunState.Trace.RecordIntervention(rec)
	sim.Metrics.CountAction(rec.Action)
	if next := e.time + sim.cfg.MonitorIntervalMinutes; next < sim.Duration {
		sim.Schedule(&MonitorEvent{time: next})
	}
}

// LogEvent snapshots the environment and actuators into the run trace, then
// reschedules itself.
type LogEvent struct {
	time int64
}

// Timestamp returns the scheduled time of the LogEvent.
func (e *LogEvent) Timestamp() int64 { return e.time }

// Priority orders the event last within its tick.
func (e *LogEvent) Priority() int { return priorityLog }

// Execute appends one LogEntry copied from the current state.
func (e *LogEvent) Execute(sim *Simulator) {
	env := sim.RunState.Classroom.State()
	act := sim.RunState.Actuators
	sim.RunState.Trace.RecordEntry(trace.LogEntry{
		Clock:          e.time,
		StudentCount:   env.StudentCount,
		CO2:            env.CO2PPM,
		Temperature:    env.TemperatureC,
		Humidity:       env.HumidityPct,
		Noise:          env.NoiseDB,
		Light:          env.LightLux,
		OccupancyRatio: env.OccupancyRatio,
		FanOn:          act.FanOn,
		ACOn:           act.ACOn,
	})
	if next := e.time + sim.cfg.LogIntervalMinutes; next < sim.Duration {
		sim.Schedule(&LogEvent{time: next})
	}
}
