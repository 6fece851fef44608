package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/classroom-sim/classroom-sim/classifier"
)

// EventQueue implements heap.Interface and orders events by timestamp, then
// by fixed activity priority for equal timestamps. The priority tie-break is
// strictly positional, never magnitude-based.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Timestamp() != eq[j].Timestamp() {
		return eq[i].Timestamp() < eq[j].Timestamp()
	}
	return eq[i].Priority() < eq[j].Priority()
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, run state, and
// the event loop. Single-threaded by design: the three periodic activities
// interleave on one clock in a fixed per-tick order, so no locking is
// needed.
type Simulator struct {
	Clock    int64
	Duration int64
	// EventQueue holds the pending periodic events (environment advance,
	// monitoring, logging), each rescheduling itself until the duration is
	// reached.
	EventQueue EventQueue
	// RunState owns the classroom, actuators, and collected trace.
	RunState *SimulationRun
	Metrics  *Metrics

	cfg        *Config
	schedule   *ScheduleCursor
	controller *Controller

	halted bool
	err    error
}

// NewSimulator validates the configuration and schedule, wires up the run
// state, and primes the event queue. A nil classifier is a configuration
// error: the run must not start without one.
func NewSimulator(cfg *Config, day *DaySchedule, clf classifier.Classifier, seed int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := day.Validate(); err != nil {
		return nil, err
	}
	if clf == nil {
		return nil, fmt.Errorf("a usable classifier is required before run start")
	}

	rng := NewPartitionedRNG(NewSimulationKey(seed))
	s := &Simulator{
		Clock:      0,
		Duration:   cfg.DurationMinutes,
		EventQueue: make(EventQueue, 0),
		RunState:   NewSimulationRun(cfg, rng.ForSubsystem(SubsystemEnvironment)),
		Metrics:    NewMetrics(),
		cfg:        cfg,
		schedule:   day.Cursor(),
		controller: NewController(clf, cfg),
	}

	s.Schedule(&EnvironmentTickEvent{time: 0})
	s.Schedule(&MonitorEvent{time: 0})
	s.Schedule(&LogEvent{time: 0})
	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, ev)
}

// Run drains the event queue until the duration is reached or the run is
// halted. On a halt the trace collected so far stays intact and the halting
// error is returned.
func (sim *Simulator) Run() error {
	for len(sim.EventQueue) > 0 && !sim.halted {
		ev := heap.Pop(&sim.EventQueue).(Event)
		// no activity fires at or past the duration
		if ev.Timestamp() >= sim.Duration {
			break
		}
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[%03dmin] executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	sim.finalizeMetrics()

	if sim.err != nil {
		logrus.Warnf("[%03dmin] simulation halted: %v", sim.Clock, sim.err)
		return sim.err
	}
	logrus.Infof("[%03dmin] simulation ended: %d log entries, %d monitoring ticks",
		sim.Clock, len(sim.RunState.Trace.Entries), len(sim.RunState.Trace.Interventions))
	return nil
}

// halt stops the event loop after the current event and records the cause.
func (sim *Simulator) halt(err error) {
	sim.halted = true
	sim.err = err
}

// finalizeMetrics folds the collected trace into the run summary.
func (sim *Simulator) finalizeMetrics() {
	m := sim.Metrics
	m.LogEntries = len(sim.RunState.Trace.Entries)
	m.MonitoringTicks = len(sim.RunState.Trace.Interventions)
	m.ClassifierFailures = sim.controller.ClassifierFailures()
	m.FinalFanOn = sim.RunState.Actuators.FanOn
	m.FinalACOn = sim.RunState.Actuators.ACOn
	for _, e := range sim.RunState.Trace.Entries {
		if e.CO2 > m.PeakCO2 {
			m.PeakCO2 = e.CO2
		}
		if e.Temperature > m.PeakTemperature {
			m.PeakTemperature = e.Temperature
		}
	}
}
