// Tracks run-wide summary statistics reported after the simulation ends.

package sim

import (
	"fmt"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

// Metrics aggregates statistics about one simulation run for final
// reporting. Useful for comparing intervention policies across runs and for
// debugging behavior over time.
type Metrics struct {
	LogEntries         int // number of log snapshots collected
	MonitoringTicks    int // number of controller evaluations
	ClassifierFailures int // failed classifier invocations

	InterventionsByAction map[trace.Action]int

	PeakCO2         float64 // highest logged CO2 (ppm)
	PeakTemperature float64 // highest logged temperature (C)
	FinalFanOn      bool
	FinalACOn       bool
}

// NewMetrics returns an empty Metrics ready for counting.
func NewMetrics() *Metrics {
	return &Metrics{
		InterventionsByAction: make(map[trace.Action]int),
	}
}

// CountAction tallies one controller evaluation by its resulting action.
func (m *Metrics) CountAction(a trace.Action) {
	m.InterventionsByAction[a]++
}

// Interventions returns how many monitoring ticks fired a non-empty action.
func (m *Metrics) Interventions() int {
	total := 0
	for a, n := range m.InterventionsByAction {
		if a != trace.ActionNone {
			total += n
		}
	}
	return total
}

// Print displays the aggregated run summary.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Log entries          : %d\n", m.LogEntries)
	fmt.Printf("Monitoring ticks     : %d\n", m.MonitoringTicks)
	fmt.Printf("Interventions        : %d\n", m.Interventions())
	fmt.Printf("  ventilation on     : %d\n", m.InterventionsByAction[trace.ActionActivateVentilation])
	fmt.Printf("  AC on              : %d\n", m.InterventionsByAction[trace.ActionActivateAC])
	fmt.Printf("  noise alerts       : %d\n", m.InterventionsByAction[trace.ActionSendAlert])
	fmt.Printf("  unclassified       : %d\n", m.InterventionsByAction[trace.ActionUnclassified])
	fmt.Printf("Classifier failures  : %d\n", m.ClassifierFailures)
	fmt.Printf("Peak CO2             : %.0f ppm\n", m.PeakCO2)
	fmt.Printf("Peak temperature     : %.1f C\n", m.PeakTemperature)
	fmt.Printf("Final actuators      : fan=%v ac=%v\n", m.FinalFanOn, m.FinalACOn)
}
