package trace

// RunTrace collects the ordered, append-only output of one simulation run:
// the per-minute log and the per-monitoring-tick intervention history. Both
// sequences are handed to the results sinks verbatim after the run ends.
type RunTrace struct {
	Entries       []LogEntry
	Interventions []InterventionRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace() *RunTrace {
	return &RunTrace{
		Entries:       make([]LogEntry, 0),
		Interventions: make([]InterventionRecord, 0),
	}
}

// RecordEntry appends a log snapshot.
func (rt *RunTrace) RecordEntry(e LogEntry) {
	rt.Entries = append(rt.Entries, e)
}

// RecordIntervention appends an intervention record.
func (rt *RunTrace) RecordIntervention(r InterventionRecord) {
	rt.Interventions = append(rt.Interventions, r)
}
