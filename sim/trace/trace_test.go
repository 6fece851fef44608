package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunTrace_StartsEmpty(t *testing.T) {
	rt := NewRunTrace()
	assert.Empty(t, rt.Entries)
	assert.Empty(t, rt.Interventions)
}

func TestRunTrace_AppendsInOrder(t *testing.T) {
	rt := NewRunTrace()
	rt.RecordEntry(LogEntry{Clock: 0, CO2: 400})
	rt.RecordEntry(LogEntry{Clock: 1, CO2: 410})
	rt.RecordIntervention(InterventionRecord{Clock: 0, Action: ActionNone})
	rt.RecordIntervention(InterventionRecord{Clock: 5, Action: ActionSendAlert})

	assert.Len(t, rt.Entries, 2)
	assert.Equal(t, int64(0), rt.Entries[0].Clock)
	assert.Equal(t, int64(1), rt.Entries[1].Clock)

	assert.Len(t, rt.Interventions, 2)
	assert.Equal(t, ActionSendAlert, rt.Interventions[1].Action)
}

func TestRunTrace_EntriesAreCopies(t *testing.T) {
	rt := NewRunTrace()
	e := LogEntry{Clock: 0, CO2: 400}
	rt.RecordEntry(e)
	e.CO2 = 9000
	assert.Equal(t, 400.0, rt.Entries[0].CO2)
}
