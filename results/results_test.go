package results

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

func sampleTrace() *trace.RunTrace {
	rt := trace.NewRunTrace()
	rt.RecordEntry(trace.LogEntry{
		Clock: 0, StudentCount: 0, CO2: 400, Temperature: 22, Humidity: 50,
		Noise: 40, Light: 500, OccupancyRatio: 0,
	})
	rt.RecordEntry(trace.LogEntry{
		Clock: 1, StudentCount: 30, CO2: 412.5, Temperature: 22.1, Humidity: 50,
		Noise: 63.2, Light: 500, OccupancyRatio: 1, FanOn: true,
	})
	rt.RecordIntervention(trace.InterventionRecord{Clock: 0, CO2: 400, Temperature: 22, Action: trace.ActionNone})
	rt.RecordIntervention(trace.InterventionRecord{Clock: 5, CO2: 1050, Temperature: 24, Action: trace.ActionActivateVentilation})
	return rt
}

func TestWriteLogCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	rt := sampleTrace()
	require.NoError(t, WriteLogCSV(path, rt.Entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,student_count,co2,temperature,humidity,noise,light,occupancy_ratio,fan_on,ac_on", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,0,400.0000,"))
	assert.Contains(t, lines[2], "true")
}

func TestWriteInterventionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interventions.csv")
	rt := sampleTrace()
	require.NoError(t, WriteInterventionsCSV(path, rt.Interventions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,co2,temperature,action", lines[0])
	assert.Contains(t, lines[2], "activate_ventilation")
	// conducive tick keeps its empty action column
	assert.True(t, strings.HasSuffix(lines[1], ","))
}

func TestWriteSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	rt := sampleTrace()
	require.NoError(t, WriteSQLite(path, rt))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var entries int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log_entries").Scan(&entries))
	assert.Equal(t, 2, entries)

	var interventions int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM interventions").Scan(&interventions))
	assert.Equal(t, 2, interventions)

	var co2 float64
	var action string
	require.NoError(t, db.QueryRow(
		"SELECT co2, action FROM interventions WHERE timestamp = 5").Scan(&co2, &action))
	assert.Equal(t, 1050.0, co2)
	assert.Equal(t, "activate_ventilation", action)

	var fanOn bool
	require.NoError(t, db.QueryRow(
		"SELECT fan_on FROM log_entries WHERE timestamp = 1").Scan(&fanOn))
	assert.True(t, fanOn)
}

func TestWriteSQLite_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	rt := sampleTrace()
	require.NoError(t, WriteSQLite(path, rt))
	require.NoError(t, WriteSQLite(path, rt))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var entries int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log_entries").Scan(&entries))
	assert.Equal(t, 4, entries)
}
