// Package results persists a finished run's trace. It runs strictly after
// the simulation loop and consumes the log and intervention sequences
// verbatim.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

var logHeader = []string{
	"timestamp", "student_count", "co2", "temperature", "humidity",
	"noise", "light", "occupancy_ratio", "fan_on", "ac_on",
}

// WriteLogCSV writes one row per log entry, in recorded order.
func WriteLogCSV(path string, entries []trace.LogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating log csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logHeader); err != nil {
		return fmt.Errorf("writing log csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			strconv.FormatInt(e.Clock, 10),
			strconv.Itoa(e.StudentCount),
			formatFloat(e.CO2),
			formatFloat(e.Temperature),
			formatFloat(e.Humidity),
			formatFloat(e.Noise),
			formatFloat(e.Light),
			formatFloat(e.OccupancyRatio),
			strconv.FormatBool(e.FanOn),
			strconv.FormatBool(e.ACOn),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing log csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

var interventionHeader = []string{"time", "co2", "temperature", "action"}

// WriteInterventionsCSV writes one row per intervention record, in recorded
// order. Conducive ticks appear with an empty action.
func WriteInterventionsCSV(path string, recs []trace.InterventionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating interventions csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(interventionHeader); err != nil {
		return fmt.Errorf("writing interventions csv header: %w", err)
	}
	for _, r := range recs {
		row := []string{
			strconv.FormatInt(r.Clock, 10),
			formatFloat(r.CO2),
			formatFloat(r.Temperature),
			string(r.Action),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing interventions csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
