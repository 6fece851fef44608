package results

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/classroom-sim/classroom-sim/sim/trace"
)

const schema = `
CREATE TABLE IF NOT EXISTS log_entries (
	timestamp       INTEGER NOT NULL,
	student_count   INTEGER NOT NULL,
	co2             REAL NOT NULL,
	temperature     REAL NOT NULL,
	humidity        REAL NOT NULL,
	noise           REAL NOT NULL,
	light           REAL NOT NULL,
	occupancy_ratio REAL NOT NULL,
	fan_on          INTEGER NOT NULL,
	ac_on           INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS interventions (
	timestamp   INTEGER NOT NULL,
	co2         REAL NOT NULL,
	temperature REAL NOT NULL,
	action      TEXT NOT NULL
);
`

// WriteSQLite persists the whole trace into a SQLite database at path,
// creating the schema when needed. All rows go in one transaction.
func WriteSQLite(path string, rt *trace.RunTrace) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening results db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating results schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting results transaction: %w", err)
	}
	defer tx.Rollback()

	insertEntry, err := tx.Prepare(`INSERT INTO log_entries
		(timestamp, student_count, co2, temperature, humidity, noise, light, occupancy_ratio, fan_on, ac_on)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing log insert: %w", err)
	}
	defer insertEntry.Close()
	for _, e := range rt.Entries {
		if _, err := insertEntry.Exec(e.Clock, e.StudentCount, e.CO2, e.Temperature,
			e.Humidity, e.Noise, e.Light, e.OccupancyRatio, e.FanOn, e.ACOn); err != nil {
			return fmt.Errorf("inserting log entry at %dmin: %w", e.Clock, err)
		}
	}

	insertIntervention, err := tx.Prepare(`INSERT INTO interventions
		(timestamp, co2, temperature, action) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing intervention insert: %w", err)
	}
	defer insertIntervention.Close()
	for _, r := range rt.Interventions {
		if _, err := insertIntervention.Exec(r.Clock, r.CO2, r.Temperature, string(r.Action)); err != nil {
			return fmt.Errorf("inserting intervention at %dmin: %w", r.Clock, err)
		}
	}

	return tx.Commit()
}
