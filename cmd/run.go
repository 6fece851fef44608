package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classroom-sim/classroom-sim/classifier"
	"github.com/classroom-sim/classroom-sim/results"
	"github.com/classroom-sim/classroom-sim/sim"
)

var (
	seed             int64  // Seed for environment jitter
	durationMinutes  int64  // Overrides the configured simulation duration when positive
	logLevel         string // Log verbosity level
	configPath       string // Simulation config YAML (defaults used when empty)
	schedulePath     string // Day schedule YAML (built-in school day when empty)
	modelPath        string // Trained classifier model file
	classifierKind   string // forest or threshold
	outputCSV        string // Log CSV destination (skipped when empty)
	interventionsCSV string // Interventions CSV destination (skipped when empty)
	outputDB         string // SQLite destination (skipped when empty)
)

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the classroom simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		if configPath != "" {
			cfg, err = sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
		}
		if durationMinutes > 0 {
			cfg.DurationMinutes = durationMinutes
		}

		day := sim.DefaultSchoolDay()
		if schedulePath != "" {
			day, err = sim.LoadSchedule(schedulePath)
			if err != nil {
				logrus.Fatalf("Failed to load schedule: %v", err)
			}
		}

		clf := buildClassifier(cfg)

		logrus.Infof("Starting simulation: duration=%dmin, monitor every %dmin, capacity=%d, seed=%d",
			cfg.DurationMinutes, cfg.MonitorIntervalMinutes, cfg.RoomCapacity, seed)

		s, err := sim.NewSimulator(cfg, day, clf, seed)
		if err != nil {
			logrus.Fatalf("Failed to initialize simulation: %v", err)
		}

		startTime := time.Now()
		runErr := s.Run()

		// Flush whatever was collected, even after a halted run.
		writeOutputs(s)

		s.Metrics.Print()
		logrus.Infof("Wall-clock time: %v", time.Since(startTime))

		if runErr != nil {
			logrus.Fatalf("Simulation failed: %v", runErr)
		}
		logrus.Info("Simulation complete.")
	},
}

// buildClassifier resolves the --classifier flag. A missing or unusable
// model is fatal before the run starts; there is no silent always-conducive
// fallback.
func buildClassifier(cfg *sim.Config) classifier.Classifier {
	switch classifierKind {
	case "forest":
		if modelPath == "" {
			logrus.Fatalf("--model is required with the forest classifier; train one with `classroom-sim train`")
		}
		f, err := classifier.Load(modelPath)
		if err != nil {
			logrus.Fatalf("Unusable classifier model: %v", err)
		}
		return f
	case "threshold":
		return &classifier.ThresholdClassifier{
			CO2Max:   cfg.Thresholds.CO2Max,
			TempMin:  cfg.Thresholds.TempMin,
			TempMax:  cfg.Thresholds.TempMax,
			NoiseMax: cfg.Thresholds.NoiseMax,
			LightMin: cfg.Thresholds.LightMin,
		}
	default:
		logrus.Fatalf("Unknown classifier %q; valid: forest, threshold", classifierKind)
		return nil
	}
}

func writeOutputs(s *sim.Simulator) {
	tr := s.RunState.Trace
	if outputCSV != "" {
		if err := results.WriteLogCSV(outputCSV, tr.Entries); err != nil {
			logrus.Errorf("Failed to write log CSV: %v", err)
		} else {
			logrus.Infof("Log written to %s", outputCSV)
		}
	}
	if interventionsCSV != "" {
		if err := results.WriteInterventionsCSV(interventionsCSV, tr.Interventions); err != nil {
			logrus.Errorf("Failed to write interventions CSV: %v", err)
		} else {
			logrus.Infof("Interventions written to %s", interventionsCSV)
		}
	}
	if outputDB != "" {
		if err := results.WriteSQLite(outputDB, tr); err != nil {
			logrus.Errorf("Failed to write results db: %v", err)
		} else {
			logrus.Infof("Results written to %s", outputDB)
		}
	}
}

// init sets up CLI flags and attaches `run` to `root`
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for environment jitter")
	runCmd.Flags().Int64Var(&durationMinutes, "duration", 0, "Simulation duration in minutes (0 = use config)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Path to simulation config YAML (defaults when empty)")
	runCmd.Flags().StringVar(&schedulePath, "schedule", "", "Path to day schedule YAML (built-in school day when empty)")

	runCmd.Flags().StringVar(&classifierKind, "classifier", "forest", "Classifier to use (forest, threshold)")
	runCmd.Flags().StringVar(&modelPath, "model", "", "Path to trained classifier model (required for forest)")

	runCmd.Flags().StringVar(&outputCSV, "output-csv", "", "Write the run log CSV here")
	runCmd.Flags().StringVar(&interventionsCSV, "interventions-csv", "", "Write the intervention history CSV here")
	runCmd.Flags().StringVar(&outputDB, "output-db", "", "Write the run results to this SQLite database")

	rootCmd.AddCommand(runCmd)
}
