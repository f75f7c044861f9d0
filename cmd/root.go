package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/shopfloor-sim/shopfloor-sim/sim"
	"github.com/shopfloor-sim/shopfloor-sim/sim/trace"
)

var (
	// CLI flags for shop configuration
	seed             int64   // Seed for the partitioned RNG
	numMachines      int     // Number of production machines
	partMean         float64 // Mean part processing time (sim-minutes)
	partSigma        float64 // Std dev of part processing time
	mttf             float64 // Mean time to failure (sim-minutes)
	repairDuration   float64 // Fixed repair time (sim-minutes)
	otherJobDuration float64 // Background job duration (sim-minutes)
	logCapacity      int     // Event log ring size

	// CLI flags for the headless driver
	horizon      float64 // Total simulated time (sim-minutes)
	step         float64 // Tick size (sim-minutes)
	logLevel     string  // Log verbosity level
	scenarioPath string  // Optional YAML scenario file
	traceOut     string  // Optional JSONL transition trace output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "shopfloor-sim",
	Short: "Tick-driven discrete-event simulator of a machine shop",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the shop-floor simulation headlessly",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			NumMachines:       numMachines,
			PartMean:          partMean,
			PartSigma:         partSigma,
			MeanTimeToFailure: mttf,
			RepairDuration:    repairDuration,
			OtherJobDuration:  otherJobDuration,
			Seed:              seed,
			LogCapacity:       logCapacity,
		}

		// A scenario file supplies the configuration; flags the user set
		// explicitly still win over the file.
		if scenarioPath != "" {
			scenario, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
			cfg = overlayFlags(cmd, scenario)
			if scenario.Horizon > 0 && !cmd.Flags().Changed("horizon") {
				horizon = scenario.Horizon
			}
			if scenario.Step > 0 && !cmd.Flags().Changed("step") {
				step = scenario.Step
			}
		}

		logrus.Infof("Starting simulation with %d machines, horizon=%.1f, mttf=%.1f, seed=%d",
			cfg.NumMachines, horizon, cfg.MeanTimeToFailure, cfg.Seed)

		startTime := time.Now()

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("unable to initialize simulation: %v", err)
		}

		var tr *trace.SimulationTrace
		if traceOut != "" {
			tr = trace.NewSimulationTrace()
			s.AttachTrace(tr)
		}

		if err := s.Run(horizon, step); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		s.Metrics.Print(s.Clock)
		logrus.Infof("Wall-clock time: %v", time.Since(startTime))

		if tr != nil {
			if err := writeTrace(tr, traceOut); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
			summary := trace.Summarize(tr)
			logrus.Infof("Trace: %d transitions, mean repair wait %.2f sim-minutes",
				summary.TotalTransitions, summary.MeanRepairWait)
		}

		logrus.Info("Simulation complete.")
	},
}

// overlayFlags merges a scenario file with any explicitly set flags.
func overlayFlags(cmd *cobra.Command, scenario *sim.Scenario) sim.Config {
	cfg := scenario.Config()
	flags := cmd.Flags()
	if flags.Changed("machines") {
		cfg.NumMachines = numMachines
	}
	if flags.Changed("part-mean") {
		cfg.PartMean = partMean
	}
	if flags.Changed("part-sigma") {
		cfg.PartSigma = partSigma
	}
	if flags.Changed("mttf") {
		cfg.MeanTimeToFailure = mttf
	}
	if flags.Changed("repair-duration") {
		cfg.RepairDuration = repairDuration
	}
	if flags.Changed("other-job-duration") {
		cfg.OtherJobDuration = otherJobDuration
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-capacity") {
		cfg.LogCapacity = logCapacity
	}
	return cfg
}

// writeTrace dumps the transition trace as JSON Lines.
func writeTrace(tr *trace.SimulationTrace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tr.WriteJSONL(f)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic random variates")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Shop configuration
	runCmd.Flags().IntVar(&numMachines, "machines", 10, "Number of production machines")
	runCmd.Flags().Float64Var(&partMean, "part-mean", 10.0, "Mean part processing time in sim-minutes")
	runCmd.Flags().Float64Var(&partSigma, "part-sigma", 2.0, "Std dev of part processing time")
	runCmd.Flags().Float64Var(&mttf, "mttf", 300.0, "Mean time to failure in sim-minutes")
	runCmd.Flags().Float64Var(&repairDuration, "repair-duration", 30.0, "Time to repair a machine in sim-minutes")
	runCmd.Flags().Float64Var(&otherJobDuration, "other-job-duration", 30.0, "Duration of the repairman's background jobs")
	runCmd.Flags().IntVar(&logCapacity, "log-capacity", sim.DefaultLogCapacity, "Number of recent event log entries retained")

	// Driver configuration
	runCmd.Flags().Float64Var(&horizon, "horizon", 4.0*7*24*60, "Total simulated time in sim-minutes")
	runCmd.Flags().Float64Var(&step, "step", 1.0, "Tick size in sim-minutes")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (flags override its values)")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write a JSONL transition trace to this path")

	rootCmd.AddCommand(runCmd)
}
