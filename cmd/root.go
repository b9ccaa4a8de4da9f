package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ivokostovski/elevator-exercise/sim"
	"github.com/ivokostovski/elevator-exercise/sim/trace"
	"github.com/ivokostovski/elevator-exercise/sim/workload"
)

var (
	// Building and timing
	configPath    string // Path to a building config YAML
	presetName    string // Named building preset from defaults.yaml
	defaultsPath  string // Path to defaults.yaml
	numFloors     int    // Number of floors
	numElevators  int    // Number of elevators
	maxPassengers int    // Car capacity
	tickMs        int64  // Simulated ms per tick

	// Run control
	seed              int64  // Seed for passenger and call generation
	simulationHorizon int64  // Total simulated time (ms)
	logLevel          string // Log verbosity level
	scenarioPath      string // Scripted events YAML
	randomCalls       bool   // Generate random hall calls
	callProcess       string // Random call arrival process
	traceLevel        string // Decision trace level
	summarizeTrace    bool   // Print trace summary after the run
	renderEvery       int    // Render the building every N ticks (0 = never)
	realtime          bool   // Drive the controller from wall-clock timers
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "elevator-sim",
	Short: "Tick-driven simulator for multi-elevator buildings",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the elevator simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (expected none or decisions)", traceLevel)
		}
		if !workload.IsValidProcess(callProcess) {
			logrus.Fatalf("Invalid call process %q (expected uniform or poisson)", callProcess)
		}

		var scenario *workload.Scenario
		if scenarioPath != "" {
			scenario, err = workload.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario: %v", err)
			}
		}

		engine := sim.NewEngine(cfg, sim.NewSimulationKey(seed))
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			engine.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
			logrus.Infof("Tracing dispatch decisions, run id %s", engine.Trace.RunID)
		}

		logrus.Infof("Starting simulation: %d floors, %d elevators, tick=%dms, horizon=%dms, seed=%d",
			cfg.NumberOfFloors, cfg.NumberOfElevators, cfg.TickInterval, simulationHorizon, seed)
		startTime := time.Now()

		var final sim.BuildingState
		if realtime {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			final, err = runRealtime(ctx, engine, scenario, os.Stdin, os.Stdout)
			if err != nil {
				logrus.Fatalf("Realtime run failed: %v", err)
			}
		} else {
			s := buildSimulator(engine, scenario)
			s.Run()
			final = s.State
		}

		engine.Metrics.Print(len(final.ElevatorCallQueue))
		if engine.Trace != nil && summarizeTrace {
			printTraceSummary(os.Stdout, trace.Summarize(engine.Trace))
		}
		logrus.Infof("Simulation complete in %v wall time.", time.Since(startTime))
	},
}

// resolveConfig layers the building config: built-in defaults, then a preset or a
// config file, then any explicitly set flags. The result is validated.
func resolveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	switch {
	case configPath != "" && presetName != "":
		return cfg, fmt.Errorf("--config and --preset are mutually exclusive")
	case configPath != "":
		loaded, err := sim.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	case presetName != "":
		preset, err := LoadPreset(defaultsPath, presetName)
		if err != nil {
			return cfg, err
		}
		cfg = preset
	}

	// Explicit flags win over file values
	if cmd.Flags().Changed("floors") {
		cfg.NumberOfFloors = numFloors
	}
	if cmd.Flags().Changed("elevators") {
		cfg.NumberOfElevators = numElevators
	}
	if cmd.Flags().Changed("max-passengers") {
		cfg.MaxPassengers = maxPassengers
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickInterval = tickMs
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid building config: %w", err)
	}
	return cfg, nil
}

// buildSimulator creates a batch simulator with scripted and random calls scheduled.
func buildSimulator(engine *sim.Engine, scenario *workload.Scenario) *sim.Simulator {
	s := sim.NewSimulator(engine, simulationHorizon)
	if scenario != nil {
		for _, ev := range scenario.SimEvents() {
			s.Schedule(ev)
		}
	}
	if randomCalls {
		gen := newCallGenerator(engine)
		for _, ev := range gen.GenerateCalls(engine.Clock, simulationHorizon) {
			s.Schedule(ev)
		}
	}
	if renderEvery > 0 {
		var ticks int
		s.OnTick = func(clock int64, state sim.BuildingState) {
			ticks++
			if ticks%renderEvery == 0 {
				renderBuilding(os.Stdout, clock, state)
			}
		}
	}
	return s
}

func newCallGenerator(engine *sim.Engine) *workload.CallGenerator {
	cfg := engine.Config
	sampler := workload.NewIntervalSampler(callProcess, cfg.RandomCallIntervalMin, cfg.RandomCallIntervalMax)
	return workload.NewCallGenerator(engine.RNG().ForSubsystem(sim.SubsystemCalls), sampler, cfg.NumberOfFloors)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addRunFlags registers the run flags on cmd, resetting their variables to defaults.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for passenger and random call generation")
	cmd.Flags().Int64Var(&simulationHorizon, "horizon", 600_000, "Total simulation horizon (in simulated ms)")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Building configs
	cmd.Flags().StringVar(&configPath, "config", "", "Path to building config YAML")
	cmd.Flags().StringVar(&presetName, "preset", "", "Named building preset from defaults.yaml")
	cmd.Flags().StringVar(&defaultsPath, "defaults", "defaults.yaml", "Path to defaults.yaml")
	cmd.Flags().IntVar(&numFloors, "floors", 10, "Number of floors")
	cmd.Flags().IntVar(&numElevators, "elevators", 4, "Number of elevators")
	cmd.Flags().IntVar(&maxPassengers, "max-passengers", 8, "Maximum passengers per elevator")
	cmd.Flags().Int64Var(&tickMs, "tick", 100, "Simulated ms per tick")

	// Inputs
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scripted events YAML")
	cmd.Flags().BoolVar(&randomCalls, "random-calls", true, "Generate random hall calls")
	cmd.Flags().StringVar(&callProcess, "call-process", "uniform", "Random call arrival process (uniform, poisson)")

	// Output
	cmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	cmd.Flags().BoolVar(&summarizeTrace, "summarize-trace", true, "Print trace summary after the run (requires --trace decisions)")
	cmd.Flags().IntVar(&renderEvery, "render-every", 0, "Render the building every N ticks (0 disables)")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Run against the wall clock and read commands from stdin")
}

// init sets up CLI flags and subcommands
func init() {
	addRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
