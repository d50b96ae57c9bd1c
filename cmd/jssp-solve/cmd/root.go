// Package cmd implements the jssp-solve command line: flag parsing, solver
// dispatch, and the §7 exit code contract.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/jssp"
	"github.com/nvollmar/jssp-heuristics/jssplog"
	"github.com/nvollmar/jssp-heuristics/render"
)

var (
	instancePath string
	solverName   string
	timeoutSecs  float64
	seed         uint64
	saRatio      float64
	saDelta      float64
	format       string

	exitCode int
	logger   jssplog.Logger
)

// rootCmd is the single command this binary exposes: there is no verb, only
// flags, mirroring a solver driver that does one thing per invocation.
var rootCmd = &cobra.Command{
	Use:   "jssp-solve",
	Short: "Solve a job-shop scheduling instance and print the resulting schedule",
	Long: `jssp-solve reads a job-shop scheduling instance, runs one of the
available constructive heuristics or metaheuristics against it, and prints
the resulting Cmax and per-job start times on stdout.`,
	Example: `  jssp-solve --instance ft06.txt --solver tabu-search --timeout 5 --seed 42
  jssp-solve --instance ft06.txt --solver simulated-annealing --timeout 5 --seed 42 \
    --sa-start-acceptance-ratio 0.5 --sa-delta 0.1
  jssp-solve --instance ft06.txt --solver priority-spt --timeout 0 --seed 0 --format pretty`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&instancePath, "instance", "", "path to the instance file (required)")
	rootCmd.Flags().StringVar(&solverName, "solver", "", "solver to run (required): "+solverNamesHelp())
	rootCmd.Flags().Float64Var(&timeoutSecs, "timeout", 0, "wall-clock timeout in seconds for timeout-driven solvers (required)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed (required)")
	rootCmd.Flags().Float64Var(&saRatio, "sa-start-acceptance-ratio", 0, "simulated annealing: initial acceptance ratio (required for --solver simulated-annealing)")
	rootCmd.Flags().Float64Var(&saDelta, "sa-delta", 0, "simulated annealing: cooling delta parameter (required for --solver simulated-annealing)")
	rootCmd.Flags().StringVar(&format, "format", "plain", "output format: plain (the §6 contract, machine-parseable) or pretty (adds a Gantt view on stderr)")

	_ = rootCmd.MarkFlagRequired("instance")
	_ = rootCmd.MarkFlagRequired("solver")
	_ = rootCmd.MarkFlagRequired("timeout")
	_ = rootCmd.MarkFlagRequired("seed")
}

// Execute runs the root command, capturing any reported error's exit code
// for main to relay via os.Exit (cobra itself never calls os.Exit).
func Execute() {
	logger = jssplog.FromEnv()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jssp-solve:", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
}

// ExitCode returns the process exit code Execute determined: 0 on success,
// 1 on a file/parse error, 2 on a verification failure.
func ExitCode() int {
	return exitCode
}

func run(cmd *cobra.Command, args []string) error {
	if solverName == "simulated-annealing" {
		if !cmd.Flags().Changed("sa-start-acceptance-ratio") || !cmd.Flags().Changed("sa-delta") {
			exitCode = 1
			return fmt.Errorf("--solver simulated-annealing requires --sa-start-acceptance-ratio and --sa-delta")
		}
	}

	f, err := os.Open(instancePath)
	if err != nil {
		exitCode = 1
		return fmt.Errorf("opening instance file: %w", err)
	}
	defer f.Close()

	inst, err := instance.Parse(f)
	if err != nil {
		exitCode = 1
		return err
	}

	timeout := time.Duration(timeoutSecs * float64(time.Second))
	sol, err := solve(inst, solverName, timeout)
	if err != nil {
		exitCode = 1
		return err
	}

	if err := instance.Verify(inst, sol); err != nil {
		exitCode = 2
		return err
	}

	if err := instance.Write(os.Stdout, inst, sol); err != nil {
		exitCode = 1
		return fmt.Errorf("writing solution: %w", err)
	}

	if format == "pretty" {
		if err := render.Gantt(os.Stderr, inst, sol); err != nil {
			logger.Warn("rendering pretty view: %v", err)
		}
	}

	return nil
}

// solve dispatches solverName to its implementation. Priority dispatchers
// and the sequential baseline are deterministic and ignore timeout/seed;
// hill-climber starts from the priority-sps schedule and ignores both; the
// remaining solvers are seeded and run under timeout.
func solve(inst instance.Instance, solverName string, timeout time.Duration) (instance.Solution, error) {
	switch solverName {
	case "sequential":
		return jssp.FindSolutionSequential(inst), nil
	case "priority-sps":
		return jssp.FindSolutionSPS(inst), nil
	case "priority-lps":
		return jssp.FindSolutionLPS(inst), nil
	case "priority-spt":
		return jssp.FindSolutionSPT(inst), nil
	case "priority-lpt":
		return jssp.FindSolutionLPT(inst), nil
	case "priority-lwrm":
		return jssp.FindSolutionLWRM(inst), nil
	case "priority-mwrm":
		return jssp.FindSolutionMWRM(inst), nil
	case "hill-climber":
		// Mirrors the reference driver: hill climbing starts from the
		// deterministic priority-sps schedule, not a random one.
		state, err := jssp.HillClimb(inst, jssp.FindSolutionSPS(inst))
		if err != nil {
			return instance.Solution{}, err
		}
		return state.ToSolution(), nil
	case "random-restart-hill-climber":
		state, err := jssp.RandomRestartHillClimb(inst, jssp.RestartConfig{Timeout: timeout, Seed: seed, Logger: logger})
		if err != nil {
			return instance.Solution{}, err
		}
		return state.ToSolution(), nil
	case "tabu-search":
		state, err := jssp.TabuSearch(inst, jssp.RestartConfig{Timeout: timeout, Seed: seed, Logger: logger})
		if err != nil {
			return instance.Solution{}, err
		}
		return state.ToSolution(), nil
	case "simulated-annealing":
		state, err := jssp.SimulatedAnneal(inst, jssp.SAConfig{
			Timeout:              timeout,
			Seed:                 seed,
			StartAcceptanceRatio: saRatio,
			Delta:                saDelta,
			Logger:               logger,
		})
		if err != nil {
			return instance.Solution{}, err
		}
		return state.ToSolution(), nil
	default:
		return instance.Solution{}, fmt.Errorf("unknown solver %q (valid: %s)", solverName, solverNamesHelp())
	}
}

func solverNamesHelp() string {
	return "hill-climber, random-restart-hill-climber, tabu-search, simulated-annealing, " +
		"priority-sps, priority-lps, priority-spt, priority-lpt, priority-lwrm, priority-mwrm, sequential"
}
