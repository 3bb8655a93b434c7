package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-geode/internal/config"
	"github.com/napolitain/solver-geode/internal/loader"
	"github.com/napolitain/solver-geode/internal/logger"
	"github.com/napolitain/solver-geode/internal/models"
	"github.com/napolitain/solver-geode/internal/solver"
	"github.com/napolitain/solver-geode/internal/solver/geode"
)

// exampleBlueprints are used when no input file is given
const exampleBlueprints = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.`

var (
	configFile string
	quiet      bool
	verbose    bool
	flagCfg    = config.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geode [flags]",
		Short: "Geode Build Order Solver",
		Long: `A branch-and-bound solver that finds the bot build order
collecting the most geodes within a fixed number of steps.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolver,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&flagCfg.Input, "input", "i", "", "Blueprint file (\"-\" for stdin, default: built-in examples)")
	flags.StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	flags.IntVarP(&flagCfg.Horizon, "horizon", "t", flagCfg.Horizon, "Number of steps")
	flags.IntVarP(&flagCfg.Workers, "workers", "w", 0, "Parallel blueprints (0 = one per CPU)")
	flags.StringVar(&flagCfg.Order, "order", flagCfg.Order, "Search order: dfs or bfs")
	flags.BoolVar(&flagCfg.Memoize, "memo", false, "Skip states already expanded")
	flags.BoolVar(&flagCfg.NoBound, "no-bound", false, "Disable upper-bound pruning")
	flags.IntVar(&flagCfg.MaxStates, "max-states", 0, "Abort a blueprint after this many expanded states (0 = unlimited)")
	flags.IntVarP(&flagCfg.TopN, "top", "n", 0, "Only solve the first N blueprints (0 = all)")
	flags.BoolVar(&flagCfg.ShowPath, "path", false, "Show the best build order of each blueprint")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every improvement of the best yield")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runSolver(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	if quiet {
		logger.Discard()
	} else {
		logger.Banner("")
	}

	blueprints, err := readInput(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.TopN > 0 {
		blueprints = solver.FirstN(blueprints, cfg.TopN)
	}
	logger.Info("LOAD", "%d blueprints, horizon %d, %s search", len(blueprints), cfg.Horizon, opts.Order)

	if verbose {
		opts.Observer = geode.ObserverFunc(func(bp *models.Blueprint, best int, s geode.State) {
			logger.Info("SEARCH", "blueprint %d: %d geodes with %d steps left", bp.ID, best, s.TimeLeft)
		})
	}

	started := time.Now()
	results, err := solver.SolveAll(cmd.Context(), blueprints, cfg.Horizon, opts, cfg.Workers)
	if err != nil {
		return err
	}
	logger.Success("SOLVE", "%d blueprints in %s", len(results), time.Since(started).Round(time.Millisecond))

	if quiet {
		fmt.Println(solver.QualityLevel(results), solver.GeodeProduct(results))
		return nil
	}

	printResults(results)
	if cfg.ShowPath {
		for _, r := range results {
			printPath(r)
		}
	}
	printSummary(results)
	return nil
}

// resolveConfig loads the config file, then applies flags given explicitly
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile == "" {
		return flagCfg, nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = flagCfg.Input
	}
	if flags.Changed("horizon") {
		cfg.Horizon = flagCfg.Horizon
	}
	if flags.Changed("workers") {
		cfg.Workers = flagCfg.Workers
	}
	if flags.Changed("order") {
		cfg.Order = flagCfg.Order
	}
	if flags.Changed("memo") {
		cfg.Memoize = flagCfg.Memoize
	}
	if flags.Changed("no-bound") {
		cfg.NoBound = flagCfg.NoBound
	}
	if flags.Changed("max-states") {
		cfg.MaxStates = flagCfg.MaxStates
	}
	if flags.Changed("top") {
		cfg.TopN = flagCfg.TopN
	}
	if flags.Changed("path") {
		cfg.ShowPath = flagCfg.ShowPath
	}
	return cfg, nil
}

func readInput(path string) ([]*models.Blueprint, error) {
	switch path {
	case "":
		return loader.ParseBlueprints(exampleBlueprints)
	case "-":
		return loader.ReadBlueprints(os.Stdin)
	default:
		return loader.LoadBlueprints(path)
	}
}
