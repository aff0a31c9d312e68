package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/config"
	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/search"
	"github.com/vovakirdan/arcade-pathfinder/internal/storage"
)

var (
	flagPreset         string
	flagTimeout        uint64
	flagBatch          int
	flagWeight         float64
	flagAlwaysShift    bool
	flagSimpleGeometry bool
	flagAllowDamage    bool
	flagMoves          string
	flagDumpDir        string
	flagJSON           bool
)

var searchCmd = &cobra.Command{
	Use:   "search <dir>",
	Short: "Find a path for a problem directory",
	Long: `Load settings.json, initial_state.json, target_state.json and
static_state.json from dir and search for an input sequence that brings
the avatar within 16 units of the target.

Flags override the settings document, and the config file overrides are
applied before the flags. When damage is tracked, the starting health is
bisected afterwards to find the cheapest path. When no path is found the
problem is dumped into a fresh directory.

Presets:
  fast       - heavy heuristic, coarse states, 2s timeout
  benchmark  - default weight, coarse states, no timeout
  precise    - unit weight, exact states, 30s timeout

Examples:
  pathfinder search ./problem
  pathfinder search ./problem --preset precise
  pathfinder search ./problem --timeout 10 --weight 1.5
  pathfinder search ./problem --moves NONE,A,D,W --json`,
	Args:        cobra.ExactArgs(1),
	RunE:        runSearch,
	Annotations: roundsValues,
}

func init() {
	addSettingsFlags(searchCmd)
	searchCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

// addSettingsFlags registers the flags applyFlags reads.
func addSettingsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagPreset, "preset", "", "Settings preset: fast, benchmark, precise")
	f.Uint64Var(&flagTimeout, "timeout", 0, "Timeout in seconds (0 = none)")
	f.IntVar(&flagBatch, "batch", 0, "States expanded per round")
	f.Float64Var(&flagWeight, "weight", 0, "Heuristic weight")
	f.BoolVar(&flagAlwaysShift, "always-shift", false, "Always hold shift")
	f.BoolVar(&flagSimpleGeometry, "simple-geometry", false, "Deduplicate states on coarse coordinates")
	f.BoolVar(&flagAllowDamage, "allow-damage", false, "Track damage zones")
	f.StringVar(&flagMoves, "moves", "", "Comma-separated allowed moves (empty = all)")
	f.StringVar(&flagDumpDir, "dump-dir", "", "Where to dump unsolved problems (default from config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	b, err := encoding.LoadDir(dir)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &b.Settings); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sol, err := solve(ctx, dir, b)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(sol)
	}
	printSolution(dir, sol)
	return nil
}

// applyFlags writes config overrides and then explicitly set flags into s.
func applyFlags(cmd *cobra.Command, s *physics.SearchSettings) error {
	if err := appCfg.Search.Apply(s); err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("preset") {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		if err := config.ApplyPreset(s, p); err != nil {
			return err
		}
	}
	if f.Changed("timeout") {
		s.Timeout = flagTimeout
	}
	if f.Changed("batch") {
		s.StateBatchSize = flagBatch
	}
	if f.Changed("weight") {
		s.HeuristicWeight = flagWeight
	}
	if f.Changed("always-shift") {
		s.AlwaysShift = flagAlwaysShift
	}
	if f.Changed("simple-geometry") {
		s.SimpleGeometry = flagSimpleGeometry
	}
	if f.Changed("allow-damage") {
		s.AllowDamage = flagAllowDamage
	}
	if f.Changed("moves") {
		moves, err := physics.ParseMoves(flagMoves)
		if err != nil {
			return err
		}
		s.AllowedMoves = moves
	}
	return s.Validate()
}

// solution is what a search command reports.
type solution struct {
	Source string           `json:"source"`
	Mode   physics.GameMode `json:"mode"`
	Result search.Result    `json:"result"`
	Health float64          `json:"health"`
	RunID  string           `json:"run_id,omitempty"`
	Dumped string           `json:"dumped,omitempty"`
}

// solve runs the search with damage optimisation, records the run and dumps
// the problem when no path is found.
func solve(ctx context.Context, source string, b encoding.Bundle) (solution, error) {
	b.SyncSettings()

	engine := search.New(search.Config{Workers: appCfg.Engine.Workers, Logger: logger})
	res, health := engine.MinimizeDamage(ctx, b.Settings, b.Initial, b.Target, b.Static,
		appCfg.Damage.OptimizationLevel, appCfg.Damage.OptimizationTimeout)

	sol := solution{Source: source, Mode: b.Settings.Mode, Result: res, Health: health}

	if appCfg.Storage.Enabled {
		id, err := recordRun(sol)
		if err != nil {
			logger.Warn("run not recorded", "err", err)
		}
		sol.RunID = id
	}

	if !res.Found() && appCfg.Dump.OnFailure {
		root := appCfg.Dump.Dir
		if flagDumpDir != "" {
			root = flagDumpDir
		}
		dumped, err := encoding.Dump(root, b)
		if err != nil {
			return sol, fmt.Errorf("path not found and dump failed: %w", err)
		}
		logger.Info("path not found, problem saved", "dir", dumped)
		sol.Dumped = dumped
	}
	return sol, nil
}

func recordRun(sol solution) (string, error) {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		return "", err
	}
	defer store.Close()

	st := sol.Result.Stats
	return store.SaveRun(storage.Run{
		Source:   sol.Source,
		Mode:     string(sol.Mode),
		Found:    sol.Result.Found(),
		PathLen:  len(sol.Result.Path),
		Rounds:   st.Rounds,
		Expanded: st.Expanded,
		Visited:  st.Visited,
		Elapsed:  st.Elapsed,
		Outcome:  string(st.Outcome),
		Health:   sol.Health,
	})
}

func printSolution(source string, sol solution) {
	res := sol.Result
	if res.Found() {
		title(fmt.Sprintf("Path found for %s: %d ticks", source, len(res.Path)))
	} else {
		title(fmt.Sprintf("Path not found for %s", source))
	}

	printStats(res.Stats)
	fmt.Printf("  %-10s %.2f\n", "Health", sol.Health)
	if sol.RunID != "" {
		fmt.Printf("  %-10s %s\n", "Run", sol.RunID)
	}
	if sol.Dumped != "" {
		fmt.Printf("  %-10s %s\n", "Saved to", sol.Dumped)
	}
	printPath(res.Path)
}
