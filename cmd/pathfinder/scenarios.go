package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/dodge"
	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/scenario"
)

var flagExport string

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenarios",
	Long:  `Shows the built-in problems that bench can run and export.`,
	Run:   runScenarios,
}

var benchCmd = &cobra.Command{
	Use:   "bench [scenario...]",
	Short: "Search built-in scenarios",
	Long: `Run the search on the named built-in scenarios, or on all of them, and
print a summary. Scenarios with an intended input also run the dodge
engine. Runs are recorded in the history under the scenario ID.

Examples:
  pathfinder bench
  pathfinder bench flat-jump wall-climb --preset precise
  pathfinder bench low-gravity --export ./problems`,
	RunE:        runBench,
	Annotations: roundsValues,
}

func init() {
	addSettingsFlags(benchCmd)
	benchCmd.Flags().StringVar(&flagExport, "export", "", "Write each scenario's documents to <dir>/<id> instead of running it")
}

func runScenarios(_ *cobra.Command, _ []string) {
	list := scenario.List()

	if len(list) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	title("Available scenarios:")

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range list {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pathfinder bench <id>' to search one.")
}

func runBench(cmd *cobra.Command, args []string) error {
	ids := args
	if len(ids) == 0 {
		for _, s := range scenario.List() {
			ids = append(ids, s.ID)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var rows []benchRow
	for _, id := range ids {
		s, err := scenario.Create(id)
		if err != nil {
			return fmt.Errorf("%w (run 'pathfinder scenarios' to list them)", err)
		}
		b := s.Build()

		if flagExport != "" {
			dir := filepath.Join(flagExport, id)
			if err := encoding.SaveDir(dir, b); err != nil {
				return err
			}
			fmt.Printf("Exported %s to %s\n", id, dir)
			continue
		}

		if err := applyFlags(cmd, &b.Settings); err != nil {
			return err
		}
		b.SyncSettings()
		sol, err := solve(ctx, id, b)
		if err != nil {
			return err
		}
		row := benchRow{id: id, sol: sol}

		if in, ok := s.(scenario.Intender); ok {
			act := in.Intent()
			engine := dodge.New(dodge.Config{Workers: appCfg.Engine.Workers, Logger: logger})
			move, shift := engine.Search(b.Settings, b.Initial, b.Static, act.Move, act.Shift)
			row.dodge = fmt.Sprintf("%s -> %s", act, physics.Action{Move: move, Shift: shift})
		}
		rows = append(rows, row)

		if ctx.Err() != nil {
			break
		}
	}

	if len(rows) > 0 {
		printBench(rows)
	}
	return nil
}

type benchRow struct {
	id    string
	sol   solution
	dodge string
}

func printBench(rows []benchRow) {
	title("Benchmark")

	maxIDLen := len("Scenario")
	for _, r := range rows {
		maxIDLen = max(maxIDLen, len(r.id))
	}

	fmt.Printf("  %-*s  %-10s  %5s  %8s  %10s  %10s  %s\n", maxIDLen, "Scenario", "Outcome", "Ticks", "Rounds", "Visited", "Elapsed", "Dodge")
	fmt.Printf("  %-*s  %-10s  %5s  %8s  %10s  %10s  %s\n", maxIDLen, "--------", "-------", "-----", "------", "-------", "-------", "-----")
	for _, r := range rows {
		st := r.sol.Result.Stats
		fmt.Printf("  %-*s  %-10s  %5d  %8d  %10d  %10s  %s\n", maxIDLen, r.id, st.Outcome,
			len(r.sol.Result.Path), st.Rounds, st.Visited, st.Elapsed.Round(time.Millisecond), r.dodge)
	}
}
