package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/storage"
)

var (
	flagLimit int
	flagClear string
	flagAll   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show recorded search runs",
	Long: `Display the most recent runs, or one run by ID.

Examples:
  pathfinder runs
  pathfinder runs --limit 50
  pathfinder runs 3f1c...        # one run
  pathfinder runs --clear flat-jump
  pathfinder runs --clear-all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run statistics per game mode",
	RunE:  runStats,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagClear, "clear", "", "Delete the runs of a source")
	runsCmd.Flags().BoolVar(&flagAll, "clear-all", false, "Delete every run")
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open run history: %w", err)
	}
	return store, nil
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear != "" || flagAll {
		source := flagClear
		if flagAll {
			source = ""
		}
		n, err := store.ClearRuns(source)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return nil
	}

	if len(args) == 1 {
		run, err := store.RunByID(args[0])
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	title("Recent runs")
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathfinder bench' to record some.")
		return nil
	}

	fmt.Printf("  %-16s  %-24s  %-10s  %-10s  %5s  %10s  %s\n", "Date", "Source", "Mode", "Outcome", "Ticks", "Elapsed", "ID")
	fmt.Printf("  %-16s  %-24s  %-10s  %-10s  %5s  %10s  %s\n", "----", "------", "----", "-------", "-----", "-------", "--")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-24s  %-10s  %-10s  %5d  %10s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), truncate(r.Source, 24), r.Mode, r.Outcome,
			r.PathLen, r.Elapsed, render(dimStyle, r.ID))
	}
	return nil
}

func printRun(r storage.Run) {
	title("Run " + r.ID)
	fmt.Printf("  %-10s %s\n", "Source", r.Source)
	fmt.Printf("  %-10s %s\n", "Mode", r.Mode)
	fmt.Printf("  %-10s %s\n", "Outcome", r.Outcome)
	fmt.Printf("  %-10s %d\n", "Ticks", r.PathLen)
	fmt.Printf("  %-10s %d\n", "Rounds", r.Rounds)
	fmt.Printf("  %-10s %d\n", "Expanded", r.Expanded)
	fmt.Printf("  %-10s %d\n", "Visited", r.Visited)
	fmt.Printf("  %-10s %s\n", "Elapsed", r.Elapsed)
	fmt.Printf("  %-10s %.2f\n", "Health", r.Health)
	fmt.Printf("  %-10s %s\n", "Date", r.CreatedAt.Format(time.DateTime))
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.StatsByMode()
	if err != nil {
		return err
	}

	title("Run statistics")
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	fmt.Printf("  %-10s  %5s  %5s  %9s  %12s  %s\n", "Mode", "Runs", "Found", "Avg ticks", "Avg elapsed", "Last run")
	fmt.Printf("  %-10s  %5s  %5s  %9s  %12s  %s\n", "----", "----", "-----", "---------", "-----------", "--------")
	for _, m := range modes {
		s := stats[m]
		fmt.Printf("  %-10s  %5d  %5d  %9.1f  %12s  %s\n", s.Mode, s.Runs, s.Found, s.AvgPathLen,
			s.AvgElapsed.Round(time.Millisecond), s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n+3:]
}
