// pathfinder searches input sequences for a 2D platformer avatar.
//
// Usage:
//
//	pathfinder search <dir>           - Find a path for the problem in dir
//	pathfinder dodge <dir> --move M   - Pick a surviving action
//	pathfinder step <dir> --move M    - Advance the initial state by one tick
//	pathfinder round <value> [digits] - Round a value half to even
//	pathfinder scenarios              - List built-in scenarios
//	pathfinder bench [scenario...]    - Search built-in scenarios
//	pathfinder runs                   - Show recorded runs
//	pathfinder stats                  - Show per-mode run statistics
//	pathfinder schema                 - Print the document JSON schema
//
// Global flags:
//
//	--config <path>    - Config YAML (default: search order in internal/config)
//	--db <path>        - Run history database (default: from config)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/config"
	"github.com/vovakirdan/arcade-pathfinder/internal/rround"

	// Import scenarios to register them
	_ "github.com/vovakirdan/arcade-pathfinder/internal/scenario"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagWorkers   int
	flagNoHistory bool

	appCfg config.SearchConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - search input sequences for a platformer avatar",
	Long: `Pathfinder simulates a 2D platformer avatar tick by tick and searches
for input sequences that reach a target or survive incoming projectiles.

A problem directory holds four JSON documents:
  settings.json, initial_state.json, target_state.json, static_state.json

Examples:
  pathfinder search ./problem
  pathfinder search ./problem --preset precise
  pathfinder dodge ./problem --move D
  pathfinder bench flat-jump wall-climb
  pathfinder round 2.675 2`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", -1, "Worker goroutines (0 = all CPUs, default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record runs")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(dodgeCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(schemaCmd)
}

// setup loads the configuration and builds the logger shared by every
// command.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSearch(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagWorkers >= 0 {
		cfg.Engine.Workers = flagWorkers
	}
	if flagNoHistory {
		cfg.Storage.Enabled = false
	}
	appCfg = cfg

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Logging.Timestamps,
		Prefix:          "pathfinder",
		Level:           level,
	})

	// Build the rounding tables before any search starts.
	if cmd.Annotations[annotationRounding] == "true" {
		rround.Default()
	}
	return nil
}

// annotationRounding marks commands that run the physics model and need the
// rounding tables.
const annotationRounding = "pathfinder/rounding"

var roundsValues = map[string]string{annotationRounding: "true"}
