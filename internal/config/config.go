// Package config provides YAML-based configuration for the pathfinder CLI:
// overrides applied to loaded search settings, damage optimisation, logging,
// run history and failure dumps.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
)

// SearchConfig contains all configuration for the pathfinder.
type SearchConfig struct {
	Search  SearchOverrides `yaml:"search"`
	Damage  DamageConfig    `yaml:"damage"`
	Engine  EngineConfig    `yaml:"engine"`
	Logging LoggingConfig   `yaml:"logging"`
	Storage StorageConfig   `yaml:"storage"`
	Dump    DumpConfig      `yaml:"dump"`
}

// SearchOverrides replaces fields of the settings document. Unset fields
// keep the document's value.
type SearchOverrides struct {
	Preset          Preset   `yaml:"preset"`
	Mode            string   `yaml:"mode"`
	Timeout         *uint64  `yaml:"timeout"`
	AlwaysShift     *bool    `yaml:"always_shift"`
	DisableShift    *bool    `yaml:"disable_shift"`
	AllowedMoves    []string `yaml:"allowed_moves"`
	HeuristicWeight *float64 `yaml:"heuristic_weight"`
	SimpleGeometry  *bool    `yaml:"simple_geometry"`
	StateBatchSize  *int     `yaml:"state_batch_size"`
	AllowDamage     *bool    `yaml:"allow_damage"`
}

// DamageConfig controls the starting-health bisection after a found path.
type DamageConfig struct {
	OptimizationLevel   int    `yaml:"optimization_level"`
	OptimizationTimeout uint64 `yaml:"optimization_timeout"`
}

// EngineConfig sizes the worker pools.
type EngineConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig defines log output.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// StorageConfig defines the run history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DumpConfig defines where problems are written when no path is found.
type DumpConfig struct {
	OnFailure bool   `yaml:"on_failure"`
	Dir       string `yaml:"dir"`
}

// Apply writes the overrides into s, preset first.
func (o SearchOverrides) Apply(s *physics.SearchSettings) error {
	if o.Preset != "" {
		if err := ApplyPreset(s, o.Preset); err != nil {
			return err
		}
	}

	if o.Mode != "" {
		mode, err := physics.ParseMode(o.Mode)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		s.Mode = mode
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.AlwaysShift != nil {
		s.AlwaysShift = *o.AlwaysShift
	}
	if o.DisableShift != nil {
		s.DisableShift = *o.DisableShift
	}
	if len(o.AllowedMoves) > 0 {
		moves := make([]physics.Move, 0, len(o.AllowedMoves))
		for _, name := range o.AllowedMoves {
			m, err := physics.ParseMove(name)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			moves = append(moves, m)
		}
		s.AllowedMoves = moves
	}
	if o.HeuristicWeight != nil {
		s.HeuristicWeight = *o.HeuristicWeight
	}
	if o.SimpleGeometry != nil {
		s.SimpleGeometry = *o.SimpleGeometry
	}
	if o.StateBatchSize != nil {
		s.StateBatchSize = *o.StateBatchSize
	}
	if o.AllowDamage != nil {
		s.AllowDamage = *o.AllowDamage
	}
	return nil
}

// Validate checks the values that do not depend on a settings document.
func (c SearchConfig) Validate() error {
	var errs []error
	if c.Search.Preset != "" {
		if _, err := ParsePreset(string(c.Search.Preset)); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Damage.OptimizationLevel < 0 {
		errs = append(errs, fmt.Errorf("config: damage optimization level must not be negative, got %d", c.Damage.OptimizationLevel))
	}
	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("config: workers must not be negative, got %d", c.Engine.Workers))
	}
	return errors.Join(errs...)
}
