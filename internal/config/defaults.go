package config

import (
	_ "embed"
)

//go:embed defaults/search.yaml
var defaultSearchYAML []byte

// DefaultSearchConfig returns the default pathfinder configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Damage: DamageConfig{
			OptimizationLevel:   5,
			OptimizationTimeout: 1,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Timestamps: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.pathfinder/runs.db",
		},
		Dump: DumpConfig{
			OnFailure: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSearchYAML
}
