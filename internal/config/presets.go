package config

import (
	"fmt"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
)

// Preset represents a named trade-off between search speed and path quality.
type Preset string

const (
	PresetFast      Preset = "fast"
	PresetBenchmark Preset = "benchmark"
	PresetPrecise   Preset = "precise"
)

// Presets returns the preset names in order of increasing precision.
func Presets() []Preset {
	return []Preset{PresetFast, PresetBenchmark, PresetPrecise}
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets() {
		if Preset(s) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// ApplyPreset modifies the settings based on a preset.
func ApplyPreset(s *physics.SearchSettings, preset Preset) error {
	switch preset {
	case PresetFast:
		// Greedy: a heavy heuristic and coarse states.
		s.HeuristicWeight = 3
		s.SimpleGeometry = true
		s.StateBatchSize = 16384
		s.Timeout = 2
	case PresetBenchmark:
		s.HeuristicWeight = 2
		s.SimpleGeometry = true
		s.StateBatchSize = 16384
		s.Timeout = 0
	case PresetPrecise:
		// Unit weight and exact states.
		s.HeuristicWeight = 1
		s.SimpleGeometry = false
		s.StateBatchSize = 1024
		s.Timeout = 30
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
