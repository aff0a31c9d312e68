package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "search.yaml"

// LoadSearch loads the pathfinder configuration. Fields missing from the
// file keep their defaults.
// Search order: customPath -> ~/.pathfinder/configs/search.yaml -> ./configs/search.yaml -> embedded default
func LoadSearch(customPath string) (SearchConfig, error) {
	cfg := DefaultSearchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, c.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSearchYAML, &cfg); err != nil {
		return DefaultSearchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (SearchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SearchConfig{}, false
	}
	cfg := DefaultSearchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SearchConfig{}, false
	}
	return cfg, true
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathfinder", "configs", filename)
}
