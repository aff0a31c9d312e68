package encoding

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// LoadDir reads the four documents of a problem directory. Missing files
// yield an error matching fs.ErrNotExist. State documents may omit fields;
// see DecodeState.
func LoadDir(dir string) (Bundle, error) {
	var b Bundle

	if err := readJSON(filepath.Join(dir, SettingsFile), &b.Settings); err != nil {
		return b, err
	}
	if _, err := physics.ParseMode(string(b.Settings.Mode)); err != nil {
		return b, fmt.Errorf("encoding: %s: %w", SettingsFile, err)
	}

	var doc StaticDocument
	if err := readJSON(filepath.Join(dir, StaticFile), &doc); err != nil {
		return b, err
	}
	static, err := DecodeStatic(doc)
	if err != nil {
		return b, err
	}
	b.Static = static

	if b.Initial, err = readState(filepath.Join(dir, InitialFile), b.Settings, static); err != nil {
		return b, err
	}
	if b.Target, err = readState(filepath.Join(dir, TargetFile), b.Settings, static); err != nil {
		return b, err
	}
	return b, nil
}

func readState(path string, settings physics.SearchSettings, static *world.Static) (physics.PhysState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return physics.PhysState{}, fmt.Errorf("encoding: cannot read %s: %w", path, err)
	}
	s, err := DecodeState(data, settings, static)
	if err != nil {
		return s, fmt.Errorf("encoding: %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// SaveDir writes the four documents of b into dir, creating it if needed.
func SaveDir(dir string, b Bundle) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("encoding: cannot create directory %s: %w", dir, err)
	}

	docs := []struct {
		name string
		v    any
	}{
		{SettingsFile, b.Settings},
		{InitialFile, b.Initial},
		{TargetFile, b.Target},
		{StaticFile, EncodeStatic(b.Static)},
	}
	for _, d := range docs {
		if err := writeJSON(filepath.Join(dir, d.name), d.v); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes b into a fresh directory under root and returns its path.
// An empty root means the system temporary directory.
func Dump(root string, b Bundle) (string, error) {
	if root == "" {
		root = os.TempDir()
	}
	dir := filepath.Join(root, uuid.NewString())
	if err := SaveDir(dir, b); err != nil {
		return "", err
	}
	return dir, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("encoding: cannot read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("encoding: cannot parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding: cannot encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("encoding: cannot write %s: %w", path, err)
	}
	return nil
}
