package physics

import (
	"errors"
	"fmt"
	"time"
)

// GameMode selects between side-view platforming and free top-down movement.
type GameMode string

const (
	Scroller   GameMode = "scroller"
	Platformer GameMode = "platformer"
)

// ParseMode validates a mode name.
func ParseMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case Scroller, Platformer:
		return GameMode(s), nil
	}
	return "", fmt.Errorf("physics: unknown game mode %q", s)
}

// PhysicsSettings is the subset of settings a state carries with it.
type PhysicsSettings struct {
	Mode           GameMode `json:"mode"`
	SimpleGeometry bool     `json:"simple_geometry"`
	AllowDamage    bool     `json:"allow_damage"`
}

// SearchSettings configures the search and dodge engines.
type SearchSettings struct {
	Mode GameMode `json:"mode"`
	// Timeout is the wall-clock budget in whole seconds, checked once per
	// search round. Zero disables the deadline entirely; it does not mean
	// "stop after the first second".
	Timeout      uint64 `json:"timeout"`
	AlwaysShift  bool   `json:"always_shift"`
	DisableShift bool   `json:"disable_shift"`
	// AllowedMoves restricts the move set. Empty means every move of Mode.
	AllowedMoves    []Move  `json:"allowed_moves"`
	HeuristicWeight float64 `json:"heuristic_weight"`
	SimpleGeometry  bool    `json:"simple_geometry"`
	StateBatchSize  int     `json:"state_batch_size"`
	AllowDamage     bool    `json:"allow_damage"`
}

// DefaultSearchSettings returns the settings the CLI starts from.
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		Mode:            Platformer,
		Timeout:         5,
		AlwaysShift:     true,
		HeuristicWeight: 2,
		SimpleGeometry:  true,
		StateBatchSize:  16384,
	}
}

// Physics returns the settings a PhysState needs.
func (s SearchSettings) Physics() PhysicsSettings {
	return PhysicsSettings{
		Mode:           s.Mode,
		SimpleGeometry: s.SimpleGeometry,
		AllowDamage:    s.AllowDamage,
	}
}

// Deadline returns the timeout as a duration. Zero means no deadline.
func (s SearchSettings) Deadline() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// Moves returns the allowed moves, falling back to every move of the mode.
func (s SearchSettings) Moves() []Move {
	if len(s.AllowedMoves) > 0 {
		return append([]Move(nil), s.AllowedMoves...)
	}
	return MovesFor(s.Mode)
}

// Validate checks the settings for values the engines cannot work with.
func (s SearchSettings) Validate() error {
	var errs []error
	if _, err := ParseMode(string(s.Mode)); err != nil {
		errs = append(errs, err)
	}
	if s.StateBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("physics: state batch size must be positive, got %d", s.StateBatchSize))
	}
	if s.HeuristicWeight < 0 {
		errs = append(errs, fmt.Errorf("physics: heuristic weight must not be negative, got %v", s.HeuristicWeight))
	}
	if s.AlwaysShift && s.DisableShift {
		errs = append(errs, errors.New("physics: always_shift and disable_shift are mutually exclusive"))
	}
	for _, m := range s.AllowedMoves {
		if _, err := ParseMove(string(m)); err != nil {
			errs = append(errs, err)
			continue
		}
		if s.Mode == Platformer && m.IsDown() {
			errs = append(errs, fmt.Errorf("physics: move %s is not available in platformer mode", m))
		}
	}
	return errors.Join(errs...)
}
