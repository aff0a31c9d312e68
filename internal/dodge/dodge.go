// Package dodge overrides a single intended input when it leads to a state
// from which every continuation dies within a fixed horizon of moving
// projectiles.
package dodge

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-pathfinder/internal/parallel"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// Horizon is the lookahead depth in ticks.
const Horizon = 25

// Config holds engine options.
type Config struct {
	// Workers bounds the goroutines evaluating alternatives. Zero means
	// GOMAXPROCS.
	Workers int
	// Logger receives decisions at debug level. Nil discards.
	Logger *log.Logger
}

// Engine picks surviving actions.
type Engine struct {
	workers int
	logger  *log.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		workers: parallel.Workers(cfg.Workers),
		logger:  logger,
	}
}

// Search picks an action with a default engine.
func Search(settings physics.SearchSettings, initial physics.PhysState, static *world.Static, move physics.Move, shift bool) (physics.Move, bool) {
	return New(Config{}).Search(settings, initial, static, move, shift)
}

// Search returns the intended action when it survives the horizon. Otherwise
// it returns the first surviving alternative in action order, preferring
// ones without an up component, or the intended action when none survives.
func (e *Engine) Search(settings physics.SearchSettings, initial physics.PhysState, static *world.Static, move physics.Move, shift bool) (physics.Move, bool) {
	worlds := static.Timeline(Horizon)
	acts := physics.AllActions(settings.Mode)
	intended := physics.Action{Move: move, Shift: shift}

	if survives(&settings, initial, worlds, acts, intended) {
		return move, shift
	}

	var candidates []physics.Action
	for _, act := range acts {
		if act != intended {
			candidates = append(candidates, act)
		}
	}

	ok := make([]bool, len(candidates))
	parallel.For(len(candidates), e.workers, func(i int) {
		ok[i] = survives(&settings, initial, worlds, acts, candidates[i])
	})

	var valid []physics.Action
	for i, act := range candidates {
		if ok[i] {
			valid = append(valid, act)
		}
	}
	slices.SortStableFunc(valid, func(a, b physics.Action) int {
		return boolCmp(a.Move.IsUp(), b.Move.IsUp())
	})

	if len(valid) == 0 {
		e.logger.Debug("no surviving action", "intended", intended)
		return move, shift
	}
	e.logger.Debug("dodging", "intended", intended, "chosen", valid[0], "alternatives", len(valid))
	return valid[0].Move, valid[0].Shift
}

func survives(settings *physics.SearchSettings, initial physics.PhysState, worlds []*world.Static, acts []physics.Action, act physics.Action) bool {
	next := physics.Apply(settings, initial, worlds[0], act)
	return !next.Player.Dead && !IsFatal(acts, settings, next, worlds)
}

// IsFatal reports whether every sequence of acts from state dies before the
// horizon. worlds[d+1] is the world the transition at depth d runs against,
// so it must hold Horizon+1 entries.
func IsFatal(acts []physics.Action, settings *physics.SearchSettings, state physics.PhysState, worlds []*world.Static) bool {
	p := prober{
		settings: settings,
		worlds:   worlds,
		acts:     acts,
		seen:     make([]map[physics.StateKey]struct{}, Horizon),
	}
	for i := range p.seen {
		p.seen[i] = make(map[physics.StateKey]struct{})
	}
	return !p.alive(0, state)
}

// Fatal is IsFatal over every action of the mode and a timeline built from
// static.
func Fatal(settings physics.SearchSettings, state physics.PhysState, static *world.Static) bool {
	return IsFatal(physics.AllActions(settings.Mode), &settings, state, static.Timeline(Horizon))
}

type prober struct {
	settings *physics.SearchSettings
	worlds   []*world.Static
	acts     []physics.Action
	seen     []map[physics.StateKey]struct{}
}

// alive reports whether some continuation of state reaches the horizon.
func (p *prober) alive(depth int, state physics.PhysState) bool {
	if depth == Horizon {
		return true
	}
	key := state.Key()
	if _, ok := p.seen[depth][key]; ok {
		return false
	}
	p.seen[depth][key] = struct{}{}

	succ := physics.Successors(nil, p.settings, state, p.worlds[depth+1], p.acts)
	for _, s := range succ {
		if p.alive(depth+1, s.State) {
			return true
		}
	}
	return false
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
