// Package search finds input sequences that take the avatar from an initial
// state to a target with a batched, parallel A* over physics states.
package search

import (
	"container/heap"
	"context"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-pathfinder/internal/parallel"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// Outcome says how a search ended.
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeCancelled Outcome = "cancelled"
)

// Step is one tick of a found path: the input and the avatar after it.
type Step struct {
	Move   physics.Move        `json:"move"`
	Shift  bool                `json:"shift"`
	Player physics.PlayerState `json:"player"`
}

// Stats describes the work a search did.
type Stats struct {
	Rounds   int           `json:"rounds"`
	Expanded int           `json:"expanded"`
	Visited  int           `json:"visited"`
	Elapsed  time.Duration `json:"elapsed"`
	Outcome  Outcome       `json:"outcome"`
}

// Result is a path, empty unless Stats.Outcome is OutcomeFound.
type Result struct {
	Path  []Step `json:"path"`
	Stats Stats  `json:"stats"`
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return r.Stats.Outcome == OutcomeFound
}

// Config holds engine options that are not part of the search settings.
type Config struct {
	// Workers bounds the goroutines expanding a round. Zero means GOMAXPROCS.
	Workers int
	// Logger receives round progress at debug level. Nil discards.
	Logger *log.Logger
}

// Engine runs searches. It holds no per-search state and is safe for
// concurrent use.
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

// Run searches with a default engine.
func Run(ctx context.Context, settings physics.SearchSettings, initial, target physics.PhysState, static *world.Static) Result {
	return New(Config{}).Run(ctx, settings, initial, target, static)
}

// link records how a state was first reached at its best tick count.
type link struct {
	prev physics.PhysState
	act  physics.Action
}

// neighbour is a state produced during the parallel phase of a round.
type neighbour struct {
	act   physics.Action
	state physics.PhysState
	key   physics.StateKey
	cost  float64
}

// Run searches for a path from initial to a state within TargetPrecision of
// target. The world is not stepped: projectiles stay where they are. The
// deadline from settings and ctx are checked once per round.
func (e *Engine) Run(ctx context.Context, settings physics.SearchSettings, initial, target physics.PhysState, static *world.Static) Result {
	start := time.Now()
	var stats Stats

	finish := func(outcome Outcome, path []Step, visited int) Result {
		stats.Outcome = outcome
		stats.Visited = visited
		stats.Elapsed = time.Since(start)
		e.logger.Info("search finished",
			"outcome", outcome,
			"ticks", len(path),
			"rounds", stats.Rounds,
			"expanded", stats.Expanded,
			"visited", visited,
			"elapsed", stats.Elapsed.Round(time.Millisecond),
		)
		return Result{Path: path, Stats: stats}
	}

	batchSize := max(settings.StateBatchSize, 1)
	timeout := settings.Deadline()
	acts := physics.AllowedActions(settings)

	open := &openSet{}
	best := map[physics.StateKey]int{initial.Key(): 0}
	cameFrom := make(map[physics.StateKey]link)
	heap.Push(open, node{
		cost:  Heuristic(&settings, target.Player, initial.Player),
		state: initial,
	})

	e.logger.Debug("search started", "mode", settings.Mode, "actions", len(acts), "batch", batchSize, "timeout", timeout)

	batch := make([]node, 0, min(batchSize, 1024))
	for {
		if err := ctx.Err(); err != nil {
			return finish(OutcomeCancelled, nil, len(best))
		}
		if timeout > 0 && time.Since(start) > timeout {
			return finish(OutcomeTimeout, nil, len(best))
		}

		batch = batch[:0]
		for len(batch) < batchSize && open.Len() > 0 {
			n := heap.Pop(open).(node)
			if best[n.state.Key()] < n.ticks {
				continue
			}
			batch = append(batch, n)
		}
		if len(batch) == 0 {
			return finish(OutcomeExhausted, nil, len(best))
		}

		stats.Rounds++
		stats.Expanded += len(batch)
		e.logger.Debug("round", "n", stats.Rounds, "batch", len(batch), "open", open.Len(), "visited", len(best))

		results := make([][]neighbour, len(batch))
		parallel.For(len(batch), e.workers, func(i int) {
			results[i] = expand(&settings, batch[i], target, static, acts, best)
		})

		for i, ns := range results {
			prev := batch[i]
			for _, n := range ns {
				if n.state.CloseEnough(target, TargetPrecision) {
					path := reconstruct(cameFrom, prev.state)
					path = append(path, Step{Move: n.act.Move, Shift: n.act.Shift, Player: n.state.Player})
					return finish(OutcomeFound, path, len(best))
				}

				if old, ok := best[n.key]; ok && prev.ticks+1 >= old {
					continue
				}
				cameFrom[n.key] = link{prev: prev.state, act: n.act}
				best[n.key] = prev.ticks + 1
				heap.Push(open, node{cost: n.cost, ticks: prev.ticks + 1, state: n.state})
			}
		}
	}
}

// expand produces the live neighbours of one state that may improve on the
// best tick counts known at the start of the round. best is only read.
func expand(settings *physics.SearchSettings, from node, target physics.PhysState, static *world.Static, acts []physics.Action, best map[physics.StateKey]int) []neighbour {
	succ := physics.Successors(make([]physics.Successor, 0, len(acts)), settings, from.state, static, acts)

	out := make([]neighbour, 0, len(succ))
	ticks := from.ticks + 1
	for _, s := range succ {
		key := s.State.Key()
		if old, ok := best[key]; ok && ticks >= old {
			continue
		}
		out = append(out, neighbour{
			act:   s.Action,
			state: s.State,
			key:   key,
			cost:  float64(ticks) + Heuristic(settings, target.Player, s.State.Player),
		})
	}
	return out
}

// reconstruct walks the predecessor chain back from current and returns the
// steps in forward order.
func reconstruct(cameFrom map[physics.StateKey]link, current physics.PhysState) []Step {
	var path []Step
	for {
		l, ok := cameFrom[current.Key()]
		if !ok {
			break
		}
		path = append(path, Step{Move: l.act.Move, Shift: l.act.Shift, Player: current.Player})
		current = l.prev
	}
	slices.Reverse(path)
	return path
}
