package search

import (
	"context"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// MinimizeDamage runs a search and, when damage is tracked and a path exists,
// bisects the starting health over levels iterations to find the lowest
// health that still reaches the target. Each iteration runs with timeout
// seconds. It returns the path found at the lowest feasible health together
// with that health.
func MinimizeDamage(ctx context.Context, settings physics.SearchSettings, initial, target physics.PhysState, static *world.Static, levels int, timeout uint64) (Result, float64) {
	return New(Config{}).MinimizeDamage(ctx, settings, initial, target, static, levels, timeout)
}

// MinimizeDamage is the engine form of the package-level MinimizeDamage.
func (e *Engine) MinimizeDamage(ctx context.Context, settings physics.SearchSettings, initial, target physics.PhysState, static *world.Static, levels int, timeout uint64) (Result, float64) {
	health := initial.Player.Health
	res := e.Run(ctx, settings, initial, target, static)
	if !res.Found() || !settings.AllowDamage || levels <= 0 {
		return res, health
	}

	settings.Timeout = timeout
	lo, hi := 0.0, health
	for i := 0; i < levels; i++ {
		if ctx.Err() != nil {
			break
		}
		mid := (lo + hi) / 2
		probe := initial
		probe.SetHealth(mid)

		r := e.Run(ctx, settings, probe, target, static)
		e.logger.Debug("damage level", "n", i+1, "health", mid, "found", r.Found())
		if r.Found() {
			hi = mid
			res = r
		} else {
			lo = mid
		}
	}
	e.logger.Info("damage optimised", "health", hi, "ticks", len(res.Path))
	return res, hi
}
