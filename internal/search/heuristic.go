package search

import (
	"math"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
)

// TargetPrecision is the per-axis tolerance for reaching the target.
const TargetPrecision = 16.0

// Heuristic estimates the ticks left to reach target: the slower axis at
// full speed, scaled by the configured weight.
func Heuristic(settings *physics.SearchSettings, target, current physics.PlayerState) float64 {
	ySpeed := physics.WalkSpeed
	if settings.Mode == physics.Platformer {
		ySpeed = physics.JumpSpeed
	}

	xTicks := math.Abs(target.X-current.X) / physics.WalkSpeed
	yTicks := math.Abs(target.Y-current.Y) / ySpeed
	return math.Max(xTicks, yTicks) * settings.HeuristicWeight
}
