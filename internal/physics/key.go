package physics

import "math"

// StateKey is the projection of a PhysState used to deduplicate states in
// search maps. Which fields participate depends on the state's settings;
// the others are left zero. Stamina never participates.
type StateKey struct {
	X, Y   float64
	VY     float64
	Health float64
	StepUp bool
}

// Key returns the projection of s under its own settings.
func (s PhysState) Key() StateKey {
	k := StateKey{StepUp: s.WasStepUpBefore}

	if s.Settings.SimpleGeometry {
		k.X = coarse(s.Player.X)
		k.Y = coarse(s.Player.Y)
	} else {
		k.X = s.Player.X
		k.Y = s.Player.Y
	}

	if s.Settings.Mode == Platformer {
		if s.Settings.SimpleGeometry {
			k.VY = math.Round(s.Player.VY)
		} else {
			k.VY = s.Player.VY
		}
	}

	if s.Settings.AllowDamage {
		k.Health = s.Player.Health
	}

	return k
}

// coarse rounds to one decimal, halves away from zero.
func coarse(v float64) float64 {
	return math.Round(v*10) / 10
}
