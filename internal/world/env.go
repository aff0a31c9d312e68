package world

import "github.com/vovakirdan/arcade-pathfinder/internal/geom"

// DefaultEnvName names the ambient environment.
const DefaultEnvName = "generic"

// EnvModifier scales movement while the avatar overlaps its hitbox. The
// first modifier of a world is the ambient one and applies everywhere no
// other modifier does.
type EnvModifier struct {
	Hitbox       geom.Hitbox `json:"hitbox"`
	Name         string      `json:"name"`
	JumpSpeed    float64     `json:"jump_speed"`
	WalkSpeed    float64     `json:"walk_speed"`
	Gravity      float64     `json:"gravity"`
	JumpOverride bool        `json:"jump_override"`
}

// DefaultEnv returns the neutral ambient modifier.
func DefaultEnv() EnvModifier {
	return EnvModifier{
		Name:      DefaultEnvName,
		JumpSpeed: 1,
		WalkSpeed: 1,
		Gravity:   1,
	}
}
