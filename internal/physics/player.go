package physics

import (
	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/rround"
)

// Avatar hitbox extents relative to its position.
const (
	PlayerHalfWidth = 24.0
	PlayerBelow     = 26.0
	PlayerAbove     = 20.0
)

// PlayerState is the avatar: kinematics, resources and status flags. Rect is
// the cached hitbox and is kept in sync by MoveBy.
type PlayerState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`

	BaseVX float64 `json:"base_vx"`
	BaseVY float64 `json:"base_vy"`

	Health float64 `json:"health"`

	JumpOverride bool      `json:"jump_override"`
	Direction    Direction `json:"direction"`
	InTheAir     bool      `json:"in_the_air"`
	CanJump      bool      `json:"can_jump"`
	Running      bool      `json:"running"`
	Dead         bool      `json:"dead"`

	SpeedMultiplier float64 `json:"speed_multiplier"`
	JumpMultiplier  float64 `json:"jump_multiplier"`

	Stamina float64 `json:"stamina"`

	Rect geom.Rect `json:"rect"`
}

// NewPlayer returns a standing avatar at (x, y) with default speeds and full
// health and stamina.
func NewPlayer(x, y float64) PlayerState {
	return PlayerState{
		X:               x,
		Y:               y,
		BaseVX:          WalkSpeed,
		BaseVY:          JumpSpeed,
		Health:          100,
		Direction:       East,
		CanJump:         true,
		SpeedMultiplier: 1,
		JumpMultiplier:  1,
		Stamina:         MaxStamina,
		Rect:            PlayerRect(x, y),
	}
}

// PlayerRect returns the hitbox rectangle of an avatar at (x, y).
func PlayerRect(x, y float64) geom.Rect {
	return geom.NewRect(x-PlayerHalfWidth, x+PlayerHalfWidth, y-PlayerBelow, y+PlayerAbove)
}

// SyncRect recomputes Rect from the position.
func (p *PlayerState) SyncRect() {
	p.Rect = PlayerRect(p.X, p.Y)
}

// Center returns the position.
func (p PlayerState) Center() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// Hitbox returns the current collision shape.
func (p PlayerState) Hitbox() geom.Hitbox {
	return geom.NewHitbox(p.Rect)
}

// MoveBy translates the avatar, rounding position and hitbox to two digits.
func (p *PlayerState) MoveBy(dx, dy float64) {
	p.X = rround.Round(p.X+dx, 2)
	p.Y = rround.Round(p.Y+dy, 2)
	p.Rect = p.Rect.Offset(dx, dy)
}

// UpdatePosition integrates one tick of velocity.
func (p *PlayerState) UpdatePosition() {
	if p.VX != 0 || p.VY != 0 {
		p.MoveBy(p.VX, p.VY)
	}
}
