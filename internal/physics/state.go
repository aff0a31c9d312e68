// Package physics implements the deterministic one-tick transition of the
// avatar. Every position change goes through the two-digit rounding engine,
// so identical inputs always produce bit-identical states.
package physics

import (
	"math"

	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/rround"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// Model constants.
const (
	TickSeconds     = 1.0 / 60.0
	JumpSpeed       = 5.5
	WalkSpeed       = 2.3
	GravityConstant = 0.1

	MaxStamina  = 100.0
	StaminaStep = 0.5
)

// PhysState is a PlayerState together with the tick-to-tick bookkeeping of
// the transition model. It is a plain value; copying it forks the simulation.
type PhysState struct {
	Player          PlayerState     `json:"player"`
	WasStepUpBefore bool            `json:"was_step_up_before"`
	Gravity         float64         `json:"gravity"`
	Settings        PhysicsSettings `json:"settings"`
	ActiveModifier  int             `json:"active_modifier"`
}

// NewState wraps a player and applies the environment it starts in.
func NewState(player PlayerState, settings PhysicsSettings, static *world.Static) PhysState {
	s := PhysState{
		Player:   player,
		Settings: settings,
		Gravity:  GravityConstant,
	}
	s.detectEnvMod(static)
	return s
}

// SetHealth overrides the avatar health.
func (s *PhysState) SetHealth(health float64) {
	s.Player.Health = health
}

// CloseEnough reports whether both coordinates are within precision of the
// target's.
func (s PhysState) CloseEnough(target PhysState, precision float64) bool {
	return math.Abs(s.Player.X-target.Player.X) <= precision &&
		math.Abs(s.Player.Y-target.Player.Y) <= precision
}

// Tick advances the state by one tick under act. The order of the steps is
// part of the model: projectiles are checked before moving, hazards and
// damage after alignment.
func (s *PhysState) Tick(act Action, static *world.Static, settings *SearchSettings) {
	s.updateMovement(static, act)
	s.updateStamina(act.Shift)

	hb := s.Player.Hitbox()
	for _, p := range static.Projectiles {
		if p.Collides(hb) {
			s.Player.Dead = true
			return
		}
	}

	s.Player.UpdatePosition()
	s.alignEdges(static)

	hb = s.Player.Hitbox()
	for _, h := range static.Hazards {
		if h.Hitbox.Collides(hb) {
			s.Player.Dead = true
			return
		}
	}

	if settings.AllowDamage {
		for _, z := range static.Damage {
			if !z.Hitbox.Collides(hb) {
				continue
			}
			s.Player.Health = math.Max(s.Player.Health-z.Amount, 0)
			if s.Player.Health == 0 {
				s.Player.Dead = true
				return
			}
		}
	}

	s.detectEnvMod(static)

	if s.Player.InTheAir {
		s.Player.VY -= s.Gravity
	}

	s.WasStepUpBefore = act.Move.IsUp()
}

func (s *PhysState) updateStamina(shift bool) {
	if s.Player.Running || shift {
		return
	}
	s.Player.Stamina = math.Min(s.Player.Stamina+StaminaStep, MaxStamina)
}

func (s *PhysState) updateMovement(static *world.Static, act Action) {
	s.Player.VX = 0
	if s.Settings.Mode == Scroller {
		s.Player.VY = 0
	}
	s.Player.Running = false

	sprinting := act.Shift && s.Player.Stamina > 0

	if act.Move.IsRight() {
		s.changeDirection(static, East, sprinting)
	}
	if act.Move.IsLeft() {
		s.changeDirection(static, West, sprinting)
	}
	if !s.WasStepUpBefore && act.Move.IsUp() {
		s.changeDirection(static, North, sprinting)
	}
	if s.Settings.Mode == Scroller && act.Move.IsDown() {
		s.changeDirection(static, South, sprinting)
	}
}

func (s *PhysState) changeDirection(static *world.Static, dir Direction, sprinting bool) {
	mult := 1.0
	if (dir == East || dir == West) && sprinting {
		mult = s.Player.SpeedMultiplier
		s.Player.Running = true
		s.Player.Stamina = math.Max(s.Player.Stamina-StaminaStep, 0)
	}

	switch dir {
	case East:
		s.Player.VX = s.Player.BaseVX * mult
	case West:
		s.Player.VX = -s.Player.BaseVX * mult
	case North:
		if s.Settings.Mode == Scroller {
			s.Player.VY = s.Player.BaseVX * mult
			return
		}
		s.resetCanJump(static)
		if !s.Player.CanJump && !s.Player.JumpOverride {
			return
		}
		s.Player.VY = s.Player.BaseVY * mult
		s.Player.InTheAir = true
	case South:
		if s.Settings.Mode == Scroller {
			s.Player.VY = -s.Player.BaseVX * mult
		}
	}
}

// resetCanJump probes one unit below the avatar for something to stand on.
func (s *PhysState) resetCanJump(static *world.Static) {
	if s.Settings.Mode == Scroller {
		s.Player.CanJump = true
		return
	}

	s.Player.MoveBy(0, -1)
	s.Player.CanJump = s.standsOnObstacle(static)
	s.Player.MoveBy(0, 1)
}

func (s *PhysState) standsOnObstacle(static *world.Static) bool {
	hb := s.Player.Hitbox()
	for _, o := range static.Obstacles {
		if !o.Hitbox.Collides(hb) {
			continue
		}
		mpv := o.Hitbox.MPV(hb)
		if isZero(mpv.X) && mpv.Y > 0 {
			return true
		}
	}
	return false
}

// isZero is the model's zero test: the value rounded to two digits and
// truncated towards zero. Pushes shorter than one unit count as zero.
func isZero(v float64) bool {
	return math.Trunc(rround.Round(v, 2)) == 0
}

type collision struct {
	hitbox geom.Hitbox
	mpv    geom.Point
}

// collisions splits the obstacles overlapping the avatar into those
// resolved horizontally and those resolved vertically.
func (s *PhysState) collisions(static *world.Static) (xs, ys []collision) {
	hb := s.Player.Hitbox()
	for _, o := range static.Obstacles {
		if !o.Hitbox.Collides(hb) {
			continue
		}
		mpv := o.Hitbox.MPV(hb)
		switch {
		case isZero(mpv.X):
			ys = append(ys, collision{hitbox: o.Hitbox, mpv: mpv})
		case isZero(mpv.Y):
			xs = append(xs, collision{hitbox: o.Hitbox, mpv: mpv})
		}
	}
	return xs, ys
}

func (s *PhysState) alignEdges(static *world.Static) {
	xs, ys := s.collisions(static)
	if len(xs) == 0 && len(ys) == 0 {
		s.Player.InTheAir = true
		return
	}

	for _, c := range xs {
		s.alignX(c)
	}

	// Horizontal snapping may have resolved or created vertical contacts.
	_, ys = s.collisions(static)
	for _, c := range ys {
		s.alignY(c)
	}
}

func (s *PhysState) alignX(c collision) {
	if isZero(c.mpv.X) {
		return
	}
	s.Player.VX = 0

	hb := s.Player.Hitbox()
	if c.mpv.X < 0 {
		s.Player.MoveBy(c.hitbox.Leftmost()-hb.Rightmost(), 0)
	} else {
		s.Player.MoveBy(c.hitbox.Rightmost()-hb.Leftmost(), 0)
	}
}

func (s *PhysState) alignY(c collision) {
	if isZero(c.mpv.Y) {
		return
	}
	s.Player.VY = 0

	hb := s.Player.Hitbox()
	if c.mpv.Y > 0 {
		s.Player.MoveBy(0, c.hitbox.Highest()-hb.Lowest())
		s.Player.InTheAir = false
	} else {
		s.Player.MoveBy(0, c.hitbox.Lowest()-hb.Highest())
	}
}

// detectEnvMod activates the first non-default modifier overlapping the
// avatar, or the default one when none does.
func (s *PhysState) detectEnvMod(static *world.Static) {
	envs := static.Environments
	hb := s.Player.Hitbox()
	for i := 1; i < len(envs); i++ {
		if !envs[i].Hitbox.Collides(hb) {
			continue
		}
		if s.ActiveModifier != i {
			s.ActiveModifier = i
			s.applyModifier(envs[i])
		}
		return
	}

	s.ActiveModifier = 0
	if len(envs) > 0 {
		s.applyModifier(envs[0])
	}
}

func (s *PhysState) applyModifier(m world.EnvModifier) {
	s.Gravity = GravityConstant * m.Gravity
	s.Player.BaseVX = WalkSpeed * m.WalkSpeed
	s.Player.BaseVY = JumpSpeed * m.JumpSpeed
	s.Player.JumpOverride = m.JumpOverride
}
