package scenario

import (
	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// Intender is implemented by scenarios that also carry an intended input
// for the dodge engine.
type Intender interface {
	Intent() physics.Action
}

type builtin struct {
	id     string
	title  string
	build  func() encoding.Bundle
	intent *physics.Action
}

func (b builtin) ID() string             { return b.id }
func (b builtin) Title() string          { return b.title }
func (b builtin) Build() encoding.Bundle { return b.build() }

type withIntent struct {
	builtin
}

func (w withIntent) Intent() physics.Action { return *w.intent }

func init() {
	for _, b := range []builtin{
		{id: "flat-jump", title: "Flat floor, target straight above", build: flatJump},
		{id: "wall-climb", title: "Jump onto a block and stop on top of it", build: wallClimb},
		{id: "scroller-corridor", title: "Top-down walk around a wall", build: scrollerCorridor},
		{id: "low-gravity", title: "High target reachable only under a low-gravity field", build: lowGravity},
	} {
		Register(b.id, func() Scenario { return b })
	}

	sidestepIntent := physics.Action{Move: physics.MoveNone}
	Register("projectile-sidestep", func() Scenario {
		return withIntent{builtin{
			id:     "projectile-sidestep",
			title:  "Incoming projectile under a deadly ceiling; only a sprint left survives",
			build:  projectileSidestep,
			intent: &sidestepIntent,
		}}
	})
}

func floor(x1, x2 float64) world.Object {
	return world.NewObject(geom.NewRect(x1, x2, -100, 0), world.Wall())
}

func bundle(settings physics.SearchSettings, static *world.Static, from, to physics.PlayerState) encoding.Bundle {
	return encoding.Bundle{
		Settings: settings,
		Initial:  physics.NewState(from, settings.Physics(), static),
		Target:   physics.NewState(to, settings.Physics(), static),
		Static:   static,
	}
}

func flatJump() encoding.Bundle {
	static := world.NewStatic([]world.Object{floor(-500, 500)}, nil)
	return bundle(physics.DefaultSearchSettings(), static, physics.NewPlayer(0, 26), physics.NewPlayer(0, 126))
}

func wallClimb() encoding.Bundle {
	static := world.NewStatic([]world.Object{
		floor(-500, 500),
		world.NewObject(geom.NewRect(100, 300, 0, 60), world.Wall()),
	}, nil)
	return bundle(physics.DefaultSearchSettings(), static, physics.NewPlayer(0, 26), physics.NewPlayer(200, 86))
}

func scrollerCorridor() encoding.Bundle {
	settings := physics.DefaultSearchSettings()
	settings.Mode = physics.Scroller
	static := world.NewStatic([]world.Object{
		world.NewObject(geom.NewRect(80, 120, -200, 60), world.Wall()),
		world.NewObject(geom.NewRect(80, 120, 200, 260), world.SpikeOuch()),
	}, nil)
	return bundle(settings, static, physics.NewPlayer(0, 0), physics.NewPlayer(200, 100))
}

func lowGravity() encoding.Bundle {
	static := world.NewStatic([]world.Object{floor(-500, 500)}, []world.EnvModifier{
		world.DefaultEnv(),
		{
			Hitbox:    geom.NewHitbox(geom.NewRect(-500, 500, 0, 1000)),
			Name:      "moon",
			JumpSpeed: 1.2,
			WalkSpeed: 1,
			Gravity:   0.5,
		},
	})
	return bundle(physics.DefaultSearchSettings(), static, physics.NewPlayer(0, 26), physics.NewPlayer(0, 226))
}

func projectileSidestep() encoding.Bundle {
	static := world.NewStatic([]world.Object{
		floor(-2000, 2000),
		world.NewObject(geom.NewRect(-2000, 2000, 47, 60), world.Ouch()),
		world.NewObject(geom.NewRect(28, 38, 5, 40), world.Projectile(geom.Pt(-3.5, 0))),
	}, nil)

	player := physics.NewPlayer(0, 26)
	player.SpeedMultiplier = 2
	target := physics.NewPlayer(-300, 26)
	return bundle(physics.DefaultSearchSettings(), static, player, target)
}
