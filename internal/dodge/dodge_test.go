package dodge

import (
	"testing"

	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

var settings = physics.SearchSettings{
	Mode:           physics.Platformer,
	SimpleGeometry: true,
	StateBatchSize: 1,
}

func floor() world.Object {
	return world.NewObject(geom.NewRect(-2000, 2000, -100, 0), world.Wall())
}

// sidestep has a projectile closing in from the right under a deadly
// ceiling, so only a sprint to the left outruns it.
func sidestep() (physics.PhysState, *world.Static) {
	static := world.NewStatic([]world.Object{
		floor(),
		world.NewObject(geom.NewRect(-2000, 2000, 47, 60), world.Ouch()),
		world.NewObject(geom.NewRect(28, 38, 5, 40), world.Projectile(geom.Pt(-3.5, 0))),
	}, nil)

	player := physics.NewPlayer(0, 26)
	player.SpeedMultiplier = 2
	return physics.NewState(player, settings.Physics(), static), static
}

func TestSearchSidestep(t *testing.T) {
	state, static := sidestep()

	move, shift := Search(settings, state, static, physics.MoveNone, false)
	if move != physics.MoveA || !shift {
		t.Errorf("Search() = (%s, %v), expected (%s, true)", move, shift, physics.MoveA)
	}
}

func TestSearchChoiceIsSafe(t *testing.T) {
	state, static := sidestep()
	worlds := static.Timeline(Horizon)

	move, shift := New(Config{Workers: 2}).Search(settings, state, static, physics.MoveD, false)
	next := physics.Apply(&settings, state, worlds[0], physics.Action{Move: move, Shift: shift})
	if next.Player.Dead {
		t.Fatalf("Search() = (%s, %v) kills the avatar", move, shift)
	}
	if IsFatal(physics.AllActions(settings.Mode), &settings, next, worlds) {
		t.Errorf("Search() = (%s, %v), expected a non-fatal action", move, shift)
	}
}

func TestSearchKeepsSafeIntent(t *testing.T) {
	state, static := sidestep()

	move, shift := Search(settings, state, static, physics.MoveA, true)
	if move != physics.MoveA || !shift {
		t.Errorf("Search() = (%s, %v), expected (%s, true)", move, shift, physics.MoveA)
	}

	open := world.NewStatic([]world.Object{floor()}, nil)
	calm := physics.NewState(physics.NewPlayer(0, 26), settings.Physics(), open)
	move, shift = Search(settings, calm, open, physics.MoveWD, false)
	if move != physics.MoveWD || shift {
		t.Errorf("Search() = (%s, %v), expected (%s, false)", move, shift, physics.MoveWD)
	}
}

func TestSearchFallsBackToIntent(t *testing.T) {
	static := world.NewStatic([]world.Object{
		floor(),
		world.NewObject(geom.NewRect(-1000, 1000, 0, 500), world.Projectile(geom.Pt(0, 0))),
	}, nil)
	state := physics.NewState(physics.NewPlayer(0, 26), settings.Physics(), static)

	move, shift := Search(settings, state, static, physics.MoveD, true)
	if move != physics.MoveD || !shift {
		t.Errorf("Search() = (%s, %v), expected (%s, true)", move, shift, physics.MoveD)
	}
}

func TestFatal(t *testing.T) {
	state, static := sidestep()
	worlds := static.Timeline(Horizon)

	for _, tc := range []struct {
		act      physics.Action
		expected bool
	}{
		{physics.Action{Move: physics.MoveNone}, true},
		{physics.Action{Move: physics.MoveA}, true},
		{physics.Action{Move: physics.MoveA, Shift: true}, false},
	} {
		next := physics.Apply(&settings, state, worlds[0], tc.act)
		if next.Player.Dead {
			if !tc.expected {
				t.Errorf("%s: avatar died on the first tick", tc.act)
			}
			continue
		}
		if got := Fatal(settings, next, static); got != tc.expected {
			t.Errorf("Fatal() after %s = %v, expected %v", tc.act, got, tc.expected)
		}
	}
}

func TestFatalOpenWorld(t *testing.T) {
	static := world.NewStatic([]world.Object{floor()}, nil)
	state := physics.NewState(physics.NewPlayer(0, 26), settings.Physics(), static)

	if Fatal(settings, state, static) {
		t.Error("Fatal() = true in a world without projectiles, expected false")
	}
}
