package scenario

import (
	"context"
	"testing"

	"github.com/vovakirdan/arcade-pathfinder/internal/dodge"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/search"
)

var builtins = []string{"flat-jump", "low-gravity", "projectile-sidestep", "scroller-corridor", "wall-climb"}

func TestBuiltinsRegistered(t *testing.T) {
	list := List()
	if len(list) < len(builtins) {
		t.Fatalf("List() returned %d scenarios, expected at least %d", len(list), len(builtins))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, id := range builtins {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-level"); err == nil {
		t.Error("Create() error = nil, expected an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID did not panic")
		}
	}()
	Register("flat-jump", func() Scenario { return builtin{id: "flat-jump", build: flatJump} })
}

func TestBuildReturnsFreshCopies(t *testing.T) {
	s, err := Create("wall-climb")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	a := s.Build()
	a.Static.Obstacles[0].Hitbox.Rect.X1 = 12345

	b := s.Build()
	if b.Static.Obstacles[0].Hitbox.Rect.X1 == 12345 {
		t.Error("Build() shares the world between calls")
	}
}

func TestBuiltinsAreSolvable(t *testing.T) {
	for _, id := range builtins {
		t.Run(id, func(t *testing.T) {
			s, err := Create(id)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			b := s.Build()
			if err := b.Settings.Validate(); err != nil {
				t.Fatalf("settings are invalid: %v", err)
			}

			res := search.Run(context.Background(), b.Settings, b.Initial, b.Target, b.Static)
			if !res.Found() {
				t.Fatalf("search outcome = %s, expected %s", res.Stats.Outcome, search.OutcomeFound)
			}

			state := b.Initial
			for _, step := range res.Path {
				state = physics.Apply(&b.Settings, state, b.Static, physics.Action{Move: step.Move, Shift: step.Shift})
			}
			if !state.CloseEnough(b.Target, search.TargetPrecision) {
				t.Errorf("path ends at (%v, %v), expected near (%v, %v)",
					state.Player.X, state.Player.Y, b.Target.Player.X, b.Target.Player.Y)
			}
		})
	}
}

func TestLowGravityNeedsTheField(t *testing.T) {
	b := lowGravity()
	if b.Initial.ActiveModifier != 1 {
		t.Fatalf("ActiveModifier = %d, expected 1", b.Initial.ActiveModifier)
	}

	state := b.Initial
	peak := state.Player.Y
	state = physics.Apply(&b.Settings, state, b.Static, physics.Action{Move: physics.MoveW})
	for i := 0; i < 400 && state.Player.InTheAir; i++ {
		peak = max(peak, state.Player.Y)
		state = physics.Apply(&b.Settings, state, b.Static, physics.Action{Move: physics.MoveNone})
	}
	if peak < b.Target.Player.Y-search.TargetPrecision {
		t.Errorf("jump peak = %v, expected to reach %v", peak, b.Target.Player.Y-search.TargetPrecision)
	}
}

func TestSidestepIntent(t *testing.T) {
	s, err := Create("projectile-sidestep")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	in, ok := s.(Intender)
	if !ok {
		t.Fatal("projectile-sidestep does not carry an intent")
	}

	b := s.Build()
	act := in.Intent()
	move, shift := dodge.Search(b.Settings, b.Initial, b.Static, act.Move, act.Shift)
	if move != physics.MoveA || !shift {
		t.Errorf("dodge.Search() = (%s, %v), expected (%s, true)", move, shift, physics.MoveA)
	}
}
