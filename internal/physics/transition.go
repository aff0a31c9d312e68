package physics

import "github.com/vovakirdan/arcade-pathfinder/internal/world"

// Successor is a live state reached from another by one action.
type Successor struct {
	Action Action
	State  PhysState
}

// Apply returns the state after one tick of act. The input is not modified.
func Apply(settings *SearchSettings, state PhysState, static *world.Static, act Action) PhysState {
	next := state
	next.Tick(act, static, settings)
	return next
}

// Advance performs a single tick and returns the resulting avatar.
func Advance(settings SearchSettings, static *world.Static, state PhysState, move Move, shift bool) PlayerState {
	return Apply(&settings, state, static, Action{Move: move, Shift: shift}).Player
}

// Successors appends to dst every state reachable from state with one of
// acts in which the avatar is still alive. An up move directly after an up
// move is not a transition.
func Successors(dst []Successor, settings *SearchSettings, state PhysState, static *world.Static, acts []Action) []Successor {
	for _, act := range acts {
		if act.Move.IsUp() && state.WasStepUpBefore {
			continue
		}
		next := Apply(settings, state, static, act)
		if next.Player.Dead {
			continue
		}
		dst = append(dst, Successor{Action: act, State: next})
	}
	return dst
}

// AllowedActions returns the actions the search expands: allowed moves
// crossed with the shift policy. In platformer mode holding shift on a
// purely vertical move changes nothing, so that variant is dropped, or
// replaced by the released variant when shift is always held.
func AllowedActions(settings SearchSettings) []Action {
	var shifts []bool
	switch {
	case settings.AlwaysShift:
		shifts = []bool{true}
	case settings.DisableShift:
		shifts = []bool{false}
	default:
		shifts = []bool{false, true}
	}

	var acts []Action
	for _, m := range settings.Moves() {
		for _, shift := range shifts {
			if settings.Mode == Platformer && shift && m.IsOnlyVertical() {
				if !settings.AlwaysShift {
					continue
				}
				shift = false
			}
			acts = append(acts, Action{Move: m, Shift: shift})
		}
	}
	return acts
}
