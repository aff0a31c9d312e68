package physics

import (
	"fmt"
	"strings"
)

// Move is the directional part of an input: idle or a combination of
// W (up), S (down), A (left) and D (right).
type Move string

const (
	MoveNone Move = "NONE"
	MoveA    Move = "A"
	MoveD    Move = "D"
	MoveW    Move = "W"
	MoveWA   Move = "WA"
	MoveWD   Move = "WD"
	MoveS    Move = "S"
	MoveSA   Move = "SA"
	MoveSD   Move = "SD"
)

var (
	platformerMoves = []Move{MoveNone, MoveA, MoveD, MoveW, MoveWA, MoveWD}
	scrollerMoves   = []Move{MoveNone, MoveA, MoveD, MoveW, MoveWA, MoveWD, MoveS, MoveSA, MoveSD}
)

// MovesFor returns every move available in the given mode, in canonical order.
func MovesFor(mode GameMode) []Move {
	if mode == Scroller {
		return append([]Move(nil), scrollerMoves...)
	}
	return append([]Move(nil), platformerMoves...)
}

// ParseMove parses a move name, case-insensitively.
func ParseMove(s string) (Move, error) {
	name := Move(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range scrollerMoves {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("physics: unknown move %q", s)
}

// ParseMoves parses a comma separated move list. An empty list or "all"
// yields nil, meaning every move of the mode.
func ParseMoves(csv string) ([]Move, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" || strings.EqualFold(csv, "all") {
		return nil, nil
	}

	var moves []Move
	for _, part := range strings.Split(csv, ",") {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String returns the move name.
func (m Move) String() string {
	return string(m)
}

// IsOnlyVertical reports whether the move has no horizontal component.
func (m Move) IsOnlyVertical() bool {
	return m == MoveNone || m == MoveS || m == MoveW
}

func (m Move) IsLeft() bool  { return m == MoveA || m == MoveWA || m == MoveSA }
func (m Move) IsRight() bool { return m == MoveD || m == MoveWD || m == MoveSD }
func (m Move) IsUp() bool    { return m == MoveW || m == MoveWA || m == MoveWD }
func (m Move) IsDown() bool  { return m == MoveS || m == MoveSA || m == MoveSD }

// Action is one tick of input.
type Action struct {
	Move  Move `json:"move"`
	Shift bool `json:"shift"`
}

// String returns e.g. "WA+shift".
func (a Action) String() string {
	if a.Shift {
		return a.Move.String() + "+shift"
	}
	return a.Move.String()
}

// AllActions returns every move of the mode, each with shift held and then
// released.
func AllActions(mode GameMode) []Action {
	moves := MovesFor(mode)
	acts := make([]Action, 0, 2*len(moves))
	for _, m := range moves {
		for _, shift := range [2]bool{true, false} {
			acts = append(acts, Action{Move: m, Shift: shift})
		}
	}
	return acts
}

// Direction is the facing of the avatar.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)
