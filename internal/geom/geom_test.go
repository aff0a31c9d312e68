package geom

import (
	"math"
	"testing"
)

func TestNewRectRounds(t *testing.T) {
	r := NewRect(0.123, 10.006, -2.675, 3.14159)
	expected := Rect{X1: 0.12, X2: 10.01, Y1: -2.67, Y2: 3.14}
	if r != expected {
		t.Errorf("NewRect() = %+v, expected %+v", r, expected)
	}
}

func TestRectCollides(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(5, 15, 5, 15),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(15, 25, 0, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(0, 10, 15, 25),
			expected: false,
		},
		{
			name:     "touching edge counts",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(10, 20, 0, 10),
			expected: true,
		},
		{
			name:     "touching corner counts",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(10, 20, 10, 20),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 20, 0, 20),
			b:        NewRect(5, 10, 5, 10),
			expected: true,
		},
		{
			name:     "gap of one hundredth",
			a:        NewRect(0, 10, 0, 10),
			b:        NewRect(10.01, 20, 0, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Collides(tc.b)
			if result != tc.expected {
				t.Errorf("Collides() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Collides(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Collides() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectMPV(t *testing.T) {
	obstacle := NewRect(0, 100, -50, 0)

	tests := []struct {
		name     string
		other    Rect
		expected Point
	}{
		{"sunk into the top", NewRect(40, 60, -3, 40), Pt(0, 3)},
		{"pushed out to the left", NewRect(-10, 2, -40, -10), Pt(-2, 0)},
		{"pushed out to the right", NewRect(97, 120, -40, -10), Pt(3, 0)},
		{"pushed out below", NewRect(40, 60, -80, -49), Pt(0, -1)},
		{"resting on top", NewRect(40, 60, 0, 46), Pt(0, 0)},
		// Left and up are both 4 away; left is tried first.
		{"tie prefers horizontal", NewRect(-20, 4, -4, 20), Pt(-4, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := obstacle.MPV(tc.other)
			if result != tc.expected {
				t.Errorf("MPV() = %+v, expected %+v", result, tc.expected)
			}
			moved := tc.other.Offset(result.X, result.Y)
			if moved.X1 < obstacle.X2 && moved.X2 > obstacle.X1 && moved.Y1 < obstacle.Y2 && moved.Y2 > obstacle.Y1 {
				t.Errorf("MPV() = %+v leaves %+v overlapping the interior", result, moved)
			}
		})
	}
}

func TestRectHasCommonEdge(t *testing.T) {
	base := NewRect(0, 10, 0, 10)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"stacked above", NewRect(0, 10, 10, 20), true},
		{"stacked below", NewRect(0, 10, -10, 0), true},
		{"side by side", NewRect(10, 20, 0, 10), true},
		{"shifted neighbour", NewRect(10, 20, 1, 11), false},
		{"identical", NewRect(0, 10, 0, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := base.HasCommonEdge(tc.other); result != tc.expected {
				t.Errorf("HasCommonEdge() = %v, expected %v", result, tc.expected)
			}
			if result := tc.other.HasCommonEdge(base); result != tc.expected {
				t.Errorf("HasCommonEdge() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectOffsetAndExpandRound(t *testing.T) {
	r := NewRect(-24, 24, 0, 46)

	moved := r.Offset(0.1, 0.2)
	if expected := (Rect{X1: -23.9, X2: 24.1, Y1: 0.2, Y2: 46.2}); moved != expected {
		t.Errorf("Offset() = %+v, expected %+v", moved, expected)
	}

	grown := r.Expand(0.5)
	if expected := (Rect{X1: -24.5, X2: 24.5, Y1: -0.5, Y2: 46.5}); grown != expected {
		t.Errorf("Expand() = %+v, expected %+v", grown, expected)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 25, 10, 25)

	if r.Width() != 20 {
		t.Errorf("Width() = %v, expected 20", r.Width())
	}
	if r.Height() != 15 {
		t.Errorf("Height() = %v, expected 15", r.Height())
	}
	if c := r.Center(); c != Pt(15, 17.5) {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}
}

func TestHitboxDelegates(t *testing.T) {
	a := NewHitbox(NewRect(0, 10, 0, 10))
	b := NewHitbox(NewRect(8, 18, 0, 10))

	if !a.Collides(b) {
		t.Error("Collides() = false, expected true")
	}
	if mpv := a.MPV(b); mpv != Pt(2, 0) {
		t.Errorf("MPV() = %+v, expected (2, 0)", mpv)
	}
	moved := b.Offset(2, 0)
	if moved.Rect.X1 != 10 {
		t.Errorf("Offset() = %+v, expected X1 = 10", moved.Rect)
	}
	if !moved.Collides(a) {
		t.Error("Collides() after Offset() = false, expected touching edges to collide")
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)

	if p.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", p.Len())
	}
	if p.ManhattanLen() != 7 {
		t.Errorf("ManhattanLen() = %v, expected 7", p.ManhattanLen())
	}
	if o := p.Ortho(); o != Pt(-4, 3) {
		t.Errorf("Ortho() = %+v, expected (-4, 3)", o)
	}
	if d := p.Dot(Pt(1, 2)); d != 11 {
		t.Errorf("Dot() = %v, expected 11", d)
	}
	if u := p.Unit(); math.Abs(u.Len()-1) > 1e-12 {
		t.Errorf("Unit().Len() = %v, expected 1", u.Len())
	}
	if s := p.Sub(Pt(1, 1)).Neg().Scale(2).Div(4); s != Pt(-1, -1.5) {
		t.Errorf("chained ops = %+v, expected (-1, -1.5)", s)
	}
}

func TestPointAngle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same direction", Pt(1, 0), Pt(2, 0), 180},
		{"opposite", Pt(1, 0), Pt(-1, 0), 0},
		{"perpendicular", Pt(1, 0), Pt(0, 5), 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Angle(tc.b)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Angle() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
