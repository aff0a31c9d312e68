package geom

import "github.com/vovakirdan/arcade-pathfinder/internal/rround"

// Rect is an axis-aligned box given by its edges. X1 <= X2 and Y1 <= Y2 are
// expected but not enforced.
type Rect struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	Y1 float64 `json:"y1"`
	Y2 float64 `json:"y2"`
}

// NewRect creates a rectangle with every edge rounded to two digits.
func NewRect(x1, x2, y1, y2 float64) Rect {
	return Rect{X1: x1, X2: x2, Y1: y1, Y2: y2}.Rounded()
}

// Rounded returns r with every edge rounded to two digits.
func (r Rect) Rounded() Rect {
	return Rect{
		X1: rround.Round(r.X1, 2),
		X2: rround.Round(r.X2, 2),
		Y1: rround.Round(r.Y1, 2),
		Y2: rround.Round(r.Y2, 2),
	}
}

// Width returns X2 - X1.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Collides reports whether the rectangles overlap. Touching edges count.
func (r Rect) Collides(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// MPV returns the minimum push vector for o against r: the axis-aligned
// displacement of smallest Manhattan length that separates the two boxes.
// Candidates are tried in the order right, left, up, down and the first
// minimum wins.
func (r Rect) MPV(o Rect) Point {
	candidates := [4]Point{
		{X: r.X2 - o.X1},
		{X: r.X1 - o.X2},
		{Y: r.Y2 - o.Y1},
		{Y: r.Y1 - o.Y2},
	}

	best := candidates[0]
	bestLen := best.ManhattanLen()
	for _, c := range candidates[1:] {
		if l := c.ManhattanLen(); l < bestLen {
			best, bestLen = c, l
		}
	}
	return best
}

// HasCommonEdge reports whether the rectangles are stacked or placed side by
// side with one full edge in common.
func (r Rect) HasCommonEdge(o Rect) bool {
	if r.X1 == o.X1 && r.X2 == o.X2 {
		return r.Y1 == o.Y2 || r.Y2 == o.Y1
	}
	if r.Y1 == o.Y1 && r.Y2 == o.Y2 {
		return r.X1 == o.X2 || r.X2 == o.X1
	}
	return false
}

// Expand grows the rectangle by a on every side.
func (r Rect) Expand(a float64) Rect {
	return NewRect(r.X1-a, r.X2+a, r.Y1-a, r.Y2+a)
}

// Offset translates the rectangle by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return NewRect(r.X1+dx, r.X2+dx, r.Y1+dy, r.Y2+dy)
}

// Hitbox is the collision shape of an object.
type Hitbox struct {
	Rect Rect `json:"rect"`
}

// NewHitbox wraps a rectangle.
func NewHitbox(r Rect) Hitbox {
	return Hitbox{Rect: r}
}

// Collides reports whether the hitboxes overlap.
func (h Hitbox) Collides(o Hitbox) bool {
	return h.Rect.Collides(o.Rect)
}

// MPV returns the push vector for o against h.
func (h Hitbox) MPV(o Hitbox) Point {
	return h.Rect.MPV(o.Rect)
}

// Offset returns the hitbox translated by (dx, dy).
func (h Hitbox) Offset(dx, dy float64) Hitbox {
	return Hitbox{Rect: h.Rect.Offset(dx, dy)}
}

// Leftmost returns the smallest x of the hitbox.
func (h Hitbox) Leftmost() float64 { return h.Rect.X1 }

// Rightmost returns the largest x of the hitbox.
func (h Hitbox) Rightmost() float64 { return h.Rect.X2 }

// Highest returns the largest y of the hitbox.
func (h Hitbox) Highest() float64 { return h.Rect.Y2 }

// Lowest returns the smallest y of the hitbox.
func (h Hitbox) Lowest() float64 { return h.Rect.Y1 }
