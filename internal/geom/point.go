// Package geom provides the planar primitives of the physics model: points,
// axis-aligned rectangles and hitboxes. Rectangle coordinates are kept
// rounded to two decimal places.
package geom

import "math"

// Point is a 2D vector in world units. Y grows upwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div divides both components by k.
func (p Point) Div(k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Dot returns the dot product.
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Len returns the Euclidean length.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// ManhattanLen returns |x| + |y|.
func (p Point) ManhattanLen() float64 {
	return math.Abs(p.X) + math.Abs(p.Y)
}

// Unit returns p scaled to length 1. The zero vector has no direction and
// yields NaN components.
func (p Point) Unit() Point {
	return p.Div(p.Len())
}

// Ortho returns p rotated by 90 degrees counter-clockwise.
func (p Point) Ortho() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns 180 minus the angle between p and o, in degrees.
func (p Point) Angle(o Point) float64 {
	cos := Clamp(p.Unit().Dot(o.Unit()), -1, 1)
	return 180 - math.Acos(cos)*180/math.Pi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
