package entity

import "math"

// Vec2 is a 2D vector in playfield pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance exactly equal to the radius sum) do not overlap.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	sum := r1 + r2
	return dx*dx+dy*dy < sum*sum
}

// CircleRectOverlap reports whether a circle overlaps a rectangle,
// using the closest point of the rectangle to the circle center.
func CircleRectOverlap(c Vec2, r float64, rect Rect) bool {
	nx := clamp(c.X, rect.X, rect.X+rect.W)
	ny := clamp(c.Y, rect.Y, rect.Y+rect.H)
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
