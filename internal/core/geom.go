// Package core provides fundamental types and utilities for the birds game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep the simulation pure and testable.
package core

// Vec is a point or an extent in world units.
// World space has its origin at the centre of the play field with y pointing up.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned bounding box described by its centre and size.
type Box struct {
	X, Y float64 // Centre
	W, H float64 // Width and height
}

// BoxAt builds a box from a centre position and a size.
func BoxAt(pos, size Vec) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Min returns the bottom-left corner of the box.
func (b Box) Min() Vec {
	return Vec{X: b.X - b.W/2, Y: b.Y - b.H/2}
}

// Max returns the top-right corner of the box.
func (b Box) Max() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Collide reports whether two boxes overlap on both axes.
// Boxes that only share an edge do not collide.
func Collide(a, b Box) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if aMin.X >= bMax.X || bMin.X >= aMax.X {
		return false
	}
	if aMin.Y >= bMax.Y || bMin.Y >= aMax.Y {
		return false
	}
	return true
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
