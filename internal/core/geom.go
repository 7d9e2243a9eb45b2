// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in canvas pixels.
// The simulation works in floating point; the terminal grid uses Rect.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports strict AABB overlap. Touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && b.Right() > o.X && b.Y < o.Bottom() && b.Bottom() > o.Y
}

// OverlapsX reports strict overlap of the horizontal extents only.
func (b Box) OverlapsX(o Box) bool {
	return b.X < o.Right() && b.Right() > o.X
}

// OverlapsY reports strict overlap of the vertical extents only.
func (b Box) OverlapsY(o Box) bool {
	return b.Y < o.Bottom() && b.Bottom() > o.Y
}

// Rect represents an axis-aligned rectangle of screen cells.
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

// Approach moves cur toward target by at most step without overshooting.
func Approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= step
		if cur < target {
			cur = target
		}
	}
	return cur
}
