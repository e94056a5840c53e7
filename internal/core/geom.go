// Package core provides fundamental types and utilities for the game:
// world-space geometry, the input event model, and the screen buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
// World coordinates are Y-up floats, unlike screen cells.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a width/height pair in world units.
type Size struct {
	W, H float64
}

// Box is an axis-aligned bounding box anchored at its bottom-center point.
// Entities in the simulation are positioned by that anchor, so two boxes
// overlap when both per-axis anchor distances are within the summed
// half-extents.
type Box struct {
	Pos  Vec2 // Bottom-center anchor
	Size Size
}

// Overlaps reports whether two boxes collide. The comparison is inclusive:
// boxes whose anchor distance exactly equals the summed half-extents count
// as overlapping.
func (b Box) Overlaps(o Box) bool {
	dx := math.Abs(b.Pos.X - o.Pos.X)
	dy := math.Abs(b.Pos.Y - o.Pos.Y)
	return dx <= (b.Size.W+o.Size.W)/2 && dy <= (b.Size.H+o.Size.H)/2
}

// Rect represents an axis-aligned cell rectangle used for screen drawing.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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
