// Package core provides fundamental types and utilities for the breakout engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world pixels.
// Rect is a value type: copies never alias each other.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, always > 0
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not count as an intersection.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Clip returns the overlapping region of the two rectangles.
// The second result is false when the rectangles are disjoint.
//
// Clip is inclusive at the edges: rectangles that only touch yield a
// zero-width or zero-height region, while Intersects reports false for them.
func (r Rect) Clip(other Rect) (Rect, bool) {
	startX := math.Max(r.X, other.X)
	startY := math.Max(r.Y, other.Y)

	endX := math.Min(r.Right(), other.Right())
	endY := math.Min(r.Bottom(), other.Bottom())

	if startX > endX || startY > endY {
		return Rect{}, false
	}

	return NewRect(startX, startY, endX-startX, endY-startY), true
}

// Translate returns a copy of the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return NewRect(r.X+dx, r.Y+dy, r.W, r.H)
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
