// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or direction in world coordinates.
// World space is measured in pixels with y growing downward.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned rectangle in world coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a rectangle from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// RectCentered creates a rectangle of the given size centered on (cx, cy).
func RectCentered(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CircleIntersectsRect reports whether the circle at center with the given radius
// overlaps r. The circle center is clamped into the rectangle and the squared
// distance to that closest point is compared against the squared radius.
// A distance exactly equal to the radius does not count as a hit.
func CircleIntersectsRect(center Vec2, radius float64, r RectF) bool {
	closestX := ClampF(center.X, r.X, r.Right())
	closestY := ClampF(center.Y, r.Y, r.Bottom())

	dx := center.X - closestX
	dy := center.Y - closestY

	return dx*dx+dy*dy < radius*radius
}

// Rect represents an axis-aligned box on the character grid.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
