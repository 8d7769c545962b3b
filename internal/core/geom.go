// Package core provides fundamental types and utilities for the engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// engine logic pure and testable.
package core

import "fmt"

// EntityID identifies an entity for the lifetime of the engine.
// IDs are handed out in increasing order and never reused.
type EntityID uint64

const (
	InvalidEntityID EntityID = 0
	FirstEntityID   EntityID = 1
)

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales both coordinates, truncating toward zero.
func (p Point) Mul(scalar float64) Point {
	return Point{X: int(float64(p.X) * scalar), Y: int(float64(p.Y) * scalar)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CenterInside returns the origin that centers an inner box inside an outer box.
func CenterInside(outerW, outerH, innerW, innerH int) Point {
	return Point{X: outerW/2 - innerW/2, Y: outerH/2 - innerH/2}
}

// Rect represents an axis-aligned bounding box used for collision detection.
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

// XY returns the top-left corner.
func (r Rect) XY() Point {
	return Point{X: r.X, Y: r.Y}
}

// WH returns the size as a point.
func (r Rect) WH() Point {
	return Point{X: r.W, Y: r.H}
}

// At returns a copy of the rectangle moved to p.
func (r Rect) At(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Empty reports whether both dimensions are below one unit.
// Combined regions are zeroed to mark them consumed, which makes them empty.
func (r Rect) Empty() bool {
	return r.W < 1 && r.H < 1
}

// HasArea reports whether the rectangle covers at least one unit square.
func (r Rect) HasArea() bool {
	return r.W > 0 && r.H > 0
}

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() int {
	if !r.HasArea() {
		return 0
	}
	return r.W * r.H
}

// Inside reports whether r lies entirely within other. Shared edges count.
func (r Rect) Inside(other Rect) bool {
	return r.X >= other.X && r.Right() <= other.Right() &&
		r.Y >= other.Y && r.Bottom() <= other.Bottom()
}

// Intersects reports whether the rectangles overlap or touch.
// Unlike Overlap, rectangles sharing only an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(other.X > r.Right() || other.Right() < r.X ||
		other.Y > r.Bottom() || other.Bottom() < r.Y)
}

// Overlaps is the method form of Overlap.
func (r Rect) Overlaps(other Rect) bool {
	return Overlap(r, other)
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.X, r.Y, r.W, r.H)
}

// Overlap is the AABB test used for collisions. Edges are exclusive, so two
// rectangles that only share a boundary line do not overlap.
func Overlap(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
