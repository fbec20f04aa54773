// Package core provides fundamental types shared by the game, the loop
// driver and the terminal frontends. It has no terminal dependencies so the
// simulation can be exercised headless.
package core

import "fmt"

// Bounds is the size of the play field in character cells.
// It is fixed once the game starts; there is no resize handling.
type Bounds struct {
	W, H int
}

// Contains returns true if the cell (x, y) lies inside the play field.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// String implements fmt.Stringer.
func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.W, b.H)
}

// Rect represents an axis-aligned run of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
