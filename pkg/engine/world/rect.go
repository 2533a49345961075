package world

// Rect is an axis-aligned rectangle in tile coordinates, inclusive of all
// four edges. Room builders use it both as a carving primitive and as a
// spawn-placement anchor.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect reports whether two rectangles overlap or touch.
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Width returns the rectangle's width.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the rectangle's height.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}
