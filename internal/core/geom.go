// Package core holds the primitives shared by the simulation and the host:
// intents, event markers, collision boxes and the character screen buffer.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units (y grows upward).
type Box struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// BoxAt builds a box centred on (cx, cy) with the given half extents.
func BoxAt(cx, cy, halfW, halfH float32) Box {
	return Box{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float32 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float32 { return b.MaxY - b.MinY }

// OverlapsX reports whether the horizontal spans of two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.MinX < other.MaxX && other.MinX < b.MaxX
}

// Intersects reports whether two boxes overlap on both axes.
func (b Box) Intersects(other Box) bool {
	if !b.OverlapsX(other) {
		return false
	}
	return b.MinY < other.MaxY && other.MinY < b.MaxY
}

// Within reports whether b lies entirely inside outer. Touching is inside.
func (b Box) Within(outer Box) bool {
	return b.MinX >= outer.MinX && b.MaxX <= outer.MaxX &&
		b.MinY >= outer.MinY && b.MaxY <= outer.MaxY
}

// Rect is an integer rectangle in screen cells, origin at the top-left.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float32 to [lo, hi].
func ClampF(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
