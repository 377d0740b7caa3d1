package sapling

// Vec2 is a 2D vector used for positions and offsets, e.g. in move-listener
// callbacks.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with the origin at the top-left and Y
// increasing downward. Used for scroll-to targets and resize callbacks.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Edge points count as inside.
func (r Rect) Contains(x, y float64) bool {
	if x < r.X || x > r.X+r.Width {
		return false
	}
	return y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap. Rectangles sharing only
// an edge count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}

// Color is an RGBA color with components in [0, 1], not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}
