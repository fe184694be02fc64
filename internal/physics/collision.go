package physics

import "github.com/vovakirdan/school-survival/internal/core"

// Intersects reports whether two boxes overlap on both axes (half-open).
func Intersects(a, b core.Rect) bool {
	return a.Intersects(b)
}

// IsOnTopOf reports whether the body is landing on or standing on surface:
// the horizontal ranges overlap, the feet lie within
// [surface.Y, surface.Bottom()+tolerance] and the body is not moving up.
func IsOnTopOf(b *Body, surface core.Rect, tolerance float64) bool {
	feet := b.Bottom()
	return b.X < surface.Right() &&
		b.Right() > surface.X &&
		feet >= surface.Y &&
		feet <= surface.Bottom()+tolerance &&
		b.VY >= 0
}

// WithinBounds reports whether r lies inside a w×h field grown by margin.
func WithinBounds(r core.Rect, w, h, margin float64) bool {
	return r.X >= -margin &&
		r.Right() <= w+margin &&
		r.Y >= -margin &&
		r.Bottom() <= h+margin
}

// PassedLeftEdge reports whether r has fully left the field to the left.
func PassedLeftEdge(r core.Rect) bool {
	return r.Right() < 0
}
