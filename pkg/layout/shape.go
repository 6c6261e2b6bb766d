package layout

import "math"

// RoundedSpan returns the horizontal extent of a rounded rectangle on the
// scanline at y. ok is false when y is outside the rectangle.
func RoundedSpan(r Rect, radius, y float64) (x0, x1 float64, ok bool) {
	if r.W <= 0 || r.H <= 0 || y < r.Y || y >= r.Y+r.H {
		return 0, 0, false
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return r.X, r.X + r.W, true
	}

	var d float64
	switch {
	case y < r.Y+radius:
		d = r.Y + radius - y
	case y > r.Y+r.H-radius:
		d = y - (r.Y + r.H - radius)
	default:
		return r.X, r.X + r.W, true
	}
	inset := radius - math.Sqrt(max(0, radius*radius-d*d))
	return r.X + inset, r.X + r.W - inset, true
}
