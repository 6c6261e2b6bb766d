package ui

import (
	"math"

	"card-frame/pkg/layout"

	"github.com/veandco/go-sdl2/sdl"
)

func sdlColor(c layout.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// scanlines returns the pixel rows a rectangle covers
func scanlines(r layout.Rect) (int32, int32) {
	return int32(math.Floor(r.Y)), int32(math.Ceil(r.Y + r.H))
}

func span(x0, x1 float64, y int32) sdl.Rect {
	left := int32(math.Round(x0))
	return sdl.Rect{X: left, Y: y, W: int32(math.Round(x1)) - left, H: 1}
}

// FillRoundedRect fills r with rounded corners, one scanline at a time
func FillRoundedRect(renderer *sdl.Renderer, r layout.Rect, radius float64, c layout.Color) {
	top, bottom := scanlines(r)
	rects := make([]sdl.Rect, 0, bottom-top)
	for y := top; y < bottom; y++ {
		x0, x1, ok := layout.RoundedSpan(r, radius, float64(y)+0.5)
		if !ok {
			continue
		}
		rects = append(rects, span(x0, x1, y))
	}
	if len(rects) == 0 {
		return
	}
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRects(rects)
}

// StrokeRoundedRect draws a border of the given width just inside r
func StrokeRoundedRect(renderer *sdl.Renderer, r layout.Rect, radius, width float64, c layout.Color) {
	inner := r.Inset(layout.Uniform(width))
	innerRadius := max(0, radius-width)

	top, bottom := scanlines(r)
	rects := make([]sdl.Rect, 0, 2*(bottom-top))
	for y := top; y < bottom; y++ {
		cy := float64(y) + 0.5
		x0, x1, ok := layout.RoundedSpan(r, radius, cy)
		if !ok {
			continue
		}
		ix0, ix1, inside := layout.RoundedSpan(inner, innerRadius, cy)
		if !inside {
			rects = append(rects, span(x0, x1, y))
			continue
		}
		rects = append(rects, span(x0, ix0, y), span(ix1, x1, y))
	}
	if len(rects) == 0 {
		return
	}
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRects(rects)
}
