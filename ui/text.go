package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text with its top-left corner at x, y. The color's
// alpha is applied to the whole run. Empty text draws nothing.
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) error {
	if font == nil {
		return fmt.Errorf("font not available")
	}
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: color.R, G: color.G, B: color.B, A: 255})
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	if color.A < 255 {
		texture.SetAlphaMod(color.A)
	}

	dstRect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &dstRect)
}
