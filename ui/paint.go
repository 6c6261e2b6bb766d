package ui

import (
	"log"
	"math"

	"card-frame/pkg/layout"

	"github.com/veandco/go-sdl2/sdl"
)

var iconStyle = layout.TextStyle{SizePt: layout.IconSize, Family: layout.FamilySansSerif}

// Painter draws solved layout frames with an SDL renderer
type Painter struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	images   *Images
}

// NewPainter creates a painter drawing with the given fonts and images
func NewPainter(renderer *sdl.Renderer, fonts *Fonts, images *Images) *Painter {
	return &Painter{renderer: renderer, fonts: fonts, images: images}
}

// Draw paints f and its children: background, content, border, then children
func (p *Painter) Draw(f layout.Frame) error {
	mod := f.Node.Modifier
	if !mod.Background.IsZero() {
		FillRoundedRect(p.renderer, f.Box, mod.Radius, mod.Background)
	}

	switch f.Node.Kind {
	case layout.KindText:
		if font := p.fonts.Get(f.Node.Style); font != nil {
			x, y := pixel(f.Content.X), pixel(f.Content.Y)
			if err := RenderText(p.renderer, f.Node.Text, x, y, sdlColor(f.Node.Style.Color), font); err != nil {
				return err
			}
		}
	case layout.KindIcon:
		if err := p.drawIcon(f); err != nil {
			return err
		}
	case layout.KindImage:
		if err := p.drawImage(f); err != nil {
			return err
		}
	}

	if mod.Border.Width > 0 {
		StrokeRoundedRect(p.renderer, f.Box, mod.Radius, mod.Border.Width, mod.Border.Color)
	}

	for _, c := range f.Children {
		if err := p.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// drawIcon centers the glyph in the icon's content box
func (p *Painter) drawIcon(f layout.Frame) error {
	font := p.fonts.Get(iconStyle)
	if font == nil {
		return nil
	}
	glyph := f.Node.Icon.Glyph()
	w, h := p.fonts.MeasureText(glyph, iconStyle)
	x := f.Content.X + (f.Content.W-w)/2
	y := f.Content.Y + (f.Content.H-h)/2
	return RenderText(p.renderer, glyph, pixel(x), pixel(y), sdlColor(f.Node.Tint), font)
}

// drawImage scales the texture to fit the content box, keeping its aspect.
// An image that cannot be decoded is logged once and left blank.
func (p *Painter) drawImage(f layout.Frame) error {
	tex, err := p.images.Texture(f.Node.Image)
	if err != nil {
		log.Printf("Warning: skipping image | name=%s | %v", f.Node.Name, err)
		return nil
	}
	if tex == nil {
		return nil
	}
	_, _, tw, th, err := tex.Query()
	if err != nil {
		return err
	}
	if tw == 0 || th == 0 || f.Content.W <= 0 || f.Content.H <= 0 {
		return nil
	}

	scale := math.Min(f.Content.W/float64(tw), f.Content.H/float64(th))
	w, h := float64(tw)*scale, float64(th)*scale
	dst := sdl.Rect{
		X: pixel(f.Content.X + (f.Content.W-w)/2),
		Y: pixel(f.Content.Y + (f.Content.H-h)/2),
		W: pixel(w),
		H: pixel(h),
	}
	return p.renderer.Copy(tex, nil, &dst)
}

func pixel(v float64) int32 {
	return int32(math.Round(v))
}
