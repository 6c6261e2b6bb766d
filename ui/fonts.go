package ui

import (
	"fmt"
	"log"

	"card-frame/pkg/layout"

	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	family layout.Family
	weight layout.Weight
	size   int
}

// Candidate font files per family and weight, tried in order
var fontPaths = map[layout.Family]map[layout.Weight][]string{
	layout.FamilySerif: {
		layout.WeightNormal: {
			"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
			"/usr/share/fonts/TTF/DejaVuSerif.ttf",
			"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
		},
		layout.WeightSemiBold: {
			"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSerif-Bold.ttf",
			"/System/Library/Fonts/Supplemental/Times New Roman Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf",
		},
	},
	layout.FamilySansSerif: {
		layout.WeightNormal: {
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		},
		layout.WeightSemiBold: {
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		},
	},
}

// Fonts opens TrueType fonts on first use and keeps them by family, weight
// and size. It doubles as the layout measurer so the solver sees the same
// metrics the painter draws with.
type Fonts struct {
	fonts    map[fontKey]*ttf.Font
	missing  map[fontKey]bool
	fallback layout.Estimate
}

// LoadFonts initializes TTF
func LoadFonts() (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %v", err)
	}
	return &Fonts{
		fonts:   make(map[fontKey]*ttf.Font),
		missing: make(map[fontKey]bool),
	}, nil
}

// Get returns the font for style, or nil when no candidate file opens
func (f *Fonts) Get(style layout.TextStyle) *ttf.Font {
	key := fontKey{family: style.Family, weight: style.Weight, size: int(style.SizePt + 0.5)}
	if font, ok := f.fonts[key]; ok {
		return font
	}
	if f.missing[key] {
		return nil
	}

	for _, path := range fontPaths[key.family][key.weight] {
		font, err := ttf.OpenFont(path, key.size)
		if err == nil {
			f.fonts[key] = font
			return font
		}
	}
	log.Printf("Warning: no font for family=%d weight=%d size=%d", key.family, key.weight, key.size)
	f.missing[key] = true
	return nil
}

// MeasureText implements layout.Measurer
func (f *Fonts) MeasureText(text string, style layout.TextStyle) (float64, float64) {
	font := f.Get(style)
	if font == nil {
		return f.fallback.MeasureText(text, style)
	}
	if text == "" {
		return 0, float64(font.Height())
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return f.fallback.MeasureText(text, style)
	}
	return float64(w), float64(h)
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for key, font := range f.fonts {
		font.Close()
		delete(f.fonts, key)
	}
	ttf.Quit()
}
