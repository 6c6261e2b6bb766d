package card

import (
	"fmt"
	"log"
	"time"

	"card-frame/pkg/layout"
	"card-frame/pkg/performance"
	"card-frame/ui"

	"github.com/veandco/go-sdl2/sdl"
)

const reportEvery = 1800 // frames between performance log lines

// NewCardScreen loads fonts and builds the first card. A failing first build
// is returned to the caller; there is nothing to show without it.
func NewCardScreen(window *sdl.Window, renderer *sdl.Renderer, build Builder) (*CardScreen, error) {
	fonts, err := ui.LoadFonts()
	if err != nil {
		return nil, err
	}
	images, err := ui.NewImages(renderer)
	if err != nil {
		fonts.Close()
		return nil, err
	}

	s := &CardScreen{
		window:   window,
		renderer: renderer,
		fonts:    fonts,
		images:   images,
		painter:  ui.NewPainter(renderer, fonts, images),
		build:    build,
		monitor:  performance.NewFrameMonitor(120),
	}

	if err := s.rebuild(); err != nil {
		s.Close()
		return nil, fmt.Errorf("initial card build failed: %w", err)
	}
	return s, nil
}

// Invalidate asks for the card to be rebuilt on the next Update. Safe to call
// from any goroutine.
func (s *CardScreen) Invalidate() {
	s.dirty.Store(true)
}

// Update rebuilds the card when its inputs changed and re-solves it when the
// window size changed. A failed rebuild keeps the previous card on screen.
func (s *CardScreen) Update() error {
	if s.dirty.Swap(false) {
		if err := s.rebuild(); err != nil {
			log.Printf("Card rebuild failed, keeping previous card: %v", err)
		}
		return nil
	}

	w, h := s.window.GetSize()
	if w != s.width || h != s.height {
		s.solve(w, h)
	}
	return nil
}

func (s *CardScreen) rebuild() error {
	start := time.Now()
	node, err := s.build()
	s.monitor.RecordBuild(time.Since(start), err)
	if err != nil {
		return err
	}

	s.node = node
	s.images.Reset()
	w, h := s.window.GetSize()
	s.solve(w, h)
	log.Printf("Card built | size=%dx%d | took=%s", w, h, time.Since(start))
	return nil
}

func (s *CardScreen) solve(w, h int32) {
	s.width, s.height = w, h
	s.frame = layout.Solve(s.node, layout.Rect{W: float64(w), H: float64(h)}, s.fonts)
}

// Draw renders the card
func (s *CardScreen) Draw() error {
	start := time.Now()

	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()

	if err := s.painter.Draw(s.frame); err != nil {
		return err
	}

	s.renderer.Present()
	s.monitor.RecordPaint(time.Since(start))

	if r := s.monitor.Report(); r.Frames%reportEvery == 0 {
		log.Printf("Performance | paint=%.2fms | build=%.2fms | builds=%d | failed=%d | uptime=%ds",
			r.AvgPaintMs, r.AvgBuildMs, r.Builds, r.FailedBuilds, r.UptimeSeconds)
	}
	return nil
}

// Close releases fonts and textures
func (s *CardScreen) Close() {
	if s.images != nil {
		s.images.Close()
	}
	if s.fonts != nil {
		s.fonts.Close()
	}
}
