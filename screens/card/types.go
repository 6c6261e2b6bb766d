package card

import (
	"sync/atomic"

	"card-frame/pkg/layout"
	"card-frame/pkg/performance"
	"card-frame/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// Builder produces a fresh card tree from the current inputs
type Builder func() (layout.Node, error)

// CardScreen shows one business card full-screen
type CardScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer

	fonts   *ui.Fonts
	images  *ui.Images
	painter *ui.Painter

	build Builder
	node  layout.Node
	frame layout.Frame

	// Size the current frame was solved for
	width, height int32

	// Set from the watcher goroutine, consumed by Update on the main thread
	dirty atomic.Bool

	monitor *performance.FrameMonitor
}
