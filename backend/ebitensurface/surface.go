// Package ebitensurface implements the sacred.Surface contract on an
// ebiten window. It hosts the frame scheduler: ebiten's Update/Draw
// callbacks drive the engine at 60 ticks per second, with exactly one
// draw pass per frame.
package ebitensurface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sacredviz/sacred"
)

// Surface is the interactive backend. Logical coordinates are device
// pixels: the Layout callback scales the window's outside size by the
// device scale factor so strokes stay crisp on high-DPI displays.
type Surface struct {
	width  int
	height int
	title  string

	alpha     float64
	listeners map[sacred.EventType][]sacred.EventHandler

	// screen is the frame's render target, valid between BeginFrame
	// and EndFrame (set by the game adapter's Draw callback).
	screen *ebiten.Image

	whiteImage *ebiten.Image
	whitePixel *ebiten.Image

	cursorIn bool
	disposed bool
}

var _ sacred.Surface = (*Surface)(nil)

// New creates a window surface with the given logical size and title.
func New(width, height int, title string) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		title:     title,
		alpha:     1,
		listeners: make(map[sacred.EventType][]sacred.EventHandler),
	}
}

// Initialize allocates GPU-side helpers. Must run on the game
// goroutine; Run calls it before the first frame.
func (s *Surface) Initialize() error {
	if s.disposed {
		return errors.New("ebitensurface: surface disposed")
	}
	if s.whiteImage != nil {
		return nil
	}
	// A 3x3 white image whose center pixel is used as the triangle
	// texture source, keeping bilinear sampling off the edges.
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	s.whiteImage = white
	s.whitePixel = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return nil
}

// Run opens the window and blocks, driving the engine until the window
// closes. Initialization failure is surfaced to the caller before any
// frame runs.
func (s *Surface) Run(eng *sacred.Engine) error {
	if err := s.Initialize(); err != nil {
		return fmt.Errorf("ebitensurface: initialize: %w", err)
	}
	ebiten.SetWindowTitle(s.title)
	ebiten.SetWindowSize(s.width, s.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{surface: s, engine: eng})
}

// Resize updates the logical dimensions. The actual window size is
// managed by ebiten; listeners fire only on a real change.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if width < 1 || height < 1 {
		return
	}
	s.width, s.height = width, height
	s.emit(sacred.Event{Type: sacred.EventResize, Width: width, Height: height})
}

// Size returns the logical dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear fills the frame with a color.
func (s *Surface) Clear(c sacred.RGBA) {
	if s.screen == nil {
		return
	}
	s.screen.Fill(c.Color())
}

// BeginFrame and EndFrame bracket one draw pass; the render target is
// attached by the game adapter.
func (s *Surface) BeginFrame() {}
func (s *Surface) EndFrame()   { s.screen = nil }

// SetGlobalAlpha multiplies the alpha of subsequent draw calls.
func (s *Surface) SetGlobalAlpha(a float64) {
	s.alpha = math.Max(0, math.Min(1, a))
}

// ResetGlobalAlpha restores full opacity.
func (s *Surface) ResetGlobalAlpha() {
	s.alpha = 1
}

// AddEventListener registers a handler, invoked from the game
// adapter's Update callback between frames.
func (s *Surface) AddEventListener(t sacred.EventType, h sacred.EventHandler) {
	s.listeners[t] = append(s.listeners[t], h)
}

// Dispose releases GPU helpers. Idempotent.
func (s *Surface) Dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true
	if s.whiteImage != nil {
		s.whiteImage.Deallocate()
		s.whiteImage = nil
		s.whitePixel = nil
	}
	s.listeners = nil
	return nil
}

func (s *Surface) emit(ev sacred.Event) {
	for _, h := range s.listeners[ev.Type] {
		h(ev)
	}
}

// pollInput translates ebiten cursor state into surface events.
// Called once per tick, before the engine advances.
func (s *Surface) pollInput() {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < s.width && y < s.height
	if inside {
		s.cursorIn = true
		s.emit(sacred.Event{Type: sacred.EventMouseMove, X: float64(x), Y: float64(y)})
	} else if s.cursorIn {
		s.cursorIn = false
		s.emit(sacred.Event{Type: sacred.EventMouseLeave})
	}
}

// game adapts the surface and engine to ebiten's Game interface.
type game struct {
	surface *Surface
	engine  *sacred.Engine
}

// Update polls input and advances animation time. Settings mutation
// and event handlers run here, between draw passes, preserving the
// engine's single-threaded model.
func (g *game) Update() error {
	g.surface.pollInput()
	g.engine.Advance(1.0 / 60)
	return nil
}

// Draw renders exactly one engine frame onto the screen.
func (g *game) Draw(screen *ebiten.Image) {
	g.surface.screen = screen
	if err := g.engine.Frame(); err != nil {
		sacred.Logger().Warn("frame error", "err", err)
	}
	g.surface.screen = nil
}

// Layout reports the render size in device pixels and propagates
// actual dimension changes to the surface.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	g.surface.Resize(w, h)
	return w, h
}
