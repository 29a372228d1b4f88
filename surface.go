package sacred

// EventType identifies a surface input event.
type EventType int

const (
	// EventMouseMove fires when the cursor moves over the surface.
	EventMouseMove EventType = iota
	// EventMouseLeave fires when the cursor leaves the surface.
	EventMouseLeave
	// EventResize fires when the surface dimensions change.
	EventResize
)

// Event carries the payload of a surface event. X and Y are cursor
// coordinates for mouse events; Width and Height are the new
// dimensions for resize events.
type Event struct {
	Type   EventType
	X, Y   float64
	Width  int
	Height int
}

// EventHandler receives surface events. Handlers run synchronously on
// the frame goroutine, between frames.
type EventHandler func(Event)

// Surface is the drawing backend contract. One frame is bracketed by
// BeginFrame and EndFrame; all drawing calls happen in between, on a
// single goroutine. Coordinates are in logical pixels; backends handle
// device-pixel-ratio scaling internally.
//
// The interface carries only primitives. Custom geometry is drawn one
// level up: register a ShapeDrawer and build the figure against a
// ShapeContext, which routes every stroke through the full line-style
// pipeline before it reaches these primitives.
//
// Implementations: backend/softsurface (in-memory pixmap, headless and
// test rendering) and backend/ebitensurface (interactive window).
type Surface interface {
	// Initialize prepares the backend. It must be called before any
	// drawing. A failed Initialize leaves no partial surface state.
	Initialize() error

	// Resize changes the logical dimensions. Backends only reallocate
	// when the dimensions actually change.
	Resize(width, height int)

	// Size returns the current logical dimensions.
	Size() (width, height int)

	// Clear fills the whole surface with a color.
	Clear(c RGBA)

	// BeginFrame and EndFrame bracket one draw pass.
	BeginFrame()
	EndFrame()

	// DrawLine strokes a straight segment.
	DrawLine(p1, p2 Point, c RGBA, width float64)

	// StrokeCircle outlines a circle; FillCircle fills one.
	StrokeCircle(center Point, radius float64, c RGBA, width float64)
	FillCircle(center Point, radius float64, c RGBA)

	// StrokePolygon outlines a point sequence, closing it when closed
	// is true. FillPolygon fills the closed region with a flat color;
	// FillPolygonGradient fills it with a linear gradient from the
	// color at start to the color at end.
	StrokePolygon(pts []Point, c RGBA, width float64, closed bool)
	FillPolygon(pts []Point, c RGBA)
	FillPolygonGradient(pts []Point, from, to RGBA, start, end Point)

	// DrawText renders a short label at pos. Size is the font size in
	// logical pixels.
	DrawText(s string, pos Point, c RGBA, size float64)

	// SetGlobalAlpha multiplies the alpha of every subsequent draw
	// call until ResetGlobalAlpha.
	SetGlobalAlpha(a float64)
	ResetGlobalAlpha()

	// AddEventListener registers a handler for an event type.
	// Handlers are invoked between frames on the frame goroutine.
	AddEventListener(t EventType, h EventHandler)

	// Dispose releases backend resources. Idempotent.
	Dispose() error
}
