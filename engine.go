package sacred

import (
	"fmt"
	"math"
	"strconv"
)

// ErrFrameAborted is returned by Frame when the surface has no usable
// dimensions after a forced-resize retry. The scheduler keeps running;
// the next frame retries from scratch.
var ErrFrameAborted = fmt.Errorf("sacred: frame aborted")

// Stats holds per-frame counters, reset at the start of every frame.
type Stats struct {
	Points      int
	Connections int
	ShapesDrawn int

	NoiseCacheLen   int
	PatternCacheLen int
}

// Engine owns the full render pipeline: the point field, connection
// selection, shape placement and stroke rendering, drawn against a
// Surface once per frame.
//
// The engine is single-threaded by design: settings mutation and event
// handling happen between frames on the frame goroutine, so no locking
// is needed anywhere on the hot path.
type Engine struct {
	surface  Surface
	settings Settings

	noise    *NoiseField
	field    *PointField
	patterns *PatternAssigner
	stroke   *StrokeRenderer

	// conns is reused across frames to avoid per-frame allocation.
	conns []Connection

	time     float64
	stats    Stats
	warned   map[ShapeType]bool
	disposed bool
}

// NewEngine creates an engine drawing onto the surface. The engine
// registers its own mouse and resize listeners on the surface.
func NewEngine(surface Surface, opts ...EngineOption) *Engine {
	defaults := DefaultSettings()
	e := &Engine{
		surface:  surface,
		settings: *defaults.Normalize(),
		warned:   make(map[ShapeType]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.noise == nil {
		e.noise = NewNoiseField(e.settings.Seed)
	}
	e.field = NewPointField()
	e.patterns = NewPatternAssigner(e.settings.Seed)
	e.stroke = NewStrokeRenderer(surface)

	surface.AddEventListener(EventMouseMove, func(ev Event) {
		e.settings.Mouse.Position = Pt(ev.X, ev.Y)
		e.settings.Mouse.Inside = true
	})
	surface.AddEventListener(EventMouseLeave, func(Event) {
		e.settings.Mouse.Inside = false
	})
	surface.AddEventListener(EventResize, func(ev Event) {
		// The point field key includes the viewport, so the next frame
		// regenerates the lattice; nothing else is invalidated.
		Logger().Debug("surface resized", "width", ev.Width, "height", ev.Height)
	})
	return e
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// SetSettings replaces the settings tree. Hosts call this between
// frames; the engine reads the current tree at the start of each frame.
// The live cursor state captured from surface events survives the
// swap, so pushing settings mid-session does not drop mouse influence.
// A seed change reseeds the noise field and pattern assignment.
func (e *Engine) SetSettings(s Settings) {
	old := e.settings.Seed
	pos, inside := e.settings.Mouse.Position, e.settings.Mouse.Inside
	e.settings = *s.Normalize()
	e.settings.Mouse.Position, e.settings.Mouse.Inside = pos, inside
	if e.settings.Seed != old {
		e.noise = NewNoiseField(e.settings.Seed)
		e.patterns = NewPatternAssigner(e.settings.Seed)
	}
}

// Time returns the current animation time.
func (e *Engine) Time() float64 {
	return e.time
}

// Stats returns the counters of the last rendered frame.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Advance moves animation time forward by dt seconds, scaled by the
// configured animation speed.
func (e *Engine) Advance(dt float64) {
	e.time += dt * e.settings.Animation.Speed
}

// Step advances time and renders one frame. This is the scheduler
// entry point.
func (e *Engine) Step(dt float64) error {
	e.Advance(dt)
	return e.Frame()
}

// Frame renders one complete frame at the current time: background,
// axis grid, lattice connections, lattice dots, then shapes. A panic
// anywhere in the pipeline is recovered and logged so one bad shape
// cannot crash the animation loop.
func (e *Engine) Frame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("frame recovered from panic", "panic", r)
			err = fmt.Errorf("sacred: frame panic: %v", r)
		}
	}()

	width, height := e.surface.Size()
	if width <= 0 || height <= 0 {
		// One forced-resize retry, then give up on this frame.
		e.surface.Resize(1, 1)
		width, height = e.surface.Size()
		if width <= 0 || height <= 0 {
			Logger().Warn("frame aborted: surface has no dimensions")
			return ErrFrameAborted
		}
	}

	s := e.settings
	e.stats = Stats{}
	e.stroke.SetTime(e.time)

	e.surface.BeginFrame()
	defer e.surface.EndFrame()

	e.surface.Clear(s.Colors.Background)

	if s.XYGrid.Enabled {
		e.drawXYGrid(width, height)
	}

	e.field.Update(s.Grid.Size, s.Grid.Spacing, width, height, s.Seed)
	points := e.field.Points()
	e.stats.Points = len(points)

	// Collect all connections before any draw call, then render them
	// in a single pass per color mode.
	e.conns = SelectConnections(e.conns[:0], points, width, height,
		s.Grid, s.Mouse, e.noise, e.time)
	e.stats.Connections = len(e.conns)
	e.drawConnections(width)

	if s.Grid.ShowVertices {
		e.drawDots(points)
	}

	e.drawShape(s.Shapes.Primary, width, height)
	e.drawShape(s.Shapes.Secondary, width, height)

	e.stats.NoiseCacheLen = e.noise.CacheLen()
	e.stats.PatternCacheLen = e.patterns.CacheLen()
	return nil
}

// Dispose clears the engine caches and releases the surface.
// Idempotent.
func (e *Engine) Dispose() error {
	if e.disposed {
		return nil
	}
	e.disposed = true
	e.noise.Clear()
	e.patterns.Clear()
	return e.surface.Dispose()
}

// drawConnections renders the collected lattice edges. With a gradient
// palette the color is sampled by horizontal midpoint position; with a
// flat scheme a single color is reused, minimizing state changes.
func (e *Engine) drawConnections(width int) {
	s := e.settings
	gradient := len(s.Colors.Gradient.Lines.Stops) > 1
	flat := Hex(s.Colors.Scheme)

	style := DefaultLineStyle()
	if s.Grid.UseLineFactorySettings {
		style = s.Shapes.Primary.LineStyle
	}

	for _, conn := range e.conns {
		c := flat
		if gradient {
			mid := (conn.A.X + conn.B.X) / 2
			c = s.Colors.Gradient.Lines.At(mid/float64(width), e.time)
		}
		e.stroke.DrawStroke(conn.A.Pos(), conn.B.Pos(),
			c.ScaleAlpha(conn.Opacity), conn.Width, style)
	}
}

// drawDots renders the breathing lattice vertices.
func (e *Engine) drawDots(points []GridPoint) {
	s := e.settings
	gradient := len(s.Colors.Gradient.Dots.Stops) > 1
	flat := Hex(s.Colors.Scheme)

	for i, p := range points {
		breathing := 1 + 0.5*math.Sin(e.time*s.Grid.BreathingSpeed+p.NoiseOffset)*
			s.Grid.BreathingIntensity
		size := s.Grid.BaseDotSize * breathing

		influence := mouseInfluence(p.Pos(), s.Mouse)
		size *= 1 + influence*(s.Mouse.MaxScale-1)
		if size <= 0 {
			continue
		}

		c := flat
		if gradient {
			t := float64(i) / float64(len(points))
			c = s.Colors.Gradient.Dots.At(t, e.time)
		}
		e.surface.FillCircle(p.Pos(), size, c.ScaleAlpha(0.8+0.2*influence))
	}
}

// drawShape renders one configured shape, repeating it per the
// stacking settings; each repetition is an independent run of the
// placement pipeline at a staggered time.
func (e *Engine) drawShape(sh ShapeSettings, width, height int) {
	if !sh.Enabled || sh.Size <= 0 {
		return
	}
	if _, ok := drawerFor(sh.Type); !ok {
		if !e.warned[sh.Type] {
			e.warned[sh.Type] = true
			Logger().Warn("unknown shape type, skipping", "type", int(sh.Type))
		}
		return
	}

	center := Pt(
		float64(width)/2+sh.Position.OffsetX,
		float64(height)/2+sh.Position.OffsetY,
	)

	count := 1
	if sh.Stacking.Enabled && sh.Stacking.Count > 1 {
		count = sh.Stacking.Count
	}
	for k := 0; k < count; k++ {
		t := e.time + sh.Stacking.TimeOffset + float64(k)*sh.Stacking.Interval
		e.drawShapeRecursive(sh, center, sh.Size, sh.Thickness, sh.Opacity,
			sh.Fractal.Depth, t, 0)
	}
}

// drawShapeRecursive draws a shape and, while depth remains, its
// fractal children. Depth strictly decreases on every call, so the
// recursion is bounded by the normalized settings.
func (e *Engine) drawShapeRecursive(sh ShapeSettings, center Point,
	radius, thickness, opacity float64, depth int, t, phase float64) {

	anim := sh.Animation
	rotation := sh.Rotation + t*anim.RotationSpeed + anim.PhaseShift
	pulse := 1 + math.Sin(t*anim.PulseSpeed+phase*2*math.Pi)*anim.PulseDepth

	ctx := &ShapeContext{
		Center:   center,
		Radius:   radius * pulse,
		Rotation: rotation + phase*2*math.Pi,
		Vertices: sh.Vertices,
		Time:     t,
		color:    e.shapeColor(depth).ScaleAlpha(opacity),
		width:    thickness,
		style:    sh.LineStyle,
		stroke:   e.stroke,
	}
	if drawer, ok := drawerFor(sh.Type); ok {
		drawer(ctx)
		e.stats.ShapesDrawn++
	}

	f := sh.Fractal
	if depth < 1 || f.ChildCount < 1 {
		return
	}

	pattern := e.patterns.Assign(sh.Type, sh.Vertices, depth)
	for i := 0; i < f.ChildCount; i++ {
		off := ChildOffset(pattern, i, f.ChildCount, depth,
			radius, rotation, f.SacredIntensity, f.SacredPositioning)

		// Siblings animate slightly out of phase.
		childPhase := phase + float64(i)/float64(f.ChildCount)
		e.drawShapeRecursive(sh, center.Add(off),
			radius*f.Scale,
			thickness*f.ThicknessFalloff,
			opacity*f.ThicknessFalloff,
			depth-1, t, childPhase)
	}
}

// shapeColor samples the shape palette by recursion depth so fractal
// generations shade through the gradient; falls back to the flat
// scheme color.
func (e *Engine) shapeColor(depth int) RGBA {
	g := e.settings.Colors.Gradient.Shapes
	if len(g.Stops) < 2 {
		return Hex(e.settings.Colors.Scheme)
	}
	return g.At(float64(depth)*InvPhi, e.time)
}

// drawXYGrid renders the axis-ruler overlay: center axes, grid lines
// at the configured spacing, ticks and optional coordinate labels.
func (e *Engine) drawXYGrid(width, height int) {
	g := e.settings.XYGrid
	if g.Spacing <= 0 {
		return
	}
	w, h := float64(width), float64(height)
	cx, cy := w/2, h/2
	c := g.Color.ScaleAlpha(g.Opacity)
	faint := c.ScaleAlpha(0.4)

	for x := math.Mod(cx, g.Spacing); x <= w; x += g.Spacing {
		e.surface.DrawLine(Pt(x, 0), Pt(x, h), faint, 1)
	}
	for y := math.Mod(cy, g.Spacing); y <= h; y += g.Spacing {
		e.surface.DrawLine(Pt(0, y), Pt(w, y), faint, 1)
	}

	// Center axes on top, with ticks.
	e.surface.DrawLine(Pt(cx, 0), Pt(cx, h), c, 1)
	e.surface.DrawLine(Pt(0, cy), Pt(w, cy), c, 1)
	for x := math.Mod(cx, g.Spacing); x <= w; x += g.Spacing {
		e.surface.DrawLine(Pt(x, cy-g.TickLength/2), Pt(x, cy+g.TickLength/2), c, 1)
		if g.ShowLabels && math.Abs(x-cx) > g.Spacing/2 {
			label := strconv.Itoa(int(math.Round(x - cx)))
			e.surface.DrawText(label, Pt(x+2, cy+g.TickLength), c, 10)
		}
	}
	for y := math.Mod(cy, g.Spacing); y <= h; y += g.Spacing {
		e.surface.DrawLine(Pt(cx-g.TickLength/2, y), Pt(cx+g.TickLength/2, y), c, 1)
		if g.ShowLabels && math.Abs(y-cy) > g.Spacing/2 {
			label := strconv.Itoa(int(math.Round(y - cy)))
			e.surface.DrawText(label, Pt(cx+g.TickLength, y-2), c, 10)
		}
	}
}
