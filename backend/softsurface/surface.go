// Package softsurface implements the sacred.Surface contract on an
// in-memory pixmap using the x/image vector rasterizer. It is the
// headless backend: snapshot rendering, tests, and PNG export.
package softsurface

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sacredviz/sacred"
)

// ErrDisposed is returned when Initialize is called on a disposed
// surface.
var ErrDisposed = errors.New("softsurface: surface disposed")

// Surface renders onto a Pixmap. It is not safe for concurrent use;
// one frame executes at a time per the engine's single-threaded model.
type Surface struct {
	pixmap *Pixmap
	width  int
	height int

	alpha     float64
	listeners map[sacred.EventType][]sacred.EventHandler
	disposed  bool
}

var _ sacred.Surface = (*Surface)(nil)

// New creates a software surface with the given logical dimensions.
// Logical and physical pixels coincide for this backend.
func New(width, height int) *Surface {
	return &Surface{
		pixmap:    NewPixmap(width, height),
		width:     width,
		height:    height,
		alpha:     1,
		listeners: make(map[sacred.EventType][]sacred.EventHandler),
	}
}

// Initialize prepares the surface. It fails on a disposed surface and
// leaves no partial state behind.
func (s *Surface) Initialize() error {
	if s.disposed {
		return ErrDisposed
	}
	return nil
}

// Resize reallocates the pixmap, but only when the dimensions actually
// change. Listeners registered for resize events fire synchronously.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
	s.pixmap = NewPixmap(width, height)
	s.emit(sacred.Event{Type: sacred.EventResize, Width: width, Height: height})
}

// Size returns the current dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Pixmap returns the backing pixmap for export and inspection.
func (s *Surface) Pixmap() *Pixmap {
	return s.pixmap
}

// ExportPNG writes the current frame to a PNG file.
func (s *Surface) ExportPNG(path string) error {
	return s.pixmap.SavePNG(path)
}

// Clear fills the surface with a color.
func (s *Surface) Clear(c sacred.RGBA) {
	s.pixmap.Clear(c)
}

// BeginFrame and EndFrame are no-ops for the software backend; the
// pixmap always holds the latest completed drawing.
func (s *Surface) BeginFrame() {}
func (s *Surface) EndFrame()   {}

// SetGlobalAlpha multiplies the alpha of subsequent draw calls.
func (s *Surface) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.alpha = a
}

// ResetGlobalAlpha restores full opacity.
func (s *Surface) ResetGlobalAlpha() {
	s.alpha = 1
}

// DrawLine strokes a straight segment as a filled quad.
func (s *Surface) DrawLine(p1, p2 sacred.Point, c sacred.RGBA, width float64) {
	dir := p2.Sub(p1)
	if dir.Length() == 0 {
		return
	}
	if width < 0.1 {
		width = 0.1
	}
	half := dir.Normalize().Perp().Mul(width / 2)
	quad := [...]sacred.Point{
		p1.Add(half), p2.Add(half), p2.Sub(half), p1.Sub(half),
	}
	s.fillPoints(quad[:], c)
}

// StrokeCircle outlines a circle as a 64-gon of line quads.
func (s *Surface) StrokeCircle(center sacred.Point, radius float64, c sacred.RGBA, width float64) {
	if radius <= 0 {
		return
	}
	const sides = 64
	prev := circlePoint(center, radius, 0, sides)
	for i := 1; i <= sides; i++ {
		next := circlePoint(center, radius, i, sides)
		s.DrawLine(prev, next, c, width)
		prev = next
	}
}

// FillCircle fills a circle as a 64-gon.
func (s *Surface) FillCircle(center sacred.Point, radius float64, c sacred.RGBA) {
	if radius <= 0 {
		return
	}
	const sides = 64
	pts := make([]sacred.Point, sides)
	for i := range pts {
		pts[i] = circlePoint(center, radius, i, sides)
	}
	s.fillPoints(pts, c)
}

// StrokePolygon outlines a point sequence.
func (s *Surface) StrokePolygon(pts []sacred.Point, c sacred.RGBA, width float64, closed bool) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		s.DrawLine(pts[i], pts[i+1], c, width)
	}
	if closed {
		s.DrawLine(pts[len(pts)-1], pts[0], c, width)
	}
}

// FillPolygon fills the closed region with a flat color.
func (s *Surface) FillPolygon(pts []sacred.Point, c sacred.RGBA) {
	s.fillPoints(pts, c)
}

// FillPolygonGradient fills the closed region with a linear gradient:
// each pixel's color interpolates from from to to by its projection
// onto the start-end axis.
func (s *Surface) FillPolygonGradient(pts []sacred.Point, from, to sacred.RGBA, start, end sacred.Point) {
	if len(pts) < 3 {
		return
	}
	mask, origin := s.maskPoints(pts)
	if mask == nil {
		return
	}

	axis := end.Sub(start)
	axisLenSq := axis.LengthSquared()

	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			t := 0.0
			if axisLenSq > 0 {
				p := sacred.Pt(float64(x+origin.X), float64(y+origin.Y))
				t = p.Sub(start).Dot(axis) / axisLenSq
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			col := lerpRGBA(from, to, t)
			col.A *= s.alpha * float64(a) / 255
			blendPixel(s.pixmap.img, x+origin.X, y+origin.Y, col)
		}
	}
}

// DrawText renders a label with the built-in bitmap face. The size
// parameter is accepted for interface parity; the bitmap face has a
// fixed size.
func (s *Surface) DrawText(str string, pos sacred.Point, c sacred.RGBA, size float64) {
	_ = size
	col := c.ScaleAlpha(s.alpha)
	d := font.Drawer{
		Dst:  s.pixmap.img,
		Src:  image.NewUniform(col.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(pos.X), int(pos.Y)),
	}
	d.DrawString(str)
}

// AddEventListener registers a handler. The software backend fires
// resize events itself; mouse events are injected by the host via
// EmitMouseMove and EmitMouseLeave.
func (s *Surface) AddEventListener(t sacred.EventType, h sacred.EventHandler) {
	s.listeners[t] = append(s.listeners[t], h)
}

// EmitMouseMove injects a cursor position, for headless hosts and
// tests.
func (s *Surface) EmitMouseMove(x, y float64) {
	s.emit(sacred.Event{Type: sacred.EventMouseMove, X: x, Y: y})
}

// EmitMouseLeave injects a cursor departure.
func (s *Surface) EmitMouseLeave() {
	s.emit(sacred.Event{Type: sacred.EventMouseLeave})
}

// Dispose releases the pixmap. Idempotent.
func (s *Surface) Dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true
	s.pixmap = nil
	s.listeners = nil
	return nil
}

func (s *Surface) emit(ev sacred.Event) {
	for _, h := range s.listeners[ev.Type] {
		h(ev)
	}
}

// fillPoints rasterizes a closed polygon with a flat color.
func (s *Surface) fillPoints(pts []sacred.Point, c sacred.RGBA) {
	if len(pts) < 3 || s.pixmap == nil {
		return
	}
	mask, origin := s.maskPoints(pts)
	if mask == nil {
		return
	}
	col := c.ScaleAlpha(s.alpha)
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			px := col
			px.A *= float64(a) / 255
			blendPixel(s.pixmap.img, x+origin.X, y+origin.Y, px)
		}
	}
}

// maskPoints rasterizes the polygon into an alpha mask covering its
// clipped bounding box. Returns nil when the polygon is fully outside
// the surface.
func (s *Surface) maskPoints(pts []sacred.Point) (*image.Alpha, image.Point) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	x0, y0 := int(minX)-1, int(minY)-1
	x1, y1 := int(maxX)+2, int(maxY)+2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if y1 > s.height {
		y1 = s.height
	}
	if x0 >= x1 || y0 >= y1 {
		return nil, image.Point{}
	}

	w, h := x1-x0, y1-y0
	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(pts[0].X-float64(x0)), float32(pts[0].Y-float64(y0)))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X-float64(x0)), float32(p.Y-float64(y0)))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, image.Pt(x0, y0)
}

// blendPixel composites a non-premultiplied color over the pixel.
func blendPixel(img *image.RGBA, x, y int, c sacred.RGBA) {
	if c.A <= 0 {
		return
	}
	if !(image.Pt(x, y).In(img.Bounds())) {
		return
	}
	i := img.PixOffset(x, y)
	sr, sg, sb := c.R*c.A, c.G*c.A, c.B*c.A
	inv := 1 - c.A

	img.Pix[i+0] = clampByte(sr*255 + float64(img.Pix[i+0])*inv)
	img.Pix[i+1] = clampByte(sg*255 + float64(img.Pix[i+1])*inv)
	img.Pix[i+2] = clampByte(sb*255 + float64(img.Pix[i+2])*inv)
	img.Pix[i+3] = clampByte(c.A*255 + float64(img.Pix[i+3])*inv)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// lerpRGBA interpolates two colors component-wise. Per-pixel gradient
// fills use plain linear RGB; the perceptual blend happens upstream
// when palettes are sampled.
func lerpRGBA(a, b sacred.RGBA, t float64) sacred.RGBA {
	return sacred.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// circlePoint returns vertex i of an n-gon approximating a circle.
func circlePoint(center sacred.Point, radius float64, i, n int) sacred.Point {
	a := float64(i) / float64(n) * 2 * math.Pi
	return center.Add(sacred.Pt(radius*math.Cos(a), radius*math.Sin(a)))
}
