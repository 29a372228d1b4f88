package sacred

import "math"

// strokeSegments is the fixed sample count for curved stroke
// geometry. 40 segments keeps waves smooth at typical lattice scales
// without per-frame allocation pressure.
const strokeSegments = 40

// StrokeRenderer turns abstract line segments into concrete stroke
// geometry on a Surface. It is a thin stateless dispatcher apart from
// the animation time and a reusable sample buffer.
type StrokeRenderer struct {
	surface Surface
	time    float64

	// scratch buffers reused across strokes within a frame.
	pts  []Point
	pts2 []Point
}

// NewStrokeRenderer creates a renderer drawing onto the surface.
func NewStrokeRenderer(s Surface) *StrokeRenderer {
	return &StrokeRenderer{surface: s}
}

// SetTime sets the animation time used by time-animated styles
// (spiral coil phase, ribbon twist, dash offset).
func (r *StrokeRenderer) SetTime(t float64) {
	r.time = t
}

// DrawStroke renders the segment p1-p2 with the given color, base
// width and style. A zero-length segment draws nothing.
func (r *StrokeRenderer) DrawStroke(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	if p1.Distance(p2) == 0 {
		return
	}

	if g := style.Glow; g.Enabled && g.Radius > 0 {
		halo := g.Color
		if halo == (RGBA{}) {
			halo = c
		}
		// Three widening translucent passes approximate a blur halo.
		for pass := 3; pass >= 1; pass-- {
			w := width + g.Radius*float64(pass)/1.5
			a := clamp01(g.Strength) * 0.15 * float64(4-pass)
			r.drawCore(p1, p2, halo.ScaleAlpha(a), w, style)
		}
	}

	if o := style.Outline; o.Enabled && o.Width > 0 {
		r.drawCore(p1, p2, o.Color, width+2*o.Width, style)
	}

	r.drawCore(p1, p2, c, width, style)
}

// drawCore renders one pass of the stroke geometry. Glow and outline
// underlays reuse it with adjusted width and color.
func (r *StrokeRenderer) drawCore(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	switch style.Style {
	case StyleSine, StyleCosine, StyleSquare, StyleTriangle:
		r.drawWave(p1, p2, c, width, style)
	case StyleSpiral:
		r.drawSpiral(p1, p2, c, width, style)
	case StyleRibbon:
		r.drawRibbon(p1, p2, c, style)
	case StyleDouble:
		r.drawDouble(p1, p2, c, width, style)
	case StyleComplexDash:
		r.drawComplexDash(p1, p2, c, width, style)
	default:
		if style.Taper.Type != TaperNone {
			r.drawTaperedLine(p1, p2, c, width, style.Taper)
			return
		}
		r.surface.DrawLine(p1, p2, c, width)
	}
}

// waveCycles returns the number of wave cycles over a segment. When
// looping, the count is forced to a whole number so the waveform
// closes without a seam when the caller reconnects the stroke
// end-to-start.
func waveCycles(frequency, length float64, loop bool) float64 {
	cycles := frequency * length / 30
	if loop {
		cycles = math.Round(cycles)
		if cycles < 1 {
			cycles = 1
		}
	}
	return cycles
}

// waveValue evaluates the wave function for a style at argument x.
func waveValue(style StrokeStyle, x float64) float64 {
	switch style {
	case StyleCosine:
		return math.Cos(x)
	case StyleSquare:
		if math.Sin(x) >= 0 {
			return 1
		}
		return -1
	case StyleTriangle:
		// Piecewise-linear wave with the same period and phase as sine.
		t := fract(x/(2*math.Pi) + 0.25)
		return 1 - math.Abs(t*4-2)
	default:
		return math.Sin(x)
	}
}

// drawWave samples a periodic perpendicular offset along the segment
// and strokes the resulting polyline, interpolating width per segment
// when a taper is configured.
func (r *StrokeRenderer) drawWave(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	length := p1.Distance(p2)
	perp := p2.Sub(p1).Normalize().Perp()
	cycles := waveCycles(style.Wave.Frequency, length, style.LoopLine)

	r.pts = r.pts[:0]
	for s := 0; s <= strokeSegments; s++ {
		t := float64(s) / strokeSegments
		arg := 2*math.Pi*t*cycles + style.Wave.Phase
		offset := waveValue(style.Style, arg) * style.Wave.Amplitude
		r.pts = append(r.pts, p1.Lerp(p2, t).Add(perp.Mul(offset)))
	}
	r.strokePolyline(r.pts, c, width, style.Taper)
}

// drawSpiral coils the stroke: the perpendicular offset oscillates
// with a radius that grows along the segment up to a cap.
func (r *StrokeRenderer) drawSpiral(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	length := p1.Distance(p2)
	perp := p2.Sub(p1).Normalize().Perp()
	sp := style.Spiral

	revolutions := sp.Revolutions * length / 100
	if style.LoopLine {
		revolutions = math.Round(revolutions)
		if revolutions < 1 {
			revolutions = 1
		}
	}

	r.pts = r.pts[:0]
	for s := 0; s <= strokeSegments; s++ {
		t := float64(s) / strokeSegments
		radius := math.Min(sp.MaxRadius, t*sp.Growth*width)
		offset := math.Cos(revolutions*2*math.Pi*t+r.time*sp.Speed) * radius
		r.pts = append(r.pts, p1.Lerp(p2, t).Add(perp.Mul(offset)))
	}
	r.strokePolyline(r.pts, c, width, style.Taper)
}

// drawRibbon fills a twisting band around the centerline: two edge
// paths offset on each side, joined into a closed polygon with a
// gradient along the stroke direction.
func (r *StrokeRenderer) drawRibbon(p1, p2 Point, c RGBA, style LineStyle) {
	length := p1.Distance(p2)
	perp := p2.Sub(p1).Normalize().Perp()
	rb := style.Ribbon

	half := rb.Width / 2
	if half <= 0 {
		half = 2
	}
	twists := rb.Twist * length / 100
	if style.LoopLine {
		twists = math.Round(twists)
		if twists < 1 {
			twists = 1
		}
	}

	r.pts = r.pts[:0]
	r.pts2 = r.pts2[:0]
	for s := 0; s <= strokeSegments; s++ {
		t := float64(s) / strokeSegments
		center := p1.Lerp(p2, t)
		w := math.Sin(twists*2*math.Pi*t+r.time*rb.Speed) * half
		r.pts = append(r.pts, center.Add(perp.Mul(w)))
		r.pts2 = append(r.pts2, center.Sub(perp.Mul(w)))
	}

	// Closed outline: one edge forward, the other edge backward.
	poly := append(r.pts, reverse(r.pts2)...)
	r.surface.FillPolygonGradient(poly, c, c.ScaleAlpha(0.25), p1, p2)
}

// drawDouble strokes two parallel lines, the second thinner.
func (r *StrokeRenderer) drawDouble(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	spacing := style.Double.Spacing
	if spacing <= 0 {
		spacing = width * 2
	}
	scale := style.Double.SecondaryScale
	if scale <= 0 {
		scale = 0.6
	}

	perp := p2.Sub(p1).Normalize().Perp().Mul(spacing / 2)
	r.surface.DrawLine(p1.Add(perp), p2.Add(perp), c, width)
	r.surface.DrawLine(p1.Sub(perp), p2.Sub(perp), c, width*scale)
}

// drawComplexDash walks a repeating dash pattern along the segment.
// When looping, the pattern is rescaled so a whole number of repeats
// exactly covers the segment; the offset animates with time, wrapped
// modulo the pattern length.
func (r *StrokeRenderer) drawComplexDash(p1, p2 Point, c RGBA, width float64, style LineStyle) {
	if !style.Dash.IsDashed() {
		r.surface.DrawLine(p1, p2, c, width)
		return
	}

	length := p1.Distance(p2)
	pattern := style.Dash.effectiveArray()
	patternLen := style.Dash.PatternLength()

	scale := 1.0
	if style.LoopLine {
		repeats := math.Round(length / patternLen)
		if repeats < 1 {
			repeats = 1
		}
		scale = length / (repeats * patternLen)
	}

	offset := math.Mod(style.Dash.Offset+r.time*20, patternLen) * scale
	dir := p2.Sub(p1).Normalize()

	// Walk pattern cells from -offset so the visible window starts
	// mid-pattern.
	pos := -offset
	idx := 0
	for pos < length {
		cell := pattern[idx%len(pattern)] * scale
		if cell > 0 && idx%2 == 0 {
			a := math.Max(0, pos)
			b := math.Min(length, pos+cell)
			if b > a {
				r.surface.DrawLine(
					p1.Add(dir.Mul(a)),
					p1.Add(dir.Mul(b)),
					c, width)
			}
		}
		pos += cell
		idx++
	}
}

// drawTaperedLine strokes a straight segment whose width varies along
// its length.
func (r *StrokeRenderer) drawTaperedLine(p1, p2 Point, c RGBA, width float64, taper TaperConfig) {
	r.pts = r.pts[:0]
	for s := 0; s <= strokeSegments; s++ {
		t := float64(s) / strokeSegments
		r.pts = append(r.pts, p1.Lerp(p2, t))
	}
	r.strokePolyline(r.pts, c, width, taper)
}

// strokePolyline draws consecutive segments, applying the taper width
// at each segment's midpoint parameter.
func (r *StrokeRenderer) strokePolyline(pts []Point, c RGBA, width float64, taper TaperConfig) {
	n := len(pts) - 1
	if n < 1 {
		return
	}
	if taper.Type == TaperNone {
		for i := 0; i < n; i++ {
			r.surface.DrawLine(pts[i], pts[i+1], c, width)
		}
		return
	}
	for i := 0; i < n; i++ {
		t := (float64(i) + 0.5) / float64(n)
		r.surface.DrawLine(pts[i], pts[i+1], c, taper.widthAt(width, t))
	}
}

// reverse returns a reversed copy of pts.
func reverse(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
