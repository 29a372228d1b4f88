package sacred

import "math"

// ShapeType enumerates the drawable shape variants.
type ShapeType int

const (
	// ShapeCircle is a plain ring.
	ShapeCircle ShapeType = iota
	// ShapePolygon is a regular polygon with a configurable vertex count.
	ShapePolygon
	// ShapeStar alternates outer and golden-conjugate inner vertices.
	ShapeStar
	// ShapeHexagon is a regular hexagon.
	ShapeHexagon
	// ShapePentagon is a regular pentagon.
	ShapePentagon
	// ShapeFlowerOfLife is the seven-circle seed pattern with an outer ring.
	ShapeFlowerOfLife
	// ShapeMerkaba is the hexagram of two interlocked triangles.
	ShapeMerkaba
	// ShapeMetatronCube is the fruit-of-life circles joined by every chord.
	ShapeMetatronCube
	// ShapeSpiral is a golden spiral winding inward.
	ShapeSpiral
	// ShapeLissajous is a closed Lissajous figure.
	ShapeLissajous
	// ShapeMandala is concentric rotated polygon rings with vertex beads.
	ShapeMandala
)

// String returns the shape name used in logs and settings.
func (t ShapeType) String() string {
	switch t {
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	case ShapeStar:
		return "star"
	case ShapeHexagon:
		return "hexagon"
	case ShapePentagon:
		return "pentagon"
	case ShapeFlowerOfLife:
		return "floweroflife"
	case ShapeMerkaba:
		return "merkaba"
	case ShapeMetatronCube:
		return "metatronscube"
	case ShapeSpiral:
		return "spiral"
	case ShapeLissajous:
		return "lissajous"
	case ShapeMandala:
		return "mandala"
	default:
		return "unknown"
	}
}

// ShapeContext is handed to shape drawers. It carries the placement of
// the shape plus a line helper bound to the active stroke renderer,
// color, width and style, so drawers can use the full stroke feature
// set without holding a surface reference themselves.
type ShapeContext struct {
	Center   Point
	Radius   float64
	Rotation float64
	Vertices int
	Time     float64

	color  RGBA
	width  float64
	style  LineStyle
	stroke *StrokeRenderer
}

// Line draws one segment with the bound stroke configuration.
func (c *ShapeContext) Line(p1, p2 Point) {
	c.stroke.DrawStroke(p1, p2, c.color, c.width, c.style)
}

// Ring draws a circle outline. With a plain straight style it goes
// through the surface circle primitive; styled strokes approximate the
// circle as a closed polygon so waves and dashes apply.
func (c *ShapeContext) Ring(center Point, radius float64) {
	if radius <= 0 {
		return
	}
	if c.style.Style == StyleStraight && c.style.Taper.Type == TaperNone {
		c.stroke.surface.StrokeCircle(center, radius, c.color, c.width)
		return
	}

	const sides = 24
	style := c.style
	style.LoopLine = true
	prev := ringPoint(center, radius, c.Rotation, 0, sides)
	for i := 1; i <= sides; i++ {
		next := ringPoint(center, radius, c.Rotation, i, sides)
		c.stroke.DrawStroke(prev, next, c.color, c.width, style)
		prev = next
	}
}

// loop draws a closed polygon through the bound stroke with loop-line
// closure enabled so periodic styles join seamlessly at the seam.
func (c *ShapeContext) loop(pts []Point) {
	if len(pts) < 2 {
		return
	}
	style := c.style
	style.LoopLine = true
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		c.stroke.DrawStroke(pts[i], next, c.color, c.width, style)
	}
}

// ringPoint returns vertex i of a regular n-gon.
func ringPoint(center Point, radius, rotation float64, i, n int) Point {
	a := rotation + float64(i)*2*math.Pi/float64(n)
	return center.Add(Pt(math.Cos(a)*radius, math.Sin(a)*radius))
}

// polygonPoints builds the vertices of a regular n-gon.
func polygonPoints(center Point, radius, rotation float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = ringPoint(center, radius, rotation, i, n)
	}
	return pts
}

// ShapeDrawer draws one shape variant through the context's bound
// line helper.
type ShapeDrawer func(*ShapeContext)

// shapeDrawers is the registry of drawers, one per enumerated variant.
var shapeDrawers = map[ShapeType]ShapeDrawer{
	ShapeCircle:       drawCircleShape,
	ShapePolygon:      drawPolygonShape,
	ShapeStar:         drawStarShape,
	ShapeHexagon:      func(c *ShapeContext) { c.loop(polygonPoints(c.Center, c.Radius, c.Rotation, 6)) },
	ShapePentagon:     func(c *ShapeContext) { c.loop(polygonPoints(c.Center, c.Radius, c.Rotation, 5)) },
	ShapeFlowerOfLife: drawFlowerOfLife,
	ShapeMerkaba:      drawMerkaba,
	ShapeMetatronCube: drawMetatronCube,
	ShapeSpiral:       drawSpiralShape,
	ShapeLissajous:    drawLissajous,
	ShapeMandala:      drawMandala,
}

// drawerFor looks up the registered drawer for a shape type.
func drawerFor(t ShapeType) (ShapeDrawer, bool) {
	d, ok := shapeDrawers[t]
	return d, ok
}

func drawCircleShape(c *ShapeContext) {
	c.Ring(c.Center, c.Radius)
}

func drawPolygonShape(c *ShapeContext) {
	n := c.Vertices
	if n < 3 {
		n = 3
	}
	c.loop(polygonPoints(c.Center, c.Radius, c.Rotation, n))
}

// drawStarShape alternates the full radius with the golden-conjugate
// inner radius.
func drawStarShape(c *ShapeContext) {
	n := c.Vertices
	if n < 3 {
		n = 5
	}
	pts := make([]Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := c.Radius
		if i%2 != 0 {
			r *= InvPhi * InvPhi
		}
		a := c.Rotation + float64(i)*math.Pi/float64(n)
		pts = append(pts, c.Center.Add(Pt(math.Cos(a)*r, math.Sin(a)*r)))
	}
	c.loop(pts)
}

// drawFlowerOfLife draws the seed of life: a center circle, six
// petals on the half-radius ring, and the enclosing ring.
func drawFlowerOfLife(c *ShapeContext) {
	half := c.Radius / 2
	c.Ring(c.Center, half)
	for i := 0; i < 6; i++ {
		a := c.Rotation + float64(i)*math.Pi/3
		c.Ring(c.Center.Add(Pt(math.Cos(a)*half, math.Sin(a)*half)), half)
	}
	c.Ring(c.Center, c.Radius)
}

// drawMerkaba draws the hexagram: an upward and a downward triangle.
func drawMerkaba(c *ShapeContext) {
	c.loop(polygonPoints(c.Center, c.Radius, c.Rotation-math.Pi/2, 3))
	c.loop(polygonPoints(c.Center, c.Radius, c.Rotation+math.Pi/2, 3))
}

// drawMetatronCube draws the thirteen fruit-of-life circles and the
// chords connecting every pair of centers.
func drawMetatronCube(c *ShapeContext) {
	step := c.Radius / 3
	centers := make([]Point, 0, 13)
	centers = append(centers, c.Center)
	for ring := 1; ring <= 2; ring++ {
		for i := 0; i < 6; i++ {
			a := c.Rotation + float64(i)*math.Pi/3
			centers = append(centers,
				c.Center.Add(Pt(math.Cos(a), math.Sin(a)).Mul(step*float64(ring))))
		}
	}

	for _, p := range centers {
		c.Ring(p, step/2)
	}
	for i := 0; i < len(centers); i++ {
		for j := i + 1; j < len(centers); j++ {
			c.Line(centers[i], centers[j])
		}
	}
}

// drawSpiralShape winds a golden spiral inward from the shape radius:
// the radius shrinks by 1/Phi every quarter turn.
func drawSpiralShape(c *ShapeContext) {
	const (
		turns   = 3.0
		samples = 96
	)
	prev := Point{}
	for s := 0; s <= samples; s++ {
		theta := float64(s) / samples * turns * 2 * math.Pi
		r := c.Radius * math.Pow(Phi, -theta/(math.Pi/2))
		p := c.Center.Add(Pt(
			math.Cos(theta+c.Rotation)*r,
			math.Sin(theta+c.Rotation)*r))
		if s > 0 {
			c.Line(prev, p)
		}
		prev = p
	}
}

// drawLissajous traces a closed Lissajous figure whose frequency pair
// derives from the vertex count.
func drawLissajous(c *ShapeContext) {
	a := float64(c.Vertices)
	if a < 2 {
		a = 3
	}
	b := a - 1

	const samples = 128
	prev := Point{}
	for s := 0; s <= samples; s++ {
		t := float64(s) / samples * 2 * math.Pi
		p := c.Center.Add(Pt(
			math.Sin(a*t+c.Rotation)*c.Radius,
			math.Sin(b*t)*c.Radius))
		if s > 0 {
			c.Line(prev, p)
		}
		prev = p
	}
}

// drawMandala layers rotated polygon rings scaled by the golden
// conjugate, with bead circles on the outermost vertices.
func drawMandala(c *ShapeContext) {
	n := c.Vertices
	if n < 3 {
		n = 8
	}

	r := c.Radius
	for ring := 0; ring < 3; ring++ {
		rot := c.Rotation + float64(ring)*math.Pi/float64(n)
		c.loop(polygonPoints(c.Center, r, rot, n))
		r *= InvPhi
	}

	bead := c.Radius * (1 - InvPhi) / 3
	for i := 0; i < n; i++ {
		c.Ring(ringPoint(c.Center, c.Radius, c.Rotation, i, n), bead)
	}
}
