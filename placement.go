package sacred

import "math"

// offsetClampFactor bounds every sacred layout offset so children stay
// inside their parent's footprint.
const offsetClampFactor = 0.9

// CircularOffset is the plain fallback arrangement: children evenly
// spaced on a circle of the parent radius.
func CircularOffset(i, count int, radius, rotation float64) Point {
	if count <= 0 {
		return Point{}
	}
	angle := float64(i)*2*math.Pi/float64(count) + rotation
	return Pt(math.Cos(angle)*radius, math.Sin(angle)*radius)
}

// ChildOffset computes the center offset of fractal child i out of
// count at the given recursion depth, using the selected sacred
// layout. The sacred result is clamped to +-0.9*radius on each axis
// and, when intensity < 1, linearly blended toward the circular
// arrangement. With sacred positioning disabled only the circular
// arrangement is used.
func ChildOffset(pattern PatternType, i, count, depth int,
	radius, rotation, intensity float64, sacred bool) Point {

	circular := CircularOffset(i, count, radius, rotation)
	if !sacred {
		return circular
	}

	var off Point
	switch pattern {
	case PatternGoldenSpiral:
		off = goldenSpiralOffset(i, count, depth, radius, rotation)
	case PatternFibonacciGrid:
		off = fibonacciGridOffset(i, depth, radius, rotation)
	case PatternPlatonic:
		off = platonicOffset(i, count, radius, rotation)
	case PatternMetatron:
		off = metatronOffset(i, depth, radius, rotation)
	case PatternSriYantra:
		off = sriYantraOffset(i, depth, radius, rotation)
	default:
		off = circular
	}

	limit := offsetClampFactor * radius
	off.X = clampAbs(off.X, limit)
	off.Y = clampAbs(off.Y, limit)

	if intensity < 1 {
		return circular.Lerp(off, clamp01(intensity))
	}
	return off
}

// goldenSpiralOffset walks the phyllotaxis spiral. Deeper recursion
// levels advance the golden angle faster so sibling rings at different
// depths interleave instead of stacking.
func goldenSpiralOffset(i, count, depth int, radius, baseAngle float64) Point {
	angle := baseAngle + GoldenAngle*float64(i)*float64(depth+1)

	exp := 0.0
	if count > 1 {
		exp = float64(i) / float64(count-1)
	}
	r := radius * (0.6 + 0.4*math.Pow(Phi, -exp))
	return Pt(math.Cos(angle)*r, math.Sin(angle)*r)
}

// fibonacciGridOffset maps two Fibonacci lookups through the golden
// conjugate into a low-discrepancy [-1, 1] pair, rotated by half the
// base angle.
func fibonacciGridOffset(i, depth int, radius, baseAngle float64) Point {
	fa := fib(i)
	fb := fib(i + depth + 1)

	nx := 2*fract(fa*InvPhi) - 1
	ny := 2*fract(fb*InvPhi) - 1

	p := Pt(nx, ny).Rotate(baseAngle * 0.5)
	return p.Mul(0.75 * radius)
}

// Projected platonic vertex sets, unit scale. The bucket by child
// count picks the solid whose symmetry best matches the child count.
var (
	tetrahedron2D = []Point{
		{0, -1}, {0.943, 0.471}, {-0.943, 0.471}, {0, 0},
	}
	octahedron2D = []Point{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {0.707, 0.707}, {-0.707, -0.707},
	}
	icosahedron2D = buildIcosahedron2D()
)

// buildIcosahedron2D projects the icosahedron as two interleaved
// hexagonal rings, the inner scaled by the golden conjugate.
func buildIcosahedron2D() []Point {
	pts := make([]Point, 0, 12)
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		pts = append(pts, Pt(math.Cos(a), math.Sin(a)))
	}
	for k := 0; k < 6; k++ {
		a := float64(k)*math.Pi/3 + math.Pi/6
		pts = append(pts, Pt(math.Cos(a)*InvPhi, math.Sin(a)*InvPhi))
	}
	return pts
}

// platonicOffset places children on the vertex set selected by the
// child-count bucket, scaled into the 0.7-0.8 radius band.
func platonicOffset(i, count int, radius, baseAngle float64) Point {
	var set []Point
	var scale float64
	switch {
	case count <= 4:
		set, scale = tetrahedron2D, 0.75
	case count <= 6:
		set, scale = octahedron2D, 0.7
	default:
		set, scale = icosahedron2D, 0.8
	}
	v := set[i%len(set)]
	return v.Rotate(baseAngle).Mul(scale * radius)
}

// metatronOffset places children on the six-fold ring slices of
// Metatron's cube: three rings, six segments each.
func metatronOffset(i, depth int, radius, baseAngle float64) Point {
	n := i + depth
	ring := 1 + (n/6)%3
	segment := n % 6

	angle := float64(segment)*(2*math.Pi/6) + baseAngle
	r := (0.3 + 0.2*float64(ring)) * radius
	return Pt(math.Cos(angle)*r, math.Sin(angle)*r)
}

// sriYantraOffset alternates upward and downward triangle vertices by
// the parity of (i+depth); downward triangles are offset by pi/3.
func sriYantraOffset(i, depth int, radius, baseAngle float64) Point {
	n := i + depth
	vertex := (i / 2) % 3
	angle := baseAngle + float64(vertex)*(2*math.Pi/3)

	r := 0.65 * radius
	if n%2 != 0 {
		angle += math.Pi / 3
		r = 0.55 * radius
	}
	return Pt(math.Cos(angle)*r, math.Sin(angle)*r)
}

// fract returns the fractional part of x in [0, 1).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// clampAbs clamps v to [-limit, limit].
func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
