package sacred

import (
	"math"
	"testing"
)

func TestChildOffsetClamped(t *testing.T) {
	patterns := []PatternType{
		PatternGoldenSpiral,
		PatternFibonacciGrid,
		PatternPlatonic,
		PatternMetatron,
		PatternSriYantra,
	}
	const radius = 50.0
	limit := offsetClampFactor*radius + 1e-9

	for _, pattern := range patterns {
		for depth := 0; depth < 4; depth++ {
			for count := 1; count <= 8; count++ {
				for i := 0; i < count; i++ {
					off := ChildOffset(pattern, i, count, depth,
						radius, 0.3, 1, true)
					if math.Abs(off.X) > limit || math.Abs(off.Y) > limit {
						t.Errorf("%v i=%d count=%d depth=%d: offset %v exceeds +-%.1f",
							pattern, i, count, depth, off, offsetClampFactor*radius)
					}
				}
			}
		}
	}
}

func TestChildOffsetCircularFallback(t *testing.T) {
	// With sacred positioning off the offset is the plain circular
	// arrangement regardless of pattern.
	for _, pattern := range []PatternType{PatternGoldenSpiral, PatternMetatron} {
		for i := 0; i < 6; i++ {
			got := ChildOffset(pattern, i, 6, 2, 40, 0.5, 1, false)
			want := CircularOffset(i, 6, 40, 0.5)
			if got != want {
				t.Errorf("%v i=%d: got %v, want circular %v", pattern, i, got, want)
			}
		}
	}
}

func TestChildOffsetIntensityBlend(t *testing.T) {
	circular := CircularOffset(2, 5, 60, 0)
	sacred := ChildOffset(PatternGoldenSpiral, 2, 5, 1, 60, 0, 1, true)

	// Intensity zero collapses to circular.
	if got := ChildOffset(PatternGoldenSpiral, 2, 5, 1, 60, 0, 0, true); got != circular {
		t.Errorf("intensity 0: got %v, want %v", got, circular)
	}

	// Half intensity is the midpoint.
	half := ChildOffset(PatternGoldenSpiral, 2, 5, 1, 60, 0, 0.5, true)
	want := circular.Lerp(sacred, 0.5)
	if math.Abs(half.X-want.X) > 1e-9 || math.Abs(half.Y-want.Y) > 1e-9 {
		t.Errorf("intensity 0.5: got %v, want %v", half, want)
	}
}

func TestCircularOffsetSpacing(t *testing.T) {
	const count = 6
	const radius = 30.0
	for i := 0; i < count; i++ {
		off := CircularOffset(i, count, radius, 0)
		if r := off.Length(); math.Abs(r-radius) > 1e-9 {
			t.Errorf("child %d at distance %v, want %v", i, r, radius)
		}
		wantAngle := float64(i) * 2 * math.Pi / count
		if a := math.Atan2(off.Y, off.X); math.Abs(math.Mod(a-wantAngle+3*math.Pi, 2*math.Pi)-math.Pi) > 1e-9 {
			t.Errorf("child %d at angle %v, want %v", i, a, wantAngle)
		}
	}
	if got := CircularOffset(0, 0, radius, 0); got != (Point{}) {
		t.Errorf("zero count: got %v, want origin", got)
	}
}

func TestGoldenSpiralOffsetDepthInterleaving(t *testing.T) {
	// The same child index must land at different angles on different
	// depths so rings do not stack.
	a := goldenSpiralOffset(1, 4, 0, 50, 0)
	b := goldenSpiralOffset(1, 4, 1, 50, 0)
	if a.Distance(b) < 1 {
		t.Errorf("depth 0 and 1 offsets nearly coincide: %v vs %v", a, b)
	}
}

func TestPlatonicOffsetBuckets(t *testing.T) {
	tests := []struct {
		count  int
		setLen int
	}{
		{3, len(tetrahedron2D)},
		{4, len(tetrahedron2D)},
		{5, len(octahedron2D)},
		{6, len(octahedron2D)},
		{7, len(icosahedron2D)},
	}
	for _, tt := range tests {
		// Index setLen wraps back to vertex 0.
		a := platonicOffset(0, tt.count, 40, 0)
		b := platonicOffset(tt.setLen, tt.count, 40, 0)
		if a != b {
			t.Errorf("count %d: index %d did not wrap to vertex 0 (%v vs %v)",
				tt.count, tt.setLen, a, b)
		}
	}
}
