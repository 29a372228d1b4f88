package sacred

import (
	"math"
	"testing"
)

func TestNewPaletteStopSpacing(t *testing.T) {
	p := NewPalette(Black, RGB(1, 0, 0), White)
	if len(p.Stops) != 3 {
		t.Fatalf("len(Stops) = %d, want 3", len(p.Stops))
	}
	wantOffsets := []float64{0, 0.5, 1}
	for i, want := range wantOffsets {
		if got := p.Stops[i].Offset; math.Abs(got-want) > 1e-9 {
			t.Errorf("stop %d offset = %v, want %v", i, got, want)
		}
	}
}

func TestPaletteAtEndpoints(t *testing.T) {
	p := NewPalette(Black, White)
	if got := p.At(0, 0); got != Black {
		t.Errorf("At(0) = %v, want black", got)
	}
	// t wraps modulo 1, so exactly 1 samples the first stop again.
	if got := p.At(1, 0); got != Black {
		t.Errorf("At(1) = %v, want black (wrapped)", got)
	}
	if got := p.At(0.999, 0); got.R < 0.9 {
		t.Errorf("At(0.999) = %v, want near white", got)
	}
}

func TestPaletteAtDegenerate(t *testing.T) {
	if got := (Palette{}).At(0.5, 0); got != Transparent {
		t.Errorf("empty palette At = %v, want transparent", got)
	}
	single := NewPalette(RGB(0, 1, 0))
	if got := single.At(0.7, 3); got != RGB(0, 1, 0) {
		t.Errorf("single-stop palette At = %v, want the stop color", got)
	}
}

func TestPaletteAtUnsortedStops(t *testing.T) {
	p := Palette{Stops: []ColorStop{
		{Offset: 1, Color: White},
		{Offset: 0, Color: Black},
	}}
	mid := p.At(0.5, 0)
	if mid.R <= 0.1 || mid.R >= 0.9 {
		t.Errorf("At(0.5) = %v, want a blend between the stops", mid)
	}
	// Sampling must not reorder the caller's slice.
	if p.Stops[0].Offset != 1 {
		t.Error("At mutated the caller's stop order")
	}
}

func TestPaletteCycleShift(t *testing.T) {
	p := NewPalette(Black, White)
	p.CycleDuration = 10

	// A full cycle returns to the same sample.
	a := p.At(0.25, 0)
	b := p.At(0.25, 10)
	if math.Abs(a.R-b.R) > 1e-9 {
		t.Errorf("full cycle changed sample: %v vs %v", a, b)
	}
	// A half cycle does not.
	c := p.At(0.25, 5)
	if math.Abs(a.R-c.R) < 1e-3 {
		t.Errorf("half cycle left sample unchanged: %v vs %v", a, c)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseSine, EaseQuad} {
		if got := e.ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("%v.ease(0) = %v, want 0", e, got)
		}
		if got := e.ease(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%v.ease(1) = %v, want 1", e, got)
		}
		if got := e.ease(0.5); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("%v.ease(0.5) = %v, want 0.5", e, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	for _, e := range []Easing{EaseSine, EaseQuad} {
		prev := e.ease(0)
		for i := 1; i <= 20; i++ {
			cur := e.ease(float64(i) / 20)
			if cur < prev {
				t.Fatalf("%v.ease not monotonic at t=%v", e, float64(i)/20)
			}
			prev = cur
		}
	}
}

func TestBlendHclEndpoints(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 0, 1)
	if got := a.BlendHcl(b, 0); math.Abs(got.R-1) > 0.01 || math.Abs(got.B) > 0.01 {
		t.Errorf("BlendHcl(0) = %v, want %v", got, a)
	}
	if got := a.BlendHcl(b, 1); math.Abs(got.B-1) > 0.01 || math.Abs(got.R) > 0.01 {
		t.Errorf("BlendHcl(1) = %v, want %v", got, b)
	}
}

func TestBlendHclAlphaLerp(t *testing.T) {
	a := White.WithAlpha(1)
	b := White.WithAlpha(0)
	if got := a.BlendHcl(b, 0.5).A; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("blended alpha = %v, want 0.5", got)
	}
}
