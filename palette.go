package sacred

import (
	"math"
	"sort"
)

// Easing shapes how a palette position maps to color interpolation.
type Easing int

const (
	// EaseLinear applies no easing.
	EaseLinear Easing = iota
	// EaseSine applies a smooth sinusoidal ease-in-out.
	EaseSine
	// EaseQuad applies a quadratic ease-in-out.
	EaseQuad
)

// ease applies the easing function to t in [0, 1].
func (e Easing) ease(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseSine:
		return 0.5 - 0.5*math.Cos(t*math.Pi)
	case EaseQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	default:
		return t
	}
}

// ColorStop represents a color at a specific position in a palette.
type ColorStop struct {
	Offset float64 // position in the palette, 0.0 to 1.0
	Color  RGBA
}

// Palette is a multi-stop gradient sampled by offset. Sampling blends
// adjacent stops in Hcl space so cycling palettes stay perceptually
// smooth. The zero Palette samples to Transparent.
type Palette struct {
	Stops  []ColorStop
	Easing Easing

	// CycleDuration, when positive, scrolls the palette over time:
	// At(t, time) shifts t by time/CycleDuration before sampling.
	CycleDuration float64
}

// NewPalette creates a palette with evenly spaced stops from the given
// colors in order.
func NewPalette(colors ...RGBA) Palette {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return Palette{Stops: stops}
}

// sortStops returns the stops ordered by offset without modifying the
// original slice.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// At returns the palette color at offset t, shifted by the time-based
// cycle when CycleDuration is set. t wraps modulo 1 so closed outlines
// sample a continuous ring of color.
func (p Palette) At(t, time float64) RGBA {
	if len(p.Stops) == 0 {
		return Transparent
	}
	if len(p.Stops) == 1 {
		return p.Stops[0].Color
	}

	if p.CycleDuration > 0 {
		t += time / p.CycleDuration
	}
	t -= math.Floor(t)
	t = p.Easing.ease(t)

	sorted := sortStops(p.Stops)
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.BlendHcl(s2.Color, localT)
}
