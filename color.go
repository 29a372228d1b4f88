package sacred

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string ("#RRGGBB" or "RRGGBB").
// Invalid strings produce opaque black, matching the behavior of an
// unset settings value.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Black
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// ScaleAlpha returns a copy of the color with alpha multiplied by f.
func (c RGBA) ScaleAlpha(f float64) RGBA {
	c.A = clamp01(c.A * f)
	return c
}

// BlendHcl blends two colors in the perceptually uniform Hcl space.
// Alpha is interpolated linearly. t=0 returns c, t=1 returns o.
func (c RGBA) BlendHcl(o RGBA, t float64) RGBA {
	t = clamp01(t)
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: o.R, G: o.G, B: o.B}
	m := a.BlendHcl(b, t).Clamped()
	return RGBA{
		R: m.R,
		G: m.G,
		B: m.B,
		A: c.A + t*(o.A-c.A),
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps a value to [0, 255] range.
func clamp255(x float64) float64 {
	return math.Max(0, math.Min(255, x))
}
