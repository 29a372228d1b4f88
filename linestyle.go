package sacred

import "math"

// StrokeStyle selects the geometry a line stroke is rendered with.
type StrokeStyle int

const (
	// StyleStraight draws a single straight segment (the default).
	StyleStraight StrokeStyle = iota
	// StyleSine offsets the stroke by a sine wave.
	StyleSine
	// StyleCosine offsets the stroke by a cosine wave.
	StyleCosine
	// StyleSquare offsets the stroke by a square wave.
	StyleSquare
	// StyleTriangle offsets the stroke by a triangle wave.
	StyleTriangle
	// StyleSpiral coils the stroke with a growing radius.
	StyleSpiral
	// StyleRibbon fills a twisting band around the centerline.
	StyleRibbon
	// StyleDouble draws two parallel strokes.
	StyleDouble
	// StyleComplexDash draws a repeating width pattern.
	StyleComplexDash
)

// String returns the style name used in logs and settings.
func (s StrokeStyle) String() string {
	switch s {
	case StyleStraight:
		return "straight"
	case StyleSine:
		return "sine"
	case StyleCosine:
		return "cosine"
	case StyleSquare:
		return "square"
	case StyleTriangle:
		return "triangle"
	case StyleSpiral:
		return "spiral"
	case StyleRibbon:
		return "ribbon"
	case StyleDouble:
		return "double"
	case StyleComplexDash:
		return "complexdash"
	default:
		return "unknown"
	}
}

// TaperType selects which end(s) of a stroke narrow.
type TaperType int

const (
	// TaperNone disables tapering.
	TaperNone TaperType = iota
	// TaperStart narrows the beginning of the stroke.
	TaperStart
	// TaperEnd narrows the end of the stroke.
	TaperEnd
	// TaperBoth narrows both ends, peaking at the middle.
	TaperBoth
	// TaperMiddle narrows the middle, widest at both ends.
	TaperMiddle
)

// WaveConfig parameterizes the periodic wave styles.
type WaveConfig struct {
	// Amplitude is the peak perpendicular offset in pixels.
	Amplitude float64
	// Frequency scales how many cycles fit per 30 pixels of length.
	Frequency float64
	// Phase is added to the wave argument; animated by the caller.
	Phase float64
}

// TaperConfig narrows stroke width along its length.
// Ratios are relative to the base width; 0.2 means the narrow end is a
// fifth of the base width.
type TaperConfig struct {
	Type       TaperType
	StartWidth float64
	EndWidth   float64
}

// widthAt returns the stroke width at progress t in [0, 1].
func (tc TaperConfig) widthAt(base, t float64) float64 {
	switch tc.Type {
	case TaperStart:
		return base * (tc.StartWidth + (1-tc.StartWidth)*t)
	case TaperEnd:
		return base * (1 + (tc.EndWidth-1)*t)
	case TaperBoth:
		if t < 0.5 {
			return base * (tc.StartWidth + (1-tc.StartWidth)*(t*2))
		}
		return base * (1 + (tc.EndWidth-1)*((t-0.5)*2))
	case TaperMiddle:
		if t < 0.5 {
			return base * (1 + (tc.StartWidth-1)*(t*2))
		}
		return base * (tc.EndWidth + (1-tc.EndWidth)*((t-0.5)*2))
	default:
		return base
	}
}

// SpiralConfig parameterizes the spiral style.
type SpiralConfig struct {
	// Revolutions per 100 pixels of stroke length.
	Revolutions float64
	// Growth scales how quickly the coil radius expands along the
	// stroke, relative to the base width.
	Growth float64
	// MaxRadius caps the coil radius in pixels.
	MaxRadius float64
	// Speed animates the coil phase over time.
	Speed float64
}

// RibbonConfig parameterizes the ribbon style.
type RibbonConfig struct {
	// Width of the band in pixels.
	Width float64
	// Twist is the number of half-turns per 100 pixels of length.
	Twist float64
	// Speed animates the twist phase over time.
	Speed float64
}

// DoubleConfig parameterizes the double-line style.
type DoubleConfig struct {
	// Spacing is the perpendicular gap between the two strokes.
	Spacing float64
	// SecondaryScale is the width of the second stroke relative to the
	// first.
	SecondaryScale float64
}

// DashPattern defines a repeating dash pattern of alternating
// drawn/gap lengths, with an animated offset. An odd-length array is
// logically duplicated to an even pattern, so [5] means [5, 5].
type DashPattern struct {
	Array  []float64
	Offset float64
}

// NewDashPattern creates a dash pattern from alternating dash/gap
// lengths. Negative lengths are made absolute. Returns the zero
// pattern if no positive length is provided.
func NewDashPattern(lengths ...float64) DashPattern {
	any := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if l != 0 {
			any = true
		}
	}
	if !any {
		return DashPattern{}
	}
	return DashPattern{Array: normalized}
}

// WithOffset returns a copy of the pattern with the given offset.
func (d DashPattern) WithOffset(offset float64) DashPattern {
	d.Offset = offset
	return d
}

// PatternLength returns the total length of one complete pattern
// cycle, accounting for odd-length duplication.
func (d DashPattern) PatternLength() float64 {
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern draws anything other than a
// solid line.
func (d DashPattern) IsDashed() bool {
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// effectiveArray returns the array with odd-length arrays duplicated,
// used for pattern iteration.
func (d DashPattern) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// OutlineConfig draws a wider underlay stroke beneath the main stroke.
type OutlineConfig struct {
	Enabled bool
	Color   RGBA
	// Extra width added on each side, in pixels.
	Width float64
}

// GlowConfig draws translucent widening passes beneath the main
// stroke, approximating a blur halo.
type GlowConfig struct {
	Enabled bool
	Color   RGBA
	// Radius of the halo in pixels.
	Radius float64
	// Strength scales the halo opacity, 0..1.
	Strength float64
}

// LineStyle is the full stroke configuration handed to DrawStroke.
// It is a pure value: copying it is cheap and it has no lifecycle.
type LineStyle struct {
	Style   StrokeStyle
	Wave    WaveConfig
	Taper   TaperConfig
	Spiral  SpiralConfig
	Ribbon  RibbonConfig
	Double  DoubleConfig
	Dash    DashPattern
	Outline OutlineConfig
	Glow    GlowConfig

	// LoopLine rescales periodic geometry to an integer number of
	// cycles over the segment so closed outlines join seamlessly.
	LoopLine bool
}

// DefaultLineStyle returns the straight, solid style.
func DefaultLineStyle() LineStyle {
	return LineStyle{}
}

// WithStyle returns a copy of the style with the stroke geometry set.
func (ls LineStyle) WithStyle(s StrokeStyle) LineStyle {
	ls.Style = s
	return ls
}

// WithWave returns a copy with the wave parameters set.
func (ls LineStyle) WithWave(amplitude, frequency float64) LineStyle {
	ls.Wave.Amplitude = amplitude
	ls.Wave.Frequency = frequency
	return ls
}

// WithTaper returns a copy with tapering configured.
func (ls LineStyle) WithTaper(t TaperType, startWidth, endWidth float64) LineStyle {
	ls.Taper = TaperConfig{Type: t, StartWidth: startWidth, EndWidth: endWidth}
	return ls
}

// WithDash returns a copy with a dash pattern set and the style
// switched to StyleComplexDash.
func (ls LineStyle) WithDash(lengths ...float64) LineStyle {
	ls.Dash = NewDashPattern(lengths...)
	ls.Style = StyleComplexDash
	return ls
}

// WithLoop returns a copy with loop-line closure enabled.
func (ls LineStyle) WithLoop() LineStyle {
	ls.LoopLine = true
	return ls
}
