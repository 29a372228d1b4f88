package sacred

// Settings is the complete configuration tree the engine reads at the
// start of every frame. It arrives as an in-memory value from the host
// (UI panels, audio bridge); the engine never mutates it.
type Settings struct {
	Grid      GridSettings
	Colors    ColorSettings
	Shapes    ShapePair
	Mouse     MouseSettings
	Animation AnimationSettings
	XYGrid    XYGridSettings

	// Seed drives every deterministic pseudo-random decision: lattice
	// phases, pattern assignment, noise. Identical seeds reproduce
	// identical compositions.
	Seed int64
}

// GridSettings configures the background lattice.
type GridSettings struct {
	Size                   int     // lattice radius in cells
	Spacing                float64 // cell spacing in pixels
	BaseDotSize            float64
	ConnectionOpacity      float64
	NoiseIntensity         float64
	LineWidthMultiplier    float64
	BreathingSpeed         float64
	BreathingIntensity     float64
	ShowVertices           bool
	UseLineFactorySettings bool // route lattice lines through the stroke styles
}

// ColorSettings configures the frame background and per-target
// gradient palettes.
type ColorSettings struct {
	Background RGBA
	Scheme     string
	Gradient   GradientSettings
}

// GradientSettings holds the palettes sampled by lines, dots and
// shapes. When a palette has fewer than two stops the flat scheme
// color is used instead.
type GradientSettings struct {
	Lines         Palette
	Dots          Palette
	Shapes        Palette
	Easing        Easing
	CycleDuration float64
}

// ShapePair holds the two composable foreground shapes.
type ShapePair struct {
	Primary   ShapeSettings
	Secondary ShapeSettings
}

// ShapeSettings describes one fractalized shape.
type ShapeSettings struct {
	Type      ShapeType
	Enabled   bool
	Size      float64
	Thickness float64
	Opacity   float64
	Rotation  float64
	Vertices  int // vertex count for polygon/star types
	Position  PositionOffset
	Fractal   FractalSettings
	Animation ShapeAnimation
	Stacking  StackingSettings
	LineStyle LineStyle
}

// PositionOffset displaces a shape from the viewport center.
type PositionOffset struct {
	OffsetX, OffsetY float64
}

// FractalSettings controls recursive child placement.
// Depth strictly decreases on each recursive call; recursion stops
// when no depth remains.
type FractalSettings struct {
	Depth             int
	Scale             float64 // child radius factor per level
	ChildCount        int
	ThicknessFalloff  float64
	SacredPositioning bool
	SacredIntensity   float64 // blend toward sacred layouts, 0..1
}

// ShapeAnimation animates a shape over time.
type ShapeAnimation struct {
	RotationSpeed float64
	PulseSpeed    float64
	PulseDepth    float64 // size modulation amplitude, 0..1
	PhaseShift    float64 // injected per-child so siblings animate out of phase
}

// StackingSettings draws the same shape multiple times at staggered
// time offsets.
type StackingSettings struct {
	Enabled    bool
	Count      int
	TimeOffset float64
	Interval   float64
}

// MouseSettings configures cursor influence on the lattice.
type MouseSettings struct {
	Position        Point
	Inside          bool
	InfluenceRadius float64
	MaxScale        float64
}

// AnimationSettings scales the global time advance.
type AnimationSettings struct {
	Speed float64
}

// XYGridSettings configures the optional axis-ruler overlay.
type XYGridSettings struct {
	Enabled    bool
	Spacing    float64
	TickLength float64
	ShowLabels bool
	Color      RGBA
	Opacity    float64
}

// DefaultSettings returns a settings tree that renders a reasonable
// composition out of the box: a breathing lattice plus one fractal
// flower-of-life.
func DefaultSettings() Settings {
	return Settings{
		Grid: GridSettings{
			Size:                6,
			Spacing:             80,
			BaseDotSize:         2.0,
			ConnectionOpacity:   0.35,
			NoiseIntensity:      1.0,
			LineWidthMultiplier: 1.0,
			BreathingSpeed:      0.5,
			BreathingIntensity:  1.0,
			ShowVertices:        true,
		},
		Colors: ColorSettings{
			Background: Hex("#0a0a12"),
			Scheme:     "#ffd700",
			Gradient: GradientSettings{
				Lines:         NewPalette(Hex("#ffd700"), Hex("#b06bff")),
				Dots:          NewPalette(Hex("#ffffff"), Hex("#ffd700")),
				Shapes:        NewPalette(Hex("#ffd700"), Hex("#ff6bb0"), Hex("#6bd0ff")),
				Easing:        EaseSine,
				CycleDuration: 12,
			},
		},
		Shapes: ShapePair{
			Primary: ShapeSettings{
				Type:      ShapeFlowerOfLife,
				Enabled:   true,
				Size:      160,
				Thickness: 1.5,
				Opacity:   0.9,
				Vertices:  6,
				Fractal: FractalSettings{
					Depth:             2,
					Scale:             0.45,
					ChildCount:        5,
					ThicknessFalloff:  0.7,
					SacredPositioning: true,
					SacredIntensity:   1.0,
				},
				Animation: ShapeAnimation{
					RotationSpeed: 0.1,
					PulseSpeed:    0.6,
					PulseDepth:    0.08,
				},
			},
			Secondary: ShapeSettings{
				Type:      ShapeMerkaba,
				Size:      90,
				Thickness: 1.0,
				Opacity:   0.5,
				Vertices:  3,
				Fractal: FractalSettings{
					Scale:            0.5,
					ChildCount:       3,
					ThicknessFalloff: 0.7,
				},
			},
		},
		Mouse: MouseSettings{
			InfluenceRadius: 200,
			MaxScale:        2.5,
		},
		Animation: AnimationSettings{Speed: 1.0},
		XYGrid: XYGridSettings{
			Spacing:    100,
			TickLength: 6,
			Color:      Hex("#3a3a52"),
			Opacity:    0.6,
		},
		Seed: 1,
	}
}

// maxFractalDepth bounds recursion regardless of host input. Depth is
// strictly decreasing, so this also bounds the call stack.
const maxFractalDepth = 8

// Normalize clamps out-of-range values in place so a careless host
// cannot drive the engine into unbounded recursion or negative
// geometry. Returns the receiver for chaining.
func (s *Settings) Normalize() *Settings {
	g := &s.Grid
	if g.Size < 0 {
		g.Size = 0
	}
	if g.Spacing <= 0 {
		g.Spacing = 1
	}
	if g.ConnectionOpacity < 0 {
		g.ConnectionOpacity = 0
	}

	for _, sh := range []*ShapeSettings{&s.Shapes.Primary, &s.Shapes.Secondary} {
		f := &sh.Fractal
		if f.Depth < 0 {
			f.Depth = 0
		}
		if f.Depth > maxFractalDepth {
			f.Depth = maxFractalDepth
		}
		if f.ChildCount < 0 {
			f.ChildCount = 0
		}
		f.SacredIntensity = clamp01(f.SacredIntensity)
		if sh.Size < 0 {
			sh.Size = 0
		}
		sh.Opacity = clamp01(sh.Opacity)
		if st := &sh.Stacking; st.Enabled && st.Count < 1 {
			st.Count = 1
		}
	}

	if s.Mouse.InfluenceRadius <= 0 {
		s.Mouse.InfluenceRadius = 1
	}
	return s
}
