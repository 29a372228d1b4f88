package sacred

import (
	"math"
	"math/rand"
)

// GridPoint is one anchor of the background lattice. Points are
// immutable once generated for a given grid configuration.
type GridPoint struct {
	X, Y float64

	// NoiseOffset is a per-point random phase consumed by the
	// breathing animation so neighboring dots pulse out of sync.
	NoiseOffset float64
}

// Pos returns the point position as a Point.
func (g GridPoint) Pos() Point {
	return Point{X: g.X, Y: g.Y}
}

// fieldKey captures everything point generation depends on. The field
// is regenerated only when the key changes, never per frame.
type fieldKey struct {
	size    int
	spacing float64
	width   int
	height  int
	seed    int64
}

// PointField builds and caches the lattice of anchor points. A square
// lattice [-N, N] x [-N, N] is centered on the viewport, each point
// offset by a golden-ratio perturbation to break grid regularity.
type PointField struct {
	points []GridPoint
	key    fieldKey
}

// NewPointField returns an empty field; the first Update populates it.
func NewPointField() *PointField {
	return &PointField{}
}

// Points returns the current lattice. The slice is owned by the field
// and valid until the next Update.
func (f *PointField) Points() []GridPoint {
	return f.points
}

// Update regenerates the lattice if the grid configuration or viewport
// changed. Returns true when regeneration happened.
func (f *PointField) Update(size int, spacing float64, width, height int, seed int64) bool {
	key := fieldKey{size: size, spacing: spacing, width: width, height: height, seed: seed}
	if key == f.key && f.points != nil {
		return false
	}
	f.key = key
	f.points = generatePoints(key)
	Logger().Debug("point field regenerated",
		"points", len(f.points), "size", size, "spacing", spacing)
	return true
}

// generatePoints builds the lattice for a fixed configuration.
func generatePoints(key fieldKey) []GridPoint {
	radius := key.size

	// Bound cost on large viewports: there is no reason to generate
	// points far beyond the visible diagonal.
	diag := math.Hypot(float64(key.width), float64(key.height))
	visible := int(diag/(2*key.spacing)) + 1
	if radius > visible {
		radius = visible
	}

	cx := float64(key.width) / 2
	cy := float64(key.height) / 2
	rng := rand.New(rand.NewSource(key.seed))

	points := make([]GridPoint, 0, (2*radius+1)*(2*radius+1))
	for gy := -radius; gy <= radius; gy++ {
		for gx := -radius; gx <= radius; gx++ {
			// Golden-ratio positional perturbation: a pure function of
			// the cell indices, so the same cell always lands in the
			// same place.
			wobble := float64(gx*gy) / Phi
			points = append(points, GridPoint{
				X:           cx + float64(gx)*key.spacing + math.Sin(wobble)*2,
				Y:           cy + float64(gy)*key.spacing + math.Cos(wobble)*2,
				NoiseOffset: rng.Float64() * 2 * math.Pi,
			})
		}
	}
	return points
}
