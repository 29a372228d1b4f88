package sacred

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseCacheCap bounds the memo cache. When the cap is reached the
// cache is cleared wholesale; eviction only costs recomputation, never
// correctness.
const noiseCacheCap = 10000

// noiseKey quantizes a sample position so nearby lookups within the
// same frame share a cache entry.
type noiseKey struct {
	x, y, t int32
}

// NoiseField is a deterministic pseudo-noise function of (x, y, time)
// with a bounded-size memo cache. Output is normalized to [0, 1].
// A NoiseField is owned by a single engine instance and is not safe
// for concurrent use.
type NoiseField struct {
	noise opensimplex.Noise
	scale float64
	cache map[noiseKey]float64
}

// NewNoiseField creates a noise field seeded deterministically; the
// same seed always produces the same field.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		noise: opensimplex.NewNormalized(seed),
		scale: 0.01,
		cache: make(map[noiseKey]float64, 256),
	}
}

// At samples the field at position (x, y) and time t.
func (n *NoiseField) At(x, y, t float64) float64 {
	key := noiseKey{
		x: int32(math.Round(x)),
		y: int32(math.Round(y)),
		t: int32(math.Round(t * 100)),
	}
	if v, ok := n.cache[key]; ok {
		return v
	}

	v := n.noise.Eval3(x*n.scale, y*n.scale, t)

	if len(n.cache) >= noiseCacheCap {
		Logger().Debug("noise cache cap reached, clearing", "entries", len(n.cache))
		n.cache = make(map[noiseKey]float64, 256)
	}
	n.cache[key] = v
	return v
}

// CacheLen reports the current number of memoized samples.
func (n *NoiseField) CacheLen() int {
	return len(n.cache)
}

// Clear drops all memoized samples. Called on engine dispose.
func (n *NoiseField) Clear() {
	n.cache = make(map[noiseKey]float64, 256)
}
