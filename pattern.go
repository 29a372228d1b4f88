package sacred

// PatternType identifies one of the five sacred positioning
// algorithms.
type PatternType int

const (
	// PatternGoldenSpiral places children on a phyllotaxis spiral.
	PatternGoldenSpiral PatternType = iota
	// PatternFibonacciGrid places children on a rotated Fibonacci grid.
	PatternFibonacciGrid
	// PatternPlatonic places children on projected platonic vertices.
	PatternPlatonic
	// PatternMetatron places children on Metatron's-cube ring slices.
	PatternMetatron
	// PatternSriYantra places children on interlocking triangles.
	PatternSriYantra

	patternCount = 5
)

// String returns the pattern name used in logs.
func (p PatternType) String() string {
	switch p {
	case PatternGoldenSpiral:
		return "golden-spiral"
	case PatternFibonacciGrid:
		return "fibonacci-grid"
	case PatternPlatonic:
		return "platonic"
	case PatternMetatron:
		return "metatron"
	case PatternSriYantra:
		return "sri-yantra"
	default:
		return "unknown"
	}
}

// shapeKey identifies a shape for pattern assignment. Identical keys
// must map to identical patterns regardless of time or call order, or
// fractal layouts would jitter between frames.
type shapeKey struct {
	shape    ShapeType
	vertices int
	depth    int
}

// patternCacheCap bounds the assignment cache. The key space is tiny
// in practice; the cap only guards against pathological hosts cycling
// through shape configurations.
const patternCacheCap = 10000

// PatternAssigner deterministically maps shape keys to positioning
// algorithms via a seeded integer hash, memoized for the lifetime of
// the engine instance.
type PatternAssigner struct {
	seed  uint64
	cache map[shapeKey]PatternType
}

// NewPatternAssigner creates an assigner for the given seed. The same
// seed reproduces the same assignment for every key.
func NewPatternAssigner(seed int64) *PatternAssigner {
	return &PatternAssigner{
		seed:  uint64(seed),
		cache: make(map[shapeKey]PatternType, 16),
	}
}

// Assign returns the pattern for a shape key, computing and caching it
// on first use.
func (a *PatternAssigner) Assign(shape ShapeType, vertices, depth int) PatternType {
	key := shapeKey{shape: shape, vertices: vertices, depth: depth}
	if p, ok := a.cache[key]; ok {
		return p
	}

	h := a.seed
	h = splitmix64(h ^ uint64(shape)*0x9e3779b97f4a7c15)
	h = splitmix64(h ^ uint64(int64(vertices))*0xbf58476d1ce4e5b9)
	h = splitmix64(h ^ uint64(int64(depth))*0x94d049bb133111eb)
	p := PatternType(hashToUnit(h) * patternCount)
	if p >= patternCount {
		p = patternCount - 1
	}

	if len(a.cache) >= patternCacheCap {
		a.cache = make(map[shapeKey]PatternType, 16)
	}
	a.cache[key] = p
	return p
}

// CacheLen reports the number of memoized assignments.
func (a *PatternAssigner) CacheLen() int {
	return len(a.cache)
}

// Clear drops all memoized assignments. Called on engine dispose.
func (a *PatternAssigner) Clear() {
	a.cache = make(map[shapeKey]PatternType, 16)
}

// splitmix64 is the finalizer of the SplitMix64 generator: a small,
// well-distributed integer hash that behaves identically on every
// platform, unlike the sin-based folding it replaces.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// hashToUnit maps a hash to [0, 1) using the top 53 bits.
func hashToUnit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}
