package sacred

import (
	"math"
	"testing"
)

func TestNoiseFieldDeterminism(t *testing.T) {
	a := NewNoiseField(42)
	b := NewNoiseField(42)

	coords := []struct{ x, y, tm float64 }{
		{0, 0, 0},
		{100, 250, 1.5},
		{-320, 48, 12.25},
		{1e4, -1e4, 0.001},
	}
	for _, c := range coords {
		va := a.At(c.x, c.y, c.tm)
		vb := b.At(c.x, c.y, c.tm)
		if va != vb {
			t.Errorf("At(%v, %v, %v): %v != %v for identical seeds", c.x, c.y, c.tm, va, vb)
		}
		if va < 0 || va > 1 {
			t.Errorf("At(%v, %v, %v) = %v, want within [0, 1]", c.x, c.y, c.tm, va)
		}
	}
}

func TestNoiseFieldMemoization(t *testing.T) {
	n := NewNoiseField(7)

	v1 := n.At(10, 20, 0.5)
	if got := n.CacheLen(); got != 1 {
		t.Fatalf("CacheLen() = %d after one sample, want 1", got)
	}
	v2 := n.At(10, 20, 0.5)
	if v1 != v2 {
		t.Errorf("memoized sample differs: %v != %v", v1, v2)
	}
	if got := n.CacheLen(); got != 1 {
		t.Errorf("CacheLen() = %d after repeat sample, want 1", got)
	}
}

func TestNoiseFieldCacheBound(t *testing.T) {
	n := NewNoiseField(1)

	// Push well past the cap; the cache must never exceed it.
	for i := 0; i < noiseCacheCap+500; i++ {
		n.At(float64(i), float64(-i), 0)
		if n.CacheLen() > noiseCacheCap {
			t.Fatalf("CacheLen() = %d exceeds cap %d", n.CacheLen(), noiseCacheCap)
		}
	}

	// Eviction must not change values.
	before := NewNoiseField(1).At(3, 4, 0)
	after := n.At(3, 4, 0)
	if math.Abs(before-after) > 1e-12 {
		t.Errorf("value changed across eviction: %v != %v", before, after)
	}
}

func TestNoiseFieldClear(t *testing.T) {
	n := NewNoiseField(9)
	n.At(1, 2, 3)
	n.Clear()
	if got := n.CacheLen(); got != 0 {
		t.Errorf("CacheLen() = %d after Clear, want 0", got)
	}
}
