package sacred

import (
	"math"
	"testing"
)

func TestPointFieldCount(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		spacing float64
		w, h    int
		want    int
	}{
		{name: "radius 1 gives 3x3", size: 1, spacing: 50, w: 800, h: 600, want: 9},
		{name: "radius 0 gives single point", size: 0, spacing: 50, w: 800, h: 600, want: 1},
		{name: "radius 3 gives 7x7", size: 3, spacing: 40, w: 800, h: 600, want: 49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewPointField()
			f.Update(tt.size, tt.spacing, tt.w, tt.h, 1)
			if got := len(f.Points()); got != tt.want {
				t.Errorf("len(Points()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointFieldCenteredOnViewport(t *testing.T) {
	f := NewPointField()
	f.Update(1, 50, 800, 600, 1)

	var sumX, sumY float64
	for _, p := range f.Points() {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(f.Points()))

	// The perturbation is bounded by 2 per axis, so the lattice mean
	// stays within that bound of the viewport center.
	if math.Abs(sumX/n-400) > 2 {
		t.Errorf("mean X = %v, want within 2 of 400", sumX/n)
	}
	if math.Abs(sumY/n-300) > 2 {
		t.Errorf("mean Y = %v, want within 2 of 300", sumY/n)
	}
}

func TestPointFieldPerturbationBounded(t *testing.T) {
	f := NewPointField()
	f.Update(4, 60, 800, 600, 3)

	for _, p := range f.Points() {
		// Every point must sit within 2px of some exact lattice
		// position relative to the center.
		dx := math.Mod(math.Abs(p.X-400), 60)
		dy := math.Mod(math.Abs(p.Y-300), 60)
		if min := math.Min(dx, 60-dx); min > 2.0001 {
			t.Fatalf("point %v strays %v from lattice X", p, min)
		}
		if min := math.Min(dy, 60-dy); min > 2.0001 {
			t.Fatalf("point %v strays %v from lattice Y", p, min)
		}
	}
}

func TestPointFieldRegenerationTrigger(t *testing.T) {
	f := NewPointField()
	if !f.Update(2, 50, 800, 600, 1) {
		t.Fatal("first Update must regenerate")
	}
	if f.Update(2, 50, 800, 600, 1) {
		t.Error("identical configuration must not regenerate")
	}
	if !f.Update(2, 50, 1024, 600, 1) {
		t.Error("viewport change must regenerate")
	}
	if !f.Update(2, 55, 1024, 600, 1) {
		t.Error("spacing change must regenerate")
	}
}

func TestPointFieldRadiusClampedToViewport(t *testing.T) {
	f := NewPointField()
	// Diagonal of 100x100 is ~141; with spacing 50 the visible radius
	// is 141/100+1 = 2, well below the requested 50.
	f.Update(50, 50, 100, 100, 1)
	want := (2*2 + 1) * (2*2 + 1)
	if got := len(f.Points()); got != want {
		t.Errorf("len(Points()) = %d, want clamped %d", got, want)
	}
}

func TestPointFieldDeterministicPhases(t *testing.T) {
	a := NewPointField()
	b := NewPointField()
	a.Update(2, 50, 800, 600, 11)
	b.Update(2, 50, 800, 600, 11)

	for i := range a.Points() {
		if a.Points()[i] != b.Points()[i] {
			t.Fatalf("point %d differs across identical seeds", i)
		}
	}
}
