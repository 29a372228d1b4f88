package sacred

import "math"

// Golden-ratio constants used throughout the engine. Every proportion
// in the composition traces back to Phi: the lattice perturbation, the
// connection test, the spiral growth and the fractal layouts.
const (
	// Phi is the golden ratio, (1+sqrt(5))/2.
	Phi = 1.6180339887498948

	// InvPhi is 1/Phi, the golden ratio conjugate.
	InvPhi = Phi - 1
)

// GoldenAngle is the angular increment of phyllotaxis spirals,
// 2*pi*(1 - 1/Phi), roughly 137.5 degrees.
var GoldenAngle = 2 * math.Pi * (1 - InvPhi)

// fibonacci holds the sequence values used by the Fibonacci-grid
// layout. Lookups index modulo the table length, so the table only
// needs to cover the useful normalization range.
var fibonacci = [...]float64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

// fib returns the n-th Fibonacci table entry, wrapping the index.
func fib(n int) float64 {
	if n < 0 {
		n = -n
	}
	return fibonacci[n%len(fibonacci)]
}
