package sacred

import "math"

// connectionTolerance is the empirically tuned band around the golden
// proportions. The literal value defines the visible aesthetic; it is
// not derived.
const connectionTolerance = 0.1

// Connection is a derived edge between two lattice points. Connections
// are recomputed every frame and never persisted.
type Connection struct {
	A, B    GridPoint
	Opacity float64
	Width   float64
}

// SelectConnections tests every point pair within the spatial cutoff
// against the golden-ratio proportion: an edge is emitted iff the
// ratio of the pair distance to the first point's distance from the
// viewport center lies within tolerance of 1/Phi or Phi.
//
// The squared distance is checked first so rejected pairs never pay
// for a square root. Results are appended to out (reused across
// frames) and all connections are collected before any draw call.
func SelectConnections(out []Connection, points []GridPoint, width, height int,
	grid GridSettings, mouse MouseSettings, noise *NoiseField, time float64) []Connection {

	center := Pt(float64(width)/2, float64(height)/2)
	maxDist := math.Max(float64(width), float64(height)) / 2
	maxDistSq := maxDist * maxDist

	for i := 0; i < len(points); i++ {
		a := points[i]
		pa := a.Pos()
		dc := pa.Distance(center)
		if dc == 0 {
			// The exact center point has no defined proportion.
			continue
		}
		for j := i + 1; j < len(points); j++ {
			b := points[j]
			pb := b.Pos()

			distSq := pa.DistanceSquared(pb)
			if distSq == 0 || distSq > maxDistSq {
				continue
			}
			dist := math.Sqrt(distSq)

			ratio := dist / dc
			if math.Abs(ratio-InvPhi) >= connectionTolerance &&
				math.Abs(ratio-Phi) >= connectionTolerance {
				continue
			}

			phaseA := a.NoiseOffset + noise.At(a.X, a.Y, 0)*grid.NoiseIntensity
			phaseB := b.NoiseOffset + noise.At(b.X, b.Y, 0)*grid.NoiseIntensity
			breathing := time*grid.BreathingSpeed + dist*0.002 + (phaseA+phaseB)/2

			opacity := grid.ConnectionOpacity *
				(0.7 + 0.3*math.Sin(breathing)*grid.BreathingIntensity)

			influence := mouseInfluence(pa.Lerp(pb, 0.5), mouse)
			opacity *= 1 + influence

			out = append(out, Connection{
				A:       a,
				B:       b,
				Opacity: clamp01(opacity),
				Width:   (0.5 + influence) * grid.LineWidthMultiplier,
			})
		}
	}
	return out
}

// mouseInfluence returns the cursor proximity factor in [0, 1] for a
// position: 1 at the cursor, falling linearly to 0 at the influence
// radius. Zero when the cursor is outside the surface.
func mouseInfluence(pos Point, mouse MouseSettings) float64 {
	if !mouse.Inside || mouse.InfluenceRadius <= 0 {
		return 0
	}
	d := pos.Distance(mouse.Position)
	return math.Max(0, 1-d/mouse.InfluenceRadius)
}
