// Package sacred renders animated sacred-geometry compositions.
//
// # Overview
//
// sacred is a procedural 2D geometry engine: it generates a breathing
// lattice of golden-ratio-connected points and places recursively
// fractalized shapes using sacred-geometry layout algorithms, drawing
// every frame through a pluggable line-stroke renderer onto an abstract
// drawing surface.
//
// # Quick Start
//
//	import "github.com/sacredviz/sacred"
//	import "github.com/sacredviz/sacred/backend/softsurface"
//
//	surface := softsurface.New(800, 600)
//	eng := sacred.NewEngine(surface)
//	if err := eng.Frame(); err != nil {
//		log.Fatal(err)
//	}
//
// For an interactive window, use the ebiten backend:
//
//	import "github.com/sacredviz/sacred/backend/ebitensurface"
//
//	win := ebitensurface.New(800, 600, "sacred")
//	win.Run(sacred.NewEngine(win))
//
// # Architecture
//
// The engine is organized leaves-first:
//   - NoiseField: memoized pseudo-noise of (x, y, time)
//   - PointField: the perturbed anchor lattice
//   - connection selection: the golden-proportion edge test
//   - shape placement: five sacred layout algorithms plus recursion
//   - stroke rendering: waves, spirals, ribbons, tapers, dashes
//   - Surface: the drawing backend contract (software and ebiten)
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left,
// X increases right, Y increases down, angles in radians.
package sacred
