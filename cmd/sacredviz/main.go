// Command sacredviz opens an interactive window rendering an animated
// sacred-geometry composition.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sacredviz/sacred"
	"github.com/sacredviz/sacred/backend/ebitensurface"
)

var shapeNames = map[string]sacred.ShapeType{
	"circle":        sacred.ShapeCircle,
	"polygon":       sacred.ShapePolygon,
	"star":          sacred.ShapeStar,
	"hexagon":       sacred.ShapeHexagon,
	"pentagon":      sacred.ShapePentagon,
	"floweroflife":  sacred.ShapeFlowerOfLife,
	"merkaba":       sacred.ShapeMerkaba,
	"metatronscube": sacred.ShapeMetatronCube,
	"spiral":        sacred.ShapeSpiral,
	"lissajous":     sacred.ShapeLissajous,
	"mandala":       sacred.ShapeMandala,
}

func main() {
	var (
		width    = flag.Int("width", 1024, "window width")
		height   = flag.Int("height", 768, "window height")
		shape    = flag.String("shape", "floweroflife", "primary shape type")
		depth    = flag.Int("depth", 2, "fractal depth")
		children = flag.Int("children", 5, "fractal child count")
		gridSize = flag.Int("grid", 6, "lattice radius in cells")
		spacing  = flag.Float64("spacing", 80, "lattice spacing in pixels")
		seed     = flag.Int64("seed", 1, "deterministic seed")
		xyGrid   = flag.Bool("xygrid", false, "show the axis-ruler overlay")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	sacred.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	shapeType, ok := shapeNames[*shape]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown shape %q\n", *shape)
		os.Exit(2)
	}

	settings := sacred.DefaultSettings()
	settings.Seed = *seed
	settings.Grid.Size = *gridSize
	settings.Grid.Spacing = *spacing
	settings.Shapes.Primary.Type = shapeType
	settings.Shapes.Primary.Fractal.Depth = *depth
	settings.Shapes.Primary.Fractal.ChildCount = *children
	settings.XYGrid.Enabled = *xyGrid

	surface := ebitensurface.New(*width, *height, "sacredviz")
	eng := sacred.NewEngine(surface, sacred.WithSettings(settings))
	defer eng.Dispose()

	if err := surface.Run(eng); err != nil {
		fmt.Fprintln(os.Stderr, "sacredviz:", err)
		os.Exit(1)
	}
}
