package ebitensurface

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sacredviz/sacred"
)

// fontSource lazily parses the embedded Go Regular face shared by all
// surfaces.
var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

func labelFace(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			sacred.Logger().Warn("font load failed, labels disabled", "err", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// col converts an engine color to ebiten's color space, applying the
// surface's global alpha.
func (s *Surface) col(c sacred.RGBA) sacred.RGBA {
	return c.ScaleAlpha(s.alpha)
}

// DrawLine strokes a straight segment.
func (s *Surface) DrawLine(p1, p2 sacred.Point, c sacred.RGBA, width float64) {
	if s.screen == nil {
		return
	}
	if width < 0.1 {
		width = 0.1
	}
	vector.StrokeLine(s.screen,
		float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y),
		float32(width), s.col(c).Color(), true)
}

// StrokeCircle outlines a circle.
func (s *Surface) StrokeCircle(center sacred.Point, radius float64, c sacred.RGBA, width float64) {
	if s.screen == nil || radius <= 0 {
		return
	}
	vector.StrokeCircle(s.screen,
		float32(center.X), float32(center.Y), float32(radius),
		float32(width), s.col(c).Color(), true)
}

// FillCircle fills a circle.
func (s *Surface) FillCircle(center sacred.Point, radius float64, c sacred.RGBA) {
	if s.screen == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.screen,
		float32(center.X), float32(center.Y), float32(radius),
		s.col(c).Color(), true)
}

// StrokePolygon outlines a point sequence.
func (s *Surface) StrokePolygon(pts []sacred.Point, c sacred.RGBA, width float64, closed bool) {
	if s.screen == nil || len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		s.DrawLine(pts[i], pts[i+1], c, width)
	}
	if closed {
		s.DrawLine(pts[len(pts)-1], pts[0], c, width)
	}
}

// FillPolygon fills the closed region with a flat color.
func (s *Surface) FillPolygon(pts []sacred.Point, c sacred.RGBA) {
	s.fillTriangles(pts, func(sacred.Point) sacred.RGBA { return c })
}

// FillPolygonGradient fills the closed region, interpolating each
// vertex color from its projection onto the start-end axis. The GPU
// interpolates between vertices, which matches the dense ribbon
// tessellation the stroke renderer produces.
func (s *Surface) FillPolygonGradient(pts []sacred.Point, from, to sacred.RGBA, start, end sacred.Point) {
	axis := end.Sub(start)
	axisLenSq := axis.LengthSquared()
	s.fillTriangles(pts, func(p sacred.Point) sacred.RGBA {
		t := 0.0
		if axisLenSq > 0 {
			t = p.Sub(start).Dot(axis) / axisLenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		return sacred.RGBA{
			R: from.R + (to.R-from.R)*t,
			G: from.G + (to.G-from.G)*t,
			B: from.B + (to.B-from.B)*t,
			A: from.A + (to.A-from.A)*t,
		}
	})
}

// fillTriangles tessellates the polygon with the even-odd rule and
// per-vertex colors from colorAt.
func (s *Surface) fillTriangles(pts []sacred.Point, colorAt func(sacred.Point) sacred.RGBA) {
	if s.screen == nil || s.whitePixel == nil || len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		c := colorAt(sacred.Pt(float64(vs[i].DstX), float64(vs[i].DstY))).ScaleAlpha(s.alpha)
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	}
	s.screen.DrawTriangles(vs, is, s.whitePixel, op)
}

// DrawText renders a short label.
func (s *Surface) DrawText(str string, pos sacred.Point, c sacred.RGBA, size float64) {
	if s.screen == nil {
		return
	}
	face := labelFace(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(s.col(c).Color())
	text.Draw(s.screen, str, face, op)
}
