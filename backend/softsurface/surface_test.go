package softsurface

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sacredviz/sacred"
)

func TestClearFillsPixels(t *testing.T) {
	s := New(16, 16)
	s.Clear(sacred.RGB(1, 0, 0))
	got := s.Pixmap().RGBA().RGBAAt(8, 8)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("pixel after Clear = %+v, want opaque red", got)
	}
}

func TestDrawLineTouchesPixels(t *testing.T) {
	s := New(32, 32)
	s.Clear(sacred.Black)
	s.DrawLine(sacred.Pt(0, 16), sacred.Pt(32, 16), sacred.White, 2)

	mid := s.Pixmap().RGBA().RGBAAt(16, 16)
	if mid.R < 200 {
		t.Errorf("pixel on the line = %+v, want near white", mid)
	}
	off := s.Pixmap().RGBA().RGBAAt(16, 4)
	if off.R > 20 {
		t.Errorf("pixel off the line = %+v, want black", off)
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	s := New(16, 16)
	s.Clear(sacred.Black)
	// Zero-length and off-canvas segments must not panic or draw.
	s.DrawLine(sacred.Pt(8, 8), sacred.Pt(8, 8), sacred.White, 2)
	s.DrawLine(sacred.Pt(-100, -100), sacred.Pt(-50, -50), sacred.White, 2)
	if got := s.Pixmap().RGBA().RGBAAt(8, 8); got.R != 0 {
		t.Errorf("pixel = %+v after degenerate draws, want black", got)
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	s := New(32, 32)
	s.Clear(sacred.Black)
	s.FillCircle(sacred.Pt(16, 16), 8, sacred.White)

	if got := s.Pixmap().RGBA().RGBAAt(16, 16); got.R < 200 {
		t.Errorf("circle center = %+v, want white", got)
	}
	if got := s.Pixmap().RGBA().RGBAAt(2, 2); got.R > 20 {
		t.Errorf("corner = %+v, want black", got)
	}
}

func TestStrokeCircleLeavesInteriorEmpty(t *testing.T) {
	s := New(64, 64)
	s.Clear(sacred.Black)
	s.StrokeCircle(sacred.Pt(32, 32), 20, sacred.White, 2)

	if got := s.Pixmap().RGBA().RGBAAt(32, 32); got.R > 20 {
		t.Errorf("stroked circle filled its center: %+v", got)
	}
	if got := s.Pixmap().RGBA().RGBAAt(52, 32); got.R < 100 {
		t.Errorf("stroked circle missing its rim: %+v", got)
	}
}

func TestFillPolygonGradientVariesAlongAxis(t *testing.T) {
	s := New(64, 16)
	s.Clear(sacred.Black)
	quad := []sacred.Point{
		{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 16}, {X: 0, Y: 16},
	}
	s.FillPolygonGradient(quad, sacred.Black, sacred.White,
		sacred.Pt(0, 8), sacred.Pt(64, 8))

	left := s.Pixmap().RGBA().RGBAAt(4, 8)
	right := s.Pixmap().RGBA().RGBAAt(60, 8)
	if int(right.R)-int(left.R) < 100 {
		t.Errorf("gradient left=%d right=%d, want a strong ramp", left.R, right.R)
	}
}

func TestGlobalAlphaScalesDraws(t *testing.T) {
	s := New(16, 16)
	s.Clear(sacred.Black)
	s.SetGlobalAlpha(0.5)
	s.FillCircle(sacred.Pt(8, 8), 6, sacred.White)
	s.ResetGlobalAlpha()

	got := s.Pixmap().RGBA().RGBAAt(8, 8)
	if got.R < 100 || got.R > 180 {
		t.Errorf("half-alpha white over black = %+v, want mid gray", got)
	}
}

func TestResizeOnlyOnChange(t *testing.T) {
	s := New(32, 32)
	var events int
	s.AddEventListener(sacred.EventResize, func(sacred.Event) { events++ })

	s.Resize(32, 32)
	if events != 0 {
		t.Fatalf("resize to same dims fired %d events, want 0", events)
	}
	s.Resize(64, 48)
	if events != 1 {
		t.Fatalf("resize fired %d events, want 1", events)
	}
	if w, h := s.Size(); w != 64 || h != 48 {
		t.Errorf("Size() = %dx%d, want 64x48", w, h)
	}

	// Dimensions clamp to at least one pixel.
	s.Resize(0, -5)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d after degenerate resize, want 1x1", w, h)
	}
}

func TestMouseInjection(t *testing.T) {
	s := New(32, 32)
	var moves, leaves int
	var last sacred.Event
	s.AddEventListener(sacred.EventMouseMove, func(ev sacred.Event) {
		moves++
		last = ev
	})
	s.AddEventListener(sacred.EventMouseLeave, func(sacred.Event) { leaves++ })

	s.EmitMouseMove(10, 20)
	s.EmitMouseLeave()
	if moves != 1 || leaves != 1 {
		t.Fatalf("moves=%d leaves=%d, want 1 each", moves, leaves)
	}
	if last.X != 10 || last.Y != 20 {
		t.Errorf("move event = %+v, want X=10 Y=20", last)
	}
}

func TestExportPNG(t *testing.T) {
	s := New(8, 8)
	s.Clear(sacred.RGB(0, 0, 1))
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.ExportPNG(path); err != nil {
		t.Fatalf("ExportPNG() = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PNG is empty")
	}
}

func TestDisposeLifecycle(t *testing.T) {
	s := New(8, 8)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := s.Dispose(); err != nil {
		t.Fatalf("Dispose() = %v", err)
	}
	if err := s.Dispose(); err != nil {
		t.Fatalf("second Dispose() = %v", err)
	}
	if err := s.Initialize(); err != ErrDisposed {
		t.Errorf("Initialize() after Dispose = %v, want ErrDisposed", err)
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	s := New(64, 32)
	s.Clear(sacred.Black)
	s.DrawText("42", sacred.Pt(10, 20), sacred.White, 10)

	var lit int
	img := s.Pixmap().RGBA()
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if c := img.RGBAAt(x, y); c.R > 100 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText lit no pixels")
	}
}

func TestEngineFrameOnSoftSurface(t *testing.T) {
	s := New(200, 150)
	eng := sacred.NewEngine(s)
	if err := eng.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}

	// The frame must have painted the dark background everywhere.
	corner := s.Pixmap().RGBA().RGBAAt(1, 1)
	if corner.A != 255 {
		t.Errorf("corner alpha = %d, want opaque", corner.A)
	}
	if corner.R > 40 {
		t.Errorf("corner = %+v, want the dark background color", corner)
	}
}
