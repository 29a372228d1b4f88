package softsurface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sacredviz/sacred"
)

// Pixmap is the rectangular pixel buffer the software surface draws
// into. Pixels are stored as standard premultiplied RGBA.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.img.Bounds().Dx() }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.img.Bounds().Dy() }

// RGBA returns the underlying image for direct drawing.
func (p *Pixmap) RGBA() *image.RGBA { return p.img }

// Image returns the pixmap content as an image.Image.
func (p *Pixmap) Image() image.Image { return p.img }

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c sacred.RGBA) {
	col := color.RGBAModel.Convert(c.Color()).(color.RGBA)
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("softsurface: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, p.img); err != nil {
		return fmt.Errorf("softsurface: encode png: %w", err)
	}
	return nil
}
