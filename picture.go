package calm

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Picture is the optional intro image a scene may place cosmetically. A nil
// or zero-sized picture counts as absent.
type Picture struct {
	Image         *ebiten.Image
	Width, Height float64
}

// LoadPicture decodes a PNG or JPEG file.
func LoadPicture(path string) (*Picture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load picture %s: %w", path, err)
	}
	b := img.Bounds()
	return &Picture{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

// Loaded reports whether the picture has usable dimensions.
func (p *Picture) Loaded() bool {
	return p != nil && p.Width > 0 && p.Height > 0
}

// Draw draws the picture scaled into rect.
func (p *Picture) Draw(c *Canvas, rect Rect, alpha float64) {
	if !p.Loaded() || p.Image == nil || c.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width/p.Width, rect.Height/p.Height)
	x, y := c.device(rect.X, rect.Y)
	op.GeoM.Scale(c.ratio, c.ratio)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(float32(Clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(p.Image, op)
}
