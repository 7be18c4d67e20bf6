package calm

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawFPS prints the current FPS and TPS in the top-right corner of the
// screen over a translucent backdrop.
func drawFPS(screen *ebiten.Image) {
	b := screen.Bounds()
	const w, h = 100, 32
	x := b.Max.X - w - 4
	vector.DrawFilledRect(screen, float32(x), 4, w, h, color.RGBA{0, 0, 0, 128}, false)
	sub := screen.SubImage(image.Rect(x, 4, x+w, 4+h)).(*ebiten.Image)
	ebitenutil.DebugPrintAt(sub, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), x+4, 6)
}
