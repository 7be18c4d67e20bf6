package calm

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque palette color. Palette entries are values, so deriving a
// tint never touches the stored color.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB literal.
func Hex(v uint32) RGB {
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Mix blends a toward b by t, rounding each channel. t=0 yields exactly a and
// t=1 yields exactly b; t outside [0, 1] is clamped.
func Mix(a, b RGB, t float64) RGB {
	t = Clamp01(t)
	return RGB{
		R: mixChannel(a.R, b.R, t),
		G: mixChannel(a.G, b.G, t),
		B: mixChannel(a.B, b.B, t),
	}
}

func mixChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Alpha returns c with the given opacity as a straight-alpha color, ready for
// the Canvas primitives. a is clamped to [0, 1].
func (c RGB) Alpha(a float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(Clamp01(a) * 255))}
}

// Opaque returns c at full opacity.
func (c RGB) Opaque() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, 255}
}

// String formats c as a CSS-style rgb() triple, mostly for logs and tests.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ShiftHue rotates the hue of c by deg degrees in HSL space, keeping
// saturation and lightness. A shift of 0 returns c unchanged.
func ShiftHue(c RGB, deg float64) RGB {
	if deg == 0 {
		return c
	}
	h, s, l := c.colorful().Hsl()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Lighten moves the HSL lightness of c by amount (-1..1).
func Lighten(c RGB, amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, Clamp01(l+amount)))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Stop is one color stop of a gradient. Offset runs from 0 (center or start)
// to 1 (rim or end).
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is an ordered list of stops.
type Gradient []Stop

// At returns the gradient color at offset t as straight-alpha float
// components in [0, 1].
func (g Gradient) At(t float64) (r, gr, b, a float32) {
	if len(g) == 0 {
		return 0, 0, 0, 0
	}
	if t <= g[0].Offset {
		return nrgbaFloats(g[0].Color)
	}
	last := g[len(g)-1]
	if t >= last.Offset {
		return nrgbaFloats(last.Color)
	}
	for i := 1; i < len(g); i++ {
		if t > g[i].Offset {
			continue
		}
		lo, hi := g[i-1], g[i]
		span := hi.Offset - lo.Offset
		f := 0.0
		if span > 0 {
			f = (t - lo.Offset) / span
		}
		r0, g0, b0, a0 := nrgbaFloats(lo.Color)
		r1, g1, b1, a1 := nrgbaFloats(hi.Color)
		ff := float32(f)
		return r0 + (r1-r0)*ff, g0 + (g1-g0)*ff, b0 + (b1-b0)*ff, a0 + (a1-a0)*ff
	}
	return nrgbaFloats(last.Color)
}

func nrgbaFloats(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
