package games

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/calm"
)

const (
	blobCap       = 400
	blobPoints    = 32
	pourChance    = 0.12
	pourClearTime = 600.0
	blobWobble    = 0.12
	blobWobbleHz  = 0.002
)

var (
	blobOffset = 15.0
	blobRadius = calm.Range{Min: 8, Max: 16}
	blobTarget = calm.Range{Min: 50, Max: 100}
	blobGrow   = calm.Range{Min: 0.015, Max: 0.025}
	blobLife   = calm.Range{Min: 20000, Max: 35000}
	pourBG     = calm.RGB{R: 247, G: 244, B: 239}
	white      = calm.RGB{R: 255, G: 255, B: 255}
	black      = calm.RGB{R: 0, G: 0, B: 0}
)

var pourPalette = []calm.RGB{
	{R: 140, G: 200, B: 255},
	{R: 200, G: 150, B: 255},
	{R: 255, G: 160, B: 200},
	{R: 140, G: 230, B: 200},
	{R: 255, G: 190, B: 140},
}

type blob struct {
	calm.Lifetime
	x, y   float64
	color  calm.RGB
	seed   float64
	radius float64
	target float64
	grow   float64
}

// PourSpread pours soft paint blobs while a pointer is held. A Clear button
// fades the canvas to white and empties it.
type PourSpread struct {
	env      *calm.Env
	blobs    *calm.Pool[blob]
	pouring  bool
	pointer  int
	pourX    float64
	pourY    float64
	clearing *calm.Transition
	clearBtn *calm.Button
	hint     hint
}

// NewPourSpread creates the pour-spread scene.
func NewPourSpread() *PourSpread {
	return &PourSpread{
		hint:     newHint("Touch to pour"),
		clearing: calm.NewTransition(pourClearTime, ease.OutCubic),
		clearBtn: calm.NewButton("Clear"),
	}
}

// Mount implements calm.Scene.
func (s *PourSpread) Mount(env *calm.Env) {
	s.env = env
	s.blobs = calm.NewPool[blob](blobCap)
	s.clearBtn.PlaceTopRight(env.Surface, 16)
}

// Resize implements calm.Resizer.
func (s *PourSpread) Resize(sf calm.Surface) {
	s.clearBtn.PlaceTopRight(sf, 16)
}

// Count returns the number of live blobs.
func (s *PourSpread) Count() int { return s.blobs.Len() }

// Pouring reports whether a pointer is held down and pouring.
func (s *PourSpread) Pouring() bool { return s.pouring }

// Clearing reports whether the clear fade is running.
func (s *PourSpread) Clearing() bool { return s.clearing.Active() }

// HandlePointer implements calm.Scene.
func (s *PourSpread) HandlePointer(ev calm.PointerEvent) {
	if clicked, consumed := s.clearBtn.Handle(ev); consumed {
		if clicked {
			s.Clear()
		}
		return
	}
	switch ev.Kind {
	case calm.PointerDown:
		if s.clearing.Active() {
			return
		}
		s.hint.dismiss()
		s.pouring = true
		s.pointer = ev.ID
		s.pourX, s.pourY = ev.X, ev.Y
		s.spawn(ev.X, ev.Y)
	case calm.PointerMove:
		if s.pouring && ev.ID == s.pointer && !s.clearing.Active() {
			s.pourX, s.pourY = ev.X, ev.Y
		}
	case calm.PointerUp, calm.PointerCancel:
		if ev.ID == s.pointer {
			s.pouring = false
		}
	}
}

// Clear starts the fade that empties the canvas. It is ignored while a
// clear is already running.
func (s *PourSpread) Clear() {
	if s.clearing.Active() {
		return
	}
	s.clearing.Start()
	s.env.Sound.Play(calm.CueSweep)
}

func (s *PourSpread) spawn(x, y float64) bool {
	r := s.env.Rand
	a, b := calm.TwoDistinct(r, len(pourPalette))
	return s.blobs.Spawn(blob{
		Lifetime: calm.Lifetime{Life: blobLife.Random(r)},
		x:        x + calm.Spread(r, blobOffset),
		y:        y + calm.Spread(r, blobOffset),
		color:    calm.Mix(pourPalette[a], pourPalette[b], r.Float64()*0.4),
		seed:     r.Float64() * math.Pi * 2,
		radius:   blobRadius.Random(r),
		target:   blobTarget.Random(r),
		grow:     blobGrow.Random(r),
	})
}

// Update implements calm.Scene.
func (s *PourSpread) Update(_, dt float64) {
	s.hint.update(dt)
	if s.pouring && calm.Chance(s.env.Rand, pourChance) {
		s.spawn(s.pourX, s.pourY)
	}
	if s.clearing.Update(dt) {
		s.blobs.Clear()
	}
	s.blobs.Update(func(b *blob) bool {
		b.radius = calm.Lerp(b.radius, b.target, b.grow)
		return b.Advance(dt)
	})
}

// Draw implements calm.Scene.
func (s *PourSpread) Draw(c *calm.Canvas, now float64) {
	c.Fill(pourBG.Opaque())
	for _, b := range s.blobs.Items() {
		drawBlob(c, b, now)
	}
	if s.clearing.Active() {
		c.Fill(white.Alpha(s.clearing.Value() * 0.95))
	}
	s.hint.draw(c, pourPalette[0])
	s.clearBtn.Draw(c, pourPalette[1])
}

// blobOutline returns the wobbling outline of b at time now.
func blobOutline(b blob, now float64) []calm.Vec2 {
	pts := make([]calm.Vec2, blobPoints)
	for i := range pts {
		a := math.Pi * 2 * float64(i) / blobPoints
		w1 := math.Sin(a*3+b.seed+now*blobWobbleHz) * blobWobble
		w2 := math.Cos(a*5+b.seed*1.5+now*blobWobbleHz*0.7) * blobWobble * 0.5
		w3 := math.Sin(a*2+b.seed*0.5) * blobWobble * 0.3
		r := b.radius * (1 + w1 + w2 + w3)
		pts[i] = calm.Vec2{X: b.x + math.Cos(a)*r, Y: b.y + math.Sin(a)*r}
	}
	return pts
}

func drawBlob(c *calm.Canvas, b blob, now float64) {
	alpha := 1 - b.Progress()
	if alpha <= 0 {
		return
	}
	c.RadialGradient(b.x, b.y, b.radius*1.4, calm.Gradient{
		{Offset: 0.5 / 1.4, Color: b.color.Alpha(0.2 * alpha)},
		{Offset: 1, Color: b.color.Alpha(0)},
	})
	center := calm.Vec2{X: b.x, Y: b.y}
	focal := calm.Vec2{X: b.x - b.radius*0.2, Y: b.y - b.radius*0.2}
	c.FillShapeGradient(center, blobOutline(b, now), focal, b.radius*1.2, calm.Gradient{
		{Offset: 0, Color: calm.Mix(b.color, white, 0.4).Alpha(0.9 * alpha)},
		{Offset: 0.5, Color: b.color.Alpha(0.85 * alpha)},
		{Offset: 1, Color: calm.Mix(b.color, black, 0.1).Alpha(0.8 * alpha)},
	})
	c.FillCircle(b.x-b.radius*0.25, b.y-b.radius*0.25, b.radius*0.2, white.Alpha(0.4*alpha))
}
