package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	glowShapeCount = 12
	glowMaxRadius  = 400.0
	glowGrowRate   = 0.25
	glowShrinkRate = 0.4
	glowFadeIn     = 0.002
	glowFadeOut    = 0.003
	glowRevealLerp = 0.06
	glowBlobPoints = 8
)

var (
	glowShapeRadius = calm.Range{Min: 30, Max: 70}
	glowBG          = calm.Hex(0x0d0d12)
	glowWarmA       = calm.RGB{R: 255, G: 190, B: 100}
	glowWarmB       = calm.RGB{R: 255, G: 150, B: 80}
	glowCoreHot     = calm.RGB{R: 255, G: 255, B: 230}
	glowCoreMid     = calm.RGB{R: 255, G: 220, B: 150}
)

var glowPalette = []calm.RGB{
	{R: 255, G: 200, B: 120},
	{R: 255, G: 180, B: 100},
	{R: 255, G: 160, B: 90},
	{R: 240, G: 150, B: 80},
}

type glowShape struct {
	x, y     float64
	radius   float64
	blob     bool
	seed     float64
	color    calm.RGB
	revealed float64
}

// WarmGlow hides a dozen soft shapes in the dark. Holding a pointer grows a
// warm light that reveals the shapes near it.
type WarmGlow struct {
	env       *calm.Env
	shapes    []glowShape
	holding   bool
	pointer   int
	x, y      float64
	radius    float64
	intensity float64
	hint      hint
}

// NewWarmGlow creates the warm-glow scene.
func NewWarmGlow() *WarmGlow {
	return &WarmGlow{hint: newHint("Hold to create light")}
}

// Mount implements calm.Scene.
func (s *WarmGlow) Mount(env *calm.Env) {
	s.env = env
	s.Resize(env.Surface)
}

// Resize implements calm.Resizer. The hidden shapes are scattered afresh
// over the new area.
func (s *WarmGlow) Resize(sf calm.Surface) {
	r := s.env.Rand
	s.shapes = s.shapes[:0]
	for range glowShapeCount {
		s.shapes = append(s.shapes, glowShape{
			x:      calm.Between(r, 50, sf.Width-50),
			y:      calm.Between(r, 50, sf.Height-50),
			radius: glowShapeRadius.Random(r),
			blob:   r.Float64() > 0.5,
			seed:   r.Float64() * math.Pi * 2,
			color:  glowPalette[r.IntN(len(glowPalette))],
		})
	}
}

// Holding reports whether a pointer is feeding the light.
func (s *WarmGlow) Holding() bool { return s.holding }

// Glow returns the light's radius and intensity.
func (s *WarmGlow) Glow() (radius, intensity float64) { return s.radius, s.intensity }

// Revealed returns how visible each hidden shape currently is, in 0..1.
func (s *WarmGlow) Revealed() []float64 {
	out := make([]float64, len(s.shapes))
	for i, sh := range s.shapes {
		out[i] = sh.revealed
	}
	return out
}

// HandlePointer implements calm.Scene.
func (s *WarmGlow) HandlePointer(ev calm.PointerEvent) {
	switch ev.Kind {
	case calm.PointerDown:
		s.hint.dismiss()
		s.holding = true
		s.pointer = ev.ID
		s.x, s.y = ev.X, ev.Y
	case calm.PointerMove:
		if s.holding && ev.ID == s.pointer {
			s.x, s.y = ev.X, ev.Y
		}
	case calm.PointerUp, calm.PointerCancel:
		if ev.ID == s.pointer {
			s.holding = false
		}
	}
}

// Update implements calm.Scene.
func (s *WarmGlow) Update(_, dt float64) {
	s.hint.update(dt)
	if s.holding {
		s.radius = math.Min(s.radius+dt*glowGrowRate, glowMaxRadius)
		s.intensity = math.Min(s.intensity+dt*glowFadeIn, 1)
	} else {
		s.radius = math.Max(s.radius-dt*glowShrinkRate, 0)
		s.intensity = math.Max(s.intensity-dt*glowFadeOut, 0)
	}

	reach := s.radius * 0.85
	for i := range s.shapes {
		sh := &s.shapes[i]
		target := 0.0
		if d := calm.Dist(sh.x, sh.y, s.x, s.y); d < reach && s.radius > 50 {
			target = calm.Clamp01(1-d/reach) * s.intensity
		}
		sh.revealed = calm.Lerp(sh.revealed, target, glowRevealLerp)
	}
}

// Draw implements calm.Scene.
func (s *WarmGlow) Draw(c *calm.Canvas, now float64) {
	c.Fill(glowBG.Opaque())
	for _, sh := range s.shapes {
		drawGlowShape(c, sh, now)
	}
	c.SetBlend(calm.BlendScreen)
	s.drawLight(c, now)
	c.SetBlend(calm.BlendNormal)
	s.hint.draw(c, glowPalette[0])
}

func (s *WarmGlow) drawLight(c *calm.Canvas, now float64) {
	if s.radius <= 0 {
		return
	}
	k := s.intensity
	warm := calm.Mix(glowWarmA, glowWarmB, math.Sin(now*0.002)*0.5+0.5)
	c.RadialGradient(s.x, s.y, s.radius, calm.Gradient{
		{Offset: 0, Color: warm.Alpha(0.9 * k)},
		{Offset: 0.3, Color: warm.Alpha(0.5 * k)},
		{Offset: 0.7, Color: warm.Alpha(0.15 * k)},
		{Offset: 1, Color: warm.Alpha(0)},
	})

	flicker := 1 + math.Sin(now*0.015)*0.1 + math.Sin(now*0.023)*0.05
	c.RadialGradient(s.x, s.y, 30*k*flicker, calm.Gradient{
		{Offset: 0, Color: glowCoreHot.Alpha(0.95 * k)},
		{Offset: 0.5, Color: glowCoreMid.Alpha(0.7 * k)},
		{Offset: 1, Color: warm.Alpha(0)},
	})
}

func drawGlowShape(c *calm.Canvas, sh glowShape, now float64) {
	if sh.revealed < 0.01 {
		return
	}
	alpha := sh.revealed * 0.8
	c.Save()
	defer c.Restore()
	c.Translate(sh.x+math.Sin(now*0.002+sh.seed)*3, sh.y)

	if !sh.blob {
		c.RadialGradient(0, 0, sh.radius, calm.Gradient{
			{Offset: 0, Color: sh.color.Alpha(alpha * 0.9)},
			{Offset: 0.7, Color: sh.color.Alpha(alpha * 0.5)},
			{Offset: 1, Color: sh.color.Alpha(0)},
		})
		return
	}
	rim := make([]calm.Vec2, glowBlobPoints)
	for i := range rim {
		a := math.Pi * 2 * float64(i) / glowBlobPoints
		r := sh.radius * (0.8 + math.Sin(a*3+sh.seed)*0.2)
		rim[i] = calm.Vec2{X: math.Cos(a) * r, Y: math.Sin(a) * r}
	}
	c.FillShapeGradient(calm.Vec2{}, rim, calm.Vec2{}, sh.radius, calm.Gradient{
		{Offset: 0, Color: sh.color.Alpha(alpha * 0.85)},
		{Offset: 1, Color: sh.color.Alpha(alpha * 0.2)},
	})
}
