package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	rippleCap       = 48
	rippleRings     = 4
	ripplePetals    = 6
	ripplePetalTill = 0.7
)

var (
	rippleEnd  = calm.Range{Min: 600, Max: 900}
	rippleLife = calm.Range{Min: 5200, Max: 7200}
	rippleHue  = 16.0
	rippleBG   = calm.RGB{R: 14, G: 18, B: 34}
)

type pastel struct {
	ring, fill calm.RGB
}

var pastelPalette = []pastel{
	{ring: calm.RGB{R: 105, G: 170, B: 255}, fill: calm.RGB{R: 165, G: 215, B: 255}},
	{ring: calm.RGB{R: 160, G: 120, B: 255}, fill: calm.RGB{R: 200, G: 175, B: 255}},
	{ring: calm.RGB{R: 255, G: 130, B: 185}, fill: calm.RGB{R: 255, G: 195, B: 220}},
	{ring: calm.RGB{R: 100, G: 225, B: 185}, fill: calm.RGB{R: 165, G: 245, B: 215}},
	{ring: calm.RGB{R: 255, G: 170, B: 95}, fill: calm.RGB{R: 255, G: 210, B: 150}},
}

type ripple struct {
	calm.Lifetime
	x, y       float64
	end        float64
	ring, fill calm.RGB
}

// Ripples spawns one expanding wavy ripple per tap, in hue-shifted pastels
// composited with screen blending.
type Ripples struct {
	env     *calm.Env
	ripples *calm.Pool[ripple]
	hint    hint
}

// NewRipples creates the calm-touch scene.
func NewRipples() *Ripples {
	return &Ripples{hint: newHint("Tap for ripples")}
}

// Mount implements calm.Scene.
func (s *Ripples) Mount(env *calm.Env) {
	s.env = env
	s.ripples = calm.NewPool[ripple](rippleCap)
}

// Count returns the number of live ripples.
func (s *Ripples) Count() int { return s.ripples.Len() }

// HandlePointer implements calm.Scene.
func (s *Ripples) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind == calm.PointerDown {
		s.hint.dismiss()
		s.Spawn(ev.X, ev.Y)
	}
}

// Spawn adds a ripple centered on (x, y). It reports false when the pool is full.
func (s *Ripples) Spawn(x, y float64) bool {
	r := s.env.Rand
	a, b := calm.TwoDistinct(r, len(pastelPalette))
	mix := r.Float64()
	shift := calm.Spread(r, rippleHue)
	ok := s.ripples.Spawn(ripple{
		Lifetime: calm.Lifetime{Life: rippleLife.Random(r)},
		x:        x,
		y:        y,
		end:      rippleEnd.Random(r),
		ring:     calm.ShiftHue(calm.Mix(pastelPalette[a].ring, pastelPalette[b].ring, mix), shift),
		fill:     calm.ShiftHue(calm.Mix(pastelPalette[a].fill, pastelPalette[b].fill, mix), shift*0.7),
	})
	if ok {
		s.env.Sound.Play(calm.CueChime)
	}
	return ok
}

// Update implements calm.Scene.
func (s *Ripples) Update(_, dt float64) {
	s.hint.update(dt)
	s.ripples.Update(func(rp *ripple) bool { return rp.Advance(dt) })
}

// Draw implements calm.Scene.
func (s *Ripples) Draw(c *calm.Canvas, _ float64) {
	c.Fill(rippleBG.Opaque())
	c.SetBlend(calm.BlendScreen)
	for _, rp := range s.ripples.Items() {
		drawRipple(c, rp)
	}
	c.SetBlend(calm.BlendNormal)
	s.hint.draw(c, pastelPalette[0].ring)
}

func drawRipple(c *calm.Canvas, rp ripple) {
	p := rp.Progress()
	radius := calm.Lerp(0, rp.end, p)
	alpha := calm.FadePow(p, 2.1)

	inner := radius * 0.65
	c.RadialGradient(rp.x, rp.y, inner, calm.Gradient{
		{Offset: 0, Color: rp.fill.Alpha(0)},
		{Offset: 0.4, Color: rp.fill.Alpha(0.15 * alpha)},
		{Offset: 0.7, Color: rp.fill.Alpha(0.35 * alpha)},
		{Offset: 1, Color: rp.fill.Alpha(0.8 * alpha)},
	})

	for r := 0; r < rippleRings; r++ {
		rf := float64(r)
		ringP := (rf + 1) / (rippleRings + 1)
		ringAlpha := alpha * (1 - ringP*0.5)
		waves := 12 + rf*4
		amp := (3 + rf*1.5) * (1 - p)
		phase := p*math.Pi*2 + rf*0.5
		pts := make([]calm.Vec2, 0, 180)
		for deg := 0; deg < 360; deg += 2 {
			a := float64(deg) * math.Pi / 180
			d := radius*ringP + math.Sin(a*waves+phase)*amp
			pts = append(pts, calm.Vec2{X: rp.x + math.Cos(a)*d, Y: rp.y + math.Sin(a)*d})
		}
		c.StrokePolyline(pts, 2.5-rf*0.4, true, rp.ring.Alpha(ringAlpha*0.6))
	}

	// Outer ring over a wide faint halo.
	c.StrokeCircle(rp.x, rp.y, radius, 12, rp.ring.Alpha(0.1*alpha))
	c.StrokeCircle(rp.x, rp.y, radius, 3, rp.ring.Alpha(0.9*alpha))

	if p < ripplePetalTill {
		petalAlpha := alpha * (1 - p/ripplePetalTill) * 0.4
		for i := 0; i < ripplePetals; i++ {
			a := float64(i)/ripplePetals*math.Pi*2 + p*math.Pi
			c.FillCircle(rp.x+math.Cos(a)*radius*0.85, rp.y+math.Sin(a)*radius*0.85, 4+(1-p)*6, rp.fill.Alpha(petalAlpha))
		}
	}
}
