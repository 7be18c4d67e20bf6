package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	bloomCap      = 32
	bloomSwirls   = 3
	autoBloomEach = 3000.0
	tideDrift     = 0.00008
)

var (
	bloomEnd  = calm.Range{Min: 520, Max: 760}
	bloomLife = calm.Range{Min: 3800, Max: 5200}
)

var tidePalette = []calm.RGB{
	{R: 120, G: 200, B: 255},
	{R: 200, G: 140, B: 255},
	{R: 255, G: 145, B: 220},
	{R: 120, G: 235, B: 200},
	{R: 255, G: 190, B: 120},
	{R: 255, G: 235, B: 120},
}

// tideColor returns the palette color drifting with time; offset moves along
// the palette in whole entries.
func tideColor(now, offset float64) calm.RGB {
	n := float64(len(tidePalette))
	shift := math.Mod(now*tideDrift+offset, n)
	idx := int(shift)
	return calm.Mix(tidePalette[idx], tidePalette[(idx+1)%len(tidePalette)], shift-float64(idx))
}

type bloom struct {
	calm.Lifetime
	x, y       float64
	end        float64
	ring, fill calm.RGB
}

// TideWash paints slowly drifting gradient washes; taps (and a timer at the
// center) add swirling blooms.
type TideWash struct {
	env    *calm.Env
	blooms *calm.Pool[bloom]
	auto   float64
	now    float64
	hint   hint
}

// NewTideWash creates the tide-wash scene.
func NewTideWash() *TideWash {
	return &TideWash{hint: newHint("Tap to send a wave of color")}
}

// Mount implements calm.Scene.
func (s *TideWash) Mount(env *calm.Env) {
	s.env = env
	s.blooms = calm.NewPool[bloom](bloomCap)
}

// Count returns the number of live blooms.
func (s *TideWash) Count() int { return s.blooms.Len() }

// HandlePointer implements calm.Scene.
func (s *TideWash) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind == calm.PointerDown {
		s.hint.dismiss()
		if s.Spawn(ev.X, ev.Y) {
			s.env.Sound.Play(calm.CueChime)
		}
	}
}

// Spawn adds a bloom at (x, y) colored from the current palette drift.
func (s *TideWash) Spawn(x, y float64) bool {
	r := s.env.Rand
	fill := tideColor(s.now, r.Float64()*2)
	ring := tideColor(s.now, r.Float64()*3)
	return s.blooms.Spawn(bloom{
		Lifetime: calm.Lifetime{Life: bloomLife.Random(r)},
		x:        x,
		y:        y,
		end:      bloomEnd.Random(r),
		ring:     ring,
		fill:     fill,
	})
}

// Update implements calm.Scene.
func (s *TideWash) Update(now, dt float64) {
	s.now = now
	s.hint.update(dt)
	s.auto += dt
	if s.auto >= autoBloomEach {
		ctr := s.env.Surface.Center()
		s.Spawn(ctr.X, ctr.Y)
		s.auto = 0
	}
	s.blooms.Update(func(b *bloom) bool { return b.Advance(dt) })
}

// Draw implements calm.Scene.
func (s *TideWash) Draw(c *calm.Canvas, now float64) {
	w, h := c.Width(), c.Height()
	angle := now * tideDrift
	dx, dy := math.Cos(angle)*w*0.4, math.Sin(angle)*h*0.4
	c.LinearGradientRect(0, 0, w, h, w/2+dx, h/2+dy, w/2-dx, h/2-dy, calm.Gradient{
		{Offset: 0, Color: tideColor(now, 0.2).Opaque()},
		{Offset: 0.5, Color: tideColor(now, 1.0).Alpha(0.95)},
		{Offset: 1, Color: tideColor(now, 1.8).Alpha(0.95)},
	})
	c.RadialGradient(w/2, h/2, math.Max(w, h)*0.8, calm.Gradient{
		{Offset: 0, Color: tideColor(now, 2.4).Alpha(0.35)},
		{Offset: 1, Color: tideColor(now, 0.6).Alpha(0)},
	})

	c.SetBlend(calm.BlendScreen)
	for _, b := range s.blooms.Items() {
		drawBloom(c, b, now)
	}
	c.SetBlend(calm.BlendNormal)
	s.hint.draw(c, tideColor(now, 3))
}

func drawBloom(c *calm.Canvas, b bloom, now float64) {
	p := b.Progress()
	radius := calm.Lerp(0, b.end, p)
	alpha := calm.FadePow(p, 2)
	for i := 0; i < bloomSwirls; i++ {
		fi := float64(i)
		phase := now*0.0012 + fi*2.1 + b.x*0.002
		off := radius * (0.08 + fi*0.05)
		cx, cy := b.x+math.Cos(phase)*off, b.y+math.Sin(phase)*off
		c.RadialGradient(cx, cy, radius*(0.5+fi*0.08), calm.Gradient{
			{Offset: 0, Color: b.fill.Alpha(0)},
			{Offset: 0.35, Color: b.fill.Alpha(0.22 * alpha)},
			{Offset: 1, Color: b.fill.Alpha(0.85 * alpha)},
		})
	}
	// Thin rim in the secondary color.
	c.StrokeCircle(b.x, b.y, radius*0.66, 1.5, b.ring.Alpha(0.25*alpha))
}
