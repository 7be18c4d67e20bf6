package games

import (
	"fmt"
	"math"

	"github.com/phanxgames/calm"
)

const (
	fallCap         = 18
	pushCap         = 16
	fallSpawnChance = 0.02
	pushRadius      = 120.0
	pushLife        = 400.0
	pushForce       = 0.15
	basketHeight    = 80.0
	catchFadeTime   = 500.0
	fallGravity     = 0.0003
	fallStep        = 0.06
)

var (
	fallVX     = 0.3
	fallVY     = calm.Range{Min: 0.4, Max: 0.8}
	fallRadius = calm.Range{Min: 10, Max: 18}
	fallBG     = calm.RGB{R: 18, G: 20, B: 38}
	basketTint = calm.RGB{R: 255, G: 240, B: 200}
	basketRim  = calm.RGB{R: 255, G: 220, B: 150}
)

var fallPalette = []calm.RGB{
	{R: 255, G: 220, B: 150},
	{R: 255, G: 200, B: 180},
	{R: 200, G: 220, B: 255},
	{R: 180, G: 255, B: 220},
	{R: 255, G: 180, B: 220},
}

type mote struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	color   calm.RGB
	seed    float64
	caught  bool
	fadeOut float64
}

type push struct {
	calm.Lifetime
	x, y float64
}

// CatchFall drops glowing motes from the top; taps push them away and the
// basket at the bottom catches them.
type CatchFall struct {
	env         *calm.Env
	motes       *calm.Pool[mote]
	pushes      *calm.Pool[push]
	score       int
	spawnChance float64
	basketLeft  float64
	basketRight float64
	hint        hint
}

// NewCatchFall creates the catch-fall scene.
func NewCatchFall() *CatchFall {
	return &CatchFall{hint: newHint("Tap to guide the light"), spawnChance: fallSpawnChance}
}

// Mount implements calm.Scene.
func (s *CatchFall) Mount(env *calm.Env) {
	s.env = env
	s.motes = calm.NewPool[mote](fallCap)
	s.pushes = calm.NewPool[push](pushCap)
	s.Resize(env.Surface)
}

// Resize implements calm.Resizer. The basket spans the middle half of the
// bottom edge.
func (s *CatchFall) Resize(sf calm.Surface) {
	s.basketLeft = sf.Width * 0.25
	s.basketRight = sf.Width * 0.75
}

// Score returns the number of motes caught so far.
func (s *CatchFall) Score() int { return s.score }

// Count returns the number of live motes, caught ones still fading included.
func (s *CatchFall) Count() int { return s.motes.Len() }

// Basket returns the basket's horizontal bounds.
func (s *CatchFall) Basket() (left, right float64) { return s.basketLeft, s.basketRight }

// HandlePointer implements calm.Scene.
func (s *CatchFall) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind == calm.PointerDown {
		s.hint.dismiss()
		s.pushes.Spawn(push{Lifetime: calm.Lifetime{Life: pushLife}, x: ev.X, y: ev.Y})
	}
}

// Drop releases a mote just above the top edge at x.
func (s *CatchFall) Drop(x float64) bool {
	r := s.env.Rand
	return s.motes.Spawn(mote{
		x:      x,
		y:      -20,
		vx:     calm.Spread(r, fallVX),
		vy:     fallVY.Random(r),
		radius: fallRadius.Random(r),
		color:  fallPalette[r.IntN(len(fallPalette))],
		seed:   r.Float64() * math.Pi * 2,
	})
}

// Update implements calm.Scene.
func (s *CatchFall) Update(now, dt float64) {
	s.hint.update(dt)
	w, h := s.env.Surface.Width, s.env.Surface.Height
	if calm.Chance(s.env.Rand, s.spawnChance) && !s.motes.Full() {
		s.Drop(calm.Between(s.env.Rand, 30, w-30))
	}
	s.pushes.Update(func(p *push) bool { return p.Advance(dt) })

	s.motes.Update(func(m *mote) bool {
		if m.caught {
			m.fadeOut += dt / catchFadeTime
			return m.fadeOut < 1
		}
		for _, p := range s.pushes.Items() {
			applyPush(m, p)
		}
		m.x += m.vx * dt * fallStep
		m.y += m.vy * dt * fallStep
		m.vx *= 0.995
		m.vy *= 0.998
		m.vy += fallGravity * dt
		m.x += math.Sin(now*0.001+m.seed) * 0.15

		if m.x < m.radius {
			m.x = m.radius
			m.vx *= -0.5
		}
		if m.x > w-m.radius {
			m.x = w - m.radius
			m.vx *= -0.5
		}

		if m.y > h-basketHeight-m.radius {
			if m.x > s.basketLeft && m.x < s.basketRight {
				m.caught = true
				s.score++
				s.env.Sound.Play(calm.CueCatch)
			} else if m.y > h+50 {
				return false
			}
		}
		return true
	})
}

func applyPush(m *mote, p push) {
	dx, dy := m.x-p.x, m.y-p.y
	d := math.Hypot(dx, dy)
	if d < pushRadius && d > 0 {
		f := (1 - d/pushRadius) * pushForce
		m.vx += dx / d * f
		m.vy += dy / d * f
	}
}

// Draw implements calm.Scene.
func (s *CatchFall) Draw(c *calm.Canvas, now float64) {
	c.Fill(fallBG.Opaque())
	s.drawBasket(c)
	for _, p := range s.pushes.Items() {
		pr := p.Progress()
		c.StrokeCircle(p.x, p.y, pushRadius*(0.5+pr*0.5), 2, white.Alpha(0.4*(1-pr)))
	}
	for _, m := range s.motes.Items() {
		drawMote(c, m, now)
	}
	c.Text(fmt.Sprintf("Caught: %d", s.score), 12, 10)
	s.hint.draw(c, fallPalette[2])
}

func (s *CatchFall) drawBasket(c *calm.Canvas) {
	h := c.Height()
	top := h - basketHeight
	l, r := s.basketLeft, s.basketRight
	c.LinearGradientRect(l, top, r-l, basketHeight, l, top, r, h, calm.Gradient{
		{Offset: 0, Color: basketTint.Alpha(0.1)},
		{Offset: 1, Color: basketTint.Alpha(0.3)},
	})
	rim := basketRim.Alpha(0.6)
	c.Line(l, top, l, h, 3, rim)
	c.Line(r, top, r, h, 3, rim)
	c.Line(l, top, r, top, 3, rim)
	for i := 0; i < 5; i++ {
		y := top + basketHeight*float64(i+1)/6
		weave := calm.QuadPoints(calm.Vec2{X: l + 10, Y: y}, calm.Vec2{X: (l + r) / 2, Y: y + 8}, calm.Vec2{X: r - 10, Y: y}, 16)
		c.StrokePolyline(weave, 1, false, basketRim.Alpha(0.2))
	}
}

func drawMote(c *calm.Canvas, m mote, now float64) {
	alpha := 1.0
	if m.caught {
		alpha = 1 - m.fadeOut
	}
	if alpha <= 0 {
		return
	}
	r := m.radius * (1 + math.Sin(now*0.003+m.seed)*0.1)
	c.RadialGradient(m.x, m.y, r*2.5, calm.Gradient{
		{Offset: 0, Color: m.color.Alpha(0.4 * alpha)},
		{Offset: 1, Color: m.color.Alpha(0)},
	})
	c.RadialGradient(m.x, m.y, r, calm.Gradient{
		{Offset: 0, Color: white.Alpha(0.9 * alpha)},
		{Offset: 0.5, Color: m.color.Alpha(0.8 * alpha)},
		{Offset: 1, Color: m.color.Alpha(0.4 * alpha)},
	})
}
