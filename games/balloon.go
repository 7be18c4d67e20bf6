package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	puffCap        = 24
	puffLife       = 400.0
	puffRadius     = 40.0
	puffRise       = 0.5
	liftForce      = 3.5
	liftPush       = 0.8
	liftSpin       = 0.0015
	balloonGravity = 0.012
	floorMargin    = 100.0
	stringSegments = 8
	stringSpacing  = 15.0
)

var (
	balloonWidth  = 70.0
	balloonHeight = 90.0
	stringColor   = calm.RGB{R: 180, G: 160, B: 140}
	balloonBG     = calm.RGB{R: 226, G: 238, B: 250}
)

type balloonScheme struct {
	body, highlight calm.RGB
}

var balloonSchemes = []balloonScheme{
	{calm.RGB{R: 255, G: 180, B: 200}, calm.RGB{R: 255, G: 220, B: 230}},
	{calm.RGB{R: 180, G: 200, B: 255}, calm.RGB{R: 220, G: 230, B: 255}},
	{calm.RGB{R: 200, G: 255, B: 220}, calm.RGB{R: 230, G: 255, B: 240}},
	{calm.RGB{R: 255, G: 220, B: 180}, calm.RGB{R: 255, G: 240, B: 210}},
	{calm.RGB{R: 220, G: 180, B: 255}, calm.RGB{R: 240, G: 210, B: 255}},
}

type puff struct {
	calm.Lifetime
	x, y float64
}

// BalloonBalance keeps a balloon aloft: each tap lifts it and nudges it away
// from the tap point while gravity slowly pulls it down.
type BalloonBalance struct {
	env    *calm.Env
	scheme balloonScheme

	x, y     float64
	vx, vy   float64
	rotation float64
	spin     float64

	tail  [stringSegments + 1]calm.Vec2
	puffs *calm.Pool[puff]
	hint  hint
}

// NewBalloonBalance creates the balloon scene.
func NewBalloonBalance() *BalloonBalance {
	return &BalloonBalance{hint: newHint("Tap to lift")}
}

// Mount implements calm.Scene.
func (s *BalloonBalance) Mount(env *calm.Env) {
	s.env = env
	s.scheme = balloonSchemes[env.Rand.IntN(len(balloonSchemes))]
	s.puffs = calm.NewPool[puff](puffCap)
	s.Resize(env.Surface)
}

// Resize implements calm.Resizer. The balloon is recentered and its string
// hangs straight down again.
func (s *BalloonBalance) Resize(sf calm.Surface) {
	s.x, s.y = sf.Width/2, sf.Height/2
	for i := range s.tail {
		s.tail[i] = calm.Vec2{X: s.x, Y: s.y + balloonHeight/2 + float64(i)*stringSpacing}
	}
}

// Position returns the balloon's center.
func (s *BalloonBalance) Position() calm.Vec2 { return calm.Vec2{X: s.x, Y: s.y} }

// Velocity returns the balloon's velocity in pixels per 60 Hz frame.
func (s *BalloonBalance) Velocity() calm.Vec2 { return calm.Vec2{X: s.vx, Y: s.vy} }

// Count returns the number of live puffs.
func (s *BalloonBalance) Count() int { return s.puffs.Len() }

// HandlePointer implements calm.Scene.
func (s *BalloonBalance) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind != calm.PointerDown {
		return
	}
	s.hint.dismiss()
	s.Lift(ev.X, ev.Y)
}

// Lift applies a tap at (x, y): an upward impulse, a small push away from the
// tap and some spin toward it.
func (s *BalloonBalance) Lift(x, y float64) {
	dx, dy := s.x-x, s.y-y
	d := math.Hypot(dx, dy)
	s.vy -= liftForce
	if d > 10 {
		s.vx += dx / d * liftPush
	}
	s.spin += (x - s.x) * liftSpin
	s.puffs.Spawn(puff{Lifetime: calm.Lifetime{Life: puffLife}, x: x, y: y})
	s.env.Sound.Play(calm.CuePuff)
}

// Update implements calm.Scene.
func (s *BalloonBalance) Update(now, dt float64) {
	s.hint.update(dt)
	w, h := s.env.Surface.Width, s.env.Surface.Height

	s.vy += balloonGravity * dt * 0.06
	s.vx *= 0.99
	s.vy *= 0.99
	s.spin *= 0.96
	s.vx += math.Sin(now*0.0005) * 0.002

	s.x += s.vx * dt * 0.06
	s.y += s.vy * dt * 0.06
	s.rotation += s.spin * dt * 0.001

	hw, hh := balloonWidth/2, balloonHeight/2
	if s.x < hw {
		s.x = hw
		s.vx *= -0.5
	}
	if s.x > w-hw {
		s.x = w - hw
		s.vx *= -0.5
	}
	if s.y < hh {
		s.y = hh
		s.vy *= -0.3
	}
	if s.y > h-hh-floorMargin {
		s.y = h - hh - floorMargin
		s.vy *= -0.5
	}

	s.puffs.Update(func(p *puff) bool {
		p.y -= puffRise
		return p.Advance(dt)
	})
	s.updateString(now)
}

// updateString makes each knot of the string trail the one above it.
func (s *BalloonBalance) updateString(now float64) {
	s.tail[0] = calm.Vec2{X: s.x, Y: s.y + balloonHeight/2 + 8}
	for i := 1; i < len(s.tail); i++ {
		prev, cur := s.tail[i-1], &s.tail[i]
		cur.X = calm.Lerp(cur.X, prev.X, 0.08)
		cur.Y = calm.Lerp(cur.Y, prev.Y+stringSpacing, 0.1)
		cur.X += math.Sin(now*0.002+float64(i)*0.5) * 0.3
	}
}

// Draw implements calm.Scene.
func (s *BalloonBalance) Draw(c *calm.Canvas, now float64) {
	c.Fill(balloonBG.Opaque())
	for _, p := range s.puffs.Items() {
		pr := p.Progress()
		c.FillCircle(p.x, p.y, puffRadius*(0.5+pr*0.5), white.Alpha(0.15*(1-pr)))
	}
	s.drawString(c)
	s.drawBalloon(c, now)
	s.hint.draw(c, s.scheme.body)
}

func (s *BalloonBalance) drawString(c *calm.Canvas) {
	col := stringColor.Alpha(0.7)
	c.StrokePolyline(s.tail[:], 2, false, col)
	last := s.tail[len(s.tail)-1]
	c.StrokeArc(last.X, last.Y+5, 6, 0, math.Pi*1.5, 2, col)
}

func (s *BalloonBalance) drawBalloon(c *calm.Canvas, now float64) {
	c.Save()
	defer c.Restore()
	c.Translate(s.x, s.y)
	c.Rotate(s.rotation)
	wobble := math.Sin(now*0.002) * 0.03
	c.Scale(1+wobble, 1-wobble*0.5)

	hw, hh := balloonWidth/2, balloonHeight/2
	body := calm.EllipsePoints(0, 0, hw, hh, 0, 48)
	c.FillShapeGradient(calm.Vec2{X: -balloonWidth * 0.2, Y: -balloonHeight * 0.2}, body,
		calm.Vec2{X: -balloonWidth * 0.2, Y: -balloonHeight * 0.2}, balloonHeight*0.6, calm.Gradient{
			{Offset: 0, Color: s.scheme.highlight.Alpha(0.95)},
			{Offset: 0.5, Color: s.scheme.body.Alpha(0.9)},
			{Offset: 1, Color: s.scheme.body.Alpha(0.7)},
		})
	c.FillEllipse(-balloonWidth*0.15, -balloonHeight*0.2, balloonWidth*0.15, balloonHeight*0.12, -0.3, white.Alpha(0.4))
	c.FillPolygon([]calm.Vec2{{X: -6, Y: hh - 5}, {X: 0, Y: hh + 8}, {X: 6, Y: hh - 5}}, s.scheme.body.Alpha(0.8))
}
