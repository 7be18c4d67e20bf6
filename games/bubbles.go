package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	bubbleTarget   = 26
	bubbleAttempts = 20
	bubbleSpacing  = 0.8
	popCap         = 8
	popLife        = 480.0
	mistCap        = 256
	mistPerPop     = 26
	introLaunch    = 3000.0
	respawnLaunch  = 2800.0
	emitterInset   = 20.0
	introMargin    = 16.0
	introMaxHeight = 0.35
	bubbleRimWidth = 1.2
	popRingWidth   = 1.6
	mistStep       = 0.06
)

var (
	bubbleRadius  = calm.Range{Min: 26, Max: 50}
	bubbleVX      = 0.32
	bubbleVY      = 0.22
	launchDelay   = calm.Range{Min: 80, Max: 520}
	respawnDelay  = calm.Range{Min: 300, Max: 700}
	mistSpeed     = calm.Range{Min: 0.2, Max: 0.9}
	mistRadius    = calm.Range{Min: 1.5, Max: 3.4}
	mistAlpha     = calm.Range{Min: 0.4, Max: 0.7}
	mistLife      = calm.Range{Min: 300, Max: 600}
	popRing       = calm.RGB{R: 180, G: 200, B: 230}
	bubblesBG     = calm.RGB{R: 232, G: 242, B: 252}
	defaultSource = calm.Vec2{X: 40, Y: 40}
)

type bubbleTint struct {
	rim      calm.RGB
	rimAlpha float64
	fill     calm.RGB
	alpha    float64
}

var bubblePalette = []bubbleTint{
	{calm.RGB{R: 120, G: 175, B: 235}, 0.9, calm.RGB{R: 172, G: 214, B: 255}, 0.62},
	{calm.RGB{R: 185, G: 140, B: 235}, 0.88, calm.RGB{R: 215, G: 185, B: 255}, 0.6},
	{calm.RGB{R: 255, G: 195, B: 155}, 0.88, calm.RGB{R: 255, G: 218, B: 186}, 0.6},
	{calm.RGB{R: 130, G: 220, B: 200}, 0.88, calm.RGB{R: 190, G: 245, B: 230}, 0.6},
	{calm.RGB{R: 245, G: 180, B: 210}, 0.9, calm.RGB{R: 255, G: 205, B: 230}, 0.62},
	{calm.RGB{R: 255, G: 210, B: 135}, 0.88, calm.RGB{R: 255, G: 230, B: 175}, 0.6},
}

type bubble struct {
	pos      calm.Vec2
	from     calm.Vec2
	to       calm.Vec2
	r        float64
	vx, vy   float64
	seed     float64
	tint     bubbleTint
	launchAt float64
	launch   float64
	settled  bool
}

type burst struct {
	calm.Lifetime
	x, y   float64
	start  float64
	spread float64
}

type droplet struct {
	calm.Lifetime
	x, y   float64
	vx, vy float64
	r      float64
	alpha  float64
}

// Bubbles floats a field of soap bubbles launched from an emitter. Tapping a
// bubble pops it into a ring and a puff of mist; a replacement drifts in
// from the emitter shortly after.
type Bubbles struct {
	env      *calm.Env
	bubbles  *calm.Pool[bubble]
	pops     *calm.Pool[burst]
	mist     *calm.Pool[droplet]
	respawns []float64
	emitter  calm.Vec2
	elapsed  float64
	motion   float64
}

// NewBubbles creates the bubble scene.
func NewBubbles() *Bubbles {
	return &Bubbles{}
}

// Mount implements calm.Scene. The first wave launches from the emitter
// over the intro period; after that gaps are filled in place.
func (s *Bubbles) Mount(env *calm.Env) {
	s.env = env
	s.motion = env.Options.MotionFactor()
	s.bubbles = calm.NewPool[bubble](bubbleTarget)
	s.pops = calm.NewPool[burst](popCap)
	s.mist = calm.NewPool[droplet](mistCap)
	s.emitter = defaultSource
	s.Resize(env.Surface)

	for !s.bubbles.Full() {
		b, ok := s.create(&s.emitter, introLaunch, launchDelay.Random(env.Rand))
		if !ok {
			break
		}
		s.bubbles.Spawn(b)
	}
}

// Resize implements calm.Resizer. Only the emitter moves; bubbles keep
// their positions.
func (s *Bubbles) Resize(sf calm.Surface) {
	rect, ok := s.introRect(sf)
	if !ok {
		return
	}
	x := rect.X + rect.Width - rect.Width*0.08
	y := rect.Y + rect.Height*0.6
	s.emitter = calm.Vec2{
		X: calm.Clamp(x, emitterInset, sf.Width-emitterInset),
		Y: calm.Clamp(y, emitterInset, sf.Height-emitterInset),
	}
}

// introRect places the intro picture in the bottom-left corner, scaled down
// to at most 35% of the surface height.
func (s *Bubbles) introRect(sf calm.Surface) (calm.Rect, bool) {
	pic := s.env.Intro
	if !pic.Loaded() {
		return calm.Rect{}, false
	}
	scale := math.Min(1, sf.Height*introMaxHeight/pic.Height)
	w, h := pic.Width*scale, pic.Height*scale
	return calm.Rect{X: introMargin, Y: sf.Height - introMargin - h, Width: w, Height: h}, true
}

// Count returns the number of bubbles on screen.
func (s *Bubbles) Count() int { return s.bubbles.Len() }

// Pops returns the number of fading pop rings.
func (s *Bubbles) Pops() int { return s.pops.Len() }

// Mist returns the number of live mist droplets.
func (s *Bubbles) Mist() int { return s.mist.Len() }

// Emitter returns the point new bubbles launch from.
func (s *Bubbles) Emitter() calm.Vec2 { return s.emitter }

// At returns the center and radius of the i-th bubble.
func (s *Bubbles) At(i int) (calm.Vec2, float64) {
	b := s.bubbles.At(i)
	return b.pos, b.r
}

// create picks a target that does not crowd existing bubbles. A nil start
// places the bubble directly at its target.
func (s *Bubbles) create(start *calm.Vec2, launch, delay float64) (bubble, bool) {
	r := s.env.Rand
	sf := s.env.Surface
	radius := bubbleRadius.Random(r)
	for range bubbleAttempts {
		to := calm.Vec2{
			X: calm.Between(r, radius, sf.Width-radius),
			Y: calm.Between(r, radius, sf.Height-radius),
		}
		if s.crowded(to, radius) {
			continue
		}
		from := to
		if start != nil {
			from = *start
		}
		return bubble{
			pos:      from,
			from:     from,
			to:       to,
			r:        radius,
			vx:       calm.Spread(r, bubbleVX),
			vy:       calm.Spread(r, bubbleVY),
			seed:     r.Float64() * math.Pi * 2,
			tint:     bubblePalette[r.IntN(len(bubblePalette))],
			launchAt: s.elapsed + delay,
			launch:   launch,
			settled:  launch == 0,
		}, true
	}
	return bubble{}, false
}

func (s *Bubbles) crowded(to calm.Vec2, radius float64) bool {
	for _, o := range s.bubbles.Items() {
		if to.Dist(o.to) < (radius+o.r)*bubbleSpacing {
			return true
		}
	}
	return false
}

// HandlePointer implements calm.Scene. A press pops the topmost bubble
// under it.
func (s *Bubbles) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind != calm.PointerDown {
		return
	}
	items := s.bubbles.Items()
	for i := len(items) - 1; i >= 0; i-- {
		b := items[i]
		dx, dy := b.pos.X-ev.X, b.pos.Y-ev.Y
		if dx*dx+dy*dy <= b.r*b.r {
			s.pop(i)
			return
		}
	}
}

func (s *Bubbles) pop(index int) {
	var popped bubble
	i := 0
	s.bubbles.Update(func(b *bubble) bool {
		keep := i != index
		if !keep {
			popped = *b
		}
		i++
		return keep
	})

	s.pops.Spawn(burst{
		Lifetime: calm.Lifetime{Life: popLife},
		x:        popped.pos.X,
		y:        popped.pos.Y,
		start:    popped.r * 0.5,
		spread:   popped.r * 1.4,
	})

	r := s.env.Rand
	n := int(math.Floor(mistPerPop * s.motion))
	for range n {
		angle := r.Float64() * math.Pi * 2
		speed := mistSpeed.Random(r) * s.motion
		s.mist.Spawn(droplet{
			Lifetime: calm.Lifetime{Life: mistLife.Random(r)},
			x:        popped.pos.X,
			y:        popped.pos.Y,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle) * speed,
			r:        mistRadius.Random(r),
			alpha:    mistAlpha.Random(r),
		})
	}
	s.respawns = append(s.respawns, s.elapsed+respawnDelay.Random(r))
	s.env.Sound.Play(calm.CuePop)
}

// Update implements calm.Scene.
func (s *Bubbles) Update(_, dt float64) {
	s.elapsed += dt
	sf := s.env.Surface

	s.bubbles.Update(func(b *bubble) bool {
		s.move(b, sf)
		return true
	})
	s.pops.Update(func(p *burst) bool { return p.Advance(dt) })
	s.mist.Update(func(m *droplet) bool {
		m.x += m.vx * dt * mistStep
		m.y += m.vy * dt * mistStep
		m.alpha = math.Max(0, m.alpha-dt/m.Life)
		return m.Advance(dt) && m.alpha > 0
	})

	due := 0
	for _, at := range s.respawns {
		if at <= s.elapsed {
			due++
		}
	}
	if due > 0 {
		pending := s.respawns[:0]
		for _, at := range s.respawns {
			if at > s.elapsed {
				pending = append(pending, at)
			}
		}
		s.respawns = pending
		for range due {
			if b, ok := s.create(&s.emitter, respawnLaunch, 0); ok {
				s.bubbles.Spawn(b)
			}
		}
	}

	if s.elapsed > introLaunch {
		for !s.bubbles.Full() {
			b, ok := s.create(nil, 0, 0)
			if !ok {
				break
			}
			s.bubbles.Spawn(b)
		}
	}
}

// move advances one bubble: along its launch curve first, then drifting
// and bouncing inside the surface.
func (s *Bubbles) move(b *bubble, sf calm.Surface) {
	if b.launch > 0 {
		p := (s.elapsed - b.launchAt) / b.launch
		switch {
		case p < 0:
			b.pos = b.from
			return
		case p < 1:
			e := calm.EaseOutCubic(p)
			b.pos = calm.Vec2{X: calm.Lerp(b.from.X, b.to.X, e), Y: calm.Lerp(b.from.Y, b.to.Y, e)}
			return
		case !b.settled:
			b.pos = b.to
			b.settled = true
		}
	}

	k := s.motion
	b.pos.X += b.vx * k
	b.pos.Y += b.vy * k
	b.pos.X += math.Cos(s.elapsed*0.0008+b.seed) * 0.14 * k
	b.pos.Y += math.Sin(s.elapsed*0.0009+b.seed) * 0.12 * k

	if b.pos.X-b.r < 0 || b.pos.X+b.r > sf.Width {
		b.vx = -b.vx
	}
	if b.pos.Y-b.r < 0 || b.pos.Y+b.r > sf.Height {
		b.vy = -b.vy
	}
	b.pos.X = calm.Clamp(b.pos.X, b.r, sf.Width-b.r)
	b.pos.Y = calm.Clamp(b.pos.Y, b.r, sf.Height-b.r)
}

// Draw implements calm.Scene.
func (s *Bubbles) Draw(c *calm.Canvas, _ float64) {
	c.Fill(bubblesBG.Opaque())
	if rect, ok := s.introRect(s.env.Surface); ok {
		s.env.Intro.Draw(c, rect, 1)
	}
	for _, b := range s.bubbles.Items() {
		drawBubble(c, b, s.elapsed)
	}
	for _, p := range s.pops.Items() {
		pr := p.Progress()
		c.StrokeCircle(p.x, p.y, p.start+pr*p.spread, popRingWidth, popRing.Alpha(1-pr))
	}
	for _, m := range s.mist.Items() {
		c.FillCircle(m.x, m.y, m.r, white.Alpha(m.alpha))
	}
}

func drawBubble(c *calm.Canvas, b bubble, t float64) {
	r := b.r * (1 + math.Sin(t*0.0015+b.seed)*0.03)
	x, y := b.pos.X, b.pos.Y
	// The inner stop is rebased for a focal disc of radius 0.2r.
	c.FocalGradient(x-r*0.3, y-r*0.3, x, y, r, calm.Gradient{
		{Offset: 0, Color: white.Alpha(0.85)},
		{Offset: 0.2, Color: white.Alpha(0.85)},
		{Offset: 0.48, Color: b.tint.fill.Alpha(b.tint.alpha)},
		{Offset: 1, Color: white.Alpha(0.08)},
	})
	c.StrokeCircle(x, y, r, bubbleRimWidth, b.tint.rim.Alpha(b.tint.rimAlpha))
}
