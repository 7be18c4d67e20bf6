package games

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/calm"
)

const (
	trailCap       = 64
	trailPointCap  = 2048
	trailLife      = 45000.0
	trailFade      = 8000.0
	trailWidth     = 14.0
	trailStep      = 4.0
	rakeTime       = 800.0
	furrowSpacing  = 12.0
	rakeLinesAfter = 0.3
)

var (
	sandTop       = calm.RGB{R: 235, G: 220, B: 195}
	sandBottom    = calm.RGB{R: 215, G: 195, B: 165}
	sandFurrow    = calm.RGB{R: 200, G: 180, B: 150}
	sandShadow    = calm.RGB{R: 160, G: 140, B: 110}
	sandGroove    = calm.RGB{R: 180, G: 160, B: 130}
	sandHighlight = calm.RGB{R: 240, G: 230, B: 210}
)

// SandState is the sand garden's interaction state.
type SandState uint8

const (
	SandIdle SandState = iota
	SandDrawing
	SandRaking
)

var sandStateNames = [...]string{"idle", "drawing", "raking"}

func (s SandState) String() string {
	if int(s) < len(sandStateNames) {
		return sandStateNames[s]
	}
	return "unknown"
}

type trail struct {
	calm.Lifetime
	points []calm.Vec2
	width  float64
}

// SandGarden lets the user draw grooves in raked sand. The Rake button
// smooths the garden over and clears every groove.
type SandGarden struct {
	env     *calm.Env
	trails  *calm.Pool[trail]
	state   SandState
	pointer int
	last    calm.Vec2
	rake    *calm.Transition
	rakeBtn *calm.Button
	hint    hint
}

// NewSandGarden creates the sand-garden scene.
func NewSandGarden() *SandGarden {
	return &SandGarden{
		rake:    calm.NewTransition(rakeTime, ease.OutCubic),
		rakeBtn: calm.NewButton("Rake"),
		hint:    newHint("Draw in the sand"),
	}
}

// Mount implements calm.Scene.
func (s *SandGarden) Mount(env *calm.Env) {
	s.env = env
	s.trails = calm.NewPool[trail](trailCap)
	s.Resize(env.Surface)
}

// Resize implements calm.Resizer.
func (s *SandGarden) Resize(sf calm.Surface) {
	s.rakeBtn.PlaceBottomCenter(sf, 24)
}

// State returns the current interaction state.
func (s *SandGarden) State() SandState { return s.state }

// Count returns the number of live grooves.
func (s *SandGarden) Count() int { return s.trails.Len() }

// Points returns the number of points in the i-th groove.
func (s *SandGarden) Points(i int) int { return len(s.trails.At(i).points) }

// HandlePointer implements calm.Scene.
func (s *SandGarden) HandlePointer(ev calm.PointerEvent) {
	if clicked, consumed := s.rakeBtn.Handle(ev); consumed {
		if clicked {
			s.Rake()
		}
		return
	}
	switch ev.Kind {
	case calm.PointerDown:
		if s.state != SandIdle {
			return
		}
		s.hint.dismiss()
		s.startTrail(ev.ID, ev.X, ev.Y)
	case calm.PointerMove:
		if s.state == SandDrawing && ev.ID == s.pointer {
			s.extend(ev.X, ev.Y)
		}
	case calm.PointerUp, calm.PointerCancel:
		if s.state == SandDrawing && ev.ID == s.pointer {
			s.state = SandIdle
		}
	}
}

// Rake starts smoothing the garden. It is ignored while a rake is running.
func (s *SandGarden) Rake() {
	if s.state == SandRaking {
		return
	}
	s.state = SandRaking
	s.rake.Start()
	s.env.Sound.Play(calm.CueSweep)
}

func (s *SandGarden) startTrail(id int, x, y float64) {
	pts := make([]calm.Vec2, 1, 64)
	pts[0] = calm.Vec2{X: x, Y: y}
	if !s.trails.Spawn(trail{Lifetime: calm.Lifetime{Life: trailLife}, points: pts, width: trailWidth}) {
		return
	}
	s.state = SandDrawing
	s.pointer = id
	s.last = pts[0]
}

// extend appends evenly spaced points from the last recorded point to
// (x, y). Moves shorter than one step are held until the pointer travels
// further.
func (s *SandGarden) extend(x, y float64) {
	if s.trails.Len() == 0 {
		return
	}
	t := s.trails.At(s.trails.Len() - 1)
	dx, dy := x-s.last.X, y-s.last.Y
	d := math.Hypot(dx, dy)
	if d <= trailStep {
		return
	}
	steps := int(math.Ceil(d / trailStep))
	for i := 1; i <= steps && len(t.points) < trailPointCap; i++ {
		f := float64(i) / float64(steps)
		t.points = append(t.points, calm.Vec2{X: s.last.X + dx*f, Y: s.last.Y + dy*f})
	}
	s.last = calm.Vec2{X: x, Y: y}
}

// Update implements calm.Scene.
func (s *SandGarden) Update(_, dt float64) {
	s.hint.update(dt)
	if s.rake.Update(dt) {
		s.trails.Clear()
		s.state = SandIdle
	}
	s.trails.Update(func(t *trail) bool { return t.Advance(dt) })
	if s.state == SandDrawing && s.trails.Len() == 0 {
		s.state = SandIdle
	}
}

// Draw implements calm.Scene.
func (s *SandGarden) Draw(c *calm.Canvas, _ float64) {
	w, h := c.Width(), c.Height()
	c.LinearGradientRect(0, 0, w, h, 0, 0, 0, h, calm.Gradient{
		{Offset: 0, Color: sandTop.Opaque()},
		{Offset: 1, Color: sandBottom.Opaque()},
	})
	drawFurrows(c, 0.15)
	for _, t := range s.trails.Items() {
		drawTrail(c, t)
	}
	if s.rake.Active() {
		p := s.rake.Progress()
		c.Fill(sandTop.Alpha(s.rake.Value()))
		if p > rakeLinesAfter {
			drawFurrows(c, 0.2*(p-rakeLinesAfter)/(1-rakeLinesAfter))
		}
	}
	s.hint.draw(c, sandShadow)
	s.rakeBtn.Draw(c, sandShadow)
}

func drawFurrows(c *calm.Canvas, alpha float64) {
	col := sandFurrow.Alpha(alpha)
	for y := furrowSpacing; y < c.Height(); y += furrowSpacing {
		c.Line(0, y, c.Width(), y, 1, col)
	}
}

func drawTrail(c *calm.Canvas, t trail) {
	if len(t.points) < 2 {
		return
	}
	alpha := calm.FadeTail(t.Age, t.Life, trailFade)
	if alpha <= 0 {
		return
	}
	c.StrokePolyline(offsetPoints(t.points, 2, 2), t.width+4, false, sandShadow.Alpha(0.4*alpha))
	c.StrokePolyline(t.points, t.width, false, sandGroove.Alpha(0.85*alpha))
	c.StrokePolyline(offsetPoints(t.points, -1, -1), 1.5, false, sandHighlight.Alpha(0.5*alpha))
}

func offsetPoints(pts []calm.Vec2, dx, dy float64) []calm.Vec2 {
	out := make([]calm.Vec2, len(pts))
	for i, p := range pts {
		out[i] = calm.Vec2{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
