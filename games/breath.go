package games

import (
	"math"
	"strconv"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/calm"
)

const (
	breathMinRadius = 50.0
	breathMaxRadius = 160.0
	breathFollow    = 0.1
	breathFadeTime  = 500.0
	breathOrbiters  = 8
)

type breathAction int

const (
	actionExpand breathAction = iota
	actionHold
	actionShrink
)

type breathPhase struct {
	name     string
	duration float64
	action   breathAction
	cue      calm.Cue
}

var breathPhases = []breathPhase{
	{"Breathe In", 4000, actionExpand, calm.CueBreathIn},
	{"Hold", 4000, actionHold, calm.CueHold},
	{"Breathe Out", 4000, actionShrink, calm.CueBreathOut},
	{"Hold", 4000, actionHold, calm.CueHold},
}

// chakraColors run from root to crown.
var chakraColors = []calm.RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 127, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 191, B: 255},
	{R: 75, G: 0, B: 130},
	{R: 148, G: 0, B: 211},
}

var breathBG = calm.RGB{R: 12, G: 14, B: 28}

// CycleDuration is the length of one full box-breathing cycle in ms.
func CycleDuration() float64 {
	var d float64
	for _, p := range breathPhases {
		d += p.duration
	}
	return d
}

// PhaseInfo describes where a point in the cycle falls.
type PhaseInfo struct {
	Name        string
	Index       int
	Progress    float64
	SecondsLeft int
}

// phaseAt locates t (ms since the exercise began) within the cycle.
func phaseAt(t float64) (PhaseInfo, breathPhase) {
	elapsed := math.Mod(t, CycleDuration())
	var acc float64
	for i, p := range breathPhases {
		if elapsed < acc+p.duration {
			into := elapsed - acc
			return PhaseInfo{
				Name:        p.name,
				Index:       i,
				Progress:    into / p.duration,
				SecondsLeft: int(math.Ceil((p.duration - into) / 1000)),
			}, p
		}
		acc += p.duration
	}
	p := breathPhases[0]
	return PhaseInfo{Name: p.name, SecondsLeft: int(p.duration / 1000)}, p
}

// BreathSync paces 4-4-4-4 box breathing with a circle that swells and
// settles, drifting through the chakra colors one breath at a time.
type BreathSync struct {
	env       *calm.Env
	started   bool
	cycleTime float64
	count     int
	phase     int
	radius    float64
	target    float64
	intro     *calm.Transition
	startBtn  *calm.Button
}

// NewBreathSync creates the breathing scene.
func NewBreathSync() *BreathSync {
	return &BreathSync{
		radius:   breathMinRadius,
		target:   breathMinRadius,
		phase:    -1,
		intro:    calm.NewTransition(breathFadeTime, ease.Linear),
		startBtn: calm.NewButton("Tap to Begin"),
	}
}

// Mount implements calm.Scene.
func (s *BreathSync) Mount(env *calm.Env) {
	s.env = env
	s.Resize(env.Surface)
}

// Resize implements calm.Resizer.
func (s *BreathSync) Resize(sf calm.Surface) {
	s.startBtn.PlaceBottomCenter(sf, sf.Height*0.2)
}

// HandlePointer implements calm.Scene. Any press starts the exercise while
// the start screen is showing.
func (s *BreathSync) HandlePointer(ev calm.PointerEvent) {
	if s.started {
		return
	}
	s.startBtn.Handle(ev)
	if ev.Kind == calm.PointerDown {
		s.Start()
	}
}

// Start begins the exercise from the top of the first inhale. Calling it
// again has no effect.
func (s *BreathSync) Start() {
	if s.started {
		return
	}
	s.started = true
	s.cycleTime = 0
	s.count = 0
	s.intro.Start()
}

// Started reports whether the exercise is running.
func (s *BreathSync) Started() bool { return s.started }

// BreathCount returns the number of completed cycles.
func (s *BreathSync) BreathCount() int { return s.count }

// Phase reports the current phase.
func (s *BreathSync) Phase() PhaseInfo {
	info, _ := phaseAt(s.cycleTime)
	return info
}

// Radius returns the circle's current radius.
func (s *BreathSync) Radius() float64 { return s.radius }

// Colors returns the chakra pair for the current breath and how far through
// the cycle the blend between them has moved.
func (s *BreathSync) Colors() (current, next calm.RGB, mix float64) {
	if !s.started {
		return chakraColors[0], chakraColors[0], 0
	}
	n := len(chakraColors)
	current = chakraColors[s.count%n]
	next = chakraColors[(s.count+1)%n]
	mix = math.Mod(s.cycleTime, CycleDuration()) / CycleDuration()
	return current, next, mix
}

// Update implements calm.Scene.
func (s *BreathSync) Update(now, dt float64) {
	if !s.started {
		s.radius = breathMinRadius + math.Sin(now*0.002)*5
		return
	}
	s.intro.Update(dt)

	cycle := CycleDuration()
	before := math.Floor(s.cycleTime / cycle)
	s.cycleTime += dt
	if math.Floor(s.cycleTime/cycle) > before {
		s.count++
	}

	info, p := phaseAt(s.cycleTime)
	if info.Index != s.phase {
		s.phase = info.Index
		s.env.Sound.Play(p.cue)
	}
	switch p.action {
	case actionExpand:
		s.target = calm.Lerp(breathMinRadius, breathMaxRadius, calm.EaseInOutSine(info.Progress))
	case actionShrink:
		s.target = calm.Lerp(breathMaxRadius, breathMinRadius, calm.EaseInOutSine(info.Progress))
	}
	s.radius = calm.Lerp(s.radius, s.target, breathFollow)
}

// Draw implements calm.Scene.
func (s *BreathSync) Draw(c *calm.Canvas, now float64) {
	c.Fill(breathBG.Opaque())
	a, b, mix := s.Colors()
	drawBreathCircle(c, s.radius, calm.Mix(a, b, mix), now)

	cx, cy := c.Width()/2, c.Height()/2
	if s.started {
		info := s.Phase()
		c.TextCentered(info.Name, cx, cy-breathMaxRadius-48)
		c.TextCentered(strconv.Itoa(info.SecondsLeft), cx, cy+breathMaxRadius+48)
	}
	// The start screen stays up until its fade completes.
	if !s.started || s.intro.Active() {
		alpha := 0.55
		if s.started {
			alpha *= 1 - s.intro.Value()
		}
		c.FillRect(0, 0, c.Width(), c.Height(), breathBG.Alpha(alpha))
		if !s.started {
			c.TextCentered("Box Breathing", cx, cy-24)
			c.TextCentered("4-4-4-4 rhythm", cx, cy)
			s.startBtn.Draw(c, chakraColors[4])
		}
	}
}

func drawBreathCircle(c *calm.Canvas, radius float64, col calm.RGB, now float64) {
	cx, cy := c.Width()/2, c.Height()/2

	for i := 3; i >= 1; i-- {
		c.StrokeCircle(cx, cy, radius*(1+float64(i)*0.25), 2, col.Alpha(0.08*float64(4-i)))
	}

	// Stops rebased from a gradient starting at 0.6r and ending at 2r.
	c.RadialGradient(cx, cy, radius*2, calm.Gradient{
		{Offset: 0, Color: col.Alpha(0.4)},
		{Offset: 0.3, Color: col.Alpha(0.4)},
		{Offset: 0.65, Color: col.Alpha(0.15)},
		{Offset: 1, Color: col.Alpha(0)},
	})

	c.FocalGradient(cx-radius*0.3, cy-radius*0.3, cx, cy, radius, calm.Gradient{
		{Offset: 0, Color: white.Alpha(0.9)},
		{Offset: 0.3, Color: calm.Mix(col, white, 0.5).Alpha(0.85)},
		{Offset: 0.7, Color: col.Alpha(0.9)},
		{Offset: 1, Color: calm.Mix(col, black, 0.2).Alpha(0.95)},
	})

	c.StrokeArc(cx, cy, radius*0.85, -math.Pi*0.7, -math.Pi*0.3, 3, white.Alpha(0.6))

	c.RadialGradient(cx, cy, radius*0.7, calm.Gradient{
		{Offset: 0, Color: white.Alpha(0.35)},
		{Offset: 0.4 / 0.7, Color: white.Alpha(0.35)},
		{Offset: 1, Color: white.Alpha(0)},
	})

	pulse := math.Sin(now*0.004)*0.5 + 0.5
	c.StrokeCircle(cx, cy, radius*(1.05+pulse*0.05), 2, col.Alpha(0.4+pulse*0.2))

	for i := 0; i < breathOrbiters; i++ {
		fi := float64(i)
		angle := fi/breathOrbiters*math.Pi*2 + now*0.0008
		d := radius*1.3 + math.Sin(now*0.002+fi)*15
		size := 3 + math.Sin(now*0.003+fi*0.5)*2
		c.FillCircle(cx+math.Cos(angle)*d, cy+math.Sin(angle)*d, size, col.Alpha(0.5))
	}
}
