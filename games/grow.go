package games

import (
	"math"

	"github.com/phanxgames/calm"
)

const (
	plantCap      = 40
	plantFade     = 3000.0
	seedDotUntil  = 0.3
	leavesAfter   = 0.5
	sunflowerDots = 8
)

var (
	plantGrow        = calm.Range{Min: 2000, Max: 3000}
	plantBloomDelay  = calm.Range{Min: 700, Max: 1200}
	plantBloomLength = calm.Range{Min: 1600, Max: 2400}
	plantLife        = calm.Range{Min: 18000, Max: 28000}
	plantStemHeight  = calm.Range{Min: 70, Max: 130}
	plantStemWidth   = calm.Range{Min: 3, Max: 5}
	plantBloomRadius = calm.Range{Min: 26, Max: 45}
	growBG           = calm.RGB{R: 240, G: 247, B: 238}
	seedColor        = calm.RGB{R: 140, G: 120, B: 100}
	sunflowerCenter  = calm.RGB{R: 139, G: 90, B: 43}
	sunflowerSeed    = calm.RGB{R: 80, G: 50, B: 20}
	creamCenter      = calm.RGB{R: 255, G: 255, B: 200}
)

type petalShape uint8

const (
	petalRound petalShape = iota
	petalPointed
	petalLong
	petalSpiral
	petalLayered
)

type flowerType struct {
	name        string
	petals      int
	shape       petalShape
	petalRatio  float64
	centerRatio float64
}

// layers returns how many rings of petals the flower draws.
func (f flowerType) layers() int {
	switch f.shape {
	case petalLayered:
		return 2
	case petalSpiral:
		return 3
	}
	return 1
}

var flowerTypes = []flowerType{
	{name: "daisy", petals: 8, shape: petalRound, petalRatio: 0.5, centerRatio: 0.25},
	{name: "tulip", petals: 6, shape: petalPointed, petalRatio: 0.6, centerRatio: 0.15},
	{name: "sunflower", petals: 12, shape: petalLong, petalRatio: 0.35, centerRatio: 0.35},
	{name: "rose", petals: 10, shape: petalSpiral, petalRatio: 0.45, centerRatio: 0.2},
	{name: "lotus", petals: 7, shape: petalLayered, petalRatio: 0.55, centerRatio: 0.18},
}

var plantPalette = []struct{ stem, bloom calm.RGB }{
	{calm.RGB{R: 120, G: 180, B: 140}, calm.RGB{R: 255, G: 180, B: 200}},
	{calm.RGB{R: 100, G: 160, B: 130}, calm.RGB{R: 255, G: 220, B: 140}},
	{calm.RGB{R: 130, G: 170, B: 120}, calm.RGB{R: 200, G: 160, B: 255}},
	{calm.RGB{R: 110, G: 175, B: 150}, calm.RGB{R: 255, G: 160, B: 140}},
	{calm.RGB{R: 140, G: 160, B: 110}, calm.RGB{R: 180, G: 220, B: 255}},
	{calm.RGB{R: 120, G: 170, B: 130}, calm.RGB{R: 255, G: 200, B: 200}},
	{calm.RGB{R: 100, G: 180, B: 160}, calm.RGB{R: 255, G: 255, B: 180}},
}

type plant struct {
	calm.Lifetime
	x, y          float64
	grow          float64
	bloomDelay    float64
	bloomLength   float64
	stemHeight    float64
	stemWidth     float64
	bloomRadius   float64
	flower        flowerType
	seed          float64
	stem, blossom calm.RGB
}

// stemProgress returns how far the stem has grown, 0..1.
func (p plant) stemProgress() float64 { return calm.Clamp01(p.Age / p.grow) }

// bloomProgress returns how far the bloom has opened, 0..1; negative before
// the bloom delay elapses.
func (p plant) bloomProgress() float64 {
	a := p.Age - p.bloomDelay
	if a <= 0 {
		return -1
	}
	return calm.Clamp01(a / p.bloomLength)
}

// TapGrow plants a flower wherever the pointer lands: the seed sprouts a
// swaying stem, leaves unfold and one of five flower types blooms.
type TapGrow struct {
	env    *calm.Env
	plants *calm.Pool[plant]
	hint   hint
}

// NewTapGrow creates the tap-grow scene.
func NewTapGrow() *TapGrow {
	return &TapGrow{hint: newHint("Tap to plant")}
}

// Mount implements calm.Scene.
func (s *TapGrow) Mount(env *calm.Env) {
	s.env = env
	s.plants = calm.NewPool[plant](plantCap)
}

// Count returns the number of live plants.
func (s *TapGrow) Count() int { return s.plants.Len() }

// HandlePointer implements calm.Scene.
func (s *TapGrow) HandlePointer(ev calm.PointerEvent) {
	if ev.Kind == calm.PointerDown {
		s.hint.dismiss()
		if s.Plant(ev.X, ev.Y) {
			s.env.Sound.Play(calm.CueGrow)
		}
	}
}

// Plant seeds a flower at (x, y). It reports false when the garden is full.
func (s *TapGrow) Plant(x, y float64) bool {
	r := s.env.Rand
	colors := plantPalette[r.IntN(len(plantPalette))]
	return s.plants.Spawn(plant{
		Lifetime:    calm.Lifetime{Life: plantLife.Random(r)},
		x:           x,
		y:           y,
		grow:        plantGrow.Random(r),
		bloomDelay:  plantBloomDelay.Random(r),
		bloomLength: plantBloomLength.Random(r),
		stemHeight:  plantStemHeight.Random(r),
		stemWidth:   plantStemWidth.Random(r),
		bloomRadius: plantBloomRadius.Random(r),
		flower:      flowerTypes[r.IntN(len(flowerTypes))],
		seed:        r.Float64() * math.Pi * 2,
		stem:        colors.stem,
		blossom:     colors.bloom,
	})
}

// Update implements calm.Scene.
func (s *TapGrow) Update(_, dt float64) {
	s.hint.update(dt)
	s.plants.Update(func(p *plant) bool { return p.Advance(dt) })
}

// Draw implements calm.Scene.
func (s *TapGrow) Draw(c *calm.Canvas, now float64) {
	c.Fill(growBG.Opaque())
	for _, p := range s.plants.Items() {
		drawPlant(c, p, now)
	}
	s.hint.draw(c, plantPalette[0].stem)
}

func drawPlant(c *calm.Canvas, p plant, now float64) {
	alpha := calm.FadeTail(p.Age, p.Life, plantFade)
	sp := p.stemProgress()
	height := p.stemHeight * calm.EaseOutBack(sp)

	if height > 0 {
		sway := math.Sin(now*0.001+p.seed) * 8
		base := calm.Vec2{X: p.x, Y: p.y}
		tip := calm.Vec2{X: p.x + sway, Y: p.y - height}
		stem := calm.CubicPoints(base,
			calm.Vec2{X: p.x + sway*0.3, Y: p.y - height*0.4},
			calm.Vec2{X: p.x + sway*0.7, Y: p.y - height*0.7},
			tip, 24)
		c.StrokePolyline(stem, p.stemWidth, false, p.stem.Alpha(0.85*alpha))

		if sp > leavesAfter {
			size := 12 * calm.Clamp01((sp-leavesAfter)/0.3)
			ly := p.y - height*0.4
			lx := p.x + sway*0.4
			leaf := p.stem.Alpha(0.7 * alpha)
			c.FillEllipse(lx-8, ly, size*0.4, size, -0.5, leaf)
			c.FillEllipse(lx+8, ly+10, size*0.4, size, 0.5, leaf)
		}

		if bp := p.bloomProgress(); bp >= 0 {
			drawBloomHead(c, p, tip, bp, alpha)
		}
	}

	if sp < seedDotUntil {
		c.FillCircle(p.x, p.y, 5, seedColor.Alpha(0.7*(1-sp/seedDotUntil)*alpha))
	}
}

func drawBloomHead(c *calm.Canvas, p plant, tip calm.Vec2, bp, alpha float64) {
	radius := p.bloomRadius * calm.EaseOutElastic(bp)
	if radius <= 0 {
		return
	}
	f := p.flower
	c.Save()
	c.Translate(tip.X, tip.Y)
	for layer := f.layers() - 1; layer >= 0; layer-- {
		lf := float64(layer)
		scale := 1 - lf*0.22
		layerAlpha := 1 - lf*0.15
		light := calm.Mix(p.blossom, white, 0.3+lf*0.1)
		for i := 0; i < f.petals; i++ {
			angle := math.Pi*2*float64(i)/float64(f.petals) + p.seed + lf*0.15
			length := radius * (0.75 + math.Sin(p.seed+float64(i))*0.15) * scale
			width := radius * f.petalRatio * scale
			c.Save()
			c.Rotate(angle)
			center, rim := petalOutline(f.shape, length, width, bp)
			c.FillShapeGradient(center, rim, calm.Vec2{Y: -length * 0.4}, length, calm.Gradient{
				{Offset: 0, Color: light.Alpha(0.95 * alpha * layerAlpha)},
				{Offset: 1, Color: p.blossom.Alpha(0.4 * alpha * layerAlpha)},
			})
			c.Restore()
		}
	}

	cr := radius * f.centerRatio
	centerColor := calm.Mix(p.blossom, creamCenter, 0.7)
	if f.name == "sunflower" {
		centerColor = sunflowerCenter
	}
	c.RadialGradient(0, 0, cr, calm.Gradient{
		{Offset: 0, Color: calm.Mix(centerColor, white, 0.3).Alpha(0.95 * alpha)},
		{Offset: 1, Color: centerColor.Alpha(0.9 * alpha)},
	})
	if f.name == "sunflower" && bp > 0.5 {
		for d := 0; d < sunflowerDots; d++ {
			a := float64(d)/sunflowerDots*math.Pi*2 + p.seed
			c.FillCircle(math.Cos(a)*cr*0.5, math.Sin(a)*cr*0.5, 2, sunflowerSeed.Alpha(0.6*alpha))
		}
	}
	c.Restore()
}

// petalOutline returns an interior point and the outline of one petal
// pointing up (negative y) from the flower center.
func petalOutline(shape petalShape, length, width, bp float64) (calm.Vec2, []calm.Vec2) {
	const n = 24
	ellipse := func(cy, rx, ry float64) (calm.Vec2, []calm.Vec2) {
		return calm.Vec2{Y: cy}, calm.EllipsePoints(0, cy, rx, ry, 0, n)
	}
	switch shape {
	case petalRound:
		return ellipse(-length*0.5, width*0.5, length*0.5)
	case petalPointed:
		right := calm.QuadPoints(calm.Vec2{}, calm.Vec2{X: width * 0.6, Y: -length * 0.4}, calm.Vec2{Y: -length}, n/2)
		left := calm.QuadPoints(calm.Vec2{Y: -length}, calm.Vec2{X: -width * 0.6, Y: -length * 0.4}, calm.Vec2{}, n/2)
		return calm.Vec2{Y: -length * 0.4}, append(right, left[1:len(left)-1]...)
	case petalLong:
		return ellipse(-length*0.55, width*0.35, length*0.55)
	case petalSpiral:
		return ellipse(-length*0.45, width*(0.4+bp*0.2), length*0.45)
	default:
		return ellipse(-length*0.5, width*0.45, length*0.5)
	}
}
