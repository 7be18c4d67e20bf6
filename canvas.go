package calm

import (
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font glyph cell in device pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var whiteSubImage *ebiten.Image

// whiteSource returns the 1x1 white source every primitive is tinted from.
// Source coordinates (1, 1) stay inside the sub-image.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// affine is a 2x3 matrix: x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type affine [6]float64

var identity = affine{1, 0, 0, 1, 0, 0}

func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func (m affine) mul(n affine) affine {
	return affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

func (m affine) scale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// Canvas draws into a region of the screen in logical pixels. It carries
// the device pixel ratio, so scenes never see backing-store coordinates, and
// a small transform stack in the manner of a 2D context.
type Canvas struct {
	dst    *ebiten.Image
	origin Vec2
	width  float64
	height float64
	ratio  float64
	blend  BlendMode
	m      affine
	stack  []affine
	vs     []ebiten.Vertex
	is     []uint16
}

// NewCanvas creates a canvas over the whole of dst. width and height are
// logical sizes; dst is expected to be width*ratio by height*ratio pixels.
func NewCanvas(dst *ebiten.Image, width, height, ratio float64) *Canvas {
	c := &Canvas{}
	c.retarget(dst, Rect{Width: width, Height: height}, ratio)
	return c
}

func (c *Canvas) retarget(screen *ebiten.Image, area Rect, ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	r := image.Rect(
		int(math.Floor(area.X*ratio)), int(math.Floor(area.Y*ratio)),
		int(math.Ceil((area.X+area.Width)*ratio)), int(math.Ceil((area.Y+area.Height)*ratio)),
	)
	c.dst = screen.SubImage(r).(*ebiten.Image)
	c.origin = Vec2{area.X, area.Y}
	c.width, c.height = area.Width, area.Height
	c.ratio = ratio
	c.blend = BlendNormal
	c.m = identity
	c.stack = c.stack[:0]
}

// Width returns the logical width of the canvas.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the logical height of the canvas.
func (c *Canvas) Height() float64 { return c.height }

// Ratio returns the device pixel ratio.
func (c *Canvas) Ratio() float64 { return c.ratio }

// SetBlend sets the compositing mode for subsequent primitives.
func (c *Canvas) SetBlend(mode BlendMode) { c.blend = mode }

// --- Transform stack ---

// Save pushes the current transform.
func (c *Canvas) Save() { c.stack = append(c.stack, c.m) }

// Restore pops the transform pushed by the matching Save.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.m = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin of subsequent drawing.
func (c *Canvas) Translate(x, y float64) {
	c.m = c.m.mul(affine{1, 0, 0, 1, x, y})
}

// Rotate rotates subsequent drawing by angle radians around the origin.
func (c *Canvas) Rotate(angle float64) {
	s, co := math.Sincos(angle)
	c.m = c.m.mul(affine{co, s, -s, co, 0, 0})
}

// Scale scales subsequent drawing.
func (c *Canvas) Scale(sx, sy float64) {
	c.m = c.m.mul(affine{sx, 0, 0, sy, 0, 0})
}

// --- Vertex plumbing ---

func (c *Canvas) device(x, y float64) (float32, float32) {
	x, y = c.m.apply(x, y)
	return float32((x + c.origin.X) * c.ratio), float32((y + c.origin.Y) * c.ratio)
}

func (c *Canvas) addVertex(x, y float64, r, g, b, a float32) uint16 {
	dx, dy := c.device(x, y)
	c.vs = append(c.vs, ebiten.Vertex{
		DstX: dx, DstY: dy, SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	return uint16(len(c.vs) - 1)
}

func (c *Canvas) flush(rule ebiten.FillRule) {
	if len(c.is) > 0 && c.dst != nil {
		op := &ebiten.DrawTrianglesOptions{
			Blend:     c.blend.EbitenBlend(),
			AntiAlias: true,
			FillRule:  rule,
		}
		c.dst.DrawTriangles(c.vs, c.is, whiteSource(), op)
	}
	c.vs = c.vs[:0]
	c.is = c.is[:0]
}

// Segments picks a tessellation level for a curve of logical radius r.
func (c *Canvas) Segments(r float64) int {
	n := int(math.Ceil(r * c.m.scale() * c.ratio / 2.5))
	return max(16, min(n, 128))
}

// emitPath converts a path in local coordinates into device triangles of a
// single color.
func (c *Canvas) emitPath(p *vector.Path, stroke *vector.StrokeOptions, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	var vs []ebiten.Vertex
	var is []uint16
	if stroke != nil {
		vs, is = p.AppendVerticesAndIndicesForStroke(nil, nil, stroke)
	} else {
		vs, is = p.AppendVerticesAndIndicesForFilling(nil, nil)
	}
	r, g, b, a := nrgbaFloats(col)
	base := len(c.vs)
	for _, v := range vs {
		c.addVertex(float64(v.DstX), float64(v.DstY), r, g, b, a)
	}
	for _, i := range is {
		c.is = append(c.is, uint16(base)+i)
	}
	if stroke != nil {
		c.flush(ebiten.FillRuleFillAll)
	} else {
		c.flush(ebiten.FillRuleNonZero)
	}
}

// --- Solid primitives ---

// Fill covers the whole canvas with col.
func (c *Canvas) Fill(col color.NRGBA) {
	c.Save()
	c.m = identity
	c.FillRect(0, 0, c.width, c.height, col)
	c.Restore()
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.FillPolygon([]Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, col)
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}
	c.FillEllipse(x, y, r, r, 0, col)
}

// FillEllipse fills an ellipse with radii rx, ry rotated by rot radians.
func (c *Canvas) FillEllipse(x, y, rx, ry, rot float64, col color.NRGBA) {
	if rx <= 0 || ry <= 0 || col.A == 0 {
		return
	}
	n := c.Segments(math.Max(rx, ry))
	r, g, b, a := nrgbaFloats(col)
	center := c.addVertex(x, y, r, g, b, a)
	for _, p := range EllipsePoints(x, y, rx, ry, rot, n) {
		c.addVertex(p.X, p.Y, r, g, b, a)
	}
	for i := 0; i < n; i++ {
		c.is = append(c.is, center, center+1+uint16(i), center+1+uint16((i+1)%n))
	}
	c.flush(ebiten.FillRuleFillAll)
}

// FillPolygon fills a closed polygon (non-zero winding).
func (c *Canvas) FillPolygon(pts []Vec2, col color.NRGBA) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	c.emitPath(polyPath(pts, true), nil, col)
}

// StrokePolyline strokes a polyline with round joins and caps.
func (c *Canvas) StrokePolyline(pts []Vec2, width float64, closed bool, col color.NRGBA) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	c.emitPath(polyPath(pts, closed), roundStroke(width), col)
}

// Line strokes a single segment.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	c.StrokePolyline([]Vec2{{x0, y0}, {x1, y1}}, width, false, col)
}

// StrokeCircle strokes a circle outline.
func (c *Canvas) StrokeCircle(x, y, r, width float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	c.StrokePolyline(CirclePoints(x, y, r, c.Segments(r)), width, true, col)
}

// StrokeArc strokes the arc of circle (x, y, r) from angle a0 to a1.
func (c *Canvas) StrokeArc(x, y, r, a0, a1, width float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	var p vector.Path
	p.Arc(float32(x), float32(y), float32(r), float32(a0), float32(a1), vector.Clockwise)
	c.emitPath(&p, roundStroke(width), col)
}

// FillPath fills an arbitrary path built in local coordinates.
func (c *Canvas) FillPath(p *vector.Path, col color.NRGBA) {
	c.emitPath(p, nil, col)
}

// StrokePath strokes an arbitrary path built in local coordinates.
func (c *Canvas) StrokePath(p *vector.Path, width float64, col color.NRGBA) {
	c.emitPath(p, roundStroke(width), col)
}

func roundStroke(width float64) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
}

func polyPath(pts []Vec2, closed bool) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	if closed {
		p.Close()
	}
	return &p
}

// CirclePoints returns n points evenly spaced on a circle.
func CirclePoints(x, y, r float64, n int) []Vec2 {
	pts := make([]Vec2, n)
	for i := range pts {
		s, co := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
		pts[i] = Vec2{x + co*r, y + s*r}
	}
	return pts
}

// --- Gradients ---

// RadialGradient fills the disc (x, y, r) with g, offset 0 at the center.
func (c *Canvas) RadialGradient(x, y, r float64, g Gradient) {
	if r <= 0 {
		return
	}
	c.FillShapeGradient(Vec2{x, y}, CirclePoints(x, y, r, c.Segments(r)), Vec2{x, y}, r, g)
}

// FocalGradient fills the disc (x, y, r) with g running from the focal
// point (fx, fy), at offset 0, to the rim at offset 1. The focal point must
// lie inside the disc.
func (c *Canvas) FocalGradient(fx, fy, x, y, r float64, g Gradient) {
	if r <= 0 {
		return
	}
	rim := CirclePoints(x, y, r, c.Segments(r))
	c.polarMesh(Vec2{fx, fy}, rim, gradientFractions(g), func(_ Vec2, frac float64) (float32, float32, float32, float32) {
		return g.At(frac)
	})
}

// FillShapeGradient fills a shape that is star-shaped around center. rim
// lists its outline; the color at each point is g at distance/gr from gc.
func (c *Canvas) FillShapeGradient(center Vec2, rim []Vec2, gc Vec2, gr float64, g Gradient) {
	if len(rim) < 3 || gr <= 0 {
		return
	}
	c.polarMesh(center, rim, gradientFractions(g), func(p Vec2, _ float64) (float32, float32, float32, float32) {
		return g.At(p.Dist(gc) / gr)
	})
}

// gradientFractions returns ring positions along each ray: every stop offset
// plus intermediate rings so color interpolation follows the stops.
func gradientFractions(g Gradient) []float64 {
	fr := []float64{0}
	for i := 1; i <= 8; i++ {
		fr = append(fr, float64(i)/8)
	}
	for _, s := range g {
		if s.Offset > 0 && s.Offset < 1 {
			fr = append(fr, s.Offset)
		}
	}
	slices.Sort(fr)
	return slices.Compact(fr)
}

// polarMesh tessellates the region between center and rim into rings at
// the given fractions and colors each vertex with colorAt.
func (c *Canvas) polarMesh(center Vec2, rim []Vec2, fracs []float64, colorAt func(p Vec2, frac float64) (float32, float32, float32, float32)) {
	n := len(rim)
	rings := len(fracs)
	for _, rp := range rim {
		for _, f := range fracs {
			p := Vec2{Lerp(center.X, rp.X, f), Lerp(center.Y, rp.Y, f)}
			r, g, b, a := colorAt(p, f)
			c.addVertex(p.X, p.Y, r, g, b, a)
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		for k := 0; k+1 < rings; k++ {
			a := uint16(i*rings + k)
			b := uint16(j*rings + k)
			c.is = append(c.is, a, b, a+1, a+1, b, b+1)
		}
	}
	c.flush(ebiten.FillRuleFillAll)
}

// LinearGradientRect fills the rectangle (x, y, w, h) with g along the axis
// from (x0, y0), offset 0, to (x1, y1), offset 1.
func (c *Canvas) LinearGradientRect(x, y, w, h, x0, y0, x1, y1 float64, g Gradient) {
	if w <= 0 || h <= 0 {
		return
	}
	ax, ay := x1-x0, y1-y0
	l2 := ax*ax + ay*ay
	const cells = 16
	for row := 0; row <= cells; row++ {
		for col := 0; col <= cells; col++ {
			px := x + w*float64(col)/cells
			py := y + h*float64(row)/cells
			t := 0.0
			if l2 > 0 {
				t = ((px-x0)*ax + (py-y0)*ay) / l2
			}
			r, gg, b, a := g.At(t)
			c.addVertex(px, py, r, gg, b, a)
		}
	}
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			i := uint16(row*(cells+1) + col)
			c.is = append(c.is, i, i+1, i+cells+1, i+1, i+cells+2, i+cells+1)
		}
	}
	c.flush(ebiten.FillRuleFillAll)
}

// --- Text ---

// TextSize returns the logical size of s in the debug font.
func (c *Canvas) TextSize(s string) (float64, float64) {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	return float64(w*glyphWidth) / c.ratio, float64(len(lines)*glyphHeight) / c.ratio
}

// Text prints s with its top-left corner at (x, y).
func (c *Canvas) Text(s string, x, y float64) {
	dx, dy := c.device(x, y)
	ebitenutil.DebugPrintAt(c.dst, s, int(dx), int(dy))
}

// TextCentered prints s centered on (x, y).
func (c *Canvas) TextCentered(s string, x, y float64) {
	w, h := c.TextSize(s)
	c.Text(s, x-w/2, y-h/2)
}
