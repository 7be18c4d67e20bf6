package calm

import "github.com/hajimehoshi/ebiten/v2"

// MaxDelta caps the time step (in milliseconds) handed to a scene. A frame
// that arrives late, or after the window was hidden, advances the simulation
// by at most this much.
const MaxDelta = 32.0

// Vec2 is a 2D vector used for positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return Dist(v.X, v.Y, o.X, o.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range. Scene tuning tables use it for
// every randomized spawn attribute.
type Range struct {
	Min, Max float64
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendScreen                  // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// PointerKind identifies a kind of pointer event.
type PointerKind uint8

const (
	PointerDown   PointerKind = iota // a button or finger went down
	PointerMove                      // the pointer moved, pressed or not
	PointerUp                        // the button or finger was released
	PointerCancel                    // the press was abandoned (focus lost)
)

// String returns the lowercase name of the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is a pointer sample in canvas-local logical pixels.
// ID 0 is the mouse; touches use 1-9.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	X, Y float64
}

// Ends reports whether the event terminates a press (up or cancel).
func (e PointerEvent) Ends() bool {
	return e.Kind == PointerUp || e.Kind == PointerCancel
}

// Options are runtime toggles shared by every scene.
type Options struct {
	// ReducedMotion scales down particle counts and velocities.
	ReducedMotion bool
}

// MotionFactor returns 0.7 when reduced motion is requested, 1 otherwise.
func (o Options) MotionFactor() float64 {
	if o.ReducedMotion {
		return 0.7
	}
	return 1
}
