package calm

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ease evaluates a normalized easing curve at progress p in [0, 1].
// p is clamped first, so ease(0) = 0 and ease(1) = 1 for every curve.
func Ease(fn ease.TweenFunc, p float64) float64 {
	p = Clamp01(p)
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return float64(fn(float32(p), 0, 1, 1))
}

// EaseOutCubic is 1-(1-p)^3.
func EaseOutCubic(p float64) float64 { return Ease(ease.OutCubic, p) }

// EaseInOutSine is the symmetric sine ease used by the breathing circle.
func EaseInOutSine(p float64) float64 { return Ease(ease.InOutSine, p) }

// EaseOutBack overshoots slightly before settling.
func EaseOutBack(p float64) float64 { return Ease(ease.OutBack, p) }

// EaseOutElastic springs past the target and decays onto it.
func EaseOutElastic(p float64) float64 { return Ease(ease.OutElastic, p) }

// FadePow returns 1-p^k clamped to [0, 1]: the alpha curve shared by the
// ripple (k=2.1) and bloom (k=2) scenes.
func FadePow(p, k float64) float64 {
	return Clamp01(1 - math.Pow(Clamp01(p), k))
}

// FadeTail returns 1 until the last window milliseconds of a lifetime and
// then ramps linearly down to 0 at age == life.
func FadeTail(age, life, window float64) float64 {
	if window <= 0 || age < life-window {
		return 1
	}
	return Clamp01((life - age) / window)
}

// Transition is a one-shot timed value driven by a gween tween. Durations
// and deltas are in milliseconds. Scenes use it for overlay fades (clear,
// rake) whose end triggers a state change.
type Transition struct {
	duration float64
	fn       ease.TweenFunc
	tween    *gween.Tween
	elapsed  float64
	value    float64
	active   bool
}

// NewTransition creates an idle transition running from 0 to 1.
func NewTransition(duration float64, fn ease.TweenFunc) *Transition {
	return &Transition{duration: duration, fn: fn}
}

// Start (re)starts the transition from 0.
func (t *Transition) Start() {
	t.tween = gween.New(0, 1, float32(t.duration), t.fn)
	t.elapsed = 0
	t.value = 0
	t.active = true
}

// Update advances the transition by dt. It reports true exactly once, in the
// tick where the transition completes.
func (t *Transition) Update(dt float64) (finished bool) {
	if !t.active {
		return false
	}
	t.elapsed += dt
	v, done := t.tween.Update(float32(dt))
	t.value = float64(v)
	if done || t.elapsed >= t.duration {
		t.value = 1
		t.active = false
		return true
	}
	return false
}

// Active reports whether the transition is running.
func (t *Transition) Active() bool { return t.active }

// Value returns the eased value.
func (t *Transition) Value() float64 { return t.value }

// Progress returns the linear progress in [0, 1].
func (t *Transition) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return Clamp01(t.elapsed / t.duration)
}
