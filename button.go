package calm

import "image/color"

// Button is an on-canvas push button. Scenes offer it every pointer event
// first; a press that starts on the button never reaches the scene.
type Button struct {
	Label string
	Rect  Rect

	pressed bool
	pointer int
	hovered bool
}

// NewButton creates a button sized to fit label with padding.
func NewButton(label string) *Button {
	return &Button{Label: label, Rect: Rect{Width: float64(len(label)*glyphWidth) + 32, Height: 34}}
}

// PlaceBottomCenter centers the button horizontally, margin above the bottom
// edge of s.
func (b *Button) PlaceBottomCenter(s Surface, margin float64) {
	b.Rect.X = (s.Width - b.Rect.Width) / 2
	b.Rect.Y = s.Height - b.Rect.Height - margin
}

// PlaceTopRight anchors the button to the top-right corner of s.
func (b *Button) PlaceTopRight(s Surface, margin float64) {
	b.Rect.X = s.Width - b.Rect.Width - margin
	b.Rect.Y = margin
}

// Handle processes ev. consumed reports that the scene should ignore the
// event; clicked reports a completed press and release on the button.
func (b *Button) Handle(ev PointerEvent) (clicked, consumed bool) {
	inside := b.Rect.Contains(ev.X, ev.Y)
	switch ev.Kind {
	case PointerDown:
		if inside {
			b.pressed = true
			b.pointer = ev.ID
			return false, true
		}
	case PointerMove:
		if ev.ID == 0 {
			b.hovered = inside
		}
		if b.pressed && ev.ID == b.pointer {
			return false, true
		}
	case PointerUp, PointerCancel:
		if b.pressed && ev.ID == b.pointer {
			b.pressed = false
			return ev.Kind == PointerUp && inside, true
		}
	}
	return false, false
}

// Draw renders the button tinted with accent.
func (b *Button) Draw(c *Canvas, accent RGB) {
	bg := accent.Alpha(0.55)
	switch {
	case b.pressed:
		bg = Lighten(accent, -0.15).Alpha(0.8)
	case b.hovered:
		bg = accent.Alpha(0.7)
	}
	r := b.Rect
	c.FillRect(r.X, r.Y, r.Width, r.Height, bg)
	c.StrokePolyline([]Vec2{{r.X, r.Y}, {r.X + r.Width, r.Y}, {r.X + r.Width, r.Y + r.Height}, {r.X, r.Y + r.Height}},
		1.5, true, color.NRGBA{255, 255, 255, 150})
	ctr := r.Center()
	c.TextCentered(b.Label, ctr.X, ctr.Y)
}
