package games

import "github.com/phanxgames/calm"

// hint is the short instruction shown over a freshly mounted scene. It
// fades out after the first interaction.
type hint struct {
	text      string
	dismissed bool
	fade      float64 // ms since dismissal
}

const hintFade = 1200.0

func newHint(text string) hint { return hint{text: text} }

func (h *hint) dismiss() { h.dismissed = true }

func (h *hint) update(dt float64) {
	if h.dismissed {
		h.fade += dt
	}
}

func (h *hint) visible() bool {
	return !h.dismissed || h.fade < hintFade
}

// draw prints the hint near the top of the canvas. The debug font cannot
// fade, so the text is dropped once the fade window passes and a soft
// backdrop carries the transition instead.
func (h *hint) draw(c *calm.Canvas, tint calm.RGB) {
	if !h.visible() {
		return
	}
	alpha := 0.35
	if h.dismissed {
		alpha *= 1 - h.fade/hintFade
	}
	w, ht := c.TextSize(h.text)
	x, y := c.Width()/2, 36.0
	c.FillRect(x-w/2-12, y-ht/2-6, w+24, ht+12, tint.Alpha(alpha))
	c.TextCentered(h.text, x, y)
}
