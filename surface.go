package calm

import "math"

// Surface describes the drawing area of a mounted scene: its logical size in
// CSS-style pixels and the device pixel ratio of the backing store.
type Surface struct {
	Width, Height float64
	Ratio         float64
}

// BackingSize returns the pixel dimensions of the backing store,
// Width*Ratio by Height*Ratio, rounded down.
func (s Surface) BackingSize() (int, int) {
	r := s.Ratio
	if r <= 0 {
		r = 1
	}
	return int(math.Floor(s.Width * r)), int(math.Floor(s.Height * r))
}

// Empty reports whether the surface has no drawable area.
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Center returns the midpoint of the surface.
func (s Surface) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// Bounds returns the surface as a rectangle at the origin.
func (s Surface) Bounds() Rect {
	return Rect{0, 0, s.Width, s.Height}
}
