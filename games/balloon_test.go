package games

import (
	"testing"

	"github.com/phanxgames/calm"
)

func TestBalloonLift(t *testing.T) {
	s := NewBalloonBalance()
	r := mountScene(t, s, 400, 400)
	if p := s.Position(); p.X != 200 || p.Y != 200 {
		t.Fatalf("balloon starts at %v, want the center", p)
	}

	// Tap below and to the left: the balloon rises and drifts right.
	r.press(150, 250)
	v := s.Velocity()
	if v.Y >= 0 || v.X <= 0 {
		t.Errorf("velocity after tap = %+v", v)
	}
	if s.Count() != 1 || r.cues.count(calm.CuePuff) != 1 {
		t.Errorf("puffs %d cues %d", s.Count(), r.cues.count(calm.CuePuff))
	}

	before := s.Position().Y
	r.step(10)
	if s.Position().Y >= before {
		t.Errorf("balloon did not rise: %v -> %v", before, s.Position().Y)
	}
	r.step(frames(puffLife))
	if s.Count() != 0 {
		t.Errorf("puffs = %d after their life", s.Count())
	}
}

func TestBalloonStaysInBounds(t *testing.T) {
	s := NewBalloonBalance()
	r := mountScene(t, s, 400, 400)
	for range 30 {
		s.Lift(s.x, s.y+20)
		r.step(2)
	}
	r.step(600)
	p := s.Position()
	if p.Y < balloonHeight/2 || p.Y > 400-balloonHeight/2-floorMargin {
		t.Errorf("y = %v out of bounds", p.Y)
	}
	if p.X < balloonWidth/2 || p.X > 400-balloonWidth/2 {
		t.Errorf("x = %v out of bounds", p.X)
	}
}

func TestBalloonResizeRecenters(t *testing.T) {
	s := NewBalloonBalance()
	r := mountScene(t, s, 400, 400)
	r.press(100, 300)
	r.step(20)
	r.host.SetViewport(600, 500, 1)
	if p := s.Position(); p.X != 300 || p.Y != 250 {
		t.Errorf("position after resize = %v", p)
	}
	if s.tail[stringSegments].Y != 250+balloonHeight/2+stringSegments*stringSpacing {
		t.Errorf("string end = %v", s.tail[stringSegments])
	}
}
