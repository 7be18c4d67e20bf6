package games

import (
	"testing"

	"github.com/phanxgames/calm"
)

func TestRipplesTapSpawnsOne(t *testing.T) {
	s := NewRipples()
	r := mountScene(t, s, 400, 400)
	r.press(100, 100)
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if r.cues.count(calm.CueChime) != 1 {
		t.Errorf("chime played %d times", r.cues.count(calm.CueChime))
	}
	rp := s.ripples.At(0)
	if rp.x != 100 || rp.y != 100 {
		t.Errorf("ripple at (%v, %v)", rp.x, rp.y)
	}
	if rp.Life < rippleLife.Min || rp.Life >= rippleLife.Max || rp.end < rippleEnd.Min || rp.end >= rippleEnd.Max {
		t.Errorf("ripple life %v end %v out of range", rp.Life, rp.end)
	}

	// Moves and releases never spawn.
	r.host.InjectMove(150, 150)
	r.release(150, 150)
	if s.Count() != 1 {
		t.Errorf("Count = %d after move and release", s.Count())
	}
}

func TestRipplesExpire(t *testing.T) {
	s := NewRipples()
	r := mountScene(t, s, 400, 400)
	r.click(100, 100)
	r.step(frames(rippleLife.Max) + 2)
	if s.Count() != 0 {
		t.Errorf("Count = %d after the longest life", s.Count())
	}
}

func TestRipplesCap(t *testing.T) {
	s := NewRipples()
	mountScene(t, s, 400, 400)
	for i := range rippleCap + 5 {
		s.Spawn(float64(i), 10)
	}
	if s.Count() != rippleCap {
		t.Errorf("Count = %d, want cap %d", s.Count(), rippleCap)
	}
	if s.Spawn(1, 1) {
		t.Error("Spawn should report false when full")
	}
	if s.ripples.At(0).x != 0 {
		t.Error("oldest ripple should be kept when the pool is full")
	}
}
