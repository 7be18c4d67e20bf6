package games

import "testing"

func TestWarmGlowShapes(t *testing.T) {
	s := NewWarmGlow()
	r := mountScene(t, s, 400, 400)
	if len(s.shapes) != glowShapeCount {
		t.Fatalf("got %d shapes", len(s.shapes))
	}

	r.host.SetViewport(800, 600, 1)
	if len(s.shapes) != glowShapeCount {
		t.Fatalf("resize left %d shapes", len(s.shapes))
	}
	for _, sh := range s.shapes {
		if sh.x < 50 || sh.x > 750 || sh.y < 50 || sh.y > 550 {
			t.Errorf("shape at (%v, %v) outside the resized area", sh.x, sh.y)
		}
	}
}

func TestWarmGlowHoldReveals(t *testing.T) {
	s := NewWarmGlow()
	r := mountScene(t, s, 400, 400)
	target := s.shapes[0]

	r.press(target.x, target.y)
	if !s.Holding() {
		t.Fatal("press should start holding")
	}
	r.step(200)
	radius, intensity := s.Glow()
	if radius != glowMaxRadius || intensity != 1 {
		t.Errorf("glow = %v, %v after a long hold", radius, intensity)
	}
	if got := s.Revealed()[0]; got < 0.9 {
		t.Errorf("shape under the light revealed %v", got)
	}

	r.release(target.x, target.y)
	r.step(100)
	radius, intensity = s.Glow()
	if s.Holding() || radius != 0 || intensity != 0 {
		t.Errorf("holding %v glow %v, %v after release", s.Holding(), radius, intensity)
	}
	if got := s.Revealed()[0]; got > 0.1 {
		t.Errorf("shape still revealed %v in the dark", got)
	}
}

func TestWarmGlowFollowsPointer(t *testing.T) {
	s := NewWarmGlow()
	r := mountScene(t, s, 400, 400)
	r.press(100, 100)
	r.host.InjectMove(250, 300)
	r.drain()
	if s.x != 250 || s.y != 300 {
		t.Errorf("light at (%v, %v)", s.x, s.y)
	}
}
