package games

import (
	"testing"

	"github.com/phanxgames/calm"
)

func TestCatchFallCatchesOnce(t *testing.T) {
	s := NewCatchFall()
	s.spawnChance = 0
	r := mountScene(t, s, 400, 400)
	if left, right := s.Basket(); left != 100 || right != 300 {
		t.Fatalf("basket = %v..%v", left, right)
	}
	if !s.Drop(200) {
		t.Fatal("Drop failed on an empty pool")
	}
	s.motes.At(0).vx = 0

	r.step(1000)
	if s.Score() != 1 {
		t.Errorf("Score = %d, want exactly one catch", s.Score())
	}
	if r.cues.count(calm.CueCatch) != 1 {
		t.Errorf("catch cue played %d times", r.cues.count(calm.CueCatch))
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d, caught mote should fade out", s.Count())
	}
}

func TestCatchFallMissFallsOffScreen(t *testing.T) {
	s := NewCatchFall()
	s.spawnChance = 0
	r := mountScene(t, s, 400, 400)
	s.Drop(20)
	s.motes.At(0).vx = 0
	r.step(1500)
	if s.Score() != 0 || s.Count() != 0 {
		t.Errorf("score %d count %d, a mote outside the basket should be dropped", s.Score(), s.Count())
	}
}

func TestCatchFallPushRepels(t *testing.T) {
	s := NewCatchFall()
	s.spawnChance = 0
	r := mountScene(t, s, 400, 400)
	s.Drop(200)
	m := s.motes.At(0)
	m.y = 100
	m.vx = 0

	r.press(190, 100)
	if s.pushes.Len() != 1 {
		t.Fatalf("pushes = %d", s.pushes.Len())
	}
	if m.vx <= 0 {
		t.Errorf("vx = %v, mote should be pushed away from the tap", m.vx)
	}
	r.step(frames(pushLife) + 1)
	if s.pushes.Len() != 0 {
		t.Errorf("pushes = %d after their life", s.pushes.Len())
	}
}

func TestCatchFallSpawnsOverTime(t *testing.T) {
	s := NewCatchFall()
	r := mountScene(t, s, 400, 400)
	r.step(600)
	if s.Count() == 0 && s.Score() == 0 {
		t.Error("no motes spawned in ten seconds")
	}
	if s.Count() > fallCap {
		t.Errorf("Count = %d exceeds cap", s.Count())
	}
}

func TestCatchFallResizeMovesBasket(t *testing.T) {
	s := NewCatchFall()
	r := mountScene(t, s, 400, 400)
	r.host.SetViewport(800, 400, 1)
	if left, right := s.Basket(); left != 200 || right != 600 {
		t.Errorf("basket = %v..%v", left, right)
	}
}
