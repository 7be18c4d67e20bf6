package games

import (
	"testing"

	"github.com/phanxgames/calm"
)

func TestSandStateString(t *testing.T) {
	tests := []struct {
		s    SandState
		want string
	}{
		{SandIdle, "idle"},
		{SandDrawing, "drawing"},
		{SandRaking, "raking"},
		{SandState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSandGardenDraw(t *testing.T) {
	s := NewSandGarden()
	r := mountScene(t, s, 400, 400)

	r.press(50, 50)
	if s.State() != SandDrawing || s.Count() != 1 {
		t.Fatalf("state %v count %d after press", s.State(), s.Count())
	}
	// Four 20px moves add five evenly spaced points each.
	for _, x := range []float64{70, 90, 110, 130} {
		r.host.InjectMove(x, 50)
	}
	r.drain()
	if got := s.Points(0); got != 21 {
		t.Errorf("Points = %d, want 21", got)
	}
	pts := s.trails.At(0).points
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Dist(pts[i-1]); d > trailStep+1e-9 {
			t.Errorf("gap of %v between points %d and %d", d, i-1, i)
		}
	}

	// A move shorter than one step is held back.
	r.host.InjectMove(132, 50)
	r.drain()
	if s.Points(0) != 21 {
		t.Errorf("Points = %d after a short move", s.Points(0))
	}

	r.release(132, 50)
	if s.State() != SandIdle {
		t.Errorf("state after release = %v", s.State())
	}
}

func TestSandGardenRake(t *testing.T) {
	s := NewSandGarden()
	r := mountScene(t, s, 400, 400)
	r.host.InjectDrag(50, 50, 150, 150, 6)
	r.drain()
	r.host.InjectDrag(50, 150, 150, 50, 6)
	r.drain()
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2 grooves", s.Count())
	}

	btn := s.rakeBtn.Rect.Center()
	r.click(btn.X, btn.Y)
	if s.State() != SandRaking {
		t.Fatalf("state = %v after clicking Rake", s.State())
	}
	if s.Count() != 2 {
		t.Error("the rake button press should not draw")
	}

	// Drawing is ignored while raking.
	r.press(300, 100)
	if s.State() != SandRaking {
		t.Errorf("state = %v, press during rake changed it", s.State())
	}
	r.release(300, 100)

	r.step(frames(rakeTime))
	if s.State() != SandIdle || s.Count() != 0 {
		t.Errorf("state %v count %d after the rake", s.State(), s.Count())
	}
	if r.cues.count(calm.CueSweep) != 1 {
		t.Errorf("sweep played %d times", r.cues.count(calm.CueSweep))
	}
}

func TestSandGardenTrailsFade(t *testing.T) {
	s := NewSandGarden()
	r := mountScene(t, s, 400, 400)
	r.host.InjectDrag(50, 50, 150, 50, 4)
	r.drain()
	r.step(frames(trailLife) + 1)
	if s.Count() != 0 {
		t.Errorf("Count = %d after the trail life", s.Count())
	}
}

func TestSandGardenPointCap(t *testing.T) {
	s := NewSandGarden()
	mountScene(t, s, 400, 400)
	s.HandlePointer(calm.PointerEvent{Kind: calm.PointerDown, X: 0, Y: 0})
	for i := 1; i <= 30; i++ {
		s.HandlePointer(calm.PointerEvent{Kind: calm.PointerMove, X: float64(i%2) * 400, Y: float64(i) * 10})
	}
	if s.Points(0) != trailPointCap {
		t.Errorf("Points = %d, want the cap %d", s.Points(0), trailPointCap)
	}
}
