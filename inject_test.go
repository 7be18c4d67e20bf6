package calm

import "testing"

func TestInjectClickConsumesTwoFrames(t *testing.T) {
	h, got := recordHost(t)
	h.InjectClick(50, 50)
	if h.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", h.PendingInjections())
	}

	h.Step(0)
	if h.PendingInjections() != 1 || len(*got) != 1 || (*got)[0].Kind != PointerDown {
		t.Fatalf("after frame 1: pending %d events %v", h.PendingInjections(), kinds(*got))
	}
	h.Step(16)
	if h.PendingInjections() != 0 || len(*got) != 2 || (*got)[1].Kind != PointerUp {
		t.Fatalf("after frame 2: pending %d events %v", h.PendingInjections(), kinds(*got))
	}
}

func TestInjectDrag(t *testing.T) {
	h, got := recordHost(t)
	h.InjectDrag(0, 0, 100, 200, 6)
	if h.PendingInjections() != 6 {
		t.Fatalf("expected 6 queued events, got %d", h.PendingInjections())
	}
	for i := range 6 {
		h.Step(float64(i * 16))
	}

	evs := *got
	if len(evs) != 6 {
		t.Fatalf("got %d events", len(evs))
	}
	if evs[0].Kind != PointerDown || evs[5].Kind != PointerUp {
		t.Errorf("kinds = %v", kinds(evs))
	}
	// Moves are evenly spaced between the endpoints.
	for i := 1; i <= 4; i++ {
		wantX := float64(i) * 20
		if evs[i].Kind != PointerMove || !near(evs[i].X, wantX) || !near(evs[i].Y, wantX*2) {
			t.Errorf("move %d = %+v", i, evs[i])
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	h := NewHost()
	h.InjectDrag(0, 0, 10, 10, 0)
	if h.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d", h.PendingInjections())
	}
}
