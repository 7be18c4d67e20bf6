package games

import (
	"testing"

	"github.com/phanxgames/calm"
)

func TestPhaseAt(t *testing.T) {
	tests := []struct {
		t        float64
		name     string
		index    int
		progress float64
		left     int
	}{
		{0, "Breathe In", 0, 0, 4},
		{3999, "Breathe In", 0, 0.99975, 1},
		{4000, "Hold", 1, 0, 4},
		{9000, "Breathe Out", 2, 0.25, 3},
		{12500, "Hold", 3, 0.125, 4},
		{16000, "Breathe In", 0, 0, 4},
		{33000, "Breathe In", 0, 0.25, 3},
	}
	for _, tt := range tests {
		info, _ := phaseAt(tt.t)
		if info.Name != tt.name || info.Index != tt.index || info.SecondsLeft != tt.left {
			t.Errorf("phaseAt(%v) = %+v", tt.t, info)
		}
		if d := info.Progress - tt.progress; d > 1e-9 || d < -1e-9 {
			t.Errorf("phaseAt(%v).Progress = %v, want %v", tt.t, info.Progress, tt.progress)
		}
	}
	if CycleDuration() != 16000 {
		t.Errorf("CycleDuration = %v", CycleDuration())
	}
}

func TestBreathSyncWaitsForTap(t *testing.T) {
	s := NewBreathSync()
	r := mountScene(t, s, 400, 600)
	r.step(100)
	if s.Started() || s.BreathCount() != 0 {
		t.Fatal("exercise started without a tap")
	}
	a, b, mix := s.Colors()
	if a != chakraColors[0] || b != chakraColors[0] || mix != 0 {
		t.Errorf("idle colors = %v %v %v", a, b, mix)
	}
	if len(r.cues.played) != 0 {
		t.Errorf("cues before start: %v", r.cues.played)
	}

	r.click(20, 20)
	if !s.Started() {
		t.Fatal("a press anywhere should begin")
	}
	if r.cues.count(calm.CueBreathIn) != 1 {
		t.Errorf("inhale cue played %d times", r.cues.count(calm.CueBreathIn))
	}
}

func TestBreathSyncCountsCycles(t *testing.T) {
	s := NewBreathSync()
	r := mountScene(t, s, 400, 600)
	s.Start()

	r.step(250)
	if ph := s.Phase(); ph.Index != 1 {
		t.Errorf("phase after 4s = %+v, want hold", ph)
	}
	if s.Radius() < breathMaxRadius-10 {
		t.Errorf("radius = %v at the top of the inhale", s.Radius())
	}

	r.step(750)
	if s.BreathCount() != 1 {
		t.Fatalf("BreathCount = %d after one cycle", s.BreathCount())
	}
	a, b, mix := s.Colors()
	if a != chakraColors[1] || b != chakraColors[2] || mix != 0 {
		t.Errorf("colors after one cycle = %v %v %v", a, b, mix)
	}

	want := []calm.Cue{calm.CueBreathIn, calm.CueHold, calm.CueBreathOut, calm.CueHold, calm.CueBreathIn}
	if len(r.cues.played) != len(want) {
		t.Fatalf("cues = %v, want %v", r.cues.played, want)
	}
	for i := range want {
		if r.cues.played[i] != want[i] {
			t.Errorf("cue %d = %v, want %v", i, r.cues.played[i], want[i])
		}
	}

	s.Start()
	if s.BreathCount() != 1 {
		t.Error("Start while running should have no effect")
	}
}

// Each completed breath steps the pair one chakra forward instead of
// returning to the starting pair, so the palette only comes back to the root
// after len(chakraColors) breaths.
func TestBreathSyncColorsWrap(t *testing.T) {
	s := NewBreathSync()
	mountScene(t, s, 400, 600)
	s.Start()
	s.count = len(chakraColors) - 1
	a, b, _ := s.Colors()
	if a != chakraColors[len(chakraColors)-1] || b != chakraColors[0] {
		t.Errorf("crown should blend back to root, got %v %v", a, b)
	}
	s.count = len(chakraColors)
	a, b, _ = s.Colors()
	if a != chakraColors[0] || b != chakraColors[1] {
		t.Errorf("a full round should restart at the root, got %v %v", a, b)
	}
}
