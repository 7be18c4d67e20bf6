package sound

import (
	"testing"
	"time"

	"github.com/phanxgames/calm"
)

var allCues = []calm.Cue{
	calm.CuePop, calm.CueChime, calm.CueGrow, calm.CueCatch, calm.CuePuff,
	calm.CueBreathIn, calm.CueHold, calm.CueBreathOut, calm.CueSweep,
}

func TestNewCueTerminates(t *testing.T) {
	for _, cue := range allCues {
		s := NewCue(cue, SampleRate, 1)
		if s == nil {
			t.Fatalf("cue %d has no streamer", cue)
		}
		limit := SampleRate.N(CueLength(cue))
		if limit <= 0 {
			t.Fatalf("cue %d has no length", cue)
		}
		if n := drain(t, s, limit+512); n > limit {
			t.Errorf("cue %d streamed %d samples, want at most %d", cue, n, limit)
		}
	}
}

func TestNewCueUnknown(t *testing.T) {
	if s := NewCue(calm.Cue(200), SampleRate, 1); s != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestCueLengthIncludesDelay(t *testing.T) {
	if got, want := CueLength(calm.CueCatch), 470*time.Millisecond; got != want {
		t.Errorf("CueLength(catch) = %v, want %v", got, want)
	}
}

func TestPlayerSilentUntilStarted(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.Play(calm.CuePop)
	if p.Active() != 0 {
		t.Errorf("unstarted player queued %d cues", p.Active())
	}
}

func TestPlayerMixesAndDrains(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.started = true

	p.Play(calm.CuePop)
	p.Play(calm.CueChime)
	if p.Active() != 2 {
		t.Fatalf("expected 2 active cues, got %d", p.Active())
	}

	buf := make([][2]float64, 512)
	for i := 0; i < SampleRate.N(2*time.Second)/len(buf) && p.Active() > 0; i++ {
		n, ok := p.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("player stream = (%d, %v), want full buffer", n, ok)
		}
	}
	if p.Active() != 0 {
		t.Errorf("%d cues still active after 2s", p.Active())
	}
}

func TestPlayerVoiceLimit(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.started = true
	for range maxVoices + 5 {
		p.Play(calm.CueChime)
	}
	if p.Active() != maxVoices {
		t.Errorf("active = %d, want %d", p.Active(), maxVoices)
	}
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.started = true
	p.Play(calm.CueChime)
	p.SetMuted(true)
	if p.Active() != 0 {
		t.Errorf("mute kept %d cues", p.Active())
	}
	p.Play(calm.CuePop)
	if p.Active() != 0 {
		t.Error("muted player accepted a cue")
	}
	p.SetMuted(false)
	p.Play(calm.CuePop)
	if p.Active() != 1 {
		t.Errorf("unmuted player has %d cues, want 1", p.Active())
	}
}

func TestPlayerImplementsSounder(t *testing.T) {
	var _ calm.Sounder = NewPlayer(DefaultConfig())
}
