// Package sound synthesizes the soft cues scenes play and mixes them onto
// the system speaker.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/calm"
)

const (
	// SampleRate is the output rate of every cue.
	SampleRate = beep.SampleRate(44100)
	// maxVoices bounds how many cues may overlap. Further cues are dropped
	// until one finishes.
	maxVoices = 12
)

// Config tunes the player.
type Config struct {
	// Volume is the master gain in [0, 1].
	Volume float64
	// Buffer is the speaker buffer length. Shorter is more responsive.
	Buffer time.Duration
}

// DefaultConfig returns the settings used by the command.
func DefaultConfig() Config {
	return Config{Volume: 0.6, Buffer: 100 * time.Millisecond}
}

// Player implements calm.Sounder. It is itself the streamer handed to the
// speaker; the mutex guards the mixer between the game loop, which adds
// cues, and the audio callback, which drains them.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	cfg     Config
	started bool
	muted   bool
}

// NewPlayer creates a player. It stays silent until Start succeeds.
func NewPlayer(cfg Config) *Player {
	return &Player{mixer: &beep.Mixer{}, cfg: cfg}
}

// Start opens the speaker and begins playback. Calling it again is a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(p.cfg.Buffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p)
	p.started = true
	return nil
}

// Close stops every cue and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	started := p.started
	p.mixer.Clear()
	p.started = false
	p.mu.Unlock()
	if started {
		speaker.Close()
	}
}

// SetMuted silences or restores playback. Muting drops cues in flight.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted {
		p.mixer.Clear()
	}
}

// Play implements calm.Sounder.
func (p *Player) Play(cue calm.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.muted || p.mixer.Len() >= maxVoices {
		return
	}
	if s := NewCue(cue, SampleRate, p.cfg.Volume); s != nil {
		p.mixer.Add(s)
	}
}

// Active returns the number of cues still sounding.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream implements beep.Streamer for the speaker callback.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mixer.Stream(samples)
	return len(samples), true
}

// Err implements beep.Streamer.
func (p *Player) Err() error { return nil }
