package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/calm"
)

// voice is one layer of a cue.
type voice struct {
	from, to float64
	wave     Wave
	length   time.Duration
	attack   time.Duration
	gain     float64
	delay    time.Duration
}

// cueVoices lists the layers of every cue. All cues stay soft and short;
// the breathing tones are long enough to mark a phase change without
// covering it.
var cueVoices = map[calm.Cue][]voice{
	calm.CuePop: {
		{from: 720, to: 380, wave: WaveSine, length: 90 * time.Millisecond, attack: 3 * time.Millisecond, gain: 0.7},
		{from: 2400, to: 2400, wave: WaveNoise, length: 40 * time.Millisecond, attack: time.Millisecond, gain: 0.25},
	},
	calm.CueChime: {
		{from: 523.25, to: 523.25, wave: WaveSine, length: 900 * time.Millisecond, attack: 8 * time.Millisecond, gain: 0.6},
		{from: 1046.5, to: 1046.5, wave: WaveSine, length: 600 * time.Millisecond, attack: 8 * time.Millisecond, gain: 0.25},
	},
	calm.CueGrow: {
		{from: 330, to: 495, wave: WaveTriangle, length: 420 * time.Millisecond, attack: 40 * time.Millisecond, gain: 0.5},
	},
	calm.CueCatch: {
		{from: 784, to: 784, wave: WaveSine, length: 160 * time.Millisecond, attack: 4 * time.Millisecond, gain: 0.5},
		{from: 1174.66, to: 1174.66, wave: WaveSine, length: 360 * time.Millisecond, attack: 4 * time.Millisecond, gain: 0.5, delay: 110 * time.Millisecond},
	},
	calm.CuePuff: {
		{from: 900, to: 300, wave: WaveNoise, length: 160 * time.Millisecond, attack: 10 * time.Millisecond, gain: 0.5},
	},
	calm.CueBreathIn: {
		{from: 196, to: 220, wave: WaveSine, length: 1200 * time.Millisecond, attack: 300 * time.Millisecond, gain: 0.45},
	},
	calm.CueHold: {
		{from: 174.61, to: 174.61, wave: WaveSine, length: 800 * time.Millisecond, attack: 200 * time.Millisecond, gain: 0.3},
	},
	calm.CueBreathOut: {
		{from: 220, to: 165, wave: WaveSine, length: 1200 * time.Millisecond, attack: 300 * time.Millisecond, gain: 0.45},
	},
	calm.CueSweep: {
		{from: 400, to: 2000, wave: WaveNoise, length: 600 * time.Millisecond, attack: 150 * time.Millisecond, gain: 0.4},
	},
}

// NewCue builds the streamer for cue at the given rate and master volume.
// It returns nil for an unknown cue.
func NewCue(cue calm.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices, ok := cueVoices[cue]
	if !ok {
		return nil
	}
	layers := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		var s beep.Streamer = NewEnvelope(NewTone(v.from, v.to, v.length, v.wave, rate), v.length, v.attack, rate)
		if v.delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.delay)), s)
		}
		layers = append(layers, withVolume(s, v.gain))
	}
	return withVolume(beep.Take(rate.N(CueLength(cue)), beep.Mix(layers...)), volume)
}

// CueLength returns how long cue plays, including delayed layers.
func CueLength(cue calm.Cue) time.Duration {
	var d time.Duration
	for _, v := range cueVoices[cue] {
		d = max(d, v.delay+v.length)
	}
	return d
}
