package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the shape of a tone.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveNoise
)

// tone is a single voice gliding linearly from one frequency to another
// over its duration.
type tone struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	length   int
	rate     beep.SampleRate
	noise    *rand.Rand
	last     float64
}

// NewTone creates a voice that glides from freq to glideTo over d. Pass the
// same frequency twice for a steady pitch. Noise voices ignore frequency
// except as a smoothing factor: lower values give a softer hiss.
func NewTone(freq, glideTo float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   freq,
		to:     glideTo,
		wave:   wave,
		length: rate.N(d),
		rate:   rate,
		noise:  rand.New(rand.NewPCG(uint64(freq), uint64(glideTo))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		f := t.from + (t.to-t.from)*float64(t.pos)/float64(t.length)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveTriangle:
			v = 1 - 4*math.Abs(t.phase-0.5)
		case WaveNoise:
			// One-pole low-pass over white noise.
			k := math.Min(1, f/float64(t.rate)*2*math.Pi)
			t.last += k * (t.noise.Float64()*2 - 1 - t.last)
			v = t.last
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with a linear attack and an exponential release
// that reaches silence at the end of the duration.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

// NewEnvelope wraps s so it fades in over attack and decays to silence by d.
func NewEnvelope(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else if tail := e.total - e.attack; tail > 0 {
			p := float64(e.pos-e.attack) / float64(tail)
			vol = math.Exp(-4*p) * (1 - p)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. Zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
