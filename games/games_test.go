package games

import (
	"math"
	"testing"

	"github.com/phanxgames/calm"
)

// rig drives one mounted scene on a headless host at 60 Hz.
type rig struct {
	host    *calm.Host
	dispose func()
	now     float64
	cues    *cueLog
}

type cueLog struct {
	played []calm.Cue
}

func (l *cueLog) Play(c calm.Cue) { l.played = append(l.played, c) }

func (l *cueLog) count(c calm.Cue) int {
	n := 0
	for _, p := range l.played {
		if p == c {
			n++
		}
	}
	return n
}

func mountScene(t *testing.T, s calm.Scene, w, h float64, opts ...calm.MountOption) *rig {
	t.Helper()
	host := calm.NewHost()
	host.SetViewport(w, h, 1)
	cues := &cueLog{}
	opts = append([]calm.MountOption{calm.WithRand(calm.NewRand(1)), calm.WithSound(cues)}, opts...)
	r := &rig{host: host, cues: cues}
	r.dispose = calm.Mount(host, s, opts...)
	return r
}

// step advances n frames of 16ms.
func (r *rig) step(n int) {
	for range n {
		r.now += 16
		r.host.Step(r.now)
	}
}

// frames returns how many 16ms steps it takes for ms to elapse.
func frames(ms float64) int {
	return int(math.Ceil(ms / 16))
}

// drain steps until every queued injection has been delivered.
func (r *rig) drain() {
	for r.host.PendingInjections() > 0 {
		r.step(1)
	}
}

func (r *rig) click(x, y float64) {
	r.host.InjectClick(x, y)
	r.drain()
}

func (r *rig) press(x, y float64) {
	r.host.InjectPress(x, y)
	r.drain()
}

func (r *rig) release(x, y float64) {
	r.host.InjectRelease(x, y)
	r.drain()
}

func TestRoutes(t *testing.T) {
	routes := Routes()
	if len(routes) != 10 {
		t.Fatalf("got %d routes, want 10", len(routes))
	}
	seen := map[string]bool{}
	for _, rt := range routes {
		if seen[rt.Name] {
			t.Errorf("duplicate route %q", rt.Name)
		}
		seen[rt.Name] = true
		if rt.Title == "" || rt.New == nil {
			t.Errorf("route %q is incomplete", rt.Name)
		}
	}
	for _, name := range []string{"pop-bubbles", "calm-touch", "tide-wash", "pour-spread", "tap-grow",
		"catch-fall", "balloon-balance", "breath-sync", "warm-glow", "sand-garden"} {
		if !seen[name] {
			t.Errorf("missing route %q", name)
		}
	}
}

// Every scene must survive mounting on a zero-sized surface, input and
// ticking, and an unmount from inside a frame callback.
func TestScenesSurviveDegenerateUse(t *testing.T) {
	for _, rt := range Routes() {
		t.Run(rt.Name, func(t *testing.T) {
			r := mountScene(t, rt.New(), 0, 0)
			r.click(0, 0)
			r.step(5)
			r.host.SetViewport(320, 240, 2)
			r.click(100, 100)
			r.step(5)

			r.host.RequestFrame(func(float64) { r.dispose() })
			r.step(2)
			if r.host.PendingFrames() != 0 || r.host.ListenerCount() != 0 || r.host.LayerCount() != 0 {
				t.Errorf("frames %d listeners %d layers %d after dispose",
					r.host.PendingFrames(), r.host.ListenerCount(), r.host.LayerCount())
			}
		})
	}
}
