package calm

import "testing"

type fakeScene struct {
	env      *Env
	updates  []float64
	nows     []float64
	events   []PointerEvent
	resizes  []Surface
	unmounts int
	onUpdate func()
}

func (s *fakeScene) Mount(env *Env) { s.env = env }
func (s *fakeScene) HandlePointer(ev PointerEvent) { s.events = append(s.events, ev) }
func (s *fakeScene) Draw(*Canvas, float64) {}
func (s *fakeScene) Resize(sf Surface) { s.resizes = append(s.resizes, sf) }
func (s *fakeScene) Unmount() { s.unmounts++ }
func (s *fakeScene) Update(now, dt float64) {
	s.nows = append(s.nows, now)
	s.updates = append(s.updates, dt)
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func mountFake(t *testing.T) (*Host, *fakeScene, func()) {
	t.Helper()
	h := NewHost()
	h.SetViewport(400, 300, 2)
	s := &fakeScene{}
	dispose := Mount(h, s, WithRand(NewRand(1)))
	return h, s, dispose
}

func TestMountRegistersEverything(t *testing.T) {
	h, s, _ := mountFake(t)
	if s.env == nil {
		t.Fatal("scene was not mounted")
	}
	if s.env.Surface != (Surface{Width: 400, Height: 300, Ratio: 2}) {
		t.Errorf("surface = %+v", s.env.Surface)
	}
	if s.env.Sound == nil || s.env.Rand == nil {
		t.Error("env defaults missing")
	}
	if h.LayerCount() != 1 || h.ListenerCount() != 2 || h.PendingFrames() != 1 {
		t.Errorf("layers %d listeners %d frames %d", h.LayerCount(), h.ListenerCount(), h.PendingFrames())
	}
}

func TestFrameDeltaIsClamped(t *testing.T) {
	h, s, _ := mountFake(t)
	for _, now := range []float64{16, 32, 500, 490, 506} {
		h.Step(now)
	}
	want := []float64{16, 16, MaxDelta, 0, 16}
	if len(s.updates) != len(want) {
		t.Fatalf("got %d updates, want %d", len(s.updates), len(want))
	}
	for i, dt := range want {
		if s.updates[i] != dt {
			t.Errorf("update %d: dt = %v, want %v", i, s.updates[i], dt)
		}
	}
	if s.nows[2] != 500 {
		t.Errorf("now = %v, want the frame timestamp", s.nows[2])
	}
	if h.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want exactly one rescheduled frame", h.PendingFrames())
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	h, s, dispose := mountFake(t)
	h.Step(16)
	dispose()
	dispose()

	if s.unmounts != 1 {
		t.Errorf("Unmount called %d times", s.unmounts)
	}
	if h.LayerCount() != 0 || h.ListenerCount() != 0 || h.PendingFrames() != 0 {
		t.Errorf("layers %d listeners %d frames %d", h.LayerCount(), h.ListenerCount(), h.PendingFrames())
	}

	h.InjectPress(10, 10)
	h.Step(32)
	h.SetViewport(100, 100, 1)
	if len(s.updates) != 1 || len(s.events) != 0 || len(s.resizes) != 0 {
		t.Errorf("disposed scene still receives: updates %d events %d resizes %d",
			len(s.updates), len(s.events), len(s.resizes))
	}
}

func TestDisposeDuringUpdate(t *testing.T) {
	h, s, dispose := mountFake(t)
	s.onUpdate = dispose
	h.Step(16)
	h.Step(32)
	if len(s.updates) != 1 {
		t.Errorf("got %d updates, want 1", len(s.updates))
	}
	if h.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d", h.PendingFrames())
	}
}

func TestSceneReceivesPointerAndResize(t *testing.T) {
	h, s, _ := mountFake(t)
	h.InjectClick(40, 50)
	h.Step(16)
	h.Step(32)
	if len(s.events) != 2 || s.events[0].X != 40 || s.events[1].Kind != PointerUp {
		t.Errorf("events = %+v", s.events)
	}

	h.SetViewport(800, 600, 1)
	if len(s.resizes) != 1 || s.resizes[0].Width != 800 {
		t.Fatalf("resizes = %+v", s.resizes)
	}
	if s.env.Surface.Width != 800 {
		t.Errorf("env surface not updated: %+v", s.env.Surface)
	}
}

func TestMountReplacesPriorScene(t *testing.T) {
	h, old, disposeOld := mountFake(t)
	next := &fakeScene{}
	Mount(h, next)
	if old.unmounts != 1 {
		t.Error("previous scene was not unmounted")
	}
	if h.LayerCount() != 1 {
		t.Errorf("LayerCount = %d, want 1", h.LayerCount())
	}
	if h.ListenerCount() != 2 {
		t.Errorf("ListenerCount = %d, want 2", h.ListenerCount())
	}
	if h.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", h.PendingFrames())
	}

	updates := len(old.updates)
	h.InjectPress(10, 10)
	h.Step(16)
	h.Step(32)
	if len(old.updates) != updates || len(old.events) != 0 {
		t.Errorf("previous scene still live: %d updates, %d events", len(old.updates)-updates, len(old.events))
	}
	if len(next.events) != 1 {
		t.Errorf("new scene got %d events, want 1", len(next.events))
	}

	// A stale disposer must not tear down the new mount.
	disposeOld()
	if h.LayerCount() != 1 || h.PendingFrames() != 1 {
		t.Errorf("stale dispose removed the new mount: layers=%d frames=%d", h.LayerCount(), h.PendingFrames())
	}
}

func TestMountOptions(t *testing.T) {
	h := NewHost()
	h.SetViewport(100, 100, 1)
	s := &fakeScene{}
	pic := &Picture{}
	Mount(h, s, WithSound(Silent{}), WithIntro(pic), WithOptions(Options{ReducedMotion: true}))
	if s.env.Intro != pic || s.env.Options.MotionFactor() != 0.7 {
		t.Errorf("env = %+v", s.env)
	}
	if (Options{}).MotionFactor() != 1 {
		t.Error("default motion factor")
	}
}

func TestCancelFrame(t *testing.T) {
	h := NewHost()
	calls := 0
	id := h.RequestFrame(func(float64) { calls++ })
	h.RequestFrame(func(float64) { calls += 10 })
	h.CancelFrame(id)
	h.CancelFrame(999)
	h.Step(0)
	h.Step(16)
	if calls != 10 {
		t.Errorf("calls = %d, want only the second callback once", calls)
	}
}
