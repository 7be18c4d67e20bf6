package calm

import (
	"math/rand/v2"
	"time"
)

// Scene is one animated experience. The controller calls Mount once, then
// HandlePointer synchronously for every pointer event, Update once per frame
// with the clamped delta, and Draw whenever the host renders.
//
// Times are in milliseconds. Scenes never fail: degenerate input (a zero
// sized surface, a pointer outside the canvas) is a silent no-op.
type Scene interface {
	Mount(env *Env)
	HandlePointer(ev PointerEvent)
	Update(now, dt float64)
	Draw(c *Canvas, now float64)
}

// Resizer is implemented by scenes that re-derive geometry when the surface
// changes. Scenes without it keep their entities where they are.
type Resizer interface {
	Resize(s Surface)
}

// Unmounter is implemented by scenes that release something on dispose.
type Unmounter interface {
	Unmount()
}

// Env is what a scene receives on mount. The controller keeps Surface up to
// date before calling Resize.
type Env struct {
	Surface Surface
	Rand    *rand.Rand
	Sound   Sounder
	Intro   *Picture
	Options Options
}

// MountOption customizes the Env handed to a scene.
type MountOption func(*Env)

// WithRand sets the random source. Tests pass a seeded one.
func WithRand(r *rand.Rand) MountOption {
	return func(e *Env) { e.Rand = r }
}

// WithSound sets the cue player.
func WithSound(s Sounder) MountOption {
	return func(e *Env) { e.Sound = s }
}

// WithIntro sets the optional intro picture.
func WithIntro(p *Picture) MountOption {
	return func(e *Env) { e.Intro = p }
}

// WithOptions sets the runtime toggles.
func WithOptions(o Options) MountOption {
	return func(e *Env) { e.Options = o }
}

// controller binds one scene to a host for the duration of a mount.
type controller struct {
	host     *Host
	scene    Scene
	env      Env
	clock    Clock
	frame    FrameID
	handles  []CallbackHandle
	layer    *layer
	now      float64
	disposed bool
}

// Mount attaches scene to host and starts its frame loop. A scene already
// mounted on host is disposed and the host's prior layers are cleared first. The returned dispose function stops the loop,
// removes every listener the mount registered and is safe to call twice.
func Mount(host *Host, scene Scene, opts ...MountOption) (dispose func()) {
	c := &controller{host: host, scene: scene}
	c.env.Surface = host.Surface()
	for _, opt := range opts {
		opt(&c.env)
	}
	if c.env.Rand == nil {
		c.env.Rand = NewRand(uint64(time.Now().UnixNano()))
	}
	if c.env.Sound == nil {
		c.env.Sound = Silent{}
	}
	if c.env.Surface.Empty() {
		host.debugWarnf("mount on empty surface %.0fx%.0f", c.env.Surface.Width, c.env.Surface.Height)
	}

	if host.mounted != nil {
		host.mounted.dispose()
	}
	host.clearLayers()
	host.mounted = c
	c.clock.Start(host.Now())
	c.now = host.Now()
	scene.Mount(&c.env)
	c.handles = append(c.handles,
		host.OnResize(c.resize),
		host.OnPointer(c.pointer),
	)
	c.layer = host.addLayer(c.draw)
	c.frame = host.RequestFrame(c.tick)
	return c.dispose
}

func (c *controller) resize(s Surface) {
	if c.disposed {
		return
	}
	c.env.Surface = s
	if r, ok := c.scene.(Resizer); ok {
		r.Resize(s)
	}
}

func (c *controller) pointer(ev PointerEvent) {
	if c.disposed {
		return
	}
	c.scene.HandlePointer(ev)
}

func (c *controller) tick(now float64) {
	if c.disposed {
		return
	}
	dt := c.clock.Tick(now)
	c.now = now
	c.scene.Update(now, dt)
	if !c.disposed {
		c.frame = c.host.RequestFrame(c.tick)
	}
}

func (c *controller) draw(cv *Canvas) {
	c.scene.Draw(cv, c.now)
}

func (c *controller) dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.host.CancelFrame(c.frame)
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	c.host.removeLayer(c.layer)
	if c.host.mounted == c {
		c.host.mounted = nil
	}
	if u, ok := c.scene.(Unmounter); ok {
		u.Unmount()
	}
}
