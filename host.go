package calm

import (
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameID identifies a queued frame callback.
type FrameID uint64

type frameRequest struct {
	id FrameID
	fn func(now float64)
}

type layer struct {
	id   uint32
	draw func(c *Canvas)
}

// Host is the shell every scene mounts into. It implements ebiten.Game: it
// owns the window and container geometry, polls pointer devices, runs the
// queue of frame callbacks once per tick and draws the mounted layers.
//
// A Host is single-threaded; all of its methods must be called from the
// game loop (or from a test driving it with Step).
type Host struct {
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	chrome       func(PointerEvent)

	frames    []frameRequest
	running   []frameRequest
	nextFrame FrameID

	layers    []*layer
	nextLayer uint32
	overlay   func(c *Canvas)
	canvas    Canvas
	mounted   *controller

	window       Rect
	container    Rect
	surface      Surface
	headerHeight float64

	store    EntityStore
	debug    bool
	showFPS  bool
	stats    debugStats
	start    time.Time
	now      float64
	updateFn func() error
	runner   *ScriptRunner

	screenshotQueue []string

	// ClearColor fills the window before layers are drawn.
	ClearColor RGB
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewHost creates a host with a zero-sized window. The first Layout call (or
// SetViewport in headless use) sizes it.
func NewHost() *Host {
	return &Host{
		start:         time.Now(),
		ScreenshotDir: "screenshots",
		surface:       Surface{Ratio: 1},
	}
}

// SetHeaderHeight reserves a strip at the top of the window for the shell's
// own chrome. Scenes are mounted below it.
func (h *Host) SetHeaderHeight(height float64) {
	h.headerHeight = math.Max(0, height)
	h.setWindow(h.window.Width, h.window.Height, h.surface.Ratio, true)
}

// SetChromeHandler registers the callback for presses that start outside the
// container (in the header strip). Coordinates are window coordinates.
func (h *Host) SetChromeHandler(fn func(PointerEvent)) {
	h.chrome = fn
}

// SetOverlay sets a draw function run after every layer, in window
// coordinates. Pass nil to remove it.
func (h *Host) SetOverlay(fn func(c *Canvas)) {
	h.overlay = fn
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFn = fn
}

// SetEntityStore sets the optional ECS store for forwarding pointer events.
func (h *Host) SetEntityStore(store EntityStore) {
	h.store = store
}

// SetDebugMode enables per-second diagnostics on stderr.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// SetShowFPS toggles the FPS readout in the window corner.
func (h *Host) SetShowFPS(show bool) {
	h.showFPS = show
}

// Surface returns the current container surface.
func (h *Host) Surface() Surface { return h.surface }

// Container returns the container rectangle in logical window coordinates.
func (h *Host) Container() Rect { return h.container }

// Window returns the window rectangle in logical coordinates.
func (h *Host) Window() Rect { return h.window }

// Now returns the timestamp of the current frame in milliseconds.
func (h *Host) Now() float64 { return h.now }

// --- Frame callbacks ---

// RequestFrame queues fn to run once on the next tick with that tick's
// timestamp. Callbacks queued while the queue runs wait for the following tick.
func (h *Host) RequestFrame(fn func(now float64)) FrameID {
	h.nextFrame++
	h.frames = append(h.frames, frameRequest{id: h.nextFrame, fn: fn})
	return h.nextFrame
}

// CancelFrame removes a queued callback. Unknown or already-run IDs are ignored.
func (h *Host) CancelFrame(id FrameID) {
	h.frames = slices.DeleteFunc(h.frames, func(r frameRequest) bool { return r.id == id })
	for i := range h.running {
		if h.running[i].id == id {
			h.running[i].fn = nil
		}
	}
}

// PendingFrames returns the number of queued frame callbacks.
func (h *Host) PendingFrames() int { return len(h.frames) }

func (h *Host) runFrames(now float64) {
	h.now = now
	h.running, h.frames = h.frames, h.running[:0]
	for i := 0; i < len(h.running); i++ {
		if fn := h.running[i].fn; fn != nil {
			fn(now)
		}
	}
	clear(h.running)
	h.running = h.running[:0]
}

// --- Layers ---

func (h *Host) addLayer(draw func(c *Canvas)) *layer {
	h.nextLayer++
	l := &layer{id: h.nextLayer, draw: draw}
	h.layers = append(h.layers, l)
	return l
}

func (h *Host) removeLayer(l *layer) {
	h.layers = slices.DeleteFunc(h.layers, func(o *layer) bool { return o == l })
}

func (h *Host) clearLayers() {
	h.layers = h.layers[:0]
}

// LayerCount returns the number of mounted draw layers.
func (h *Host) LayerCount() int { return len(h.layers) }

// --- Geometry ---

// SetViewport sets the logical window size and device pixel ratio directly.
// Layout does the same from Ebitengine's outside size; headless drivers and
// tests call it themselves.
func (h *Host) SetViewport(width, height, ratio float64) {
	h.setWindow(width, height, ratio, false)
}

func (h *Host) setWindow(width, height, ratio float64, force bool) {
	if ratio <= 0 {
		ratio = 1
	}
	if !force && width == h.window.Width && height == h.window.Height && ratio == h.surface.Ratio {
		return
	}
	h.window = Rect{Width: width, Height: height}
	header := math.Min(h.headerHeight, height)
	h.container = Rect{X: 0, Y: header, Width: width, Height: height - header}
	h.surface = Surface{Width: h.container.Width, Height: h.container.Height, Ratio: ratio}
	if h.debug {
		bw, bh := h.surface.BackingSize()
		_, _ = fmt.Fprintf(os.Stderr, "[calm] resize: %.0fx%.0f @%.2f (backing %dx%d)\n",
			h.surface.Width, h.surface.Height, ratio, bw, bh)
	}
	for _, rh := range slices.Clone(h.handlers.resize) {
		rh.fn(h.surface)
	}
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// --- ebiten.Game ---

// Step advances one frame at the given timestamp (milliseconds) without
// polling real devices: the script runner and injected events still apply.
// Headless drivers and tests use it in place of Update.
func (h *Host) Step(now float64) {
	h.tick(now, false)
}

func (h *Host) tick(now float64, devices bool) {
	h.now = now
	if h.runner != nil {
		h.runner.step(h)
	}
	injected := h.processInjectedInput()
	if devices {
		h.pollDevices(injected)
	}
	h.runFrames(now)
	h.stats.ticks++
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	began := time.Now()
	h.tick(float64(time.Since(h.start).Microseconds())/1000, true)
	h.stats.updateTime += time.Since(began)
	if h.updateFn != nil {
		if err := h.updateFn(); err != nil {
			return err
		}
	}
	if h.runner != nil && h.runner.Done() && len(h.screenshotQueue) == 0 && h.runner.exitWhenDone {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	began := time.Now()
	screen.Fill(h.ClearColor.Opaque())

	h.canvas.retarget(screen, h.container, h.surface.Ratio)
	for _, l := range h.layers {
		l.draw(&h.canvas)
		h.canvas.SetBlend(BlendNormal)
	}
	if h.overlay != nil {
		h.canvas.retarget(screen, h.window, h.surface.Ratio)
		h.overlay(&h.canvas)
	}
	if h.showFPS {
		drawFPS(screen)
	}
	h.flushScreenshots(screen)

	h.stats.drawTime += time.Since(began)
	h.stats.frames++
	h.debugLog()
}

// Layout implements ebiten.Game. The screen is sized in device pixels so the
// canvas can draw at the full pixel ratio.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := deviceScale()
	h.setWindow(float64(outsideWidth), float64(outsideHeight), ratio, false)
	return int(math.Ceil(float64(outsideWidth) * ratio)), int(math.Ceil(float64(outsideHeight) * ratio))
}
