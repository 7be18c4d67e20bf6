package calm

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EntityStore is the interface for optional ECS integration.
// When set on a Host, every dispatched pointer event is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries a dispatched pointer event for the ECS bridge.
type InteractionEvent struct {
	Kind      PointerKind
	PointerID int
	// Canvas-local coordinates, as seen by the scene.
	LocalX, LocalY float64
	// Window coordinates in logical pixels.
	GlobalX, GlobalY float64
	// Timestamp of the frame that dispatched the event, in milliseconds.
	Time float64
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	inside bool // press started inside the container
	lastX  float64
	lastY  float64
	seen   bool
}

// --- Handler registry ---

type eventKind uint8

const (
	eventPointer eventKind = iota
	eventResize
)

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type resizeHandler struct {
	id uint32
	fn func(Surface)
}

type handlerRegistry struct {
	pointer []pointerHandler
	resize  []resizeHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered host-level callback.
// Removing twice is harmless.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event eventKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case eventPointer:
		h.reg.pointer = slices.DeleteFunc(h.reg.pointer, func(p pointerHandler) bool { return p.id == h.id })
	case eventResize:
		h.reg.resize = slices.DeleteFunc(h.reg.resize, func(r resizeHandler) bool { return r.id == h.id })
	}
}

// OnPointer registers a callback for pointer events inside the container.
func (h *Host) OnPointer(fn func(PointerEvent)) CallbackHandle {
	h.handlers.nextID++
	id := h.handlers.nextID
	h.handlers.pointer = append(h.handlers.pointer, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.handlers, event: eventPointer}
}

// OnResize registers a callback fired synchronously whenever the container
// size or the device pixel ratio changes.
func (h *Host) OnResize(fn func(Surface)) CallbackHandle {
	h.handlers.nextID++
	id := h.handlers.nextID
	h.handlers.resize = append(h.handlers.resize, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.handlers, event: eventResize}
}

// ListenerCount returns the number of registered pointer and resize callbacks.
func (h *Host) ListenerCount() int {
	return len(h.handlers.pointer) + len(h.handlers.resize)
}

// --- Input processing ---

// pollDevices handles mouse and touch input. Injected events replace the
// mouse for the frame they are consumed in.
func (h *Host) pollDevices(injected bool) {
	if !injected {
		h.processMousePointer()
	}
	h.processTouchPointers()
	if !ebiten.IsFocused() {
		h.cancelPointers()
	}
}

// screenToWindow converts backing-store pixels to logical window pixels.
func (h *Host) screenToWindow(px, py int) (float64, float64) {
	r := h.surface.Ratio
	if r <= 0 {
		r = 1
	}
	return float64(px) / r, float64(py) / r
}

// processMousePointer handles mouse input (pointer 0).
func (h *Host) processMousePointer() {
	wx, wy := h.screenToWindow(ebiten.CursorPosition())
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.processPointer(0, wx, wy, pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		wx, wy := h.screenToWindow(ebiten.TouchPosition(tid))
		h.processPointer(slot, wx, wy, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false)
			}
			ps.seen = false
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// cancelPointers abandons every held press, e.g. when the window loses focus.
func (h *Host) cancelPointers() {
	for i := range h.pointers {
		ps := &h.pointers[i]
		if !ps.down {
			continue
		}
		if ps.inside {
			h.dispatch(PointerCancel, i, ps.lastX, ps.lastY)
		}
		ps.down = false
		ps.inside = false
	}
}

// processPointer runs the pointer state machine for a single pointer.
// wx and wy are logical window coordinates.
func (h *Host) processPointer(pointerID int, wx, wy float64, pressed bool) {
	ps := &h.pointers[pointerID]
	moved := !ps.seen || wx != ps.lastX || wy != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.inside = h.container.Contains(wx, wy)
		ps.lastX, ps.lastY = wx, wy
		if ps.inside {
			h.dispatch(PointerDown, pointerID, wx, wy)
		} else if h.chrome != nil {
			h.chrome(PointerEvent{Kind: PointerDown, ID: pointerID, X: wx, Y: wy})
		}
	case !pressed && ps.down:
		if ps.inside {
			h.dispatch(PointerUp, pointerID, wx, wy)
		}
		ps.down = false
		ps.inside = false
		ps.lastX, ps.lastY = wx, wy
	case moved:
		// Held presses keep reporting after leaving the container; hover
		// moves only count while over it.
		if (ps.down && ps.inside) || (!ps.down && h.container.Contains(wx, wy)) {
			h.dispatch(PointerMove, pointerID, wx, wy)
		}
		ps.lastX, ps.lastY = wx, wy
	}
}

// dispatch converts window coordinates to canvas-local ones and delivers the
// event to every pointer listener and the entity store.
func (h *Host) dispatch(kind PointerKind, pointerID int, wx, wy float64) {
	ev := PointerEvent{
		Kind: kind,
		ID:   pointerID,
		X:    wx - h.container.X,
		Y:    wy - h.container.Y,
	}
	h.stats.events++
	if h.store != nil {
		h.store.EmitEvent(InteractionEvent{
			Kind:      kind,
			PointerID: pointerID,
			LocalX:    ev.X,
			LocalY:    ev.Y,
			GlobalX:   wx,
			GlobalY:   wy,
			Time:      h.now,
		})
	}
	// Listeners may unregister themselves (or mount a new scene) while the
	// event is being delivered.
	for _, ph := range slices.Clone(h.handlers.pointer) {
		ph.fn(ev)
	}
}
