package ecs

import (
	"testing"

	"github.com/phanxgames/calm"

	"github.com/yohamta/donburi"
)

var _ calm.EntityStore = (*Bridge)(nil)

func TestBridgeQueuesUntilFlush(t *testing.T) {
	b := NewBridge(donburi.NewWorld())

	var received []calm.InteractionEvent
	PointerEventType.Subscribe(b.World(), func(w donburi.World, e calm.InteractionEvent) {
		received = append(received, e)
	})

	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerDown, PointerID: 3, LocalX: 100, LocalY: 160})
	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerUp, PointerID: 3})

	if len(received) != 0 || b.Pending() != 2 {
		t.Fatalf("before flush: %d delivered, %d pending", len(received), b.Pending())
	}
	if n := b.Flush(); n != 2 {
		t.Errorf("Flush = %d, want 2", n)
	}
	if len(received) != 2 || b.Pending() != 0 {
		t.Fatalf("after flush: %d delivered, %d pending", len(received), b.Pending())
	}
	if received[0].Kind != calm.PointerDown || received[1].Kind != calm.PointerUp {
		t.Errorf("order = %v, %v", received[0].Kind, received[1].Kind)
	}
	if b.Flush() != 0 {
		t.Error("second flush delivered events again")
	}
}

func TestBridgeFromHost(t *testing.T) {
	b := NewBridge(donburi.NewWorld())
	TrackPointers(b.World())
	var received []calm.InteractionEvent
	PointerEventType.Subscribe(b.World(), func(w donburi.World, e calm.InteractionEvent) {
		received = append(received, e)
	})

	host := calm.NewHost()
	host.SetHeaderHeight(40)
	host.SetViewport(400, 440, 1)
	host.SetEntityStore(b)

	// A header press belongs to the router and stays out of the world.
	host.InjectPress(20, 20)
	host.Step(16)
	host.InjectRelease(20, 20)
	host.Step(32)
	b.Flush()
	if len(received) != 0 {
		t.Fatalf("header press reached the world: %+v", received)
	}

	host.InjectPress(50, 140)
	host.Step(48)
	b.Flush()
	if len(received) != 1 {
		t.Fatalf("got %d events, want the press", len(received))
	}
	down := received[0]
	if down.LocalX != 50 || down.LocalY != 100 || down.GlobalY != 140 || down.Time != 48 {
		t.Errorf("press = %+v", down)
	}
	if held := ActivePointers(b.World()); len(held) != 1 || held[0].StartY != 100 {
		t.Errorf("held pointers = %+v", held)
	}

	host.InjectRelease(50, 140)
	host.Step(64)
	b.Flush()
	if n := len(ActivePointers(b.World())); n != 0 {
		t.Errorf("%d pointers still held after release", n)
	}
}
