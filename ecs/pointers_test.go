package ecs

import (
	"testing"

	"github.com/phanxgames/calm"

	"github.com/yohamta/donburi"
)

func TestTrackPointers(t *testing.T) {
	world := donburi.NewWorld()
	TrackPointers(world)
	b := NewBridge(world)

	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerDown, PointerID: 0, LocalX: 10, LocalY: 20, Time: 5})
	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerDown, PointerID: 2, LocalX: 30, LocalY: 40})
	b.Flush()

	active := ActivePointers(world)
	if len(active) != 2 {
		t.Fatalf("expected 2 active pointers, got %d", len(active))
	}

	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerMove, PointerID: 0, LocalX: 15, LocalY: 25})
	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerUp, PointerID: 2})
	b.Flush()

	active = ActivePointers(world)
	if len(active) != 1 {
		t.Fatalf("expected 1 active pointer, got %d", len(active))
	}
	p := active[0]
	if p.ID != 0 || p.X != 15 || p.Y != 25 {
		t.Errorf("pointer = %+v", p)
	}
	if p.StartX != 10 || p.StartY != 20 || p.Since != 5 {
		t.Errorf("press origin = (%v,%v) at %v", p.StartX, p.StartY, p.Since)
	}
	if p.Moves != 1 {
		t.Errorf("moves = %d, want 1", p.Moves)
	}
}

func TestTrackPointers_CancelRemoves(t *testing.T) {
	world := donburi.NewWorld()
	TrackPointers(world)
	b := NewBridge(world)

	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerDown, PointerID: 1})
	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerCancel, PointerID: 1})
	b.Flush()

	if n := len(ActivePointers(world)); n != 0 {
		t.Errorf("expected no active pointers after cancel, got %d", n)
	}
}

func TestTrackPointers_MoveWithoutPress(t *testing.T) {
	world := donburi.NewWorld()
	TrackPointers(world)
	b := NewBridge(world)

	b.EmitEvent(calm.InteractionEvent{Kind: calm.PointerMove, PointerID: 0, LocalX: 5})
	b.Flush()

	if n := len(ActivePointers(world)); n != 0 {
		t.Errorf("hover move created %d entities", n)
	}
}
