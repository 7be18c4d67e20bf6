package ecs

import (
	"github.com/phanxgames/calm"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEventType carries every pointer event the host hands to the mounted
// scene, in dispatch order. Presses on the router header never reach it.
var PointerEventType = events.NewEventType[calm.InteractionEvent]()

// Bridge queues host pointer dispatch into a donburi world. Install it with
// Host.SetEntityStore and call Flush once per frame.
type Bridge struct {
	world   donburi.World
	pending int
}

// NewBridge creates a bridge publishing into world.
func NewBridge(world donburi.World) *Bridge {
	return &Bridge{world: world}
}

// World returns the world the bridge publishes into.
func (b *Bridge) World() donburi.World { return b.world }

// EmitEvent implements calm.EntityStore.
func (b *Bridge) EmitEvent(event calm.InteractionEvent) {
	PointerEventType.Publish(b.world, event)
	b.pending++
}

// Pending returns the number of events queued since the last Flush.
func (b *Bridge) Pending() int { return b.pending }

// Flush delivers the queued events to subscribers and returns how many were
// delivered.
func (b *Bridge) Flush() int {
	n := b.pending
	b.pending = 0
	PointerEventType.ProcessEvents(b.world)
	return n
}
