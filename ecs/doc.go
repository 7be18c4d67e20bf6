// Package ecs bridges calm's pointer dispatch into a [Donburi] world.
//
// A [Bridge] installed as the host's entity store queues every pointer event
// the mounted scene receives as a [PointerEventType] event. [TrackPointers]
// keeps one entity per held pointer so systems can query active touches.
//
// Usage:
//
//	bridge := ecs.NewBridge(donburi.NewWorld())
//	ecs.TrackPointers(bridge.World())
//	host.SetEntityStore(bridge)
//	// once per frame:
//	bridge.Flush()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
