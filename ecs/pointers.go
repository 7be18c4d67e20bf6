package ecs

import (
	"github.com/phanxgames/calm"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PointerData is the component attached to the entity of a held pointer.
type PointerData struct {
	ID int
	// Canvas-local position of the latest event.
	X, Y float64
	// Where and when the press started.
	StartX, StartY float64
	Since          float64
	Moves          int
}

// Pointer marks an entity that mirrors a held pointer.
var Pointer = donburi.NewComponentType[PointerData]()

var pointerQuery = donburi.NewQuery(filter.Contains(Pointer))

// TrackPointers subscribes a handler that creates an entity on every press,
// updates it on moves and removes it on release or cancel. Entities change
// when the bridge is flushed.
func TrackPointers(world donburi.World) {
	PointerEventType.Subscribe(world, trackPointer)
}

func trackPointer(w donburi.World, e calm.InteractionEvent) {
	entry := findPointer(w, e.PointerID)
	switch e.Kind {
	case calm.PointerDown:
		if entry == nil {
			entry = w.Entry(w.Create(Pointer))
		}
		Pointer.SetValue(entry, PointerData{
			ID:     e.PointerID,
			X:      e.LocalX,
			Y:      e.LocalY,
			StartX: e.LocalX,
			StartY: e.LocalY,
			Since:  e.Time,
		})
	case calm.PointerMove:
		if entry == nil {
			return
		}
		p := Pointer.Get(entry)
		p.X, p.Y = e.LocalX, e.LocalY
		p.Moves++
	case calm.PointerUp, calm.PointerCancel:
		if entry != nil {
			w.Remove(entry.Entity())
		}
	}
}

func findPointer(w donburi.World, id int) *donburi.Entry {
	var found *donburi.Entry
	pointerQuery.Each(w, func(entry *donburi.Entry) {
		if found == nil && Pointer.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

// ActivePointers returns a snapshot of every held pointer.
func ActivePointers(world donburi.World) []PointerData {
	var out []PointerData
	pointerQuery.Each(world, func(entry *donburi.Entry) {
		out = append(out, *Pointer.Get(entry))
	})
	return out
}
