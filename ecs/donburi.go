// Package ecs provides ECS adapters for aspen.
package ecs

import (
	"github.com/phanxgames/aspen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragStateEventType is the Donburi event type for drag state changes.
// Subscribe to this in your ECS systems to react to pick-up, movement,
// drop, and cancellation.
var DragStateEventType = events.NewEventType[aspen.State]()

// NewDonburiBridge returns a state listener that publishes every drag
// state change to DragStateEventType in the given world. Register it with
// Manager.Subscribe; consume with events.Subscribe and ProcessEvents.
func NewDonburiBridge(world donburi.World) func(aspen.State) {
	return func(s aspen.State) {
		DragStateEventType.Publish(world, s)
	}
}
