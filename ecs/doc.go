// Package ecs provides ECS adapters for aspen's drag state notifications.
//
// The primary adapter is [NewDonburiBridge], which publishes every drag
// state change into a [Donburi] world as typed events. Subscribe to
// [DragStateEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sub := manager.Subscribe(ecs.NewDonburiBridge(world))
//	defer sub.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
