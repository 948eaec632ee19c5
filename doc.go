// Package aspen is a drag-and-drop interaction engine for [Ebitengine].
//
// Aspen turns raw mouse, touch, and keyboard input into a single
// consistent drag lifecycle: pick up, move, drop over a target, or
// cancel. It provides the coordinator, input sensors with activation
// constraints, pluggable collision detection, a pure transform-modifier
// pipeline, and an accessibility announcer. Rendering is deliberately
// out of scope: the engine computes state, your presentation layer draws
// it.
//
// # Quick start
//
// Create a [Manager], register what can be dragged and where it can be
// dropped, and poll it from your game loop:
//
//	m := aspen.NewManager(aspen.Config{
//		OnDragEnd: func(e aspen.EndContext) {
//			if e.Over != nil {
//				fmt.Println(e.Item.ID, "dropped on", e.Over.ID)
//			}
//		},
//	})
//	m.RegisterDraggable(aspen.Item{ID: "card"}, card)
//	m.RegisterDroppable("bin", bin, nil)
//
//	func (g *Game) Update() error { m.Update(); return nil }
//
// Anything with a Bounds() [Rect] method can act as a draggable node or
// drop target; see [Bounder].
//
// # State
//
// The manager owns one canonical [State]. Subscribe to re-render on every
// mutation, or read snapshots directly:
//
//	sub := m.Subscribe(func(s aspen.State) { redraw(s) })
//	defer sub.Remove()
//
// State.ActiveID and State.OverID tell a widget whether it is being
// dragged or hovered; State.Delta is the visual transform offset to apply
// to the dragged item.
//
// # Sensors
//
// The default sensor set is [PointerSensor] (4px dead zone),
// [TouchSensor] (press-and-hold), and [KeyboardSensor] (Space/Enter to
// pick up and drop, arrows to move, Escape to cancel). Configure
// [ActivationConstraint] per sensor via Config.Sensors, or drive the
// manager's StartDrag/UpdateDrag/EndDrag/CancelDrag directly from your
// own input handling.
//
// # Collision and modifiers
//
// [RectIntersection] (greatest overlap wins) is the default collision
// strategy; [CenterWithin] and [ClosestCenter] are provided, and any
// [CollisionDetection] function can be substituted. [Modifier] functions
// form an ordered pipeline constraining movement: [RestrictToHorizontalAxis],
// [RestrictToRect], [SnapToGrid], or your own.
//
// # Accessibility
//
// Every transition writes a message through overridable [Announcements]
// templates into the manager's live region; surface it with
// Config.AnnouncementOutput or [Manager.Announcement], alongside
// [Manager.ScreenReaderInstructions].
//
// Drop feedback animation via [DropAnimation] (built on [gween]) and
// ECS event bridging (via [Donburi] adapter in aspen/ecs) round out the
// package. Runnable demos live under examples/.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package aspen
