package aspen

import "time"

// Synthetic input injection. Queued events are consumed on subsequent
// Update calls, one per frame, in place of real device input. Tests and
// scripted drives use this to exercise the full sensor pipeline without a
// mouse, touchscreen, or keyboard attached.

// pointerEvent is a single injected pointer sample.
type pointerEvent struct {
	pos     Position
	pressed bool
	cancel  bool
}

// keyEvent is a single injected key press.
type keyEvent struct {
	key  Key
	mods KeyModifiers
}

// InjectPress queues a pointer press at the given coordinates.
func (s *PointerSensor) InjectPress(x, y float64) {
	s.queue = append(s.queue, pointerEvent{pos: Position{X: x, Y: y}, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *PointerSensor) InjectMove(x, y float64) {
	s.queue = append(s.queue, pointerEvent{pos: Position{X: x, Y: y}, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *PointerSensor) InjectRelease(x, y float64) {
	s.queue = append(s.queue, pointerEvent{pos: Position{X: x, Y: y}, pressed: false})
}

// InjectCancel queues a drag cancellation, as if Escape were pressed.
func (s *PointerSensor) InjectCancel() {
	s.queue = append(s.queue, pointerEvent{cancel: true})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (s *PointerSensor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// consumeInjected pops one queued event and feeds it through the state
// machine. Returns true if an event was consumed (real input is skipped
// for this frame).
func (s *PointerSensor) consumeInjected(now time.Time) bool {
	if len(s.queue) == 0 {
		return false
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	if evt.cancel {
		s.core.cancel()
		return true
	}
	s.core.feed(evt.pos, evt.pressed, now)
	return true
}

// InjectKey queues a logical key press with the given modifiers.
func (s *KeyboardSensor) InjectKey(k Key, mods KeyModifiers) {
	s.queue = append(s.queue, keyEvent{key: k, mods: mods})
}

// consumeInjectedKey pops one queued key event and handles it. Returns
// true if an event was consumed.
func (s *KeyboardSensor) consumeInjectedKey() bool {
	if len(s.queue) == 0 {
		return false
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	s.press(evt.key, evt.mods)
	return true
}
