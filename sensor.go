package aspen

import "time"

// Sensor normalizes one class of raw input (mouse, touch, keyboard) into
// calls on the manager's imperative drive surface. Sensors are polled:
// Update runs once per frame from Manager.Update. Deactivate tears a
// sensor down deterministically; a drag the sensor started is cancelled
// and no further input is processed.
//
// Sensors run concurrently and independently, but the manager tracks a
// single drag, so only one sensor is driving it at any time.
type Sensor interface {
	Update()
	Deactivate()
}

// ActivationConstraint distinguishes an intentional drag from a click or
// tap. With Distance set, the pointer must travel that many pixels from
// the press point before the drag starts. With Delay set, the press must
// be held that long, moving no more than Tolerance pixels, before the
// drag starts; exceeding Tolerance early means the drag never starts.
// The zero value activates immediately on press.
type ActivationConstraint struct {
	Distance  float64
	Delay     time.Duration
	Tolerance float64
}

func (c ActivationConstraint) immediate() bool {
	return c.Distance == 0 && c.Delay == 0
}

const (
	// defaultActivationDistance is the pointer dead zone in pixels.
	defaultActivationDistance = 4.0
	// Touch defaults follow the press-and-hold convention so taps and
	// scrolls stay distinguishable from drags.
	defaultTouchDelay     = 250 * time.Millisecond
	defaultTouchTolerance = 5.0
)

// DefaultSensors returns the factory set used when Config.Sensors is nil:
// a pointer sensor with the default dead zone, a touch sensor with a
// press-and-hold delay, and a keyboard sensor.
func DefaultSensors() []SensorFactory {
	return []SensorFactory{
		func(m *Manager) Sensor {
			return NewPointerSensor(m, ActivationConstraint{Distance: defaultActivationDistance})
		},
		func(m *Manager) Sensor {
			return NewTouchSensor(m, ActivationConstraint{Delay: defaultTouchDelay, Tolerance: defaultTouchTolerance})
		},
		func(m *Manager) Sensor {
			return NewKeyboardSensor(m)
		},
	}
}

// pointerCore is the press/move/release state machine shared by the
// pointer and touch sensors. It is fed one sample per frame and calls
// StartDrag/UpdateDrag/EndDrag on the manager once its activation
// constraint is satisfied. The core never touches the input backend, so
// tests drive it directly.
type pointerCore struct {
	m          *Manager
	constraint ActivationConstraint

	down      bool
	armed     bool // pressed over a drag source, drag not yet started
	source    Source
	start     Position
	last      Position
	pressedAt time.Time
	dragging  bool
}

// feed advances the state machine with one sampled frame of input.
func (c *pointerCore) feed(pos Position, pressed bool, now time.Time) {
	switch {
	case pressed && !c.down:
		c.down = true
		c.start = pos
		c.last = pos
		c.pressedAt = now
		c.dragging = false
		if src, ok := c.m.SourceAt(pos); ok {
			c.armed = true
			c.source = src
			if c.constraint.immediate() {
				c.activate(pos)
			}
		}

	case pressed && c.down:
		// The drag may have been taken over or cancelled by someone else.
		if c.dragging && !c.ownsDrag() {
			c.dragging = false
			c.armed = false
		}
		if c.armed && !c.dragging {
			c.tryActivate(pos, now)
		}
		if c.dragging && pos != c.last {
			c.m.UpdateDrag(pos)
		}
		c.last = pos

	case !pressed && c.down:
		if c.dragging && c.ownsDrag() {
			c.m.EndDrag()
		}
		c.reset()
	}
}

// ownsDrag reports whether the manager's current drag is the one this
// core started. False once another sensor's activation has taken over.
func (c *pointerCore) ownsDrag() bool {
	return c.m.state.Dragging && c.m.state.ActiveID == c.source.Item.ID
}

// tryActivate checks the activation constraint against the current sample.
func (c *pointerCore) tryActivate(pos Position, now time.Time) {
	moved := pos.Distance(c.start)
	if c.constraint.Delay > 0 {
		if moved > c.constraint.Tolerance {
			// Moved too far before the hold elapsed: not a drag.
			c.armed = false
			return
		}
		if now.Sub(c.pressedAt) >= c.constraint.Delay {
			c.activate(pos)
		}
		return
	}
	if moved >= c.constraint.Distance {
		c.activate(pos)
	}
}

// activate starts the drag anchored at the press position, then catches
// the manager up to the current pointer position.
func (c *pointerCore) activate(pos Position) {
	c.dragging = true
	c.m.StartDrag(c.source.Item, c.source.Node, c.start)
	if pos != c.start {
		c.m.UpdateDrag(pos)
	}
}

// cancel aborts a drag in progress and disarms the core. The press itself
// stays tracked so a late release cannot re-arm or re-fire. A drag taken
// over by another sensor is left alone.
func (c *pointerCore) cancel() {
	if c.dragging && c.ownsDrag() {
		c.m.CancelDrag()
	}
	c.dragging = false
	c.armed = false
	c.source = Source{}
}

func (c *pointerCore) reset() {
	c.down = false
	c.armed = false
	c.dragging = false
	c.source = Source{}
}
