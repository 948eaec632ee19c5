package aspen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchSensor drives drags from touch input. The first touch to appear is
// tracked as the drag pointer until it lifts; additional simultaneous
// touches are ignored, since the manager tracks a single drag. The default
// configuration uses a press-and-hold delay so taps and scroll gestures
// are not misread as drags.
type TouchSensor struct {
	core        pointerCore
	touchIDs    []ebiten.TouchID
	tracked     ebiten.TouchID
	tracking    bool
	deactivated bool
}

// NewTouchSensor creates a touch-driven sensor for m.
func NewTouchSensor(m *Manager, constraint ActivationConstraint) *TouchSensor {
	return &TouchSensor{core: pointerCore{m: m, constraint: constraint}}
}

// Update polls the current touch state and advances the drag state machine.
func (s *TouchSensor) Update() {
	if s.deactivated {
		return
	}
	now := time.Now()
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if !s.tracking {
		if len(s.touchIDs) == 0 {
			return
		}
		s.tracked = s.touchIDs[0]
		s.tracking = true
	}

	for _, id := range s.touchIDs {
		if id == s.tracked {
			tx, ty := ebiten.TouchPosition(id)
			s.core.feed(Position{X: float64(tx), Y: float64(ty)}, true, now)
			return
		}
	}

	// Tracked touch lifted: release at its last known position.
	s.core.feed(s.core.last, false, now)
	s.tracking = false
}

// Deactivate cancels any drag this sensor started and stops all input
// processing. Safe to call more than once.
func (s *TouchSensor) Deactivate() {
	s.core.cancel()
	s.core.reset()
	s.tracking = false
	s.deactivated = true
}
