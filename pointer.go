package aspen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSensor drives drags from the mouse. A press inside a registered
// drag source arms it; movement beyond the activation constraint starts
// the drag; release drops; Escape cancels. The primary (left) button is
// the drag button.
type PointerSensor struct {
	core        pointerCore
	queue       []pointerEvent
	deactivated bool
}

// NewPointerSensor creates a mouse-driven sensor for m. The zero-value
// constraint starts a drag immediately on press; pass a Distance to
// require a dead zone.
func NewPointerSensor(m *Manager, constraint ActivationConstraint) *PointerSensor {
	return &PointerSensor{core: pointerCore{m: m, constraint: constraint}}
}

// Update polls the current mouse state and advances the drag state
// machine. Injected synthetic events take precedence over real input,
// one per frame.
func (s *PointerSensor) Update() {
	if s.deactivated {
		return
	}
	now := time.Now()
	if s.consumeInjected(now) {
		return
	}

	if s.core.dragging && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.core.cancel()
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.core.feed(Position{X: float64(mx), Y: float64(my)}, pressed, now)
}

// Deactivate cancels any drag this sensor started and stops all input
// processing. Safe to call more than once.
func (s *PointerSensor) Deactivate() {
	s.core.cancel()
	s.core.reset()
	s.queue = nil
	s.deactivated = true
}
