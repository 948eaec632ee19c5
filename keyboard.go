package aspen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// defaultKeyboardStep is the arrow-key translation in pixels.
	defaultKeyboardStep = 10.0
	// keyboardFastMultiplier scales the step while Shift is held.
	keyboardFastMultiplier = 5.0
)

// KeyboardSensor drives drags from the keyboard. Space or Enter on the
// focused drag source starts a drag anchored at the source's center;
// arrow keys translate the position by Step (Shift multiplies the step);
// Space or Enter again drops; Escape cancels.
//
// There is no ambient focus model in this world, so focus is explicit:
// the presentation layer calls Focus with the id of the source its own
// focus handling has selected.
type KeyboardSensor struct {
	m           *Manager
	step        float64
	focusID     string
	dragging    bool   // whether the current manager drag is ours
	activeID    string // id of the item this sensor picked up
	queue       []keyEvent
	deactivated bool
}

// NewKeyboardSensor creates a keyboard-driven sensor for m with the
// default step.
func NewKeyboardSensor(m *Manager) *KeyboardSensor {
	return &KeyboardSensor{m: m, step: defaultKeyboardStep}
}

// SetStep overrides the arrow-key step in pixels. Values of zero or less
// are ignored.
func (s *KeyboardSensor) SetStep(step float64) {
	if step > 0 {
		s.step = step
	}
}

// Focus selects the drag source the next activation key press will pick
// up. An empty id clears focus.
func (s *KeyboardSensor) Focus(id string) {
	s.focusID = id
}

// Update polls just-pressed keys and advances the drag. Injected
// synthetic key events take precedence over real input, one per frame.
func (s *KeyboardSensor) Update() {
	if s.deactivated {
		return
	}

	if s.consumeInjectedKey() {
		return
	}

	mods := readModifiers()
	for _, km := range keyMap {
		if inpututil.IsKeyJustPressed(km.ebiten) {
			s.press(km.key, mods)
		}
	}
}

// Deactivate cancels any drag this sensor started and stops all input
// processing. Safe to call more than once.
func (s *KeyboardSensor) Deactivate() {
	if s.dragging {
		if st := s.m.State(); st.Dragging && st.ActiveID == s.activeID {
			s.m.CancelDrag()
		}
		s.dragging = false
	}
	s.queue = nil
	s.deactivated = true
}

// press handles one logical key press. It is the whole of the sensor's
// behavior; Update only maps backend key codes onto it.
func (s *KeyboardSensor) press(k Key, mods KeyModifiers) {
	// The drag may have been taken over or cancelled by someone else.
	if s.dragging {
		if st := s.m.State(); !st.Dragging || st.ActiveID != s.activeID {
			s.dragging = false
		}
	}

	if !s.dragging {
		if k != KeyActivate || s.focusID == "" {
			return
		}
		src, ok := s.m.SourceByID(s.focusID)
		if !ok {
			return
		}
		pos := Position{}
		if src.Node != nil {
			pos = src.Node.Bounds().Center()
		}
		s.dragging = true
		s.activeID = src.Item.ID
		s.m.StartDrag(src.Item, src.Node, pos)
		return
	}

	switch k {
	case KeyActivate:
		s.m.EndDrag()
		s.dragging = false
	case KeyCancel:
		s.m.CancelDrag()
		s.dragging = false
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		step := s.step
		if mods&ModShift != 0 {
			step *= keyboardFastMultiplier
		}
		pos := s.m.State().Current
		switch k {
		case KeyUp:
			pos.Y -= step
		case KeyDown:
			pos.Y += step
		case KeyLeft:
			pos.X -= step
		case KeyRight:
			pos.X += step
		}
		s.m.UpdateDrag(pos)
	}
}

// keyMap binds the backend keys the sensor listens for to logical keys.
// Space and Enter both activate, matching the usual accessibility
// convention.
var keyMap = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeySpace, KeyActivate},
	{ebiten.KeyEnter, KeyActivate},
	{ebiten.KeyEscape, KeyCancel},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
