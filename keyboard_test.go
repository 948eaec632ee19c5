package aspen

import "testing"

func newKeyboardRig() (*Manager, *KeyboardSensor) {
	m := NewManager(Config{Sensors: []SensorFactory{}})
	m.RegisterDraggable(Item{ID: "box"}, &stubNode{rect: Rect{10, 10, 20, 20}})
	m.RegisterDroppable("bin", &stubNode{rect: Rect{100, 100, 100, 100}}, nil)
	s := NewKeyboardSensor(m)
	return m, s
}

func TestKeyboardPickUpMoveDrop(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")

	// Activation key starts the drag at the source's center.
	s.press(KeyActivate, 0)
	st := m.State()
	if !st.Dragging || st.ActiveID != "box" {
		t.Fatalf("state after pick-up: %+v", st)
	}
	if st.Initial != (Position{X: 20, Y: 20}) {
		t.Errorf("Initial = %v, want the box center {20 20}", st.Initial)
	}

	// Arrow keys translate by the step.
	s.press(KeyRight, 0)
	if got := m.State().Current.X; got != 30 {
		t.Errorf("Current.X = %v, want 30 after one step", got)
	}
	s.press(KeyDown, 0)
	if got := m.State().Current.Y; got != 30 {
		t.Errorf("Current.Y = %v, want 30 after one step", got)
	}

	// Activation key again drops.
	s.press(KeyActivate, 0)
	if m.State().Dragging {
		t.Error("second activation press should drop")
	}
}

func TestKeyboardShiftStep(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyActivate, 0)

	s.press(KeyRight, ModShift)
	want := 20 + defaultKeyboardStep*keyboardFastMultiplier
	if got := m.State().Current.X; got != want {
		t.Errorf("Current.X = %v, want %v with Shift held", got, want)
	}
}

func TestKeyboardCustomStep(t *testing.T) {
	m, s := newKeyboardRig()
	s.SetStep(25)
	s.Focus("box")
	s.press(KeyActivate, 0)
	s.press(KeyLeft, 0)
	if got := m.State().Current.X; got != -5 {
		t.Errorf("Current.X = %v, want -5 with a 25px step", got)
	}

	// Nonpositive steps are rejected.
	s.SetStep(0)
	s.press(KeyRight, 0)
	if got := m.State().Current.X; got != 20 {
		t.Errorf("Current.X = %v, want 20", got)
	}
}

func TestKeyboardEscapeCancels(t *testing.T) {
	var cancelled bool
	m := NewManager(Config{
		Sensors:      []SensorFactory{},
		OnDragCancel: func(DragContext) { cancelled = true },
	})
	m.RegisterDraggable(Item{ID: "box"}, &stubNode{rect: Rect{10, 10, 20, 20}})
	s := NewKeyboardSensor(m)
	s.Focus("box")

	s.press(KeyActivate, 0)
	s.press(KeyCancel, 0)

	if !cancelled || m.State().Dragging {
		t.Errorf("cancelled=%v dragging=%v", cancelled, m.State().Dragging)
	}

	// The sensor can start again after a cancel.
	s.press(KeyActivate, 0)
	if !m.State().Dragging {
		t.Error("sensor did not recover after cancel")
	}
}

func TestKeyboardWithoutFocusIsInert(t *testing.T) {
	m, s := newKeyboardRig()
	s.press(KeyActivate, 0)
	s.press(KeyRight, 0)
	if m.State().Dragging {
		t.Error("activation without focus should do nothing")
	}
}

func TestKeyboardUnknownFocusIsInert(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("ghost")
	s.press(KeyActivate, 0)
	if m.State().Dragging {
		t.Error("activation with an unregistered focus should do nothing")
	}
}

func TestKeyboardArrowsIgnoredWhileIdle(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyRight, 0)
	s.press(KeyCancel, 0)
	if m.State().Dragging || m.State().Current != (Position{}) {
		t.Errorf("idle arrows mutated state: %+v", m.State())
	}
}

func TestKeyboardDropOnBin(t *testing.T) {
	var end EndContext
	m := NewManager(Config{
		Sensors:   []SensorFactory{},
		OnDragEnd: func(e EndContext) { end = e },
	})
	m.RegisterDraggable(Item{ID: "box"}, &stubNode{rect: Rect{10, 10, 20, 20}})
	m.RegisterDroppable("bin", &stubNode{rect: Rect{100, 100, 100, 100}}, nil)
	s := NewKeyboardSensor(m)
	s.SetStep(100)
	s.Focus("box")

	s.press(KeyActivate, 0)
	s.press(KeyRight, 0)
	s.press(KeyDown, 0)
	// Center moved from (20,20) to (120,120): the virtual rect now sits
	// inside the bin.
	if got := m.State().OverID; got != "bin" {
		t.Fatalf("OverID = %q, want bin", got)
	}

	s.press(KeyActivate, 0)
	if end.Over == nil || end.Over.ID != "bin" {
		t.Errorf("end.Over = %+v, want bin", end.Over)
	}
}

func TestKeyboardInjection(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")

	s.InjectKey(KeyActivate, 0)
	s.InjectKey(KeyRight, 0)
	s.InjectKey(KeyActivate, 0)

	s.Update()
	if !m.State().Dragging {
		t.Fatal("first injected key should pick up")
	}
	s.Update()
	if got := m.State().Current.X; got != 30 {
		t.Errorf("Current.X = %v, want 30", got)
	}
	s.Update()
	if m.State().Dragging {
		t.Error("third injected key should drop")
	}
}

func TestKeyboardResyncsAfterExternalCancel(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyActivate, 0)

	// Someone else ends the drag out from under the sensor.
	m.CancelDrag()

	// The next activation press starts a fresh drag instead of dropping.
	s.press(KeyActivate, 0)
	if !m.State().Dragging {
		t.Error("sensor did not resync after an external cancel")
	}
}

func TestKeyboardYieldsDragTakenByAnother(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyActivate, 0)

	// Another sensor implicitly cancels this drag and starts its own.
	m.StartDrag(Item{ID: "other"}, nil, Position{X: 5, Y: 5})

	// Arrows and Escape from the former owner must leave it alone.
	s.press(KeyRight, 0)
	if got := m.State().Current; got != (Position{X: 5, Y: 5}) {
		t.Errorf("stale sensor moved the drag: Current = %v", got)
	}
	s.press(KeyCancel, 0)
	if st := m.State(); !st.Dragging || st.ActiveID != "other" {
		t.Errorf("stale sensor ended a drag it no longer owns: %+v", st)
	}
}

func TestKeyboardDeactivateAfterTakeover(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyActivate, 0)

	m.StartDrag(Item{ID: "other"}, nil, Position{X: 5, Y: 5})

	s.Deactivate()
	if st := m.State(); !st.Dragging || st.ActiveID != "other" {
		t.Errorf("Deactivate cancelled a drag the sensor no longer owns: %+v", st)
	}
}

func TestKeyboardDeactivate(t *testing.T) {
	m, s := newKeyboardRig()
	s.Focus("box")
	s.press(KeyActivate, 0)

	s.Deactivate()
	if m.State().Dragging {
		t.Fatal("Deactivate should cancel the drag it owns")
	}

	s.InjectKey(KeyActivate, 0)
	s.Update()
	if m.State().Dragging {
		t.Error("deactivated sensor still processing input")
	}
}
