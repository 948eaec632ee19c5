package aspen

// DragContext carries the data shared by drag callbacks: the dragged item,
// the raw pointer position, the post-modifier delta, and the id of the
// droppable currently under the item (empty when none).
type DragContext struct {
	Item     Item
	Position Position
	Delta    Position
	OverID   string
}

// EndContext is the payload for OnDragEnd. Over is the resolved drop
// target, or nil when the item was dropped outside every droppable.
type EndContext struct {
	Item  Item
	Over  *Target
	Delta Position
}

// SensorFactory constructs a sensor bound to a manager. Factories rather
// than ready-made sensors let Config stay independent of the manager it
// will configure.
type SensorFactory func(*Manager) Sensor

// Config configures a Manager. All fields are optional: the zero value
// yields the default pointer/touch/keyboard sensors, RectIntersection
// collision, an empty modifier pipeline, and the default English
// announcements.
type Config struct {
	Sensors            []SensorFactory
	CollisionDetection CollisionDetection
	Modifiers          []Modifier

	// Container, when set, is measured at every drag tick and passed to
	// modifiers as ModifierInput.ContainerRect.
	Container Bounder

	Announcements            Announcements
	ScreenReaderInstructions string
	// AnnouncementOutput receives every announcement message as it is
	// written to the live region.
	AnnouncementOutput func(string)

	OnDragStart  func(DragContext)
	OnDragMove   func(DragContext)
	OnDragOver   func(DragContext)
	OnDragEnd    func(EndContext)
	OnDragCancel func(DragContext)
}

// Source pairs a draggable item with the node that represents it on
// screen. Sensors hit-test input positions against source bounds.
type Source struct {
	Item Item
	Node Bounder
}

type stateListener struct {
	id uint32
	fn func(State)
}

// Subscription allows removing a state-change listener.
type Subscription struct {
	id uint32
	m  *Manager
}

// Remove unregisters the listener so it no longer fires.
func (s Subscription) Remove() {
	if s.m == nil {
		return
	}
	for i := range s.m.listeners {
		if s.m.listeners[i].id == s.id {
			copy(s.m.listeners[i:], s.m.listeners[i+1:])
			s.m.listeners[len(s.m.listeners)-1] = stateListener{}
			s.m.listeners = s.m.listeners[:len(s.m.listeners)-1]
			return
		}
	}
}

// Manager is the drag-and-drop coordinator. It owns the canonical drag
// state, the droppable and draggable registries, and the sensor set, and
// it orchestrates sensors, modifiers, collision detection, and the
// announcer for every drag. A Manager tracks at most one drag at a time;
// independent drag surfaces need independent managers, each with its own
// isolated state and registries.
//
// All mutation is synchronous: verbs run to completion before the next
// input event is processed, so a state-change listener always observes
// fully reconciled state.
type Manager struct {
	collision    CollisionDetection
	modifiers    []Modifier
	container    Bounder
	announcer    *announcer
	instructions string
	sensors      []Sensor

	onDragStart  func(DragContext)
	onDragMove   func(DragContext)
	onDragOver   func(DragContext)
	onDragEnd    func(EndContext)
	onDragCancel func(DragContext)

	droppables droppableRegistry
	sources    []Source

	state      State
	activeItem Item
	activeRect Rect

	listeners      []stateListener
	nextListenerID uint32
	targetBuf      []Target
}

// NewManager creates a manager from cfg, filling unset fields with the
// defaults described on Config.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		collision:    cfg.CollisionDetection,
		modifiers:    cfg.Modifiers,
		container:    cfg.Container,
		announcer:    newAnnouncer(cfg.Announcements, cfg.AnnouncementOutput),
		instructions: cfg.ScreenReaderInstructions,
		onDragStart:  cfg.OnDragStart,
		onDragMove:   cfg.OnDragMove,
		onDragOver:   cfg.OnDragOver,
		onDragEnd:    cfg.OnDragEnd,
		onDragCancel: cfg.OnDragCancel,
	}
	if m.collision == nil {
		m.collision = RectIntersection
	}
	if m.instructions == "" {
		m.instructions = DefaultScreenReaderInstructions
	}
	factories := cfg.Sensors
	if factories == nil {
		factories = DefaultSensors()
	}
	for _, f := range factories {
		m.sensors = append(m.sensors, f(m))
	}
	return m
}

// Update polls every sensor once. Call it from the game loop each frame.
func (m *Manager) Update() {
	for _, s := range m.sensors {
		s.Update()
	}
}

// Sensors returns the manager's sensors in configuration order.
func (m *Manager) Sensors() []Sensor {
	return m.sensors
}

// Deactivate tears down every sensor. A drag in progress is cancelled.
func (m *Manager) Deactivate() {
	for _, s := range m.sensors {
		s.Deactivate()
	}
	m.CancelDrag()
}

// State returns a snapshot of the current drag state.
func (m *Manager) State() State {
	return m.state
}

// Announcement returns the live region's current message.
func (m *Manager) Announcement() string {
	return m.announcer.message
}

// ScreenReaderInstructions returns the configured usage instructions.
func (m *Manager) ScreenReaderInstructions() string {
	return m.instructions
}

// Subscribe registers a listener invoked with the full drag state after
// every mutation.
func (m *Manager) Subscribe(fn func(State)) Subscription {
	m.nextListenerID++
	id := m.nextListenerID
	m.listeners = append(m.listeners, stateListener{id: id, fn: fn})
	return Subscription{id: id, m: m}
}

func (m *Manager) notify() {
	// Listeners may unsubscribe (themselves or others) during dispatch,
	// which shifts and zeroes entries in m.listeners. Iterate a snapshot
	// so removal never moves an entry under the loop.
	snapshot := append([]stateListener(nil), m.listeners...)
	for _, l := range snapshot {
		if l.fn != nil {
			l.fn(m.state)
		}
	}
}

// --- Registration surface ---

// RegisterDroppable adds (or replaces) a drop target, capturing the node's
// current bounding rectangle immediately.
func (m *Manager) RegisterDroppable(id string, node Bounder, data any) {
	m.droppables.register(id, node, data)
}

// UnregisterDroppable removes a drop target immediately.
func (m *Manager) UnregisterDroppable(id string) {
	m.droppables.unregister(id)
}

// RefreshDroppables re-measures every registered droppable. The manager
// refreshes on every drag tick by itself; call this when layout shifts
// outside a drag (scroll, resize).
func (m *Manager) RefreshDroppables() {
	m.droppables.refresh()
}

// RegisterDraggable adds (or replaces) a drag source for sensors to
// hit-test against.
func (m *Manager) RegisterDraggable(item Item, node Bounder) {
	for i := range m.sources {
		if m.sources[i].Item.ID == item.ID {
			m.sources[i] = Source{Item: item, Node: node}
			return
		}
	}
	m.sources = append(m.sources, Source{Item: item, Node: node})
}

// UnregisterDraggable removes a drag source.
func (m *Manager) UnregisterDraggable(id string) {
	for i := range m.sources {
		if m.sources[i].Item.ID == id {
			copy(m.sources[i:], m.sources[i+1:])
			m.sources[len(m.sources)-1] = Source{}
			m.sources = m.sources[:len(m.sources)-1]
			return
		}
	}
}

// SourceAt returns the topmost drag source whose bounds contain pos.
// Later registrations win, mirroring paint order.
func (m *Manager) SourceAt(pos Position) (Source, bool) {
	for i := len(m.sources) - 1; i >= 0; i-- {
		if m.sources[i].Node != nil && m.sources[i].Node.Bounds().Contains(pos.X, pos.Y) {
			return m.sources[i], true
		}
	}
	return Source{}, false
}

// SourceByID returns the drag source registered under id.
func (m *Manager) SourceByID(id string) (Source, bool) {
	for i := range m.sources {
		if m.sources[i].Item.ID == id {
			return m.sources[i], true
		}
	}
	return Source{}, false
}

// --- Imperative drive surface ---

// StartDrag begins a drag of item anchored at pos. node supplies the
// item's bounding rectangle for collision testing; a nil node degrades to
// a point-sized rectangle at pos. If a drag is already in progress it is
// implicitly cancelled first, exactly as if CancelDrag had been called.
func (m *Manager) StartDrag(item Item, node Bounder, pos Position) {
	if m.state.Dragging {
		m.CancelDrag()
	}

	m.activeItem = item
	if node != nil {
		m.activeRect = node.Bounds()
	} else {
		m.activeRect = Rect{X: pos.X, Y: pos.Y}
	}

	// Active points at a per-drag copy so snapshots handed to listeners
	// stay valid after the drag concludes.
	active := item
	m.state = State{
		Dragging: true,
		ActiveID: item.ID,
		Active:   &active,
		Initial:  pos,
		Current:  pos,
	}

	m.announcer.start(item)
	if m.onDragStart != nil {
		m.onDragStart(DragContext{Item: item, Position: pos})
	}
	m.notify()
}

// UpdateDrag advances the drag to pos. The raw delta from the initial
// position runs through the modifier pipeline, droppable rectangles are
// refreshed, and collision detection runs against the item's virtual
// rectangle. OnDragOver fires only when the best-match target changes;
// OnDragMove fires every tick. No-op while idle.
func (m *Manager) UpdateDrag(pos Position) {
	if !m.state.Dragging {
		return
	}

	raw := pos.Sub(m.state.Initial)
	var containerRect Rect
	if m.container != nil {
		containerRect = m.container.Bounds()
	}
	delta := applyModifiers(m.modifiers, raw, &m.activeItem, m.activeRect, containerRect)

	// Layout may have shifted since the last tick.
	m.droppables.refresh()
	m.targetBuf = m.droppables.targets(m.targetBuf[:0])

	virtual := m.activeRect.Translate(delta)
	overID, ok := m.collision(virtual, m.targetBuf)
	if !ok {
		overID = ""
	}

	ctx := DragContext{Item: m.activeItem, Position: pos, Delta: delta, OverID: overID}
	if overID != m.state.OverID {
		m.announcer.over(m.activeItem, overID)
		if m.onDragOver != nil {
			m.onDragOver(ctx)
		}
	}
	if m.onDragMove != nil {
		m.onDragMove(ctx)
	}

	m.state.Current = pos
	m.state.Delta = delta
	m.state.OverID = overID
	m.notify()
}

// EndDrag completes the drag as a drop. The final OverID is resolved
// against the registry at this moment; a target unregistered mid-drag
// counts as no target. No-op while idle.
func (m *Manager) EndDrag() {
	if !m.state.Dragging {
		return
	}

	var over *Target
	if m.state.OverID != "" {
		if t, ok := m.droppables.lookup(m.state.OverID); ok {
			over = &t
		}
	}

	item := m.activeItem
	delta := m.state.Delta
	m.announcer.end(item, over)
	m.reset()
	if m.onDragEnd != nil {
		m.onDragEnd(EndContext{Item: item, Over: over, Delta: delta})
	}
	m.notify()
}

// CancelDrag aborts the drag, leaving the manager in the same idle state
// as a completed drop but firing OnDragCancel instead of OnDragEnd.
// No-op while idle.
func (m *Manager) CancelDrag() {
	if !m.state.Dragging {
		return
	}

	item := m.activeItem
	ctx := DragContext{Item: item, Position: m.state.Current, Delta: m.state.Delta}
	m.announcer.cancel(item)
	m.reset()
	if m.onDragCancel != nil {
		m.onDragCancel(ctx)
	}
	m.notify()
}

// reset returns the drag state to the idle shape. No dangling references
// survive a drag: the active item and rect are both cleared.
func (m *Manager) reset() {
	m.state = State{}
	m.activeItem = Item{}
	m.activeRect = Rect{}
}
