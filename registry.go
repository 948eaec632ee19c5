package aspen

// Target is one registered droppable's current geometry and metadata.
// Rect is a snapshot owned by the registry; it is refreshed on demand
// (scroll, resize, and on every drag tick) because layout can shift
// mid-drag. Collision strategies read targets but never mutate them.
type Target struct {
	ID   string
	Rect Rect
	Data any
}

// droppable is the registry's internal entry: the live node plus the last
// measured rect.
type droppable struct {
	id   string
	node Bounder
	data any
	rect Rect
}

// droppableRegistry is an insertion-ordered store of candidate drop targets.
// Order is stable so collision ties resolve deterministically.
type droppableRegistry struct {
	entries []droppable
}

// register adds or replaces the entry for id, snapshotting the node's
// current bounds immediately. Re-registering an existing id updates the
// node and data in place, preserving registration order.
func (r *droppableRegistry) register(id string, node Bounder, data any) {
	entry := droppable{id: id, node: node, data: data, rect: node.Bounds()}
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries[i] = entry
			return
		}
	}
	r.entries = append(r.entries, entry)
}

// unregister removes the entry for id immediately. Collision detection
// never sees stale entries for targets that have announced their removal.
func (r *droppableRegistry) unregister(id string) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = droppable{}
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

// refresh re-measures every registered node.
func (r *droppableRegistry) refresh() {
	for i := range r.entries {
		r.entries[i].rect = r.entries[i].node.Bounds()
	}
}

// targets appends a snapshot of all entries to buf and returns it.
// The returned slice is safe to hand to a collision strategy.
func (r *droppableRegistry) targets(buf []Target) []Target {
	for i := range r.entries {
		e := &r.entries[i]
		buf = append(buf, Target{ID: e.id, Rect: e.rect, Data: e.data})
	}
	return buf
}

// lookup returns the current Target for id, or false if it was never
// registered or has been removed.
func (r *droppableRegistry) lookup(id string) (Target, bool) {
	for i := range r.entries {
		e := &r.entries[i]
		if e.id == id {
			return Target{ID: e.id, Rect: e.rect, Data: e.data}, true
		}
	}
	return Target{}, false
}
