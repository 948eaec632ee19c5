package aspen

import "testing"

// stubNode is a Bounder with a settable rect, standing in for a live
// on-screen node whose layout can shift mid-drag.
type stubNode struct {
	rect Rect
}

func (n *stubNode) Bounds() Rect { return n.rect }

func TestRegistryRegisterSnapshotsBounds(t *testing.T) {
	var r droppableRegistry
	node := &stubNode{rect: Rect{0, 0, 100, 100}}
	r.register("bin", node, nil)

	// Registration snapshots the rect; later node movement is invisible
	// until a refresh.
	node.rect = Rect{500, 500, 100, 100}
	got, ok := r.lookup("bin")
	if !ok {
		t.Fatal("lookup failed after register")
	}
	if got.Rect != (Rect{0, 0, 100, 100}) {
		t.Errorf("rect = %v, want registration-time snapshot", got.Rect)
	}

	r.refresh()
	got, _ = r.lookup("bin")
	if got.Rect != (Rect{500, 500, 100, 100}) {
		t.Errorf("rect after refresh = %v, want {500 500 100 100}", got.Rect)
	}
}

func TestRegistryReRegisterPreservesOrder(t *testing.T) {
	var r droppableRegistry
	r.register("a", &stubNode{rect: Rect{0, 0, 10, 10}}, nil)
	r.register("b", &stubNode{rect: Rect{20, 0, 10, 10}}, nil)
	r.register("a", &stubNode{rect: Rect{40, 0, 10, 10}}, "updated")

	targets := r.targets(nil)
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	if targets[0].ID != "a" || targets[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", targets[0].ID, targets[1].ID)
	}
	if targets[0].Data != "updated" || targets[0].Rect.X != 40 {
		t.Errorf("re-register did not update entry: %+v", targets[0])
	}
}

func TestRegistryUnregister(t *testing.T) {
	var r droppableRegistry
	r.register("a", &stubNode{}, nil)
	r.register("b", &stubNode{}, nil)
	r.register("c", &stubNode{}, nil)

	r.unregister("b")

	if _, ok := r.lookup("b"); ok {
		t.Error("b should be gone immediately after unregister")
	}
	targets := r.targets(nil)
	if len(targets) != 2 || targets[0].ID != "a" || targets[1].ID != "c" {
		t.Errorf("targets after unregister = %+v", targets)
	}

	// Unregistering an unknown id is harmless.
	r.unregister("nope")
	if len(r.targets(nil)) != 2 {
		t.Error("unregistering unknown id changed the registry")
	}
}

func TestRegistryDataIsOpaque(t *testing.T) {
	var r droppableRegistry
	type meta struct{ accepts string }
	r.register("bin", &stubNode{}, meta{accepts: "card"})

	got, _ := r.lookup("bin")
	if m, ok := got.Data.(meta); !ok || m.accepts != "card" {
		t.Errorf("data round-trip failed: %+v", got.Data)
	}
}
