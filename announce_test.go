package aspen

import (
	"strings"
	"testing"
)

func TestDefaultAnnouncements(t *testing.T) {
	a := newAnnouncer(Announcements{}, nil)
	item := Item{ID: "card"}

	a.start(item)
	if !strings.Contains(a.message, "card") || !strings.Contains(a.message, "Picked up") {
		t.Errorf("start message = %q", a.message)
	}

	a.over(item, "bin")
	if !strings.Contains(a.message, "card") || !strings.Contains(a.message, "bin") {
		t.Errorf("over message = %q", a.message)
	}

	a.over(item, "")
	if !strings.Contains(a.message, "no longer over") {
		t.Errorf("over-nothing message = %q", a.message)
	}

	a.end(item, &Target{ID: "bin"})
	if !strings.Contains(a.message, "dropped over droppable area bin") {
		t.Errorf("end message = %q", a.message)
	}

	a.end(item, nil)
	if !strings.Contains(a.message, "was dropped.") {
		t.Errorf("end-no-target message = %q", a.message)
	}

	a.cancel(item)
	if !strings.Contains(a.message, "cancelled") {
		t.Errorf("cancel message = %q", a.message)
	}
}

func TestAnnouncerOverridesAndOutput(t *testing.T) {
	var sink []string
	a := newAnnouncer(Announcements{
		OnDragStart: func(item Item) string { return "grabbed " + item.ID },
	}, func(msg string) { sink = append(sink, msg) })

	a.start(Item{ID: "x"})
	if a.message != "grabbed x" {
		t.Errorf("message = %q, want custom template output", a.message)
	}

	// Unset templates keep their defaults.
	a.cancel(Item{ID: "x"})
	if !strings.Contains(a.message, "cancelled") {
		t.Errorf("cancel fell back wrong: %q", a.message)
	}

	if len(sink) != 2 || sink[0] != "grabbed x" {
		t.Errorf("output sink = %v", sink)
	}
}

func TestAnnouncerHoldsOnlyCurrentMessage(t *testing.T) {
	a := newAnnouncer(Announcements{}, nil)
	a.start(Item{ID: "a"})
	first := a.message
	a.over(Item{ID: "a"}, "bin")
	if a.message == first {
		t.Error("message should have been overwritten")
	}
}
