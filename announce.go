package aspen

import "fmt"

// Announcements holds the template functions that produce a human-readable
// status string for each drag transition. Any nil field falls back to the
// default English template.
type Announcements struct {
	OnDragStart  func(item Item) string
	OnDragOver   func(item Item, overID string) string
	OnDragEnd    func(item Item, over *Target) string
	OnDragCancel func(item Item) string
}

// DefaultScreenReaderInstructions describes the keyboard interaction model.
// Presentation layers surface it alongside the live region.
const DefaultScreenReaderInstructions = "To pick up a draggable item, press space or enter. " +
	"While dragging, use the arrow keys to move the item. " +
	"Press space or enter again to drop the item, or press escape to cancel."

func defaultDragStart(item Item) string {
	return fmt.Sprintf("Picked up draggable item %s.", item.ID)
}

func defaultDragOver(item Item, overID string) string {
	if overID == "" {
		return fmt.Sprintf("Draggable item %s is no longer over a droppable area.", item.ID)
	}
	return fmt.Sprintf("Draggable item %s was moved over droppable area %s.", item.ID, overID)
}

func defaultDragEnd(item Item, over *Target) string {
	if over == nil {
		return fmt.Sprintf("Draggable item %s was dropped.", item.ID)
	}
	return fmt.Sprintf("Draggable item %s was dropped over droppable area %s.", item.ID, over.ID)
}

func defaultDragCancel(item Item) string {
	return fmt.Sprintf("Dragging was cancelled. Draggable item %s was dropped.", item.ID)
}

// announcer is the manager's live region: it holds exactly the current
// message, never a queue. Each transition overwrites the previous message
// and forwards it to the optional output sink (an ARIA live region bridge,
// a screen reader API, an on-screen status line).
type announcer struct {
	templates Announcements
	output    func(string)
	message   string
}

func newAnnouncer(templates Announcements, output func(string)) *announcer {
	if templates.OnDragStart == nil {
		templates.OnDragStart = defaultDragStart
	}
	if templates.OnDragOver == nil {
		templates.OnDragOver = defaultDragOver
	}
	if templates.OnDragEnd == nil {
		templates.OnDragEnd = defaultDragEnd
	}
	if templates.OnDragCancel == nil {
		templates.OnDragCancel = defaultDragCancel
	}
	return &announcer{templates: templates, output: output}
}

func (a *announcer) announce(msg string) {
	a.message = msg
	if a.output != nil {
		a.output(msg)
	}
}

func (a *announcer) start(item Item) { a.announce(a.templates.OnDragStart(item)) }

func (a *announcer) over(item Item, overID string) { a.announce(a.templates.OnDragOver(item, overID)) }

func (a *announcer) end(item Item, over *Target) { a.announce(a.templates.OnDragEnd(item, over)) }

func (a *announcer) cancel(item Item) { a.announce(a.templates.OnDragCancel(item)) }
