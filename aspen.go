package aspen

import "math"

// Position is a 2D point in screen coordinates. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Position struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from o to p.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the Euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle snapshot. X/Y are the left/top edges;
// Right and Bottom are derived. A Rect is a measurement taken at a point in
// time and is never assumed current beyond that snapshot.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Translate returns r offset by d.
func (r Rect) Translate(d Position) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// IntersectionArea returns the overlapping area of a and b, or 0 if they
// do not overlap. Rectangles touching only at an edge have area 0.
func IntersectionArea(a, b Rect) float64 {
	w := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	h := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Bounder reports a live axis-aligned bounding box for an on-screen entity.
// Game nodes, UI widgets, and test stubs all satisfy it. Bounds is re-read
// whenever the engine needs fresh geometry, so implementations should return
// their current position, not a cached one.
type Bounder interface {
	Bounds() Rect
}

// Item is the payload being dragged. ID must be unique among currently
// draggable items. Data is opaque and passed through to callbacks unmodified.
type Item struct {
	ID   string
	Type string
	Data any
}

// State is the canonical drag state, broadcast to subscribers after every
// mutation. Dragging is true iff ActiveID is non-empty iff Active is non-nil.
// OverID may be empty while dragging (no current collision). Delta is the
// post-modifier offset from Initial and is zero exactly when not dragging
// or at drag start.
type State struct {
	Dragging bool
	ActiveID string
	Active   *Item
	OverID   string
	Initial  Position
	Current  Position
	Delta    Position
}

// Key identifies a keyboard input relevant to drag interactions.
// Sensors map backend key codes onto these values.
type Key uint8

const (
	KeyActivate Key = iota // Space or Enter: start or end a keyboard drag
	KeyCancel              // Escape: cancel the drag in progress
	KeyUp                  // arrow up
	KeyDown                // arrow down
	KeyLeft                // arrow left
	KeyRight               // arrow right
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
