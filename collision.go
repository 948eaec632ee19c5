package aspen

// CollisionDetection selects at most one drop target for a drag tick.
// It receives the dragged item's virtual rectangle (the original bounds
// offset by the post-modifier delta) and a snapshot of every registered
// target, and returns the id of the best match, or false if nothing
// matches. Strategies must not mutate the targets slice.
type CollisionDetection func(virtual Rect, targets []Target) (string, bool)

// RectIntersection is the default collision strategy: the target with the
// greatest overlap area wins. Targets with zero overlap never match. When
// the virtual rectangle has no area (a point drag with no measured node),
// it falls back to point containment, first registered target wins.
func RectIntersection(virtual Rect, targets []Target) (string, bool) {
	if virtual.Width == 0 && virtual.Height == 0 {
		for _, t := range targets {
			if t.Rect.Contains(virtual.X, virtual.Y) {
				return t.ID, true
			}
		}
		return "", false
	}

	var bestID string
	var bestArea float64
	for _, t := range targets {
		area := IntersectionArea(virtual, t.Rect)
		if area > bestArea {
			bestArea = area
			bestID = t.ID
		}
	}
	if bestArea == 0 {
		return "", false
	}
	return bestID, true
}

// CenterWithin matches the target whose rectangle contains the virtual
// rectangle's center point. With overlapping targets the first registered
// one wins.
func CenterWithin(virtual Rect, targets []Target) (string, bool) {
	c := virtual.Center()
	for _, t := range targets {
		if t.Rect.Contains(c.X, c.Y) {
			return t.ID, true
		}
	}
	return "", false
}

// ClosestCenter matches the target whose center is nearest the virtual
// rectangle's center. Unlike RectIntersection it always matches when any
// target is registered, which suits sortable-list interactions where the
// item should never be "over nothing".
func ClosestCenter(virtual Rect, targets []Target) (string, bool) {
	if len(targets) == 0 {
		return "", false
	}
	c := virtual.Center()
	bestID := targets[0].ID
	bestDist := c.Distance(targets[0].Rect.Center())
	for _, t := range targets[1:] {
		if d := c.Distance(t.Rect.Center()); d < bestDist {
			bestDist = d
			bestID = t.ID
		}
	}
	return bestID, true
}
