package aspen

import "math"

// ModifierInput is what each modifier in the pipeline sees: the delta
// produced by the previous modifier (or the raw pointer delta for the
// first), the dragged item, the item's bounds at drag start, and the
// container bounds if the manager was configured with one.
type ModifierInput struct {
	Transform     Position
	Active        *Item
	ActiveRect    Rect
	ContainerRect Rect
}

// Modifier transforms a proposed drag delta. Modifiers are pure functions
// applied in array order; each sees only the already-transformed delta,
// not the raw one.
type Modifier func(ModifierInput) Position

// applyModifiers reduces the pipeline left-to-right starting from delta.
func applyModifiers(modifiers []Modifier, delta Position, active *Item, activeRect, containerRect Rect) Position {
	for _, m := range modifiers {
		delta = m(ModifierInput{
			Transform:     delta,
			Active:        active,
			ActiveRect:    activeRect,
			ContainerRect: containerRect,
		})
	}
	return delta
}

// RestrictToHorizontalAxis zeroes vertical movement.
func RestrictToHorizontalAxis(in ModifierInput) Position {
	return Position{X: in.Transform.X}
}

// RestrictToVerticalAxis zeroes horizontal movement.
func RestrictToVerticalAxis(in ModifierInput) Position {
	return Position{Y: in.Transform.Y}
}

// RestrictToRect returns a modifier that clamps the delta so the dragged
// item's virtual rectangle stays inside container. An item larger than the
// container pins to the container's top-left edge.
func RestrictToRect(container Rect) Modifier {
	return func(in ModifierInput) Position {
		d := in.Transform
		r := in.ActiveRect

		if r.X+d.X < container.X {
			d.X = container.X - r.X
		} else if r.Right()+d.X > container.Right() {
			d.X = container.Right() - r.Right()
		}
		if r.Y+d.Y < container.Y {
			d.Y = container.Y - r.Y
		} else if r.Bottom()+d.Y > container.Bottom() {
			d.Y = container.Bottom() - r.Bottom()
		}
		return d
	}
}

// RestrictToContainer clamps to the ContainerRect supplied by the manager
// at drag time. A zero-value container (no Container configured) leaves
// the delta unchanged.
func RestrictToContainer(in ModifierInput) Position {
	if in.ContainerRect == (Rect{}) {
		return in.Transform
	}
	return RestrictToRect(in.ContainerRect)(in)
}

// SnapToGrid returns a modifier that rounds the delta to multiples of size.
// A size of zero or less leaves the delta unchanged.
func SnapToGrid(size float64) Modifier {
	return func(in ModifierInput) Position {
		if size <= 0 {
			return in.Transform
		}
		return Position{
			X: math.Round(in.Transform.X/size) * size,
			Y: math.Round(in.Transform.Y/size) * size,
		}
	}
}
