package aspen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DropAnimation eases a visual offset between two positions after a drag
// concludes: from the final delta back to zero for a cancelled or missed
// drop, or toward the target's origin for a successful one. Call
// Update(dt) each frame and apply Offset to the dragged item's visual
// transform until Done.
//
// The manager does not depend on this type; it is a presentation helper.
// There is no global animation manager; callers drive Update themselves.
type DropAnimation struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	Offset Position
	Done   bool
}

// NewDropAnimation creates an animation of Offset from from to to over
// duration seconds using the easing function.
func NewDropAnimation(from, to Position, duration float32, fn ease.TweenFunc) *DropAnimation {
	return &DropAnimation{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, fn),
		Offset: from,
	}
}

// NewDropReturn creates the common cancel animation: Offset eases from
// the drag's final delta back to zero.
func NewDropReturn(delta Position, duration float32, fn ease.TweenFunc) *DropAnimation {
	return NewDropAnimation(delta, Position{}, duration, fn)
}

// Update advances the animation by dt seconds and writes the current
// value to Offset. Done is set once both axes finish.
func (a *DropAnimation) Update(dt float32) {
	if a.Done {
		return
	}
	x, doneX := a.tweenX.Update(dt)
	y, doneY := a.tweenY.Update(dt)
	a.Offset = Position{X: float64(x), Y: float64(y)}
	a.Done = doneX && doneY
}
