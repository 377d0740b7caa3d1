package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimProp selects the view property an Animation drives.
type AnimProp uint8

const (
	AnimX        AnimProp = iota // horizontal position
	AnimY                        // vertical position
	AnimScaleX                   // horizontal scale factor
	AnimScaleY                   // vertical scale factor
	AnimRotation                 // rotation in radians
	AnimAlpha                    // opacity in [0, 1]
	AnimWidth                    // layout width
	AnimHeight                   // layout height
)

// Animation is the payload of an animation update message: a single-property
// tween the consumer drives by calling Update each frame and applying Value
// to the addressed view. The core never advances animations itself — it only
// carries them to the consumer.
//
// Animate one property per message; the mailbox's FIFO ordering keeps
// animations for the same view in the order they were requested.
type Animation struct {
	Prop   AnimProp
	Repeat bool // restart from the beginning when finished

	// Value is the current tweened value, written by Update.
	Value float64
	// Done is set once the tween finishes (never for Repeat animations).
	Done bool

	tween *gween.Tween
}

// NewAnimation creates an animation tweening prop from `from` to `to` over
// duration seconds using the given easing function.
func NewAnimation(prop AnimProp, from, to float64, duration float32, fn ease.TweenFunc) *Animation {
	return &Animation{
		Prop:  prop,
		Value: from,
		tween: gween.New(float32(from), float32(to), duration, fn),
	}
}

// Update advances the tween by dt seconds and returns the new value and
// whether the animation has finished. Calling Update after completion keeps
// returning the final value.
func (a *Animation) Update(dt float32) (float64, bool) {
	if a.Done {
		return a.Value, true
	}
	v, finished := a.tween.Update(dt)
	a.Value = float64(v)
	if finished {
		if a.Repeat {
			a.tween.Reset()
		} else {
			a.Done = true
		}
	}
	return a.Value, a.Done
}
