package easing

import "math"

// Func is an easing curve. It maps progress x ∈ [0, 1] to eased progress.
type Func func(x float64) float64

const (
	c1 = 1.70158
	c2 = c1 * 1.525
	c3 = c1 + 1
	c4 = (2 * math.Pi) / 3
	c5 = (2 * math.Pi) / 4.5
	n1 = 7.5625
	d1 = 2.75
)

var _ Func = Linear

// Linear returns x unchanged.
//
// It is not one of the named curves, but serves as a natural fallback when a
// curve cannot be resolved.
func Linear(x float64) float64 {
	return x
}
