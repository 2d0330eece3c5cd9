package easing

import "math"

// The predefined timing functions of CSS.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

const (
	// bezierEpsilon is the accuracy with which the curve parameter is solved
	// for by bisection.
	bezierEpsilon = 1e-12
	// bezierResidual is the largest |Bx(t) - x| accepted from the closed form
	// solution.
	bezierResidual = 1e-14
	// bezierRootSlack is how far outside of [0, 1] a root of the closed form
	// solution may lie and still be accepted.
	bezierRootSlack = 1e-9
)

// cubicPoly is one coordinate of a cubic Bézier in power basis.
type cubicPoly struct {
	c0, c1, c2, c3 float64
}

func newCubicPoly(p0, p1, p2, p3 float64) cubicPoly {
	c0, c1, c2, c3 := cubicBezCoefficients(p0, p1, p2, p3)
	return cubicPoly{c0, c1, c2, c3}
}

func (p cubicPoly) eval(t float64) float64 {
	return p.c0 + t*(p.c1+t*(p.c2+t*p.c3))
}

// CubicBezier returns a timing function defined by the cubic Bézier from
// (0, 0) to (1, 1) with the control points (x1, y1) and (x2, y2), like CSS's
// cubic-bezier(x1, y1, x2, y2).
//
// x1 and x2 are clamped to [0, 1], which ensures that the curve is a function
// of x. y1 and y2 are unrestricted; values outside of [0, 1] produce
// overshoot. The returned function maps inputs outside of [0, 1] to the
// nearest endpoint.
//
// For a given x, the function finds the curve parameter t at which the curve's
// x coordinate equals x and returns the curve's y coordinate at t.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	x1 = min(max(x1, 0), 1)
	x2 = min(max(x2, 0), 1)
	if x1 == y1 && x2 == y2 {
		return Linear
	}
	bx := newCubicPoly(0, x1, x2, 1)
	by := newCubicPoly(0, y1, y2, 1)
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return by.eval(solveBezierX(bx, x))
	}
}

// solveBezierX returns the parameter t ∈ [0, 1] at which bx(t) = x. bx must
// be monotonic on [0, 1], with bx(0) = 0 and bx(1) = 1, and x ∈ (0, 1).
func solveBezierX(bx cubicPoly, x float64) float64 {
	roots, n := solveCubic(bx.c0-x, bx.c1, bx.c2, bx.c3)
	best := math.NaN()
	bestErr := math.Inf(1)
	for _, t := range roots[:n] {
		if t < -bezierRootSlack || t > 1+bezierRootSlack {
			continue
		}
		t = min(max(t, 0), 1)
		if err := math.Abs(bx.eval(t) - x); err < bestErr {
			best, bestErr = t, err
		}
	}
	if bestErr <= bezierResidual {
		return best
	}

	// The closed form solution is inaccurate near double roots, which occur
	// when the curve's x coordinate is stationary.
	f := func(t float64) float64 { return bx.eval(t) - x }
	return solveITP(f, 0, 1, bezierEpsilon, 1, 0.2, -x, 1-x)
}
