package easing

// OutBounce drops towards 1 and bounces off it three times with decreasing
// height. Each bounce is a parabola with the same curvature n1; the thresholds
// 1/d1, 2/d1 and 2.5/d1 are where consecutive parabolas touch 1.
func OutBounce(x float64) float64 {
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	default:
		x -= 2.625 / d1
		return n1*x*x + 0.984375
	}
}

// InBounce is [OutBounce] reflected through (0.5, 0.5).
func InBounce(x float64) float64 {
	return 1 - OutBounce(1-x)
}

func InOutBounce(x float64) float64 {
	if x < 0.5 {
		return (1 - OutBounce(1-2*x)) / 2
	}
	return (1 + OutBounce(2*x-1)) / 2
}
