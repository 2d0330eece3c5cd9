package easing

import "math"

// InBack pulls back below 0 before accelerating towards 1.
func InBack(x float64) float64 {
	return c3*x*x*x - c1*x*x
}

// OutBack overshoots 1 before settling.
func OutBack(x float64) float64 {
	return 1 + c3*math.Pow(x-1, 3) + c1*math.Pow(x-1, 2)
}

// InOutBack dips below 0 at the start and overshoots 1 at the end. It uses a
// larger overshoot constant than [InBack] and [OutBack] so that the halves
// keep a comparable amplitude.
func InOutBack(x float64) float64 {
	if x < 0.5 {
		return (math.Pow(2*x, 2) * ((c2+1)*2*x - c2)) / 2
	}
	return (math.Pow(2*x-2, 2)*((c2+1)*(x*2-2)+c2) + 2) / 2
}
