package easing

import "math"

// 2^(10x-10) is 2^-10, not 0, at x = 0, and 1-2^(-10x) is not 1 at x = 1.
// The exponential curves special-case their endpoints so that they start at
// exactly 0 and end at exactly 1.

func InExpo(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Pow(2, 10*x-10)
}

func OutExpo(x float64) float64 {
	if x == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*x)
}

func InOutExpo(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}
