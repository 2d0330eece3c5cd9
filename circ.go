package easing

import "math"

// The circular curves are quarter circles. Outside of [0, 1] the argument to
// the square root may turn negative, in which case they return NaN.

func InCirc(x float64) float64 {
	return 1 - math.Sqrt(1-math.Pow(x, 2))
}

func OutCirc(x float64) float64 {
	return math.Sqrt(1 - math.Pow(x-1, 2))
}

func InOutCirc(x float64) float64 {
	if x < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*x, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*x+2, 2)) + 1) / 2
}
