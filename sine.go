package easing

import "math"

func InSine(x float64) float64 {
	return 1 - math.Cos((math.Pi*x)/2)
}

func OutSine(x float64) float64 {
	return math.Sin((math.Pi * x) / 2)
}

func InOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}
