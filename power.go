package easing

import "math"

// The polynomial families. The In variants are x raised to the family's
// degree, the Out variants are the In variants reflected through (0.5, 0.5),
// and the InOut variants join a scaled In half with a scaled Out half at
// x = 0.5.

func InQuad(x float64) float64 {
	return x * x
}

func OutQuad(x float64) float64 {
	return 1 - (1-x)*(1-x)
}

func InOutQuad(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	return 1 - math.Pow(-2*x+2, 2)/2
}

func InCubic(x float64) float64 {
	return x * x * x
}

func OutCubic(x float64) float64 {
	return 1 - math.Pow(1-x, 3)
}

func InOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

func InQuart(x float64) float64 {
	return x * x * x * x
}

func OutQuart(x float64) float64 {
	return 1 - math.Pow(1-x, 4)
}

func InOutQuart(x float64) float64 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 4)/2
}

func InQuint(x float64) float64 {
	return x * x * x * x * x
}

func OutQuint(x float64) float64 {
	return 1 - math.Pow(1-x, 5)
}

func InOutQuint(x float64) float64 {
	if x < 0.5 {
		return 16 * x * x * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 5)/2
}
