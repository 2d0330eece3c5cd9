package easing

import "math"

// InElastic oscillates around 0 with growing amplitude before snapping to 1.
func InElastic(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*c4)
	}
}

// OutElastic overshoots 1 and oscillates around it with decaying amplitude.
func OutElastic(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*c4) + 1
	}
}

func InOutElastic(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*c5)) / 2
	default:
		return (math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*c5))/2 + 1
	}
}
