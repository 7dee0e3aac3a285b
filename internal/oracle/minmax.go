package oracle

import "math"

// orderedMin and orderedMax select between two non-NaN values with the
// signed-zero tie-breaks the lane instructions require: min(+0,-0) is -0
// and max(+0,-0) is +0, in either operand order. The standard library's
// math.Min/Max do not make that guarantee for all inputs, so the selection
// is spelled out.

func orderedMin(x, y float64) float64 {
	switch {
	case math.IsInf(x, -1) || math.IsInf(y, -1):
		return math.Inf(-1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

func orderedMax(x, y float64) float64 {
	switch {
	case math.IsInf(x, 1) || math.IsInf(y, 1):
		return math.Inf(1)
	case x == 0 && x == y:
		if math.Signbit(x) {
			return y
		}
		return x
	}
	if x > y {
		return x
	}
	return y
}
