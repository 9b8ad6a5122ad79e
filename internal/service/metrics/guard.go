package metrics

import "math"

// ratio returns num/den, or 0 when den is not positive.
func ratio(num, den float64) float64 {
	if den > 0 {
		return finite(num / den)
	}
	return 0
}

// atLeastOne is max(1, v), used for count divisors.
func atLeastOne(v float64) float64 {
	return math.Max(1, v)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
