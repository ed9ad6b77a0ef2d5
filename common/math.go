package common

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	switch {
	case v > 0:
		v -= step
		if v < 0 {
			v = 0
		}
	case v < 0:
		v += step
		if v > 0 {
			v = 0
		}
	}
	return v
}
