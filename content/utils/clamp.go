package utils

// Clamp limits v to [min, max]. When min > max, min wins.
func Clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
