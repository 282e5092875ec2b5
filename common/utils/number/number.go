package number

// Clamp limits value to the range [min, max].
func Clamp(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Abs avoids a math.Abs call for plain float64 arithmetic in hot loops.
func Abs(value float64) float64 {
	if value < 0 {
		return -value
	}

	return value
}
