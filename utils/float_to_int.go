package utils

import "math"

// Float64ToInt16 clamps x to [-1,1] and scales it to the signed 16-bit
// sample range.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(math.Round(x * 32767.0))
}
