package utils

import "math"

// Round2 rounds to two decimals, half away from zero. Commission amounts are
// rounded exactly once, after the full total is multiplied by the rate.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
