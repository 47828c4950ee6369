package util

import "math"

// RoundPercent rounds a percentage to two decimal places.
func RoundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
