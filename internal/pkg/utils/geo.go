package utils

import "math"

// NormalizeDegrees приводит угол к диапазону [0, 360)
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -tiny + 360 rounds to 360
	if d >= 360 {
		d = 0
	}
	return d
}
