// Package steering holds the stateless angle helpers used to turn birds
// smoothly instead of snapping them to a new heading.
package steering

import "math"

// NormalizeDegrees maps any angle (even negative ones) into [0, 360).
func NormalizeDegrees(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod(-1e-18, 360) + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}

// WeightedMeanAngle moves the heading x towards y by (1 - xWeight) of the
// arc between them, always along the shorter side of the circle.
//
//	WeightedMeanAngle(x, y, 1) == x
//	WeightedMeanAngle(x, y, 0) == y
//
// The result is in [0, 360).
func WeightedMeanAngle(x, y, xWeight float64) float64 {
	delta := NormalizeDegrees(y - x)
	var moved float64
	if delta < 180 {
		moved = delta * (1 - xWeight)
	} else {
		// go backwards: the target sits at delta-360 from x
		moved = 360*xWeight + delta*(1-xWeight)
	}
	return NormalizeDegrees(moved + x)
}

// AngleDelta returns the absolute size of the shorter arc between two
// headings, in [0, 180].
func AngleDelta(a, b float64) float64 {
	d := NormalizeDegrees(b - a)
	if d > 180 {
		d = 360 - d
	}
	return d
}
