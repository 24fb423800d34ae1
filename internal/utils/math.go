// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Normalize returns the unit vector of (dx, dy). ok is false for a
// zero-length vector, in which case the caller must not move.
func Normalize(dx, dy float64) (nx, ny float64, ok bool) {
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return dx / dist, dy / dist, true
}

// NormalizeAngle normalizes an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
