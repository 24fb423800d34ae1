// internal/component/movement.go
package component

import "math"

// Position is a point in arena pixels.
type Position struct {
	X, Y float64
}

// Velocity is a per-tick displacement.
type Velocity struct {
	DX, DY float64
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
