// internal/component/visual.go
package component

import (
	"go-zombie-arena/internal/types"
	"image/color"
)

// Particle is purely cosmetic feedback; it never affects gameplay.
type Particle struct {
	ID types.EntityID
	Position
	Velocity
	Size  float64
	Life  float64 // frames remaining
	Color color.RGBA
}
