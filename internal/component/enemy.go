// internal/component/enemy.go
package component

import (
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/types"
)

// Enemy represents a hostile that seeks the player.
type Enemy struct {
	ID types.EntityID
	Position
	Speed     float64
	Health    int
	MaxHealth int
	Type      defs.EnemyType
	Size      float64
}

// Alive reports whether the enemy still has health.
func (e Enemy) Alive() bool {
	return e.Health > 0
}
