// internal/component/projectile.go
package component

import (
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/types"
)

// Bullet is a projectile fired by the player.
type Bullet struct {
	ID types.EntityID
	Position
	Velocity
	Speed  float64
	Damage int
	Weapon defs.WeaponType
}

// PowerUp is a stationary collectible dropped by a dying enemy.
type PowerUp struct {
	ID types.EntityID
	Position
	Type defs.PowerUpType
}
