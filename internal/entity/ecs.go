// internal/entity/ecs.go
package entity

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/types"
	"time"
)

// IDAllocator hands out monotonically increasing ids for one entity kind.
// Ids are never reused within a session.
type IDAllocator struct {
	next types.EntityID
}

// Next returns a fresh id.
func (a *IDAllocator) Next() types.EntityID {
	a.next++
	return a.next
}

// Issued returns how many ids have been handed out.
func (a *IDAllocator) Issued() uint64 {
	return uint64(a.next)
}

// ECS owns every live entity of a session plus the world state the systems
// share. Collections are dense slices kept in spawn order, so iteration
// order is stable from tick to tick.
type ECS struct {
	Now  time.Duration // simulation clock, advanced by every host frame
	Tick uint64

	Player    *component.Player
	Enemies   []component.Enemy
	Bullets   []component.Bullet
	PowerUps  []component.PowerUp
	Particles []component.Particle

	Wave   *component.Wave
	Map    *defs.MapDefinition
	Score  int
	Shake  float64
	Paused bool

	enemyIDs    IDAllocator
	bulletIDs   IDAllocator
	powerUpIDs  IDAllocator
	particleIDs IDAllocator
}

// NewECS creates a store with the starting player on the first map.
func NewECS() *ECS {
	return &ECS{
		Player: &component.Player{
			Position:    component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
			Lives:       config.PlayerLives,
			Speed:       config.PlayerBaseSpeed,
			Weapon:      defs.WeaponPistol,
			WeaponAmmo:  defs.UnlimitedAmmo,
			SpeedBoosts: config.StartBoosts,
			Nukes:       config.StartNukes,
		},
		Wave: &component.Wave{Round: 1, Phase: component.PhaseSpawning},
		Map:  &defs.MapLibrary[0],
	}
}

// AddEnemy assigns e a fresh id and stores it.
func (ecs *ECS) AddEnemy(e component.Enemy) types.EntityID {
	e.ID = ecs.enemyIDs.Next()
	ecs.Enemies = append(ecs.Enemies, e)
	return e.ID
}

// AddBullet assigns b a fresh id and stores it.
func (ecs *ECS) AddBullet(b component.Bullet) types.EntityID {
	b.ID = ecs.bulletIDs.Next()
	ecs.Bullets = append(ecs.Bullets, b)
	return b.ID
}

// AddPowerUp assigns p a fresh id and stores it.
func (ecs *ECS) AddPowerUp(p component.PowerUp) types.EntityID {
	p.ID = ecs.powerUpIDs.Next()
	ecs.PowerUps = append(ecs.PowerUps, p)
	return p.ID
}

// AddParticle assigns p a fresh id and stores it.
func (ecs *ECS) AddParticle(p component.Particle) types.EntityID {
	p.ID = ecs.particleIDs.Next()
	ecs.Particles = append(ecs.Particles, p)
	return p.ID
}

// ClearEnemies removes every enemy and returns how many there were.
func (ecs *ECS) ClearEnemies() int {
	n := len(ecs.Enemies)
	ecs.Enemies = ecs.Enemies[:0]
	return n
}

// IssuedIDs reports how many entities of each kind the session has spawned.
func (ecs *ECS) IssuedIDs() (enemies, bullets, powerUps, particles uint64) {
	return ecs.enemyIDs.Issued(), ecs.bulletIDs.Issued(), ecs.powerUpIDs.Issued(), ecs.particleIDs.Issued()
}
