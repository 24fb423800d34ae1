// internal/system/projectile.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/entity"
)

// ProjectileSystem advances bullets and drops the ones that left the arena.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	kept := s.ecs.Bullets[:0]
	for _, b := range s.ecs.Bullets {
		b.X += b.DX
		b.Y += b.DY
		if InArena(b.Position) {
			kept = append(kept, b)
		}
	}
	s.ecs.Bullets = kept
}

// InArena reports whether a bullet at p is inside the arena plus margin.
// The bounds are inclusive.
func InArena(p component.Position) bool {
	return p.X >= -config.BulletMargin && p.X <= config.ScreenWidth+config.BulletMargin &&
		p.Y >= -config.BulletMargin && p.Y <= config.ScreenHeight+config.BulletMargin
}
