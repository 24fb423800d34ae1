// internal/system/visual_effect.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/utils"
	"image/color"
	"math"
)

// VisualEffectSystem owns particles and screen shake. It draws from its own
// random stream so cosmetics never shift gameplay rolls.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng utils.Rand
}

func NewVisualEffectSystem(ecs *entity.ECS, rng utils.Rand) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Update ages particles by one frame and decays the shake.
func (s *VisualEffectSystem) Update() {
	kept := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	s.ecs.Particles = kept

	if s.ecs.Shake > 0 {
		s.ecs.Shake *= config.ShakeDecay
		if s.ecs.Shake < config.ShakeThreshold {
			s.ecs.Shake = 0
		}
	}
}

// Burst spawns count particles flying outward from at.
func (s *VisualEffectSystem) Burst(at component.Position, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := utils.Range(s.rng, config.ParticleMinSpeed, config.ParticleSpeedVar)
		s.ecs.AddParticle(component.Particle{
			Position: at,
			Velocity: component.Velocity{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed},
			Size:     utils.Range(s.rng, config.ParticleMinSize, config.ParticleSizeVar),
			Life:     utils.Range(s.rng, config.ParticleMinLife, config.ParticleLifeVar),
			Color:    c,
		})
	}
}

// Shake sets the screen-shake magnitude.
func (s *VisualEffectSystem) Shake(magnitude float64) {
	s.ecs.Shake = magnitude
}
