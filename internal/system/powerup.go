// internal/system/powerup.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/utils"
)

// PowerUpSystem collects power-ups the player walks over.
type PowerUpSystem struct {
	ecs             *entity.ECS
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
}

func NewPowerUpSystem(ecs *entity.ECS, rng utils.Rand, eventDispatcher *event.Dispatcher) *PowerUpSystem {
	return &PowerUpSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

// Update applies and removes every power-up within pickup range. It returns
// how many were collected.
func (s *PowerUpSystem) Update() int {
	player := s.ecs.Player
	collected := 0
	kept := s.ecs.PowerUps[:0]
	for _, p := range s.ecs.PowerUps {
		if p.DistanceTo(player.Position) >= config.PickupRadius {
			kept = append(kept, p)
			continue
		}
		s.apply(p)
		collected++
	}
	s.ecs.PowerUps = kept
	return collected
}

func (s *PowerUpSystem) apply(p component.PowerUp) {
	player := s.ecs.Player
	pickup := event.Pickup{PowerUpID: p.ID, Type: p.Type}

	switch p.Type {
	case defs.PowerUpNuke:
		player.Nukes++
	case defs.PowerUpSpeedBoost:
		player.SpeedBoosts++
	case defs.PowerUpWeapon:
		weapon := defs.PickupWeapons[s.rng.Intn(len(defs.PickupWeapons))]
		player.Equip(weapon)
		pickup.Weapon = weapon
	case defs.PowerUpLife:
		if player.Lives < config.MaxLives {
			player.Lives++
		}
	case defs.PowerUpTreasure:
		s.ecs.Score += config.TreasureScore
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SoundRequested,
		Tick: s.ecs.Tick,
		Data: event.Sound{ID: defs.SoundPowerUp, Volume: 0.2},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PowerUpCollected,
		Tick: s.ecs.Tick,
		Data: pickup,
	})
}
