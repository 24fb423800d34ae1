// internal/system/weapon.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/input"
	"go-zombie-arena/internal/utils"
	"math"
	"time"
)

// ShotVolume is the playback volume for weapon cues.
const ShotVolume = 0.1

// WeaponSystem turns a held trigger into bullets.
type WeaponSystem struct {
	ecs             *entity.ECS
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
	lastShot        time.Duration
	hasShot         bool
}

func NewWeaponSystem(ecs *entity.ECS, rng utils.Rand, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

// Update fires the current weapon if the trigger is held and the fire-rate
// gate is open. It returns the number of bullets spawned.
func (s *WeaponSystem) Update(now time.Duration, in input.State) int {
	if !in.PointerHeld {
		return 0
	}
	player := s.ecs.Player
	weapon := defs.Weapon(player.Weapon)
	if s.hasShot && now-s.lastShot < weapon.FireRate {
		return 0
	}

	// An empty non-pistol weapon falls back to the pistol and loses this shot.
	if player.Weapon != defs.WeaponPistol && player.WeaponAmmo <= 0 {
		player.EquipPistol()
		return 0
	}

	s.lastShot = now
	s.hasShot = true

	dx := in.PointerX - player.X
	dy := in.PointerY - player.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	aim := math.Atan2(dy, dx)

	for i := 0; i < weapon.Pellets; i++ {
		angle := aim
		if weapon.Spread > 0 {
			angle += (s.rng.Float64() - 0.5) * 2 * weapon.Spread
		}
		s.ecs.AddBullet(component.Bullet{
			Position: player.Position,
			Velocity: component.Velocity{
				DX: math.Cos(angle) * config.BulletSpeed,
				DY: math.Sin(angle) * config.BulletSpeed,
			},
			Speed:  config.BulletSpeed,
			Damage: weapon.Damage,
			Weapon: weapon.Type,
		})
	}

	if !weapon.Unlimited() {
		player.WeaponAmmo--
		if player.WeaponAmmo <= 0 {
			player.EquipPistol()
		}
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SoundRequested,
		Tick: s.ecs.Tick,
		Data: event.Sound{ID: weapon.Sound, Volume: ShotVolume},
	})
	return weapon.Pellets
}
