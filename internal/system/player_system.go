// internal/system/player_system.go
package system

import (
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"time"
)

// PlayerSystem handles the player's consumable actions that are not
// combat: the temporary speed boost.
type PlayerSystem struct {
	ecs             *entity.ECS
	scheduler       *Scheduler
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, scheduler *Scheduler, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, scheduler: scheduler, eventDispatcher: eventDispatcher}
}

// ActivateSpeedBoost spends one boost charge. Speed becomes 1.5x the base
// speed until the expiry timer fires; activating again while boosted
// restarts that timer. It reports whether a charge was spent.
func (s *PlayerSystem) ActivateSpeedBoost(now time.Duration) bool {
	player := s.ecs.Player
	if player.SpeedBoosts <= 0 {
		return false
	}
	player.SpeedBoosts--
	player.Speed = config.PlayerBaseSpeed * config.BoostMultiplier
	player.Boosted = true
	s.scheduler.Schedule(TimerBoostExpiry, now+config.BoostDuration, true)

	s.eventDispatcher.Dispatch(event.Event{Type: event.SpeedBoostActivated, Tick: s.ecs.Tick})
	return true
}

// ExpireSpeedBoost restores the base speed.
func (s *PlayerSystem) ExpireSpeedBoost() {
	player := s.ecs.Player
	player.Speed = config.PlayerBaseSpeed
	player.Boosted = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.SpeedBoostExpired, Tick: s.ecs.Tick})
}
