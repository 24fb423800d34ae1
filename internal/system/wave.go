// internal/system/wave.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/utils"
	"time"
)

// WaveSystem is the round state machine:
//
//	Spawning -> Active -> Cleared -> {ExitSelection | AutoAdvance} -> Spawning
//
// with GameOver reachable from any phase and never left.
type WaveSystem struct {
	ecs             *entity.ECS
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
	scheduler       *Scheduler
	exits           []defs.Exit
}

func NewWaveSystem(ecs *entity.ECS, rng utils.Rand, eventDispatcher *event.Dispatcher, scheduler *Scheduler) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		exits:           defs.ExitPortals(config.ScreenWidth, config.ScreenHeight, config.ExitSize),
	}
}

// Update checks for round completion and, during exit selection, for the
// player entering a portal. It runs after combat so a kill that completes
// the round is seen in the same tick.
func (s *WaveSystem) Update(now time.Duration) {
	wave := s.ecs.Wave
	switch wave.Phase {
	case component.PhaseActive:
		if len(s.ecs.Enemies) == 0 && wave.Killed >= wave.Target {
			s.clearRound(now)
		}
	case component.PhaseExitSelection:
		s.checkExits()
	}
}

// StartRound spawns the current round's enemies and enters Active.
func (s *WaveSystem) StartRound() {
	wave := s.ecs.Wave
	wave.Phase = component.PhaseSpawning

	count := defs.EnemyCountForRound(wave.Round)
	for i := 0; i < count; i++ {
		s.spawnEnemy(wave.Round, i)
	}
	wave.Target = count
	wave.Killed = 0
	wave.Phase = component.PhaseActive

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundStarted,
		Tick: s.ecs.Tick,
		Data: event.Round{Round: wave.Round, Enemies: count},
	})
}

// Advance is the round-advance timer's callback.
func (s *WaveSystem) Advance() {
	wave := s.ecs.Wave
	if wave.Phase != component.PhaseCleared {
		return
	}
	wave.Phase = component.PhaseAutoAdvance
	wave.Round++
	s.StartRound()
}

// EnterGameOver makes the terminal transition and schedules the return to
// the menu. Other pending timers are dropped.
func (s *WaveSystem) EnterGameOver(now time.Duration) {
	wave := s.ecs.Wave
	if wave.Phase == component.PhaseGameOver {
		return
	}
	wave.Phase = component.PhaseGameOver
	s.scheduler.CancelAllExcept(TimerReturnToMenu)
	s.scheduler.Schedule(TimerReturnToMenu, now+config.GameOverDelay, true)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Tick: s.ecs.Tick,
		Data: event.Final{Score: s.ecs.Score, Round: wave.Round},
	})
}

// Exits returns the portals while they are open, nil otherwise.
func (s *WaveSystem) Exits() []defs.Exit {
	if s.ecs.Wave.Phase != component.PhaseExitSelection {
		return nil
	}
	return s.exits
}

func (s *WaveSystem) clearRound(now time.Duration) {
	wave := s.ecs.Wave
	wave.Phase = component.PhaseCleared
	exits := defs.IsExitRound(wave.Round)

	if exits {
		wave.Phase = component.PhaseExitSelection
	} else {
		s.scheduler.Schedule(TimerRoundAdvance, now+config.RoundDelay, true)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundCleared,
		Tick: s.ecs.Tick,
		Data: event.Round{Round: wave.Round, Enemies: wave.Target, Exits: exits},
	})
}

func (s *WaveSystem) checkExits() {
	player := s.ecs.Player
	for _, exit := range s.exits {
		if !exit.ContainsStrict(player.X, player.Y) {
			continue
		}

		index := s.rng.Intn(len(defs.MapLibrary))
		s.ecs.Map = &defs.MapLibrary[index]
		s.ecs.Wave.MapIndex = index

		switch exit.Side {
		case defs.ExitTop:
			player.Y = config.ScreenHeight - config.PlayerSize
		case defs.ExitBottom:
			player.Y = config.PlayerSize
		case defs.ExitLeft:
			player.X = config.ScreenWidth - config.PlayerSize
		case defs.ExitRight:
			player.X = config.PlayerSize
		}

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MapChanged,
			Tick: s.ecs.Tick,
			Data: event.MapChange{MapID: s.ecs.Map.ID, Via: exit.Side},
		})

		s.ecs.Wave.Round++
		s.StartRound()
		return
	}
}

func (s *WaveSystem) spawnEnemy(round, index int) {
	var pos component.Position
	switch s.rng.Intn(4) {
	case 0:
		pos = component.Position{X: s.rng.Float64() * config.ScreenWidth, Y: -config.SpawnOffset}
	case 1:
		pos = component.Position{X: config.ScreenWidth + config.SpawnOffset, Y: s.rng.Float64() * config.ScreenHeight}
	case 2:
		pos = component.Position{X: s.rng.Float64() * config.ScreenWidth, Y: config.ScreenHeight + config.SpawnOffset}
	default:
		pos = component.Position{X: -config.SpawnOffset, Y: s.rng.Float64() * config.ScreenHeight}
	}

	enemyType := defs.EnemyZombie
	if round > defs.HellhoundFrom && s.rng.Float64() < defs.HellhoundChance {
		enemyType = defs.EnemyHellhound
	}
	if round > defs.CrawlerFrom && s.rng.Float64() < defs.CrawlerChance {
		enemyType = defs.EnemyCrawler
	}
	if defs.IsBossRound(round) && index == 0 {
		enemyType = defs.EnemyBoss
	}

	def := defs.Enemy(enemyType)
	health := def.Health + defs.HealthBonusForRound(round)
	s.ecs.AddEnemy(component.Enemy{
		Position:  pos,
		Speed:     def.Speed * utils.Range(s.rng, defs.SpeedJitterMin, defs.SpeedJitterRange),
		Health:    health,
		MaxHealth: health,
		Type:      enemyType,
		Size:      def.Size,
	})
}
