// internal/app/game.go
package app

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/input"
	"go-zombie-arena/internal/logging"
	"go-zombie-arena/internal/system"
	"go-zombie-arena/internal/utils"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a new session.
type Options struct {
	// Seed feeds the gameplay random stream. Zero picks a time-based seed.
	Seed int64
	// Rand, when set, replaces the seeded gameplay stream.
	Rand utils.Rand
	// Logger receives session and event logs. Nil disables logging.
	Logger *zerolog.Logger
	// OnGameOver is called once, GameOverDelay after the player dies.
	OnGameOver func()
}

// Game holds one session: the entity store, the systems that mutate it and
// the timers that drive out-of-band transitions. Update is the only
// mutator; everything else reads a Snapshot.
type Game struct {
	ID                 uuid.UUID
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *system.Scheduler
	WeaponSystem       *system.WeaponSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PowerUpSystem      *system.PowerUpSystem
	PlayerSystem       *system.PlayerSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	seed          int64
	logger        zerolog.Logger
	onGameOver    func()
	gameOverFired bool
	pointer       component.Position
}

// NewGame creates a session and spawns round 1.
func NewGame(opts Options) *Game {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	prng := utils.NewPRNGService(opts.Seed)
	var rng utils.Rand = prng
	if opts.Rand != nil {
		rng = opts.Rand
	}
	// Cosmetic rolls get their own stream so particles never shift gameplay.
	cosmetic := utils.NewPRNGService(prng.Seed() + 1)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	effects := system.NewVisualEffectSystem(ecs, cosmetic)

	g := &Game{
		ID:                 uuid.New(),
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Scheduler:          scheduler,
		WeaponSystem:       system.NewWeaponSystem(ecs, rng, eventDispatcher),
		MovementSystem:     system.NewMovementSystem(ecs),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, rng, eventDispatcher, effects),
		PowerUpSystem:      system.NewPowerUpSystem(ecs, rng, eventDispatcher),
		PlayerSystem:       system.NewPlayerSystem(ecs, scheduler, eventDispatcher),
		WaveSystem:         system.NewWaveSystem(ecs, rng, eventDispatcher, scheduler),
		VisualEffectSystem: effects,
		seed:               prng.Seed(),
		onGameOver:         opts.OnGameOver,
		pointer:            ecs.Player.Position,
	}
	g.logger = logger.With().Str("session", g.ID.String()).Logger()
	g.logger.Info().Int64("seed", g.seed).Msg("session started")

	eventDispatcher.SubscribeAll(logging.NewEventLogger(g.logger))

	g.WaveSystem.StartRound()
	return g
}

// Seed returns the seed of the gameplay stream, for replays.
func (g *Game) Seed() int64 {
	return g.seed
}

// Update advances the session by one host frame of deltaTime seconds.
//
// Due timers fire first, even while paused. A finished session does nothing
// else. Otherwise the pause toggle is applied, and an unpaused tick runs
// the queued actions followed by the systems in a fixed order: effects,
// weapon, movement, projectiles, combat, power-ups, waves.
func (g *Game) Update(deltaTime float64, in input.State) {
	g.ECS.Now += toDuration(deltaTime)
	g.ECS.Tick++
	g.fireTimers()

	if g.IsGameOver() {
		return
	}
	if in.TogglePause {
		g.TogglePause()
	}
	if g.ECS.Paused {
		return
	}

	g.pointer = component.Position{X: in.PointerX, Y: in.PointerY}
	if in.Nuke {
		g.ActivateNuke()
	}
	if in.SpeedBoost {
		g.ActivateSpeedBoost()
	}

	g.VisualEffectSystem.Update()
	g.WeaponSystem.Update(g.ECS.Now, in)
	g.MovementSystem.Update(in)
	g.ProjectileSystem.Update()
	if died := g.CombatSystem.Update(); died {
		g.WaveSystem.EnterGameOver(g.ECS.Now)
		return
	}
	g.PowerUpSystem.Update()
	g.WaveSystem.Update(g.ECS.Now)
}

// ActivateNuke spends a nuke charge, if any, outside the normal tick. It
// does nothing while paused or after game over.
func (g *Game) ActivateNuke() bool {
	if g.IsGameOver() || g.IsPaused() {
		return false
	}
	return g.CombatSystem.Detonate() >= 0
}

// ActivateSpeedBoost spends a speed-boost charge, if any.
func (g *Game) ActivateSpeedBoost() bool {
	if g.IsGameOver() || g.IsPaused() {
		return false
	}
	return g.PlayerSystem.ActivateSpeedBoost(g.ECS.Now)
}

// TogglePause flips the pause flag. A finished session stays unpaused.
func (g *Game) TogglePause() {
	if g.IsGameOver() {
		return
	}
	g.ECS.Paused = !g.ECS.Paused
	g.logger.Debug().Bool("paused", g.ECS.Paused).Msg("pause toggled")
}

// IsPaused reports whether per-tick systems are frozen.
func (g *Game) IsPaused() bool {
	return g.ECS.Paused
}

// IsGameOver reports whether the session has ended.
func (g *Game) IsGameOver() bool {
	return g.ECS.Wave.Phase == component.PhaseGameOver
}

func (g *Game) fireTimers() {
	for _, t := range g.Scheduler.Due(g.ECS.Now, g.ECS.Paused) {
		switch t.Kind {
		case system.TimerRoundAdvance:
			g.WaveSystem.Advance()
		case system.TimerBoostExpiry:
			g.PlayerSystem.ExpireSpeedBoost()
		case system.TimerReturnToMenu:
			g.returnToMenu()
		}
	}
}

func (g *Game) returnToMenu() {
	if g.gameOverFired {
		return
	}
	g.gameOverFired = true
	enemies, bullets, powerUps, _ := g.ECS.IssuedIDs()
	g.logger.Info().
		Int("score", g.ECS.Score).
		Uint64("enemies_spawned", enemies).
		Uint64("bullets_fired", bullets).
		Uint64("powerups_dropped", powerUps).
		Msg("returning to menu")
	if g.onGameOver != nil {
		g.onGameOver()
	}
}

// toDuration converts a frame delta in seconds. Negative deltas count as 0.
func toDuration(seconds float64) time.Duration {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
