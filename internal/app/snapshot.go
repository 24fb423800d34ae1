// internal/app/snapshot.go
package app

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/utils"
	"math"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of everything a renderer or HUD needs for
// one frame. Mutating it has no effect on the session.
type Snapshot struct {
	SessionID uuid.UUID
	Tick      uint64
	Now       time.Duration

	Player    component.Player
	Enemies   []component.Enemy
	Bullets   []component.Bullet
	PowerUps  []component.PowerUp
	Particles []component.Particle

	Map   defs.MapDefinition
	Exits []defs.Exit

	Round int
	Phase component.Phase
	Score int
	Shake float64

	Paused        bool
	GameOver      bool
	RoundComplete bool
	ExitsVisible  bool

	// Pointer is the last aim point seen by an unpaused tick; AimAngle is
	// the angle from the player to it, in (-pi, pi].
	Pointer  component.Position
	AimAngle float64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	exits := g.WaveSystem.Exits()

	s := Snapshot{
		SessionID:     g.ID,
		Tick:          ecs.Tick,
		Now:           ecs.Now,
		Player:        *ecs.Player,
		Enemies:       append([]component.Enemy(nil), ecs.Enemies...),
		Bullets:       append([]component.Bullet(nil), ecs.Bullets...),
		PowerUps:      append([]component.PowerUp(nil), ecs.PowerUps...),
		Particles:     append([]component.Particle(nil), ecs.Particles...),
		Map:           *ecs.Map,
		Exits:         append([]defs.Exit(nil), exits...),
		Round:         ecs.Wave.Round,
		Phase:         ecs.Wave.Phase,
		Score:         ecs.Score,
		Shake:         ecs.Shake,
		Paused:        ecs.Paused,
		GameOver:      g.IsGameOver(),
		RoundComplete: ecs.Wave.RoundComplete(),
		ExitsVisible:  len(exits) > 0,
		Pointer:       g.pointer,
	}
	s.Map.Decorations = append([]defs.Decoration(nil), ecs.Map.Decorations...)

	dx := g.pointer.X - ecs.Player.X
	dy := g.pointer.Y - ecs.Player.Y
	if dx != 0 || dy != 0 {
		s.AimAngle = utils.NormalizeAngle(math.Atan2(dy, dx))
	}
	return s
}
