// internal/system/combat.go
package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/types"
	"go-zombie-arena/internal/utils"
)

// CombatEventKind classifies an outcome of the resolution pass.
type CombatEventKind int

const (
	// EventHit: a bullet was consumed by an enemy.
	EventHit CombatEventKind = iota
	// EventDeath: an enemy's health reached zero.
	EventDeath
	// EventPlayerDamaged: an enemy touched the player.
	EventPlayerDamaged
)

// CombatEvent is produced by the pure resolvers and applied afterwards.
type CombatEvent struct {
	Kind     CombatEventKind
	BulletID types.EntityID
	EnemyID  types.EntityID
	At       component.Position
	Damage   int
	Enemy    component.Enemy // state after the hit
}

// Resolution is the outcome of one bullet-vs-enemy pass.
type Resolution struct {
	Bullets []component.Bullet
	Enemies []component.Enemy
	Events  []CombatEvent
}

// HitRange is the center distance under which a bullet touches e.
func HitRange(e component.Enemy) float64 {
	return e.Size/2 + config.BulletHitRadius
}

// ContactRange is the center distance under which e touches the player.
func ContactRange(e component.Enemy) float64 {
	return e.Size/2 + config.PlayerSize/2
}

// ResolveBullets runs one pass of bullets against enemies without touching
// the inputs. Bullets are taken in order; each one is consumed by the first
// live enemy in range and never hits a second. Enemies whose health drops
// to zero or below are left out of the result.
func ResolveBullets(bullets []component.Bullet, enemies []component.Enemy) Resolution {
	working := make([]component.Enemy, len(enemies))
	copy(working, enemies)

	res := Resolution{Bullets: make([]component.Bullet, 0, len(bullets))}
	for _, b := range bullets {
		consumed := false
		for i := range working {
			e := &working[i]
			if !e.Alive() || b.DistanceTo(e.Position) >= HitRange(*e) {
				continue
			}
			e.Health -= b.Damage
			res.Events = append(res.Events, CombatEvent{
				Kind: EventHit, BulletID: b.ID, EnemyID: e.ID, At: b.Position, Damage: b.Damage, Enemy: *e,
			})
			if !e.Alive() {
				res.Events = append(res.Events, CombatEvent{
					Kind: EventDeath, BulletID: b.ID, EnemyID: e.ID, At: e.Position, Enemy: *e,
				})
			}
			consumed = true
			break
		}
		if !consumed {
			res.Bullets = append(res.Bullets, b)
		}
	}

	res.Enemies = make([]component.Enemy, 0, len(working))
	for _, e := range working {
		if e.Alive() {
			res.Enemies = append(res.Enemies, e)
		}
	}
	return res
}

// ResolveContact finds the first enemy touching the player. At most one
// damage event comes out of it per tick, however many enemies overlap.
func ResolveContact(enemies []component.Enemy, player component.Position) (CombatEvent, bool) {
	for _, e := range enemies {
		if e.DistanceTo(player) < ContactRange(e) {
			return CombatEvent{Kind: EventPlayerDamaged, EnemyID: e.ID, At: player, Enemy: e}, true
		}
	}
	return CombatEvent{}, false
}

// CombatSystem applies the resolver output to the store: score, kill
// counting, drops, particles, lives and sounds.
type CombatSystem struct {
	ecs             *entity.ECS
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewCombatSystem(ecs *entity.ECS, rng utils.Rand, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher, effects: effects}
}

// Update resolves this tick's collisions. It reports whether the player
// ran out of lives.
func (s *CombatSystem) Update() bool {
	res := ResolveBullets(s.ecs.Bullets, s.ecs.Enemies)
	s.ecs.Bullets = res.Bullets
	s.ecs.Enemies = res.Enemies
	for _, ev := range res.Events {
		switch ev.Kind {
		case EventHit:
			s.effects.Burst(ev.At, config.HitSparkCount, config.HitSparkColor)
		case EventDeath:
			s.applyDeath(ev)
		}
	}

	hit, touched := ResolveContact(s.ecs.Enemies, s.ecs.Player.Position)
	if !touched {
		return false
	}
	return s.applyPlayerDamage(hit)
}

func (s *CombatSystem) applyDeath(ev CombatEvent) {
	def := defs.Enemy(ev.Enemy.Type)
	s.ecs.Score += def.Score
	s.ecs.Wave.Killed++

	var dropped defs.PowerUpType
	if s.rng.Float64() < defs.DropChance {
		dropped = utils.ChooseWeighted(s.rng, defs.PowerUpDrops)
		s.ecs.AddPowerUp(component.PowerUp{Position: ev.At, Type: dropped})
	}
	s.effects.Burst(ev.At, config.DeathBurst, def.Color)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Tick: s.ecs.Tick,
		Data: event.Kill{EnemyID: ev.EnemyID, Type: ev.Enemy.Type, Score: def.Score, Dropped: dropped},
	})
}

func (s *CombatSystem) applyPlayerDamage(ev CombatEvent) bool {
	player := s.ecs.Player
	player.Lives--
	if player.Lives < 0 {
		player.Lives = 0
	}
	s.effects.Burst(ev.At, config.DamageBurst, config.DamageColor)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SoundRequested,
		Tick: s.ecs.Tick,
		Data: event.Sound{ID: defs.SoundHurt, Volume: 0.4},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHurt,
		Tick: s.ecs.Tick,
		Data: event.Hurt{LivesLeft: player.Lives},
	})
	return player.Lives == 0
}

// Detonate spends one nuke charge: every live enemy is cleared, scored at
// the nuke rate and counted toward the round target. It returns the number
// of enemies cleared, or -1 when no charge was available.
func (s *CombatSystem) Detonate() int {
	player := s.ecs.Player
	if player.Nukes <= 0 {
		return -1
	}
	player.Nukes--

	cleared := s.ecs.ClearEnemies()
	score := cleared * config.KillScoreNuke
	s.ecs.Score += score
	s.ecs.Wave.Killed += cleared
	s.effects.Shake(config.ShakeOnNuke)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SoundRequested,
		Tick: s.ecs.Tick,
		Data: event.Sound{ID: defs.SoundExplosion, Volume: 0.5},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.NukeDetonated,
		Tick: s.ecs.Tick,
		Data: event.Nuke{Cleared: cleared, Score: score},
	})
	return cleared
}
