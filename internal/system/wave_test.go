package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/event"
)

func newWaves(rolls *scriptedRand) (*WaveSystem, *Scheduler, *recorder) {
	ecs, d, rec := newWorld()
	sched := NewScheduler()
	return NewWaveSystem(ecs, rolls, d, sched), sched, rec
}

func TestStartRoundSpawnsFromEdges(t *testing.T) {
	// One side roll, then an edge roll and a jitter roll per enemy.
	s, _, rec := newWaves(&scriptedRand{ints: []int{0, 1, 2, 3}, floats: []float64{0.5, 0.5, 0.25, 0, 0, 0.5, 0.75, 1}})

	s.StartRound()

	ecs := s.ecs
	require.Len(t, ecs.Enemies, 5)
	assert.Equal(t, component.PhaseActive, ecs.Wave.Phase)
	assert.Equal(t, 5, ecs.Wave.Target)
	assert.Zero(t, ecs.Wave.Killed)

	first := ecs.Enemies[0]
	assert.Equal(t, component.Position{X: 400, Y: -config.SpawnOffset}, first.Position)
	assert.InDelta(t, 1.5, first.Speed, 1e-9)
	assert.Equal(t, defs.EnemyZombie, first.Type)
	assert.Equal(t, 1, first.Health)

	assert.Equal(t, component.Position{X: config.ScreenWidth + config.SpawnOffset, Y: 150}, ecs.Enemies[1].Position)
	assert.InDelta(t, 1.2, ecs.Enemies[1].Speed, 1e-9)
	assert.Equal(t, component.Position{X: 0, Y: config.ScreenHeight + config.SpawnOffset}, ecs.Enemies[2].Position)
	assert.Equal(t, component.Position{X: -config.SpawnOffset, Y: 450}, ecs.Enemies[3].Position)

	started := rec.ofType(event.RoundStarted)
	require.Len(t, started, 1)
	assert.Equal(t, event.Round{Round: 1, Enemies: 5}, started[0].Data)
}

func TestSpawnTypesByRound(t *testing.T) {
	t.Run("round 3 never rolls for hellhounds", func(t *testing.T) {
		s, _, _ := newWaves(&scriptedRand{floats: []float64{0.5, 0.0}})
		s.ecs.Wave.Round = 3
		s.StartRound()
		assert.Equal(t, defs.EnemyZombie, s.ecs.Enemies[0].Type)
		assert.Equal(t, 2, s.ecs.Enemies[0].Health)
	})

	t.Run("hellhound from round 4", func(t *testing.T) {
		s, _, _ := newWaves(&scriptedRand{floats: []float64{0.5, 0.1, 0}})
		s.ecs.Wave.Round = 4
		s.StartRound()
		e := s.ecs.Enemies[0]
		assert.Equal(t, defs.EnemyHellhound, e.Type)
		assert.Equal(t, 3, e.Health)
		assert.InDelta(t, 2.4, e.Speed, 1e-9)
	})

	t.Run("crawler roll overrides hellhound", func(t *testing.T) {
		s, _, _ := newWaves(&scriptedRand{floats: []float64{0.5, 0.1, 0.05, 0}})
		s.ecs.Wave.Round = 6
		s.StartRound()
		assert.Equal(t, defs.EnemyCrawler, s.ecs.Enemies[0].Type)
		assert.Equal(t, 10, len(s.ecs.Enemies))
	})

	t.Run("boss leads round 10", func(t *testing.T) {
		s, _, _ := newWaves(&scriptedRand{})
		s.ecs.Wave.Round = 10
		s.StartRound()
		require.Len(t, s.ecs.Enemies, 17)
		boss := s.ecs.Enemies[0]
		assert.Equal(t, defs.EnemyBoss, boss.Type)
		assert.Equal(t, 13, boss.Health)
		assert.Equal(t, 40.0, boss.Size)
		for _, e := range s.ecs.Enemies[1:] {
			assert.NotEqual(t, defs.EnemyBoss, e.Type)
		}
	})
}

func TestRoundClearsOnlyWhenTargetMet(t *testing.T) {
	s, sched, rec := newWaves(&scriptedRand{})
	s.StartRound()
	ecs := s.ecs

	ecs.ClearEnemies()
	ecs.Wave.Killed = 4
	s.Update(time.Second)
	assert.Equal(t, component.PhaseActive, ecs.Wave.Phase)

	ecs.Wave.Killed = 5
	s.Update(time.Second)
	assert.Equal(t, component.PhaseCleared, ecs.Wave.Phase)
	timer, ok := sched.Pending(TimerRoundAdvance)
	require.True(t, ok)
	assert.Equal(t, time.Second+config.RoundDelay, timer.DueAt)
	assert.Nil(t, s.Exits())

	cleared := rec.ofType(event.RoundCleared)
	require.Len(t, cleared, 1)
	assert.False(t, cleared[0].Data.(event.Round).Exits)
}

func TestAdvanceOnlyFromCleared(t *testing.T) {
	s, _, _ := newWaves(&scriptedRand{})
	s.StartRound()
	ecs := s.ecs

	s.Advance()
	assert.Equal(t, 1, ecs.Wave.Round)

	ecs.ClearEnemies()
	ecs.Wave.Killed = ecs.Wave.Target
	s.Update(0)
	s.Advance()
	assert.Equal(t, 2, ecs.Wave.Round)
	assert.Equal(t, component.PhaseActive, ecs.Wave.Phase)
	assert.Len(t, ecs.Enemies, 5)
}

func TestExitRoundOpensPortals(t *testing.T) {
	s, sched, _ := newWaves(&scriptedRand{})
	ecs := s.ecs
	ecs.Wave.Round = 5
	ecs.Wave.Target = 8
	ecs.Wave.Killed = 8

	s.Update(0)

	assert.Equal(t, component.PhaseExitSelection, ecs.Wave.Phase)
	assert.Zero(t, sched.Len(), "no auto advance on exit rounds")
	assert.Len(t, s.Exits(), 4)

	// Not inside any portal yet.
	s.Update(time.Second)
	assert.Equal(t, component.PhaseExitSelection, ecs.Wave.Phase)
}

func TestEnteringAnExit(t *testing.T) {
	cases := []struct {
		side     defs.ExitSide
		at       component.Position
		expected component.Position
	}{
		{defs.ExitTop, component.Position{X: 400, Y: 10}, component.Position{X: 400, Y: config.ScreenHeight - config.PlayerSize}},
		{defs.ExitBottom, component.Position{X: 400, Y: 590}, component.Position{X: 400, Y: config.PlayerSize}},
		{defs.ExitLeft, component.Position{X: 10, Y: 300}, component.Position{X: config.ScreenWidth - config.PlayerSize, Y: 300}},
		{defs.ExitRight, component.Position{X: 790, Y: 300}, component.Position{X: config.PlayerSize, Y: 300}},
	}
	for _, tc := range cases {
		t.Run(string(tc.side), func(t *testing.T) {
			s, _, rec := newWaves(&scriptedRand{ints: []int{3}})
			ecs := s.ecs
			ecs.Wave.Round = 5
			ecs.Wave.Phase = component.PhaseExitSelection
			ecs.Player.Position = tc.at

			s.Update(0)

			assert.Equal(t, tc.expected, ecs.Player.Position)
			assert.Equal(t, 4, ecs.Map.ID)
			assert.Equal(t, 3, ecs.Wave.MapIndex)
			assert.Equal(t, 6, ecs.Wave.Round)
			assert.Equal(t, component.PhaseActive, ecs.Wave.Phase)
			assert.Len(t, ecs.Enemies, 10)

			changes := rec.ofType(event.MapChanged)
			require.Len(t, changes, 1)
			assert.Equal(t, event.MapChange{MapID: 4, Via: tc.side}, changes[0].Data)
		})
	}
}

func TestPortalEdgeIsOutside(t *testing.T) {
	s, _, _ := newWaves(&scriptedRand{})
	ecs := s.ecs
	ecs.Wave.Round = 5
	ecs.Wave.Phase = component.PhaseExitSelection
	ecs.Player.Position = component.Position{X: 370, Y: 10}

	s.Update(0)

	assert.Equal(t, component.PhaseExitSelection, ecs.Wave.Phase)
}

func TestEnterGameOver(t *testing.T) {
	s, sched, rec := newWaves(&scriptedRand{})
	ecs := s.ecs
	ecs.Score = 700
	sched.Schedule(TimerRoundAdvance, time.Second, true)
	sched.Schedule(TimerBoostExpiry, time.Second, true)

	s.EnterGameOver(2 * time.Second)
	s.EnterGameOver(4 * time.Second)

	assert.Equal(t, component.PhaseGameOver, ecs.Wave.Phase)
	assert.Equal(t, 1, sched.Len())
	timer, ok := sched.Pending(TimerReturnToMenu)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, timer.DueAt)

	over := rec.ofType(event.GameOver)
	require.Len(t, over, 1)
	assert.Equal(t, event.Final{Score: 700, Round: 1}, over[0].Data)

	s.Update(10 * time.Second)
	assert.Equal(t, component.PhaseGameOver, ecs.Wave.Phase)
}
