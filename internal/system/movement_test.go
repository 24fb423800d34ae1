package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/input"
)

func TestPlayerMovesBySpeed(t *testing.T) {
	ecs, _, _ := newWorld()
	s := NewMovementSystem(ecs)

	s.Update(input.NewState().Press(input.Up, input.Right))

	assert.Equal(t, component.Position{X: 404, Y: 296}, ecs.Player.Position)
}

func TestOpposingKeysFavorRightAndDown(t *testing.T) {
	ecs, _, _ := newWorld()
	s := NewMovementSystem(ecs)

	s.Update(input.NewState().Press(input.Left, input.Right, input.Up, input.Down))

	assert.Equal(t, component.Position{X: 404, Y: 304}, ecs.Player.Position)
}

func TestPlayerClampedToArena(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Player.Position = component.Position{X: 13, Y: 590}
	s := NewMovementSystem(ecs)

	s.Update(input.NewState().Press(input.Left, input.Down))

	assert.Equal(t, component.Position{X: 12, Y: 588}, ecs.Player.Position)
}

func TestDecorationBlocksAndSnaps(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Map = &defs.MapLibrary[0] // first block spans x 100..150, y 100..250
	s := NewMovementSystem(ecs)

	ecs.Player.Position = component.Position{X: 86, Y: 150}
	s.Update(input.NewState().Press(input.Right))
	assert.Equal(t, 88.0, ecs.Player.X, "snapped to the left face")

	ecs.Player.Position = component.Position{X: 164, Y: 150}
	s.Update(input.NewState().Press(input.Left))
	assert.Equal(t, 162.0, ecs.Player.X, "snapped to the right face")

	ecs.Player.Position = component.Position{X: 120, Y: 86}
	s.Update(input.NewState().Press(input.Down))
	assert.Equal(t, 88.0, ecs.Player.Y, "snapped to the top face")
}

func TestDecorationBlocksOneAxisOnly(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Map = &defs.MapLibrary[0]
	s := NewMovementSystem(ecs)

	// Moving diagonally into the left face: x is blocked, y slides.
	ecs.Player.Position = component.Position{X: 86, Y: 150}
	s.Update(input.NewState().Press(input.Right, input.Down))
	assert.Equal(t, component.Position{X: 88, Y: 154}, ecs.Player.Position)
}

func TestStandingInsideDecorationStaysPut(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Map = &defs.MapLibrary[3] // wall across the middle, under the start position
	s := NewMovementSystem(ecs)

	s.Update(input.NewState())

	assert.Equal(t, component.Position{X: 400, Y: 300}, ecs.Player.Position)
}

func TestLeavingAWallStaysInArena(t *testing.T) {
	ecs, d, _ := newWorld()
	waves := NewWaveSystem(ecs, &scriptedRand{ints: []int{3}}, d, NewScheduler())
	ecs.Wave.Round = 5
	ecs.Wave.Phase = component.PhaseExitSelection
	ecs.Player.Position = component.Position{X: 10, Y: 300}
	waves.Update(0)
	require.Equal(t, 4, ecs.Map.ID)
	require.Equal(t, component.Position{X: 776, Y: 300}, ecs.Player.Position)

	s := NewMovementSystem(ecs)
	s.Update(input.NewState().Press(input.Left))
	assert.Equal(t, component.Position{X: 772, Y: 300}, ecs.Player.Position)

	ecs.Player.X = 776
	for i := 0; i < 5; i++ {
		s.Update(input.NewState().Press(input.Right))
		assert.GreaterOrEqual(t, ecs.Player.X, 12.0)
		assert.LessOrEqual(t, ecs.Player.X, 788.0)
	}
	assert.Equal(t, 788.0, ecs.Player.X)
}

func TestStartInsideCentreBlockWalksOut(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Map = &defs.MapLibrary[0] // centre block covers the start position once inflated
	s := NewMovementSystem(ecs)

	s.Update(input.NewState().Press(input.Left))

	assert.Equal(t, component.Position{X: 396, Y: 300}, ecs.Player.Position)
}

func TestEnemiesSeekPlayerAndIgnoreDecorations(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.Map = &defs.MapLibrary[3] // wall across the middle
	ecs.AddEnemy(zombieAt(100, 300))
	ecs.AddEnemy(zombieAt(400, 100))
	s := NewMovementSystem(ecs)

	s.Update(input.NewState())

	assert.InDelta(t, 101.5, ecs.Enemies[0].X, 1e-9)
	assert.InDelta(t, 300, ecs.Enemies[0].Y, 1e-9)
	assert.InDelta(t, 400, ecs.Enemies[1].X, 1e-9)
	assert.InDelta(t, 101.5, ecs.Enemies[1].Y, 1e-9)
}

func TestEnemyOnPlayerDoesNotMove(t *testing.T) {
	ecs, _, _ := newWorld()
	ecs.AddEnemy(zombieAt(400, 300))
	s := NewMovementSystem(ecs)

	s.Update(input.NewState())

	assert.Equal(t, component.Position{X: 400, Y: 300}, ecs.Enemies[0].Position)
}
