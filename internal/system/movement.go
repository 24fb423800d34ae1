// internal/system/movement.go
package system

import (
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/input"
	"go-zombie-arena/internal/utils"
)

// MovementSystem moves the player from input and the enemies toward the
// player. Decorations block only the player.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(in input.State) {
	s.movePlayer(in)
	s.moveEnemies()
}

func (s *MovementSystem) movePlayer(in input.State) {
	player := s.ecs.Player
	half := config.PlayerSize / 2
	prevX, prevY := player.X, player.Y
	newX, newY := prevX, prevY

	if in.Holding(input.Left) {
		newX = utils.Clamp(prevX-player.Speed, half, config.ScreenWidth-half)
	}
	if in.Holding(input.Right) {
		newX = utils.Clamp(prevX+player.Speed, half, config.ScreenWidth-half)
	}
	if in.Holding(input.Up) {
		newY = utils.Clamp(prevY-player.Speed, half, config.ScreenHeight-half)
	}
	if in.Holding(input.Down) {
		newY = utils.Clamp(prevY+player.Speed, half, config.ScreenHeight-half)
	}

	// Each moving axis is tested with the other axis at its previous value,
	// and a blocked axis snaps to the face the player came from. A player
	// already overlapping a decoration (spawned or carried there by an exit)
	// walks out of it freely.
	if s.ecs.Map != nil {
		for _, deco := range s.ecs.Map.Decorations {
			box := deco.Rect.Inflate(half)
			if box.ContainsStrict(prevX, prevY) {
				continue
			}
			if newX != prevX && box.ContainsStrict(newX, prevY) {
				if newX > prevX {
					newX = box.X
				} else {
					newX = box.X + box.W
				}
			}
			if newY != prevY && box.ContainsStrict(prevX, newY) {
				if newY > prevY {
					newY = box.Y
				} else {
					newY = box.Y + box.H
				}
			}
		}
	}

	player.X = utils.Clamp(newX, half, config.ScreenWidth-half)
	player.Y = utils.Clamp(newY, half, config.ScreenHeight-half)
}

func (s *MovementSystem) moveEnemies() {
	target := s.ecs.Player.Position
	for i := range s.ecs.Enemies {
		enemy := &s.ecs.Enemies[i]
		nx, ny, ok := utils.Normalize(target.X-enemy.X, target.Y-enemy.Y)
		if !ok {
			continue
		}
		enemy.X += nx * enemy.Speed
		enemy.Y += ny * enemy.Speed
	}
}
