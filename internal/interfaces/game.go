// internal/interfaces/game.go
package interfaces

import (
	"go-zombie-arena/internal/app"
	"go-zombie-arena/internal/input"
)

// Simulation is the part of a session the host drives once per frame.
type Simulation interface {
	Update(deltaTime float64, in input.State)
	Snapshot() app.Snapshot
}
