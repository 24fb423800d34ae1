// internal/component/game_state.go
package component

// Phase is the wave director's state.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseActive
	PhaseCleared
	PhaseExitSelection
	PhaseAutoAdvance
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseCleared:
		return "cleared"
	case PhaseExitSelection:
		return "exit_selection"
	case PhaseAutoAdvance:
		return "auto_advance"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Wave tracks round progression.
type Wave struct {
	Round    int
	Target   int // enemies spawned at the start of the round
	Killed   int
	Phase    Phase
	MapIndex int
}

// RoundComplete reports whether the round has been cleared and the next
// one has not started yet.
func (w *Wave) RoundComplete() bool {
	return w.Phase == PhaseCleared || w.Phase == PhaseExitSelection
}
