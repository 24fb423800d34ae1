// internal/input/state.go
package input

// Direction is a held movement key, independent of the physical binding.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// State is a snapshot of player input for one tick. It carries no logic;
// the host fills it and the simulation only reads it.
type State struct {
	Held        map[Direction]bool
	PointerX    float64
	PointerY    float64
	PointerHeld bool

	// Edge-triggered actions, true only on the tick the key went down.
	TogglePause bool
	Nuke        bool
	SpeedBoost  bool
}

// NewState returns an empty snapshot.
func NewState() State {
	return State{Held: make(map[Direction]bool)}
}

// Holding reports whether direction d is held.
func (s State) Holding(d Direction) bool {
	return s.Held[d]
}

// Press marks d as held and returns s for chaining in tests and hosts.
func (s State) Press(d ...Direction) State {
	if s.Held == nil {
		s.Held = make(map[Direction]bool)
	}
	for _, dir := range d {
		s.Held[dir] = true
	}
	return s
}

// AimAt sets the pointer position.
func (s State) AimAt(x, y float64) State {
	s.PointerX, s.PointerY = x, y
	return s
}
