// internal/state/input.go
package state

import (
	"go-zombie-arena/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource is the device state the host reads each frame.
type KeySource interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	MousePressed(button ebiten.MouseButton) bool
	MouseJustPressed(button ebiten.MouseButton) bool
	Cursor() (int, int)
}

// EbitenKeys reads the real keyboard and mouse.
type EbitenKeys struct{}

func (EbitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (EbitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) MousePressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}
func (EbitenKeys) MouseJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}
func (EbitenKeys) Cursor() (int, int) { return ebiten.CursorPosition() }

var movementKeys = map[input.Direction][]ebiten.Key{
	input.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// ReadInput builds this frame's input snapshot.
func ReadInput(keys KeySource) input.State {
	in := input.NewState()
	for dir, bound := range movementKeys {
		for _, k := range bound {
			if keys.Pressed(k) {
				in.Held[dir] = true
			}
		}
	}

	x, y := keys.Cursor()
	in = in.AimAt(float64(x), float64(y))
	in.PointerHeld = keys.MousePressed(ebiten.MouseButtonLeft)

	in.TogglePause = keys.JustPressed(ebiten.KeySpace) || keys.JustPressed(ebiten.KeyEscape)
	in.Nuke = keys.JustPressed(ebiten.KeyN)
	in.SpeedBoost = keys.JustPressed(ebiten.KeyB)
	return in
}
