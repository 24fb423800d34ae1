// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/ui"
	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState is the title screen. SPACE, ENTER or the start button begins
// a new session.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	start *ui.MenuButton
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	const w, h = 200, 50
	x := config.ScreenWidth/2 - w/2
	y := config.ScreenHeight/2 + 20
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		start: ui.NewMenuButton(image.Rect(x, y, x+w, y+h), "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	keys := m.ctx.Keys
	start := keys.JustPressed(ebiten.KeySpace) || keys.JustPressed(ebiten.KeyEnter)
	if keys.MouseJustPressed(ebiten.MouseButtonLeft) {
		x, y := keys.Cursor()
		start = start || m.start.IsClicked(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(config.ScreenWidth) / 2
	render.DrawLabel(screen, "ZOMBIE ARENA", cx, 180, 4, render.AlignCenter, config.BossRoundColor)
	if m.ctx.LastRound > 0 {
		last := fmt.Sprintf("Last run: %d points, round %d", m.ctx.LastScore, m.ctx.LastRound)
		render.DrawLabel(screen, last, cx, 240, 1.5, render.AlignCenter, config.TextLightColor)
	}
	m.start.Draw(screen)
	render.DrawLabel(screen, "WASD: Move | Mouse: Aim & Hold to Shoot | N: Nuke | B: Speed Boost | SPACE: Pause",
		cx, float64(config.ScreenHeight)-30, 1, render.AlignCenter, color.RGBA{156, 163, 175, 255})
}

func (m *MenuState) Exit() {}
