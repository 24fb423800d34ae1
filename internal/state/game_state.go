// internal/state/game_state.go
package state

import (
	"go-zombie-arena/internal/app"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/event"
	"go-zombie-arena/internal/interfaces"
	"go-zombie-arena/internal/ui"
	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState runs one session.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	game     *app.Game
	sim      interfaces.Simulation
	renderer *render.ArenaRenderer
	hud      *ui.HUD
	finished bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	gs := &GameState{sm: sm, ctx: ctx}

	var seed int64
	if ctx.Settings != nil {
		seed = ctx.Settings.Seed
	}
	logger := ctx.Logger
	gs.game = app.NewGame(app.Options{
		Seed:       seed,
		Logger:     &logger,
		OnGameOver: func() { gs.finished = true },
	})
	if ctx.Audio != nil {
		gs.game.EventDispatcher.Subscribe(event.SoundRequested, ctx.Audio)
	}

	gs.sim = gs.game
	gs.renderer = render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, ctx.Sprites, gs.game.Seed())
	gs.hud = ui.NewHUD(config.ScreenWidth, config.ScreenHeight)
	return gs
}

func (g *GameState) Enter() {
	g.ctx.Logger.Debug().Str("session", g.game.ID.String()).Msg("entering game")
}

func (g *GameState) Update(deltaTime float64) {
	keys := g.ctx.Keys
	if keys.JustPressed(ebiten.KeyQ) {
		g.leave()
		return
	}

	in := ReadInput(keys)
	clicked := keys.MouseJustPressed(ebiten.MouseButtonLeft)
	if clicked || in.PointerHeld {
		x, y := keys.Cursor()
		if g.hud.OnButton(x, y) {
			// HUD buttons are not part of the arena; they never fire.
			in.PointerHeld = false
		}
		if clicked && g.hud.MenuButton.IsClicked(x, y) {
			g.leave()
			return
		}
		if clicked && g.hud.PauseButton.Contains(x, y) {
			in.TogglePause = true
			g.hud.PauseButton.Clicked()
		}
	}

	g.sim.Update(deltaTime, in)
	if g.finished {
		g.leave()
	}
}

func (g *GameState) leave() {
	snap := g.sim.Snapshot()
	g.ctx.LastScore = snap.Score
	g.ctx.LastRound = snap.Round
	g.sm.SetState(NewMenuState(g.sm, g.ctx))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap)
}

func (g *GameState) Exit() {
	if g.ctx.Audio != nil {
		g.game.EventDispatcher.Unsubscribe(event.SoundRequested, g.ctx.Audio)
	}
}
