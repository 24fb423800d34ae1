// cmd/game/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go-zombie-arena/internal/assets"
	"go-zombie-arena/internal/audio"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/logging"
	"go-zombie-arena/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".", "./configs")
	if err != nil {
		return err
	}

	var extra []io.Writer
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		extra = append(extra, f)
	}
	logger := logging.New(settings.LogLevel, os.Stderr, extra...)
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")

	player := audio.NewPlayer(settings.Audio, logger)
	defer player.Close()

	sprites := assets.NewSpriteManager(settings.Assets.SpritesDir, nil, logger)
	sprites.LoadAll(defs.EnemyLibrary)
	defer sprites.Cleanup()

	ctx := &state.Context{
		Settings: settings,
		Logger:   logger,
		Audio:    player,
		Sprites:  sprites,
		Keys:     state.EbitenKeys{},
	}
	sm := state.NewStateMachine()
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		sm.SetState(state.NewGameState(sm, ctx))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	w := int(float64(config.ScreenWidth) * settings.Window.Scale)
	h := int(float64(config.ScreenHeight) * settings.Window.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	logger.Info().Msg("Shutting down")
	return nil
}
