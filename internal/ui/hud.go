// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"go-zombie-arena/internal/app"
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	scoreColor  = color.RGBA{74, 222, 128, 255}
	weaponColor = color.RGBA{96, 165, 250, 255}
	nukeColor   = color.RGBA{250, 204, 21, 255}
	boostColor  = color.RGBA{34, 211, 238, 255}
	panelColor  = color.RGBA{0, 0, 0, 128}
)

const hudHeight = 28

// HUD draws the status strip across the top of the arena.
type HUD struct {
	Wave        *WaveIndicator
	Lives       *PlayerHealthIndicator
	PauseButton *PauseButton
	MenuButton  *MenuButton
}

// NewHUD lays the HUD out for a width x height arena. The menu button sits
// in the bottom-right corner, clear of the status strip.
func NewHUD(width, height float64) *HUD {
	menu := NewMenuButton(image.Rect(int(width)-90, int(height)-34, int(width)-10, int(height)-10), "MENU")
	menu.Scale = 1
	return &HUD{
		MenuButton:  menu,
		Wave:        NewWaveIndicator(width/2, 20, 1.5),
		Lives:       NewPlayerHealthIndicator(8, 8),
		PauseButton: NewPauseButton(float32(width-20), 14, 10, color.White, config.DamageColor),
	}
}

// WeaponLabel formats the weapon slot, e.g. "RIFLE (42)". The pistol shows
// no ammo count.
func WeaponLabel(p component.Player) string {
	label := strings.ToUpper(string(p.Weapon))
	if p.UnlimitedAmmo() {
		return label
	}
	return fmt.Sprintf("%s (%d)", label, p.WeaponAmmo)
}

// Draw renders the HUD for s.
func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, hudHeight, panelColor, false)

	h.Lives.Draw(screen, s.Player.Lives, config.PlayerLives, config.MaxLives)
	h.Wave.Draw(screen, s.Round)

	render.DrawLabel(screen, fmt.Sprintf("SCORE %d", s.Score), float64(w)/2+60, 18, 1, render.AlignLeft, scoreColor)
	render.DrawLabel(screen, WeaponLabel(s.Player), float64(w)-260, 18, 1, render.AlignLeft, weaponColor)
	render.DrawLabel(screen, fmt.Sprintf("N:%d", s.Player.Nukes), float64(w)-130, 18, 1, render.AlignLeft, nukeColor)
	boost := fmt.Sprintf("B:%d", s.Player.SpeedBoosts)
	if s.Player.Boosted {
		boost += "*"
	}
	render.DrawLabel(screen, boost, float64(w)-90, 18, 1, render.AlignLeft, boostColor)

	h.PauseButton.IsPaused = s.Paused
	h.PauseButton.Draw(screen)
	if !s.GameOver {
		h.MenuButton.Draw(screen)
	}
}

// OnButton reports whether the screen point (x, y) is on a HUD button.
func (h *HUD) OnButton(x, y int) bool {
	return h.PauseButton.Contains(x, y) || h.MenuButton.IsClicked(x, y)
}
