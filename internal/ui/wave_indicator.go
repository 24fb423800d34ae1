// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator shows the current round in roman numerals.
type WaveIndicator struct {
	X, Y             float64
	Scale            float64
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator creates an indicator centered on x with its baseline at y.
func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Scale:            scale,
		Color:            config.RoundColor,
		BossColor:        config.BossRoundColor,
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// ColorFor returns the text color for round; boss rounds are red.
func (i *WaveIndicator) ColorFor(round int) color.RGBA {
	if defs.IsBossRound(round) {
		return i.BossColor
	}
	return i.Color
}

// Draw renders the indicator.
func (i *WaveIndicator) Draw(screen *ebiten.Image, round int) {
	if round <= 0 {
		return
	}
	text := toRoman(round)

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			render.DrawLabel(screen, text, i.X+float64(x), i.Y+float64(y), i.Scale, render.AlignCenter, i.OutlineColor)
		}
	}
	render.DrawLabel(screen, text, i.X, i.Y, i.Scale, render.AlignCenter, i.ColorFor(round))
}
