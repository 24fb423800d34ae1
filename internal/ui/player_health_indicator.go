// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeCols          = 9
	LifeCircleRadius  = 6.0
	LifeCircleSpacing = 4.0
)

var (
	lifeFull  = color.RGBA{239, 68, 68, 255}
	lifeExtra = color.RGBA{59, 130, 246, 255}
	lifeEmpty = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator shows lives as a row of circles.
type PlayerHealthIndicator struct {
	X, Y float64
}

// NewPlayerHealthIndicator creates an indicator with its top-left at (x, y).
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// LifeColor picks the color of slot j. Lives above the starting count are
// drawn blue.
func LifeColor(j, lives, starting int) color.RGBA {
	switch {
	case j >= lives:
		return lifeEmpty
	case j >= starting:
		return lifeExtra
	default:
		return lifeFull
	}
}

// Draw renders lives out of maxLives.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, lives, starting, maxLives int) {
	step := LifeCircleRadius*2 + LifeCircleSpacing
	for j := 0; j < maxLives; j++ {
		col := j % LifeCols
		row := j / LifeCols
		cx := float32(i.X + float64(col)*step + LifeCircleRadius)
		cy := float32(i.Y + float64(row)*step + LifeCircleRadius)
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, LifeColor(j, lives, starting), true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	render.DrawLabel(screen, label, i.X+float64(LifeCols)*step+4, i.Y+LifeCircleRadius+4, 1, render.AlignLeft, color.White)
}
