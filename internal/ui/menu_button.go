// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-zombie-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton is a plain labeled button for the menu.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	Scale   float64
	bgColor color.RGBA
	fgColor color.RGBA
}

// NewMenuButton creates a menu button.
func NewMenuButton(rect image.Rectangle, text string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		Scale:   2,
		bgColor: color.RGBA{128, 128, 128, 255},
		fgColor: color.RGBA{0, 0, 0, 255},
	}
}

// Draw renders the button.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{200, 200, 200, 255}, false)

	scale := b.Scale
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	baseline := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2 + 5*scale
	render.DrawLabel(screen, b.Text, cx, baseline, scale, render.AlignCenter, b.fgColor)
}

// IsClicked reports whether the screen point (x, y) is on the button.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
