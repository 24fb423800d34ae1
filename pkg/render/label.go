// pkg/render/label.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face used for every label.
var DefaultFace font.Face = basicfont.Face7x13

// Align positions a label relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// DrawLabel draws s at (x, y) scaled by scale. y is the baseline.
func DrawLabel(screen *ebiten.Image, s string, x, y, scale float64, align Align, clr color.Color) {
	if s == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if align == AlignCenter {
		x -= LabelWidth(s, scale) / 2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, DefaultFace, op)
}

// LabelWidth is the drawn width of s at scale.
func LabelWidth(s string, scale float64) float64 {
	return float64(text.BoundString(DefaultFace, s).Dx()) * scale
}
