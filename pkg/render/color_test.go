package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColorKeepsAlpha(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 200}
	assert.Equal(t, c, Fade(c, 1.5))
	assert.Equal(t, color.RGBA{}, Fade(c, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 100}, Fade(c, 0.5))
}

func TestShakeOffsetStaysInRange(t *testing.T) {
	r := NewArenaRenderer(800, 600, nil, 42)

	x, y := r.ShakeOffset(0)
	assert.Zero(t, x)
	assert.Zero(t, y)

	for i := 0; i < 200; i++ {
		x, y = r.ShakeOffset(15)
		assert.GreaterOrEqual(t, x, -7.5)
		assert.Less(t, x, 7.5)
		assert.GreaterOrEqual(t, y, -7.5)
		assert.Less(t, y, 7.5)
	}
}
