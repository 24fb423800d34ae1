// pkg/render/arena_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"go-zombie-arena/internal/app"
	"go-zombie-arena/internal/assets"
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var powerUpIcons = map[defs.PowerUpType]string{
	defs.PowerUpNuke:       "N",
	defs.PowerUpSpeedBoost: "S",
	defs.PowerUpWeapon:     "W",
	defs.PowerUpLife:       "+",
	defs.PowerUpTreasure:   "$",
}

// ArenaRenderer draws a snapshot. The static map layer is rendered once
// per map and reused until the map changes.
type ArenaRenderer struct {
	width, height int
	sprites       *assets.SpriteManager
	rng           *rand.Rand
	mapImage      *ebiten.Image
	mapID         int
}

// NewArenaRenderer creates a renderer. sprites may be nil.
func NewArenaRenderer(width, height int, sprites *assets.SpriteManager, seed int64) *ArenaRenderer {
	return &ArenaRenderer{
		width:   width,
		height:  height,
		sprites: sprites,
		rng:     rand.New(rand.NewSource(seed)),
		mapID:   -1,
	}
}

// ShakeOffset picks this frame's camera jitter, uniform in
// [-shake/2, shake/2) on each axis.
func (r *ArenaRenderer) ShakeOffset(shake float64) (float64, float64) {
	if shake <= 0 {
		return 0, 0
	}
	return (r.rng.Float64() - 0.5) * shake, (r.rng.Float64() - 0.5) * shake
}

// Draw renders the whole arena for s.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	ox, oy := r.ShakeOffset(s.Shake)

	r.renderMapImage(s.Map)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(r.mapImage, op)

	r.drawPlayer(screen, s, ox, oy)
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e, s.Player.Position, ox, oy)
	}
	for _, b := range s.Bullets {
		radius, clr := float32(config.BulletRadius), config.BulletColor
		if b.Weapon == defs.WeaponGrenade {
			radius, clr = config.GrenadeRadius, config.GrenadeColor
		}
		vector.DrawFilledCircle(screen, float32(b.X+ox), float32(b.Y+oy), radius, clr, true)
	}
	for _, p := range s.PowerUps {
		clr := config.PowerUpColors[p.Type]
		vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), config.PowerUpRadius, clr, true)
		vector.StrokeCircle(screen, float32(p.X+ox), float32(p.Y+oy), config.PowerUpRadius, 1, DarkenColor(clr), true)
		DrawLabel(screen, powerUpIcons[p.Type], p.X+ox, p.Y+oy+4, 1, AlignCenter, color.White)
	}
	for _, p := range s.Particles {
		fade := math.Min(1, p.Life/config.ParticleMinLife)
		vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Size), Fade(p.Color, fade), true)
	}

	r.drawOverlays(screen, s, ox, oy)
}

func (r *ArenaRenderer) renderMapImage(m defs.MapDefinition) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.width, r.height)
	} else if r.mapID == m.ID {
		return
	}
	r.mapID = m.ID

	r.mapImage.Fill(m.Background)
	for x := 0; x < r.width; x += config.GridSpacing {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), float32(r.height), 1, m.Grid, false)
	}
	for y := 0; y < r.height; y += config.GridSpacing {
		vector.StrokeLine(r.mapImage, 0, float32(y), float32(r.width), float32(y), 1, m.Grid, false)
	}
	for _, d := range m.Decorations {
		vector.DrawFilledRect(r.mapImage, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), d.Color, false)
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, s app.Snapshot, ox, oy float64) {
	p := s.Player
	if img, ok := r.sprites.Sprite(assets.PlayerSprite); ok {
		drawRotated(screen, img, p.X+ox, p.Y+oy, config.PlayerSize, s.AimAngle+math.Pi/2)
		return
	}
	cx, cy := float32(p.X+ox), float32(p.Y+oy)
	vector.DrawFilledCircle(screen, cx, cy, config.PlayerSize/2, config.PlayerColor, true)
	tip := config.PlayerSize * 0.8
	vector.StrokeLine(screen, cx, cy,
		cx+float32(math.Cos(s.AimAngle)*tip), cy+float32(math.Sin(s.AimAngle)*tip),
		3, DarkenColor(config.PlayerColor), true)
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, e component.Enemy, player component.Position, ox, oy float64) {
	def := defs.Enemy(e.Type)
	if img, ok := r.sprites.Sprite(def.Sprite); ok {
		facing := math.Atan2(player.Y-e.Y, player.X-e.X)
		drawRotated(screen, img, e.X+ox, e.Y+oy, e.Size, facing+math.Pi/2)
	} else {
		vector.DrawFilledCircle(screen, float32(e.X+ox), float32(e.Y+oy), float32(e.Size/2), def.Color, true)
	}

	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		barW := float32(e.Size)
		x := float32(e.X+ox) - barW/2
		y := float32(e.Y+oy-e.Size/2) - config.HealthBarSpace
		frac := float32(e.Health) / float32(e.MaxHealth)
		vector.DrawFilledRect(screen, x, y, barW, config.HealthBarH, config.HealthBarBack, false)
		vector.DrawFilledRect(screen, x, y, barW*frac, config.HealthBarH, config.HealthBarFront, false)
	}
}

func (r *ArenaRenderer) drawOverlays(screen *ebiten.Image, s app.Snapshot, ox, oy float64) {
	w, h := float32(r.width), float32(r.height)
	cx, cy := float64(r.width)/2+ox, float64(r.height)/2+oy

	switch {
	case s.ExitsVisible:
		for _, exit := range s.Exits {
			vector.DrawFilledRect(screen, float32(exit.X+ox), float32(exit.Y+oy), float32(exit.W), float32(exit.H), config.ExitColor, false)
		}
		DrawLabel(screen, "CHOOSE AN EXIT", cx, cy, 2, AlignCenter, color.Black)
	case s.RoundComplete:
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 204}, false)
		DrawLabel(screen, fmt.Sprintf("ROUND %d COMPLETE!", s.Round), cx, cy, 3, AlignCenter, color.White)
		DrawLabel(screen, "Next round starting...", cx, cy+50, 2, AlignCenter, color.White)
	}

	if s.Paused {
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 178}, false)
		DrawLabel(screen, "PAUSED", cx, cy, 3, AlignCenter, color.White)
		DrawLabel(screen, "Press SPACE to continue", cx, cy+50, 2, AlignCenter, color.White)
	}
	if s.GameOver {
		vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)
		DrawLabel(screen, "GAME OVER", cx, cy-40, 3, AlignCenter, config.BossRoundColor)
		DrawLabel(screen, fmt.Sprintf("Final Score: %d", s.Score), cx, cy, 2, AlignCenter, color.White)
		DrawLabel(screen, fmt.Sprintf("Round Reached: %d", s.Round), cx, cy+30, 1.5, AlignCenter, config.TextLightColor)
		DrawLabel(screen, "Returning to menu...", cx, cy+60, 1, AlignCenter, config.TextLightColor)
	}
}

// drawRotated draws img centered on (x, y), scaled to size and rotated by
// angle radians.
func drawRotated(screen, img *ebiten.Image, x, y, size, angle float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
