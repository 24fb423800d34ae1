// internal/config/config.go
package config

import (
	"go-zombie-arena/internal/defs"
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	PlayerSize      = 24.0
	PlayerBaseSpeed = 4.0
	PlayerLives     = 3
	MaxLives        = 9
	StartNukes      = 1
	StartBoosts     = 2

	BulletSpeed     = 12.0
	BulletHitRadius = 5.0
	BulletMargin    = 10.0

	PickupRadius   = 25.0
	SpawnOffset    = 30.0
	ExitSize       = 60.0
	GridSpacing    = 50
	BulletRadius   = 3.0
	GrenadeRadius  = 6.0
	PowerUpRadius  = 12.0
	HealthBarH     = 4.0
	HealthBarSpace = 8.0

	BoostMultiplier = 1.5
	BoostDuration   = 5 * time.Second
	RoundDelay      = 3 * time.Second
	GameOverDelay   = 3 * time.Second

	KillScoreNuke  = 50
	TreasureScore  = 1000
	HitSparkCount  = 3
	DeathBurst     = 15
	DamageBurst    = 10
	ShakeOnNuke    = 15.0
	ShakeDecay     = 0.9
	ShakeThreshold = 0.1

	ParticleMinSpeed = 1.0
	ParticleSpeedVar = 3.0
	ParticleMinSize  = 1.0
	ParticleSizeVar  = 2.0
	ParticleMinLife  = 20.0
	ParticleLifeVar  = 10.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{56, 189, 248, 255}
	BulletColor     = color.RGBA{0xfb, 0xbf, 0x24, 255}
	GrenadeColor    = color.RGBA{0xff, 0x6b, 0x35, 255}
	HitSparkColor   = color.RGBA{0xff, 0xcc, 0x00, 255}
	DamageColor     = color.RGBA{0x22, 0xc5, 0x5e, 255}
	ExitColor       = color.RGBA{0xfd, 0xe0, 0x47, 255}
	HealthBarBack   = color.RGBA{0xff, 0, 0, 255}
	HealthBarFront  = color.RGBA{0, 0xff, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 200}
	BossRoundColor  = color.RGBA{220, 60, 60, 255}
	RoundColor      = color.RGBA{168, 85, 247, 255}
	PowerUpColors   = map[defs.PowerUpType]color.RGBA{
		defs.PowerUpNuke:       {0xff, 0, 0, 255},
		defs.PowerUpSpeedBoost: {0, 0xff, 0, 255},
		defs.PowerUpWeapon:     {0, 0, 0xff, 255},
		defs.PowerUpLife:       {0xff, 0x69, 0xb4, 255},
		defs.PowerUpTreasure:   {0xff, 0xd7, 0, 255},
	}
)
