// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType
	Size   float64
	Speed  float64 // pixels per tick before jitter
	Health int
	Score  int // awarded on a bullet kill
	Sprite string
	Color  color.RGBA // death burst and fallback body color
}

// EnemyLibrary is the library of all enemy definitions, keyed by type.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyZombie:    {Type: EnemyZombie, Size: 24, Speed: 1.5, Health: 1, Score: 100, Sprite: "zombie.png", Color: color.RGBA{74, 222, 128, 255}},
	EnemyHellhound: {Type: EnemyHellhound, Size: 22, Speed: 3, Health: 2, Score: 100, Sprite: "hellhound.png", Color: color.RGBA{239, 68, 68, 255}},
	EnemyCrawler:   {Type: EnemyCrawler, Size: 20, Speed: 2.5, Health: 1, Score: 100, Sprite: "crawler.png", Color: color.RGBA{168, 85, 247, 255}},
	EnemyBoss:      {Type: EnemyBoss, Size: 40, Speed: 1, Health: 10, Score: 500, Sprite: "boss.png", Color: color.RGBA{250, 204, 21, 255}},
}

// Enemy returns the definition for t, falling back to the zombie.
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[EnemyZombie]
}
