package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyCountForRound(t *testing.T) {
	assert.Equal(t, 5, EnemyCountForRound(1))
	assert.Equal(t, 5, EnemyCountForRound(2))
	assert.Equal(t, 8, EnemyCountForRound(5))
	assert.Equal(t, 17, EnemyCountForRound(10))
	assert.Equal(t, 5, EnemyCountForRound(0))
}

func TestRoundKinds(t *testing.T) {
	assert.True(t, IsExitRound(5))
	assert.True(t, IsExitRound(10))
	assert.False(t, IsExitRound(4))
	assert.True(t, IsBossRound(10))
	assert.False(t, IsBossRound(5))
	assert.Equal(t, 0, HealthBonusForRound(2))
	assert.Equal(t, 3, HealthBonusForRound(10))
}

func TestExitPortals(t *testing.T) {
	exits := ExitPortals(800, 600, 60)
	assert.Equal(t, []Exit{
		{Rect: Rect{X: 370, Y: 0, W: 60, H: 30}, Side: ExitTop},
		{Rect: Rect{X: 370, Y: 570, W: 60, H: 30}, Side: ExitBottom},
		{Rect: Rect{X: 0, Y: 270, W: 30, H: 60}, Side: ExitLeft},
		{Rect: Rect{X: 770, Y: 270, W: 30, H: 60}, Side: ExitRight},
	}, exits)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.ContainsStrict(20, 20))
	assert.False(t, r.ContainsStrict(10, 20), "edges are outside")
	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 40}, r.Inflate(10))
}

func TestLibraryFallbacks(t *testing.T) {
	assert.Equal(t, EnemyZombie, Enemy("ghoul").Type)
	assert.Equal(t, WeaponPistol, Weapon("bow").Type)
	assert.True(t, Weapon(WeaponPistol).Unlimited())
	assert.Equal(t, 60, Weapon(WeaponRifle).MaxAmmo)
	assert.Len(t, MapLibrary, 5)
	for i, m := range MapLibrary {
		assert.Equal(t, i+1, m.ID)
	}
}
