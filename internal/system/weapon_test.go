package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-zombie-arena/internal/config"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/input"
)

func trigger(x, y float64) input.State {
	in := input.NewState().AimAt(x, y)
	in.PointerHeld = true
	return in
}

func TestPistolFiresOneBulletTowardPointer(t *testing.T) {
	ecs, d, rec := newWorld()
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)

	n := s.Update(0, trigger(500, 300))

	require.Equal(t, 1, n)
	require.Len(t, ecs.Bullets, 1)
	b := ecs.Bullets[0]
	assert.InDelta(t, config.BulletSpeed, b.DX, 1e-9)
	assert.InDelta(t, 0, b.DY, 1e-9)
	assert.Equal(t, 1, b.Damage)
	assert.Equal(t, defs.UnlimitedAmmo, ecs.Player.WeaponAmmo)
	assert.Equal(t, []defs.SoundID{defs.SoundPistol}, rec.sounds())
}

func TestTriggerReleasedDoesNothing(t *testing.T) {
	ecs, d, _ := newWorld()
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)

	assert.Zero(t, s.Update(0, input.NewState().AimAt(500, 300)))
	assert.Empty(t, ecs.Bullets)
}

func TestFireRateGate(t *testing.T) {
	ecs, d, _ := newWorld()
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)
	in := trigger(500, 300)

	assert.Equal(t, 1, s.Update(0, in))
	assert.Zero(t, s.Update(199*time.Millisecond, in))
	assert.Equal(t, 1, s.Update(200*time.Millisecond, in))
	assert.Len(t, ecs.Bullets, 2)
}

func TestShotgunSpreadsFivePellets(t *testing.T) {
	ecs, d, _ := newWorld()
	ecs.Player.Equip(defs.WeaponShotgun)
	rolls := &scriptedRand{floats: []float64{0, 0.25, 0.5, 0.75, 0.999}}
	s := NewWeaponSystem(ecs, rolls, d)

	require.Equal(t, 5, s.Update(0, trigger(500, 300)))
	require.Len(t, ecs.Bullets, 5)

	for _, b := range ecs.Bullets {
		angle := math.Atan2(b.DY, b.DX)
		assert.LessOrEqual(t, math.Abs(angle), 0.25+1e-9)
		assert.InDelta(t, config.BulletSpeed, math.Hypot(b.DX, b.DY), 1e-9)
		assert.Equal(t, 3, b.Damage)
	}
	assert.InDelta(t, -0.25, math.Atan2(ecs.Bullets[0].DY, ecs.Bullets[0].DX), 1e-9)
	assert.InDelta(t, 0, math.Atan2(ecs.Bullets[2].DY, ecs.Bullets[2].DX), 1e-9)
	assert.Equal(t, 19, ecs.Player.WeaponAmmo, "one ammo per trigger pull")
}

func TestLastRoundDowngradesToPistol(t *testing.T) {
	ecs, d, rec := newWorld()
	ecs.Player.Equip(defs.WeaponRifle)
	ecs.Player.WeaponAmmo = 1
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)

	require.Equal(t, 1, s.Update(0, trigger(500, 300)))
	assert.Equal(t, 2, ecs.Bullets[0].Damage, "the last shot is still a rifle shot")
	assert.Equal(t, defs.WeaponPistol, ecs.Player.Weapon)
	assert.Equal(t, defs.UnlimitedAmmo, ecs.Player.WeaponAmmo)
	assert.Equal(t, []defs.SoundID{defs.SoundRifle}, rec.sounds())
}

func TestEmptyWeaponSkipsShot(t *testing.T) {
	ecs, d, rec := newWorld()
	ecs.Player.Weapon = defs.WeaponGrenade
	ecs.Player.WeaponAmmo = 0
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)

	assert.Zero(t, s.Update(0, trigger(500, 300)))
	assert.Empty(t, ecs.Bullets)
	assert.Equal(t, defs.WeaponPistol, ecs.Player.Weapon)
	assert.Empty(t, rec.sounds())

	assert.Equal(t, 1, s.Update(time.Millisecond, trigger(500, 300)), "the pistol is ready on the next tick")
}

func TestZeroLengthAimSpawnsNothing(t *testing.T) {
	ecs, d, rec := newWorld()
	ecs.Player.Equip(defs.WeaponRifle)
	s := NewWeaponSystem(ecs, &scriptedRand{}, d)
	p := ecs.Player.Position

	assert.Zero(t, s.Update(0, trigger(p.X, p.Y)))
	assert.Empty(t, ecs.Bullets)
	assert.Equal(t, 60, ecs.Player.WeaponAmmo)
	assert.Empty(t, rec.sounds())

	assert.Zero(t, s.Update(50*time.Millisecond, trigger(500, 300)), "the attempt consumed the gate")
	assert.Equal(t, 1, s.Update(100*time.Millisecond, trigger(500, 300)))
}
