// internal/defs/weapons.go
package defs

import "time"

// UnlimitedAmmo marks a weapon that never runs dry.
const UnlimitedAmmo = -1

// WeaponDefinition holds the static data for a weapon.
type WeaponDefinition struct {
	Type     WeaponType
	Damage   int
	FireRate time.Duration // minimum interval between shots
	MaxAmmo  int           // UnlimitedAmmo for the pistol
	Pellets  int           // bullets spawned per trigger pull
	Spread   float64       // max absolute angular offset per pellet, radians
	Sound    SoundID
}

// Unlimited reports whether the weapon ignores ammo.
func (d WeaponDefinition) Unlimited() bool {
	return d.MaxAmmo == UnlimitedAmmo
}

// WeaponLibrary is keyed by weapon type.
var WeaponLibrary = map[WeaponType]WeaponDefinition{
	WeaponPistol:  {Type: WeaponPistol, Damage: 1, FireRate: 200 * time.Millisecond, MaxAmmo: UnlimitedAmmo, Pellets: 1, Sound: SoundPistol},
	WeaponRifle:   {Type: WeaponRifle, Damage: 2, FireRate: 100 * time.Millisecond, MaxAmmo: 60, Pellets: 1, Sound: SoundRifle},
	WeaponShotgun: {Type: WeaponShotgun, Damage: 3, FireRate: 400 * time.Millisecond, MaxAmmo: 20, Pellets: 5, Spread: 0.25, Sound: SoundShotgun},
	WeaponGrenade: {Type: WeaponGrenade, Damage: 5, FireRate: 800 * time.Millisecond, MaxAmmo: 10, Pellets: 1, Sound: SoundGrenade},
}

// PickupWeapons are the weapons a weapon power-up can grant.
var PickupWeapons = []WeaponType{WeaponRifle, WeaponShotgun, WeaponGrenade}

// Weapon returns the definition for t, falling back to the pistol.
func Weapon(t WeaponType) WeaponDefinition {
	if def, ok := WeaponLibrary[t]; ok {
		return def
	}
	return WeaponLibrary[WeaponPistol]
}
