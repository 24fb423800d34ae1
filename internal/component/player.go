// internal/component/player.go
package component

import "go-zombie-arena/internal/defs"

// Player holds the single player's state. It is created once per
// session and never destroyed.
type Player struct {
	Position
	Lives       int
	Speed       float64
	Weapon      defs.WeaponType
	WeaponAmmo  int // defs.UnlimitedAmmo for the pistol
	SpeedBoosts int
	Nukes       int
	Boosted     bool
}

// UnlimitedAmmo reports whether the current weapon ignores ammo.
func (p *Player) UnlimitedAmmo() bool {
	return p.WeaponAmmo == defs.UnlimitedAmmo
}

// EquipPistol switches back to the default weapon.
func (p *Player) EquipPistol() {
	p.Weapon = defs.WeaponPistol
	p.WeaponAmmo = defs.UnlimitedAmmo
}

// Equip switches to weapon w with a full magazine.
func (p *Player) Equip(w defs.WeaponType) {
	def := defs.Weapon(w)
	p.Weapon = def.Type
	p.WeaponAmmo = def.MaxAmmo
}
