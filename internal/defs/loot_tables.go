// internal/defs/loot_tables.go
package defs

// DropChance is the probability that a killed enemy leaves a power-up.
const DropChance = 0.15

// LootEntry is one row of a weighted drop table.
type LootEntry struct {
	PowerUp PowerUpType
	Weight  int
}

// PowerUpDrops is the drop table used on enemy death. Equal weights
// give a uniform pick over the five kinds.
var PowerUpDrops = []LootEntry{
	{PowerUp: PowerUpNuke, Weight: 1},
	{PowerUp: PowerUpSpeedBoost, Weight: 1},
	{PowerUp: PowerUpWeapon, Weight: 1},
	{PowerUp: PowerUpLife, Weight: 1},
	{PowerUp: PowerUpTreasure, Weight: 1},
}
