// internal/defs/types.go
package defs

// WeaponType names a player weapon.
type WeaponType string

const (
	WeaponPistol  WeaponType = "pistol"
	WeaponRifle   WeaponType = "rifle"
	WeaponShotgun WeaponType = "shotgun"
	WeaponGrenade WeaponType = "grenade"
)

// EnemyType names an enemy archetype.
type EnemyType string

const (
	EnemyZombie    EnemyType = "zombie"
	EnemyHellhound EnemyType = "hellhound"
	EnemyCrawler   EnemyType = "crawler"
	EnemyBoss      EnemyType = "boss"
)

// PowerUpType names a collectible kind.
type PowerUpType string

const (
	PowerUpNuke       PowerUpType = "nuke"
	PowerUpSpeedBoost PowerUpType = "speedboost"
	PowerUpWeapon     PowerUpType = "weapon"
	PowerUpLife       PowerUpType = "life"
	PowerUpTreasure   PowerUpType = "treasure"
)

// SoundID is the name of a fire-and-forget sound cue.
type SoundID string

const (
	SoundPistol    SoundID = "pistol"
	SoundRifle     SoundID = "rifle"
	SoundShotgun   SoundID = "shotgun"
	SoundGrenade   SoundID = "grenade"
	SoundExplosion SoundID = "explosion"
	SoundPowerUp   SoundID = "powerup"
	SoundHurt      SoundID = "hurt"
)
