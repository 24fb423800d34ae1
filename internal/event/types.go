// internal/event/types.go
package event

import (
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/types"
)

const (
	SoundRequested      EventType = "SoundRequested"
	EnemyKilled         EventType = "EnemyKilled"
	PlayerHurt          EventType = "PlayerHurt"
	PowerUpCollected    EventType = "PowerUpCollected"
	RoundStarted        EventType = "RoundStarted"
	RoundCleared        EventType = "RoundCleared"
	MapChanged          EventType = "MapChanged"
	NukeDetonated       EventType = "NukeDetonated"
	SpeedBoostActivated EventType = "SpeedBoostActivated"
	SpeedBoostExpired   EventType = "SpeedBoostExpired"
	GameOver            EventType = "GameOver"
)

// Sound asks the audio collaborator to play a cue.
type Sound struct {
	ID     defs.SoundID
	Volume float64
}

// Kill describes an enemy removed by a bullet.
type Kill struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	Score   int
	Dropped defs.PowerUpType // empty when nothing dropped
}

// Hurt describes a life lost.
type Hurt struct {
	LivesLeft int
}

// Pickup describes a collected power-up.
type Pickup struct {
	PowerUpID types.EntityID
	Type      defs.PowerUpType
	Weapon    defs.WeaponType // set for weapon pickups
}

// Round describes a round boundary.
type Round struct {
	Round   int
	Enemies int
	Exits   bool
}

// MapChange describes an exit transition.
type MapChange struct {
	MapID int
	Via   defs.ExitSide
}

// Nuke describes a detonation.
type Nuke struct {
	Cleared int
	Score   int
}

// Final describes the end of a session.
type Final struct {
	Score int
	Round int
}
