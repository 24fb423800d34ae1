// internal/state/context.go
package state

import (
	"go-zombie-arena/internal/assets"
	"go-zombie-arena/internal/audio"
	"go-zombie-arena/internal/config"

	"github.com/rs/zerolog"
)

// Context carries the host resources every state shares. Audio and Sprites
// may be nil.
type Context struct {
	Settings *config.Settings
	Logger   zerolog.Logger
	Audio    *audio.Player
	Sprites  *assets.SpriteManager
	Keys     KeySource

	// LastScore and LastRound describe the most recent finished session.
	LastScore int
	LastRound int
}
