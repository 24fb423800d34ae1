// internal/logging/events.go
package logging

import (
	"go-zombie-arena/internal/event"

	"github.com/rs/zerolog"
)

// EventLogger writes gameplay events to a logger. Round boundaries and the
// end of a session are info; everything per-tick is debug. Sound requests
// are trace only.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an EventLogger wrapping logger.
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// OnEvent implements event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Sound:
		l.logger.Trace().Uint64("tick", e.Tick).Str("sound", string(data.ID)).Msg("sound")
	case event.Kill:
		ev := l.logger.Debug().Uint64("tick", e.Tick).
			Uint64("enemy", uint64(data.EnemyID)).
			Str("type", string(data.Type)).
			Int("score", data.Score)
		if data.Dropped != "" {
			ev = ev.Str("drop", string(data.Dropped))
		}
		ev.Msg("enemy killed")
	case event.Hurt:
		l.logger.Debug().Uint64("tick", e.Tick).Int("lives", data.LivesLeft).Msg("player hurt")
	case event.Pickup:
		ev := l.logger.Debug().Uint64("tick", e.Tick).Str("type", string(data.Type))
		if data.Weapon != "" {
			ev = ev.Str("weapon", string(data.Weapon))
		}
		ev.Msg("power-up collected")
	case event.Round:
		msg := "round started"
		if e.Type == event.RoundCleared {
			msg = "round cleared"
		}
		l.logger.Info().Uint64("tick", e.Tick).
			Int("round", data.Round).
			Int("enemies", data.Enemies).
			Bool("exits", data.Exits).
			Msg(msg)
	case event.MapChange:
		l.logger.Info().Uint64("tick", e.Tick).Int("map", data.MapID).Str("via", string(data.Via)).Msg("map changed")
	case event.Nuke:
		l.logger.Debug().Uint64("tick", e.Tick).Int("cleared", data.Cleared).Int("score", data.Score).Msg("nuke detonated")
	case event.Final:
		l.logger.Info().Uint64("tick", e.Tick).Int("score", data.Score).Int("round", data.Round).Msg("game over")
	default:
		l.logger.Debug().Uint64("tick", e.Tick).Str("event", string(e.Type)).Msg("event")
	}
}
