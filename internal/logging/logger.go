// internal/logging/logger.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config string to a zerolog level. Unknown strings
// yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a timestamped console logger. With several writers every line
// goes to each of them; files get no color codes.
func New(level string, out io.Writer, extra ...io.Writer) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}}
	for _, w := range extra {
		writers = append(writers, zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true})
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}
