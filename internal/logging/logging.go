package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLoggerWithWriter creates a logger writing to w. The CLI passes stderr,
// since stdout carries the simulation trace and report.
//
// format: "console" (human-readable) or "json" (structured)
func NewLoggerWithWriter(level zerolog.Level, format string, w io.Writer) zerolog.Logger {
	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel for unrecognized values.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
