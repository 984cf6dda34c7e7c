// Package logging builds the zerolog logger used across tidy.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Settings is the subset of configuration that affects logging.
type Settings interface {
	LogLevel() string
	LogJSON() bool
}

// New returns a logger writing to stderr.
func New(s Settings) zerolog.Logger {
	return NewWithWriter(os.Stderr, s)
}

// NewWithWriter returns a logger writing to out, as console output unless
// JSON logs were requested.
func NewWithWriter(out io.Writer, s Settings) zerolog.Logger {
	level := zerolog.InfoLevel
	jsonLogs := false
	if s != nil {
		level = ParseLevel(s.LogLevel())
		jsonLogs = s.LogJSON()
	}
	if !jsonLogs {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a level, falling back to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
