package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Log output encodings.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// levelAliases are level spellings accepted on top of the slog names.
var levelAliases = map[string]slog.Level{
	"warning": slog.LevelWarn,
	"err":     slog.LevelError,
}

// Logger selects the level and encoding of the service log.
type Logger struct {
	// Level is a slog level name such as "debug" or "warn+2".
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is "text" or "json".
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel resolves Level, case-insensitively. Anything unrecognised logs
// at info.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if lvl, ok := levelAliases[name]; ok {
		return lvl
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SlogFormat returns LogFormatJSON when asked for it and LogFormatText
// otherwise.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), LogFormatJSON) {
		return LogFormatJSON
	}
	return LogFormatText
}

// NewLogger builds a slog.Logger writing to w with the configured level and
// format.
func (c Logger) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.SlogFormat() == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
