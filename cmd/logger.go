package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/labstack/gommon/log"
)

// NewLogger returns a JSON slog logger writing to w at the given level
// (debug, info, warn, error; unknown levels mean info).
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EchoLogLevel maps the same level names onto the gommon levels used by the
// Echo logger.
func EchoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
