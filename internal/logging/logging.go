// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(cfg.LogLevel())  // level from config, LOG_LEVEL env wins
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// EnvLogLevel overrides the configured level when set
const EnvLogLevel = "LOG_LEVEL"

// Setup installs the default logger writing to stderr. LOG_LEVEL, when set
// to a known level, overrides fallback.
func Setup(fallback slog.Level) {
	slog.SetDefault(New(os.Stderr, levelFromEnv(fallback)))
}

// New builds a tint logger at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    w != os.Stderr && w != os.Stdout,
	}))
}

func levelFromEnv(fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(EnvLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
