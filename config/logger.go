package config

import (
	"log/slog"
	"os"
	"strings"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the application logger from GO_ENV and LOG_LEVEL.
// Production logs JSON to stdout; everything else logs human-readable text.
// Unknown LOG_LEVEL values fall back to info.
func NewLogger() *slog.Logger {
	level, ok := logLevels[strings.ToLower(os.Getenv("LOG_LEVEL"))]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
