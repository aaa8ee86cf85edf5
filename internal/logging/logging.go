// Package logging provides structured logging setup for imobdesk.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup initializes the default slog logger.
// Dev mode uses human-readable text at debug level; prod uses JSON at
// info level. IMOB_LOG_LEVEL overrides the level in either mode.
func Setup(devMode bool) {
	level := slog.LevelInfo
	if devMode {
		level = slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("IMOB_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
