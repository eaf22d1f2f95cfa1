package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/classline/backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and installs
// it via slog.SetDefault. Format "json" is the production handler; "text"
// adds source locations for development. Level is debug/info/warn/error
// (case-insensitive, default info). Output goes to os.Stderr, keeping stdout
// free for the cleanup binaries' summaries.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
