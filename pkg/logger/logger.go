package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init configures the global JSON logger. The level can be overridden
// through LOG_LEVEL (debug, info, warn, error); default is info.
func Init() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
