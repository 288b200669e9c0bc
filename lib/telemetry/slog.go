package telemetry

import (
	"log/slog"
	"os"
	"strings"
)

// InitSlog configures the default slog handler. The level comes from the
// LOG_LEVEL environment variable (debug/info/warn/error), defaulting to
// info.
func InitSlog(addSource bool) {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})))
}
