package app

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wordgrid/config"
)

// newLogger builds the run's logger from cfg without touching slog.Default.
// Durations are logged as whole milliseconds so stage timings line up with
// the "Algorithm took" line; every record carries the grid connectivity.
func newLogger(cfg *config.Config, logW io.Writer) *slog.Logger {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: durationMillis,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(logW, handlerOpts)
	}

	return slog.New(handler).With("conn", cfg.Connectivity)
}

func durationMillis(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.Int64(a.Key+"_ms", a.Value.Duration().Milliseconds())
	}
	return a
}

