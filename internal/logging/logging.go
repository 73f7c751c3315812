package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration.
type Config struct {
	Output io.Writer
	Debug  bool
	JSON   bool
}

// New creates a logger for launcher diagnostics.
// Without Debug nothing is written, so the test run's output stays untouched.
func New(cfg Config) *slog.Logger {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler)
	}

	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler).With("component", "upset-launcher")
}
