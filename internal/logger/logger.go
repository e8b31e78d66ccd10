// Package logger holds the process-wide structured logger. Until Setup is
// called, and after its cleanup runs, everything logged is discarded.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

type Config struct {
	// Debug enables logging at debug level. Without it, nothing is logged.
	Debug bool
	// Out receives log records when Debug is set.
	Out io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the logger described by cfg and returns a function that
// restores the discarding logger.
func Setup(cfg Config) func() {
	l := discard()
	if cfg.Debug && cfg.Out != nil {
		l = slog.New(slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))
	}

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized")

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
