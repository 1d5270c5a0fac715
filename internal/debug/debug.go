// Package debug provides an opt-in diagnostic logger written to stderr.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// SetEnabled turns debug logging on or off.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// SetOutput redirects debug output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Log writes a structured debug record when debug logging is on.
func Log(msg string, args ...any) {
	mu.RLock()
	on, l := enabled, logger
	mu.RUnlock()
	if !on {
		return
	}
	l.Debug(msg, args...)
}
