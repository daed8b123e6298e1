package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	// Standardize 'error' key to 'err'
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// New creates a configured application logger.
// It writes to Stderr (to separate the trace and result on Stdout).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}))
}

// NewWithFile fans records out to Stderr and, as JSON lines, to the file at path.
// The returned closer releases the file.
func NewWithFile(level slog.Level, path string) (*slog.Logger, io.Closer, error) {
	return newFanout(os.Stderr, level, path)
}

func newFanout(w io.Writer, level slog.Level, path string) (*slog.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceAttr}
	handler := slogmulti.Fanout(
		slog.NewTextHandler(w, opts),
		slog.NewJSONHandler(f, opts),
	)
	return slog.New(handler), f, nil
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
