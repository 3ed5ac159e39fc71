package freud

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ernie2k/freud/box"
)

// Logger wraps slog.Logger with engine-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSymmetry adds a symmetry order field to the logger.
func (l *Logger) WithSymmetry(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("symmetry", k),
	}
}

// WithCount adds a particle count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogUpdateBox logs a box update. rebuilt reports whether the neighbor
// finder was rebuilt for the new box.
func (l *Logger) LogUpdateBox(ctx context.Context, b box.Box, rebuilt bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "box update failed",
			"lx", b.Lx,
			"ly", b.Ly,
			"lz", b.Lz,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "box update completed",
			"lx", b.Lx,
			"ly", b.Ly,
			"lz", b.Lz,
			"rebuilt", rebuilt,
		)
	}
}

// LogCompute logs a compute pass.
func (l *Logger) LogCompute(ctx context.Context, n int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute failed",
			"count", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compute completed",
			"count", n,
			"duration", duration,
		)
	}
}
