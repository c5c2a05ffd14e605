package gopatterns

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with gopatterns-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// OrNoop returns l, or a NoopLogger when l is nil.
func (l *Logger) OrNoop() *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// WithUser adds a user field to the logger.
func (l *Logger) WithUser(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("user", id),
	}
}

// LogFit logs a finished clustering run.
func (l *Logger) LogFit(ctx context.Context, strategy string, k, iterations, clusters int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"strategy", strategy,
			"k", k,
			"iterations", iterations,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "fit completed",
		"strategy", strategy,
		"k", k,
		"iterations", iterations,
		"clusters", clusters,
		"converged", converged,
	)
}

// LogActivity logs a recorded activity and its fan-out.
func (l *Logger) LogActivity(ctx context.Context, user, sport string, subscribers int, err error) {
	if err != nil {
		l.WarnContext(ctx, "activity notification failed",
			"user", user,
			"sport", sport,
			"subscribers", subscribers,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "activity saved",
		"user", user,
		"sport", sport,
		"subscribers", subscribers,
	)
}

// LogExport logs a report export.
func (l *Logger) LogExport(ctx context.Context, name string, size int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "report exported",
		"name", name,
		"bytes", size,
		"elapsed", elapsed,
	)
}
