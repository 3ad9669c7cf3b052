package raggo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with raggo-specific context.
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

// LogMove logs a memory-space migration. Move carries no context, so
// unlike the snapshot logs this one is context-free.
func (l *Logger) LogMove(space string, touch bool, err error) {
	if err != nil {
		l.Error("move failed",
			"space", space,
			"touch", touch,
			"error", err,
		)
	} else {
		l.Debug("move completed",
			"space", space,
			"touch", touch,
		)
	}
}

// LogSave logs a snapshot save.
func (l *Logger) LogSave(ctx context.Context, arrays, values int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"arrays", arrays,
			"values", values,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "save completed",
			"arrays", arrays,
			"values", values,
		)
	}
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, arrays, values int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"arrays", arrays,
			"values", values,
		)
	}
}
