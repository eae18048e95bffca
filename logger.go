package atomicbits

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with atomicbits-specific context.
// This provides structured logging with consistent field names.
//
// The bit operations never log; Logger serves the stress engine and tools.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWidth adds a width field to the logger.
func (l *Logger) WithWidth(w Width) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", w.String()),
	}
}

// WithWorker adds a worker field to the logger.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", id),
	}
}

// WithOrdering adds an ordering field to the logger.
func (l *Logger) WithOrdering(o Ordering) *Logger {
	return &Logger{
		Logger: l.Logger.With("ordering", o.String()),
	}
}

// LogWord logs the result of exercising one word type.
func (l *Logger) LogWord(ctx context.Context, kind string, ops, mismatches uint64, d time.Duration) {
	if mismatches > 0 {
		l.ErrorContext(ctx, "word check failed",
			"kind", kind,
			"ops", ops,
			"mismatches", mismatches,
			"duration", d,
		)
	} else {
		l.DebugContext(ctx, "word check completed",
			"kind", kind,
			"ops", ops,
			"duration", d,
		)
	}
}

// LogRun logs the outcome of a full stress run.
func (l *Logger) LogRun(ctx context.Context, words int, ops, mismatches uint64, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "stress run failed",
			"words", words,
			"ops", ops,
			"mismatches", mismatches,
			"duration", d,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "stress run completed",
			"words", words,
			"ops", ops,
			"duration", d,
		)
	}
}
