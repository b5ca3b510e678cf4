package cgraph

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with cgraph-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithNodes adds a node count field to the logger.
func (l *Logger) WithNodes(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("nodes", n),
	}
}

// WithQuery adds a query kind field to the logger.
func (l *Logger) WithQuery(kind QueryKind) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", kind.String()),
	}
}

// LogCompile logs a compile pass.
func (l *Logger) LogCompile(nodes, edges int, directed bool, duration time.Duration, err error) {
	if err != nil {
		l.Error("compile failed",
			"nodes", nodes,
			"error", err,
		)
		return
	}
	l.Info("compile completed",
		"nodes", nodes,
		"edges", edges,
		"directed", directed,
		"duration", duration,
	)
}

// LogNegativeWeights warns about edge weights that break the non-negative
// precondition of the shortest path queries.
func (l *Logger) LogNegativeWeights(count int) {
	l.Warn("negative edge weights",
		"count", count,
	)
}

// LogQuery logs a finished query.
func (l *Logger) LogQuery(kind QueryKind, settled int, duration time.Duration) {
	l.Debug("query completed",
		"query", kind.String(),
		"settled", settled,
		"duration", duration,
	)
}
