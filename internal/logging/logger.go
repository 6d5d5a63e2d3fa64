// Package logging defines a minimal structured-logging interface used across
// the project, with slog and zap backed implementations.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "plan saved", "plan_id", id, "mirror", "queued")
type Logger interface {
	// Debug logs diagnostic detail that is off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported values for the log format setting.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds the Logger selected by format. Unknown formats fall back to text.
func New(format string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil)))
	case FormatZap:
		return NewZapLogger(newZapCore(w))
	default:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, nil)))
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
