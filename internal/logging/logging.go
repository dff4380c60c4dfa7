// Package logging configures the process-wide structured logger
// (SPEC_FULL.md A.2).
//
// Grounded on rendis-doc-assembly's cmd/api/main.go: a slog.JSONHandler
// (or slog.TextHandler for local/dev use) installed as the default
// logger, invoked via the Context-suffixed slog functions so every log
// site can carry request/job-scoped values without a custom wrapper
// type.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// Configure installs the process-wide slog default logger per level
// ("debug"|"info"|"warn"|"error") and format ("json"|"text").
func Configure(level, format string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithFields returns a context carrying a logger pre-populated with the
// given key/value pairs, so downstream InfoContext/ErrorContext calls
// inherit them without repeating them at every call site.
func WithFields(ctx context.Context, args ...any) context.Context {
	logger := slog.Default().With(args...)
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}

// FromContext returns the logger attached by WithFields, or the
// process default if none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
