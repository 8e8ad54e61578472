// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the document manager.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Request handlers, services and repositories obtain the logger
// of the current request with FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to stdout for the given role
// label (e.g. "server", "worker").
//
// Every entry carries the "role" field, a timestamp and a "func" caller field
// holding the function name instead of file:line. The global level is set to
// Debug; call SetLevel to raise it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global log level. An empty level keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// fields without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithUserID returns a context whose logger carries the "user_id" field.
func WithUserID(ctx context.Context, userID int64) context.Context {
	l := FromContext(ctx).With().Int64("user_id", userID).Logger()
	return l.WithContext(ctx)
}
