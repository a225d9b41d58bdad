// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the prompt tracker binaries.
//
// The server logs JSON to stdout with a role, a timestamp and the calling
// function on every entry; the command-line client logs human-readable lines
// to stderr. Request handlers never hold a logger of their own: they look the
// request-scoped one up with FromContext or FromRequest, which the transport
// middlewares attach together with the trace id.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the log field carrying the id shared by one HTTP request or
// gRPC call.
const TraceIDField = "trace_id"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a long-running process. Every entry
// carries role, a timestamp and, under "func", the name of the function that
// logged it. It lowers the global level to Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().Str("role", role).Timestamp().Caller().Logger(),
	}
}

// NewConsoleLogger returns an Info-level logger writing human-readable lines
// to os.Stderr, keeping os.Stdout free for command output.
func NewConsoleLogger(role string) *Logger {
	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(zerolog.InfoLevel).
			With().Str("role", role).Timestamp().
			Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagged with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one, zerolog's default logger is returned; the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
