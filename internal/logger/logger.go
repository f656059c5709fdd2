// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout go-dotenv-flow.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options controls how NewLogger builds a logger.
type Options struct {
	// Output is where entries are written. Defaults to os.Stderr so that
	// stdout stays reserved for the resolved variables.
	Output io.Writer
	// Level is the minimum level emitted.
	Level zerolog.Level
	// JSON selects machine-readable output instead of the console writer.
	JSON bool
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "dotenv-flow").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     tools sharing one log stream;
//   - a "ts" timestamp field added to every log entry;
//   - in JSON mode, a "func" caller field that records the fully-qualified
//     function name (instead of the default file:line format).
func NewLogger(role string, opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	ctx := zerolog.New(out).Level(opts.Level).With().
		Str("role", role).
		Timestamp()
	if opts.JSON {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRunID returns a child logger tagging every entry with run_id.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{l.With().Str("run_id", id).Logger()}
}
