// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// NeoVault.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain scoped loggers
// via FromContext or GetChildLogger.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "nvctl",
// "neovault-tui") writing JSON to stderr.
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output goes to stderr rather than stdout so that command output (entry
// listings, secret content) stays machine-consumable.
func NewLogger(role string) *Logger {
	configureZerolog()

	logger := zerolog.New(os.Stderr).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs a *Logger for the interactive TUI client. The
// TUI owns the terminal (alternate screen), so log output goes to a "logs"
// file next to the executable instead; stderr is the fallback when that file
// cannot be opened.
func NewClientLogger(role string) *Logger {
	configureZerolog()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stderr
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetGlobalLevel applies the given level string ("debug", "info", "warn",
// "error", ...) process-wide. Unparseable levels are ignored and the current
// level is kept.
func SetGlobalLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// configureZerolog applies the process-wide zerolog settings shared by all
// constructors: debug level by default and fully-qualified function names in
// the "func" caller field.
func configureZerolog() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}
