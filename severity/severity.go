// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package severity

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the seriousness of a message, in ascending order.
type Level int

const (
	// Off disables a message entirely.
	Off Level = iota
	// Debug messages are only written while debug mode is active.
	Debug
	// Info is the default level of new messages.
	Info
	// Warn marks recoverable script problems.
	Warn
	// Error marks failed script operations.
	Error
	// Fatal marks failures that abort a script run.
	Fatal
)

// ErrUnknownLevel is returned by Parse for unrecognized level names.
var ErrUnknownLevel = errors.New("unknown severity level")

// All returns every level from Off to Fatal.
func All() []Level {
	return []Level{Off, Debug, Info, Warn, Error, Fatal}
}

// String returns the upper case name used in log headers.
func (l Level) String() string {
	switch l {
	case Off:
		return "OFF"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Parse returns the level named by s. Matching is case-insensitive and
// "WARNING" is accepted for Warn.
func Parse(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF":
		return Off, nil
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return Off, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Enabled reports whether a message at this level is emitted at all.
// Off is never emitted and Debug only when debug is true.
func (l Level) Enabled(debug bool) bool {
	switch l {
	case Off:
		return false
	case Debug:
		return debug
	default:
		return true
	}
}

// ZapLevel maps the level onto zap. Fatal maps to the error level because
// zap's fatal level terminates the process.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error, Fatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LevelFatal is the slog level used for Fatal messages.
const LevelFatal = slog.LevelError + 4

// SlogLevel maps the level onto log/slog.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	case Fatal:
		return LevelFatal
	default:
		return slog.LevelInfo
	}
}
