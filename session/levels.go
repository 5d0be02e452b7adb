// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"

	"github.com/stacklok/toolhive-scriptlog/message"
	"github.com/stacklok/toolhive-scriptlog/severity"
)

func (s *Session) log(ctx context.Context, level severity.Level, mirror bool, template string, args []any) {
	s.Submit(ctx, message.New(template, args...).Level(level).Mirror(mirror))
}

// Debug logs a DEBUG message to the session log.
func (s *Session) Debug(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Debug, false, template, args)
}

// Info logs an INFO message to the session log.
func (s *Session) Info(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Info, false, template, args)
}

// Warn logs a WARN message to the session log.
func (s *Session) Warn(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Warn, false, template, args)
}

// Error logs an ERROR message to the session log.
func (s *Session) Error(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Error, false, template, args)
}

// Fatal logs a FATAL message to the session log. It does not stop anything.
func (s *Session) Fatal(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Fatal, false, template, args)
}

// DebugHost is Debug, also mirrored to the host log.
func (s *Session) DebugHost(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Debug, true, template, args)
}

// InfoHost is Info, also mirrored to the host log.
func (s *Session) InfoHost(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Info, true, template, args)
}

// WarnHost is Warn, also mirrored to the host log.
func (s *Session) WarnHost(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Warn, true, template, args)
}

// ErrorHost is Error, also mirrored to the host log.
func (s *Session) ErrorHost(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Error, true, template, args)
}

// FatalHost is Fatal, also mirrored to the host log.
func (s *Session) FatalHost(ctx context.Context, template string, args ...any) {
	s.log(ctx, severity.Fatal, true, template, args)
}
