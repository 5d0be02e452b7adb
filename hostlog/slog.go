// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hostlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/stacklok/toolhive-scriptlog/severity"
)

// Format represents the slog output format.
type Format int

const (
	// FormatJSON produces JSON output using [log/slog.JSONHandler].
	FormatJSON Format = iota

	// FormatText produces key=value output using [log/slog.TextHandler].
	FormatText
)

type slogConfig struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// SlogOption configures the logger created by NewSlog.
type SlogOption func(*slogConfig)

// WithFormat sets the output format. The default is FormatJSON.
func WithFormat(f Format) SlogOption {
	return func(c *slogConfig) {
		c.format = f
	}
}

// WithLevel sets the minimum level. The default is [log/slog.LevelInfo].
// A [*log/slog.LevelVar] allows changing it at runtime.
func WithLevel(l slog.Leveler) SlogOption {
	return func(c *slogConfig) {
		c.level = l
	}
}

// WithOutput sets the destination writer. The default is [os.Stderr].
func WithOutput(w io.Writer) SlogOption {
	return func(c *slogConfig) {
		c.output = w
	}
}

// Slog forwards to a log/slog logger.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a slog logger with RFC3339 timestamps and forwards to it.
func NewSlog(opts ...SlogOption) *Slog {
	cfg := &slogConfig{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	return FromSlog(slog.New(handler))
}

// FromSlog forwards to an existing logger. A nil logger means
// [log/slog.Default].
func FromSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger.With(slog.String("logger", LoggerName))}
}

// Log implements Forwarder.
func (s *Slog) Log(level severity.Level, text string) {
	if level == severity.Off {
		return
	}
	s.logger.Log(context.Background(), level.SlogLevel(), text)
}

// replaceAttr formats the time attribute to RFC3339 and names the fatal
// level.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok && l >= severity.LevelFatal {
			a.Value = slog.StringValue(severity.Fatal.String())
		}
	}
	return a
}

var _ Forwarder = (*Slog)(nil)
