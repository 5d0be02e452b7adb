// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/stacklok/toolhive-scriptlog/attribution"
	"github.com/stacklok/toolhive-scriptlog/filter"
	"github.com/stacklok/toolhive-scriptlog/hostlog"
	"github.com/stacklok/toolhive-scriptlog/side"
	"github.com/stacklok/toolhive-scriptlog/sink"
	"github.com/stacklok/toolhive-scriptlog/stacktrace"
)

// DebugProvider is an interface for checking if debug mode is enabled.
// It is consulted for every DEBUG message.
type DebugProvider interface {
	IsDebug() bool
}

// StaticDebug is a DebugProvider with a fixed answer.
type StaticDebug bool

// IsDebug returns d.
func (d StaticDebug) IsDebug() bool { return bool(d) }

type options struct {
	host       hostlog.Forwarder
	provider   attribution.Provider
	scriptRoot string
	sides      side.Provider
	debug      DebugProvider
	clock      func() time.Time
	trace      stacktrace.Filter
	filter     *filter.Filter
	sinkOpts   []sink.Option
	zapOpts    []zap.Option
}

// Option configures a Session.
type Option func(*options)

// WithHost sets the host log forwarder. The default is a zap logger built
// by hostlog.BuildZap, at debug level when debug mode is on at open time.
func WithHost(f hostlog.Forwarder) Option {
	return func(o *options) {
		o.host = f
	}
}

// WithAttribution sets the provider of script locations and the root that
// script files are shown relative to.
func WithAttribution(p attribution.Provider, scriptRoot string) Option {
	return func(o *options) {
		o.provider = p
		o.scriptRoot = scriptRoot
	}
}

// WithSide sets the execution side provider. The default reports the side
// stored in the context, or CLIENT.
func WithSide(p side.Provider) Option {
	return func(o *options) {
		o.sides = p
	}
}

// WithDebug sets the debug flag provider. The default is StaticDebug(false).
func WithDebug(d DebugProvider) Option {
	return func(o *options) {
		o.debug = d
	}
}

// WithClock sets the time source of headers and the banner.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithTraceFilter sets the failure trace filter. The default is
// stacktrace.Default.
func WithTraceFilter(f stacktrace.Filter) Option {
	return func(o *options) {
		o.trace = f
	}
}

// WithFilter sets a CEL filter consulted after the severity gate.
func WithFilter(f *filter.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithSinkOptions passes options through to sink.Open.
func WithSinkOptions(opts ...sink.Option) Option {
	return func(o *options) {
		o.sinkOpts = append(o.sinkOpts, opts...)
	}
}

// WithHostZapOptions passes options to hostlog.BuildZap when no forwarder
// is set with WithHost.
func WithHostZapOptions(opts ...zap.Option) Option {
	return func(o *options) {
		o.zapOpts = append(o.zapOpts, opts...)
	}
}
