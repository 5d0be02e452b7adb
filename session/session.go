// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stacklok/toolhive-scriptlog/attribution"
	"github.com/stacklok/toolhive-scriptlog/config"
	"github.com/stacklok/toolhive-scriptlog/env"
	"github.com/stacklok/toolhive-scriptlog/filter"
	"github.com/stacklok/toolhive-scriptlog/hostlog"
	"github.com/stacklok/toolhive-scriptlog/linefmt"
	"github.com/stacklok/toolhive-scriptlog/message"
	"github.com/stacklok/toolhive-scriptlog/severity"
	"github.com/stacklok/toolhive-scriptlog/side"
	"github.com/stacklok/toolhive-scriptlog/sink"
	"github.com/stacklok/toolhive-scriptlog/stacktrace"
)

// FailureHeader introduces the failure block in the session log.
const FailureHeader = "An exception occurred while running scripts. Look at the host log for a full stacktrace:"

// Session routes script log messages to its sink and to the host log.
// It is safe for concurrent use from multiple goroutines.
type Session struct {
	id         uuid.UUID
	sink       *sink.Sink
	host       hostlog.Forwarder
	attributor *attribution.Attributor
	sides      side.Provider
	debug      DebugProvider
	formatter  *linefmt.Formatter
	trace      stacktrace.Filter
	filter     *filter.Filter
}

// Open starts a session writing to the log file at path. It never fails;
// if the file cannot be created the session writes to the console and
// reports this once to the host log.
func Open(path string, opts ...Option) *Session {
	o := &options{
		sides: side.ContextProvider{},
		debug: StaticDebug(false),
		clock: time.Now,
		trace: stacktrace.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.sides == nil {
		o.sides = side.ContextProvider{}
	}
	if o.debug == nil {
		o.debug = StaticDebug(false)
	}
	if o.host == nil {
		o.host = defaultHost(o.debug.IsDebug(), o.zapOpts)
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	s := &Session{
		id:         uuid.New(),
		host:       o.host,
		attributor: attribution.NewAttributor(o.provider, o.scriptRoot),
		sides:      o.sides,
		debug:      o.debug,
		formatter:  linefmt.New(o.clock),
		trace:      o.trace,
		filter:     o.filter,
	}
	s.sink = sink.Open(path, append([]sink.Option{sink.WithClock(o.clock)}, o.sinkOpts...)...)

	if err := s.sink.Err(); err != nil {
		s.hostLog(severity.Warn, fmt.Sprintf("script log %s falls back to console: %v", s.id, err))
	} else {
		s.hostLog(severity.Debug, fmt.Sprintf("script log %s writing to %s", s.id, path))
	}
	return s
}

// FromConfig opens a session configured by cfg. Options in opts take
// precedence over the configuration.
func FromConfig(cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithSinkOptions(sink.WithName(cfg.Name), sink.WithVersion(cfg.Version)),
		WithSide(side.ContextProvider{Default: cfg.ExecutionSide()}),
		WithAttribution(&attribution.ContextProvider{DefaultModule: cfg.DefaultModule}, cfg.ScriptRoot),
		WithTraceFilter(cfg.TraceFilter()),
		WithDebug(&config.DebugFlag{Reader: &env.OSReader{}, Default: cfg.Debug}),
	}
	if cfg.Filter != "" {
		f, err := filter.Compile(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
		base = append(base, WithFilter(f))
	}
	return Open(cfg.LogPath(), append(base, opts...)...), nil
}

// defaultHost builds the zap host logger, or uses the global zap logger
// if that fails.
func defaultHost(debug bool, opts []zap.Option) hostlog.Forwarder {
	logger, err := hostlog.BuildZap(&env.OSReader{}, debug, opts...)
	if err != nil {
		fwd := hostlog.NewZap(nil)
		fwd.Log(severity.Warn, fmt.Sprintf("script log host logger: %v", err))
		return fwd
	}
	return hostlog.NewZap(logger)
}

// ID returns the unique id of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Path returns the log file path.
func (s *Session) Path() string {
	return s.sink.Path()
}

// Writer returns a writer appending directly to the log file, without
// headers.
func (s *Session) Writer() io.Writer {
	return s.sink
}

// IsDebug reports whether DEBUG messages are currently written.
func (s *Session) IsDebug() bool {
	return s.debug.IsDebug()
}

// Close ends the session and closes the log file.
func (s *Session) Close() error {
	s.hostLog(severity.Debug, fmt.Sprintf("script log %s closed", s.id))
	return s.sink.Close()
}

// Submit logs msg. It does nothing for nil messages.
func (s *Session) Submit(ctx context.Context, msg *message.Message) {
	if msg == nil {
		return
	}
	defer s.recoverPanic("submit")

	level := msg.Severity()
	if !level.Enabled(s.debug.IsDebug()) {
		return
	}

	location := s.attributor.Resolve(ctx)
	sd := s.sides.Side(ctx)
	failure := msg.Failure()
	if !s.keep(msg, location, sd) {
		return
	}

	main, subLines := msg.Main(), msg.Lines()
	lines := s.formatter.Lines(sd, level, location, main, subLines)
	if failure != nil {
		lines = append(lines, s.failureBlock(sd, location, failure)...)
	}
	s.sink.AppendLines(lines...)

	if msg.Mirrored() {
		s.mirror(level, linefmt.HostLines(main, subLines, s.lineSuffix(ctx)))
	}
	if failure != nil {
		s.host.Log(severity.Error, failure.String())
	}
}

// mirror forwards lines to the host log. A panicking forwarder stops the
// remaining lines but not the caller.
func (s *Session) mirror(level severity.Level, lines []string) {
	defer s.recoverPanic("mirror")
	for _, l := range lines {
		s.host.Log(level, l)
	}
}

// Exception writes the failure block for err without a message line and
// forwards the full failure to the host log. It does nothing for nil.
func (s *Session) Exception(ctx context.Context, err error) {
	if err == nil {
		return
	}
	s.Failure(ctx, message.FailureFromError(err))
}

// Failure writes the failure block for f and forwards f to the host log.
func (s *Session) Failure(ctx context.Context, f *message.Failure) {
	if f == nil {
		return
	}
	defer s.recoverPanic("failure")

	s.sink.AppendLines(s.failureBlock(s.sides.Side(ctx), s.attributor.Resolve(ctx), f)...)
	s.host.Log(severity.Error, f.String())
}

func (s *Session) failureBlock(sd side.Side, location string, f *message.Failure) []string {
	frames := s.trace.Lines(f.Frames())
	lines := make([]string, 0, len(frames)+2)
	lines = append(lines,
		s.formatter.Header(sd, severity.Error, location)+FailureHeader,
		"\t"+f.Display(),
	)
	return append(lines, frames...)
}

func (s *Session) keep(msg *message.Message, location string, sd side.Side) bool {
	if s.filter == nil {
		return true
	}
	keep, err := s.filter.Keep(filter.Input{
		Severity: msg.Severity(),
		Message:  msg.Main(),
		Lines:    msg.Lines(),
		Location: location,
		Side:     sd,
		Failure:  msg.Failure() != nil,
	})
	if err != nil {
		s.hostLog(severity.Warn, fmt.Sprintf("script log filter %q: %v", s.filter.Source(), err))
		return true
	}
	return keep
}

func (s *Session) lineSuffix(ctx context.Context) string {
	line, ok := s.attributor.Line(ctx)
	if !ok {
		return ""
	}
	return " in line " + strconv.Itoa(line)
}

// hostLog reports the session's own diagnostics. A panicking forwarder
// is ignored.
func (s *Session) hostLog(level severity.Level, text string) {
	defer func() { _ = recover() }()
	s.host.Log(level, text)
}

func (s *Session) recoverPanic(op string) {
	if r := recover(); r != nil {
		s.hostLog(severity.Error, fmt.Sprintf("script log %s panicked: %v", op, r))
	}
}
