// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package message

import "github.com/stacklok/toolhive-scriptlog/severity"

// Message is one logical script log event. Mutators return the receiver so
// calls can be chained. A Message must not be modified once submitted.
type Message struct {
	main    string
	lines   []string
	level   severity.Level
	mirror  bool
	failure *Failure
}

// New creates an INFO message whose main text is template with args
// substituted immediately.
func New(template string, args ...any) *Message {
	return &Message{
		main:  Format(template, args...),
		level: severity.Info,
	}
}

// Add appends a sub-line.
func (m *Message) Add(template string, args ...any) *Message {
	m.lines = append(m.lines, Format(template, args...))
	return m
}

// AddIf appends a sub-line when cond is true. Arguments are still
// evaluated by the caller, use AddIfFunc for expensive ones.
func (m *Message) AddIf(cond bool, template string, args ...any) *Message {
	if cond {
		return m.Add(template, args...)
	}
	return m
}

// AddIfFunc appends the line returned by line when cond is true.
func (m *Message) AddIfFunc(cond bool, line func() string) *Message {
	if cond && line != nil {
		m.lines = append(m.lines, line())
	}
	return m
}

// AddIfBuild calls build with a fresh Builder when cond is true and appends
// the lines it collected, in order.
func (m *Message) AddIfBuild(cond bool, build func(b *Builder)) *Message {
	if !cond || build == nil {
		return m
	}
	b := &Builder{}
	build(b)
	m.lines = append(m.lines, b.lines...)
	return m
}

// Merge appends the lines collected by b.
func (m *Message) Merge(b *Builder) *Message {
	if b != nil {
		m.lines = append(m.lines, b.lines...)
	}
	return m
}

// WithFailure attaches f, replacing any earlier failure.
func (m *Message) WithFailure(f *Failure) *Message {
	m.failure = f
	return m
}

// WithError attaches a failure built from err. A nil err is ignored.
func (m *Message) WithError(err error) *Message {
	if err != nil {
		m.failure = FailureFromError(err)
	}
	return m
}

// Level sets the severity. The last call wins.
func (m *Message) Level(l severity.Level) *Message {
	m.level = l
	return m
}

// Debug sets the severity to DEBUG.
func (m *Message) Debug() *Message { return m.Level(severity.Debug) }

// Info sets the severity to INFO.
func (m *Message) Info() *Message { return m.Level(severity.Info) }

// Warn sets the severity to WARN.
func (m *Message) Warn() *Message { return m.Level(severity.Warn) }

// Error sets the severity to ERROR.
func (m *Message) Error() *Message { return m.Level(severity.Error) }

// Fatal sets the severity to FATAL.
func (m *Message) Fatal() *Message { return m.Level(severity.Fatal) }

// Mirror sets whether the message is also forwarded to the host log.
func (m *Message) Mirror(mirror bool) *Message {
	m.mirror = mirror
	return m
}

// Main returns the substituted main text.
func (m *Message) Main() string { return m.main }

// Lines returns a copy of the sub-lines in insertion order.
func (m *Message) Lines() []string { return append([]string(nil), m.lines...) }

// HasLines reports whether any sub-line was added.
func (m *Message) HasLines() bool { return len(m.lines) > 0 }

// Severity returns the message level.
func (m *Message) Severity() severity.Level { return m.level }

// Mirrored reports whether the message goes to the host log too.
func (m *Message) Mirrored() bool { return m.mirror }

// Failure returns the attached failure or nil.
func (m *Message) Failure() *Failure { return m.failure }

// Builder collects sub-lines for AddIfBuild and Merge.
type Builder struct {
	lines []string
}

// Add appends a sub-line.
func (b *Builder) Add(template string, args ...any) *Builder {
	b.lines = append(b.lines, Format(template, args...))
	return b
}

// AddIf appends a sub-line when cond is true.
func (b *Builder) AddIf(cond bool, template string, args ...any) *Builder {
	if cond {
		return b.Add(template, args...)
	}
	return b
}

// Len returns the number of collected lines.
func (b *Builder) Len() int { return len(b.lines) }
