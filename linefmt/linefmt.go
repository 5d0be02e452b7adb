// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package linefmt

import (
	"strings"
	"time"

	"github.com/stacklok/toolhive-scriptlog/severity"
	"github.com/stacklok/toolhive-scriptlog/side"
)

// CombineLimit is the exclusive upper bound on len(main)+len(sub) for a
// single sub-line to be written on the main line.
const CombineLimit = 100

// TimeLayout is the layout of the time stamp in a header.
const TimeLayout = "[15:04:05]"

// Header builds the prefix of a log line.
func Header(t time.Time, s side.Side, level severity.Level, location string) string {
	var b strings.Builder
	b.Grow(len(TimeLayout) + len(location) + 24)
	b.WriteString(t.Format(TimeLayout))
	b.WriteString(" [")
	b.WriteString(s.String())
	b.WriteByte('/')
	b.WriteString(level.String())
	b.WriteString("] [")
	b.WriteString(location)
	b.WriteString("]: ")
	return b.String()
}

// Format folds main and lines into complete log lines, each starting with
// header.
func Format(header, main string, lines []string) []string {
	switch {
	case len(lines) == 0:
		return []string{header + main}
	case len(lines) == 1 && len(main)+len(lines[0]) < CombineLimit:
		return []string{header + main + ": - " + lines[0]}
	default:
		out := make([]string, 0, len(lines))
		out = append(out, header+main+": ")
		for _, l := range lines[1:] {
			out = append(out, header+" - "+l)
		}
		return out
	}
}

// HostLines folds main and lines for the host log. suffix locates the
// script line, e.g. " in line 12", and may be empty.
func HostLines(main string, lines []string, suffix string) []string {
	switch {
	case len(lines) == 0:
		return []string{main + suffix}
	case len(lines) == 1 && len(main)+len(lines[0]) < CombineLimit:
		if suffix != "" {
			suffix = " " + suffix
		}
		return []string{main + ": - " + lines[0] + suffix}
	default:
		out := make([]string, 0, len(lines))
		out = append(out, main+suffix+" : - ")
		for _, l := range lines[1:] {
			out = append(out, " - "+l)
		}
		return out
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Formatter stamps headers with the time of its clock.
type Formatter struct {
	clock Clock
}

// New returns a Formatter. A nil clock means time.Now.
func New(clock Clock) *Formatter {
	if clock == nil {
		clock = time.Now
	}
	return &Formatter{clock: clock}
}

// Header builds a header for the current time.
func (f *Formatter) Header(s side.Side, level severity.Level, location string) string {
	return Header(f.clock(), s, level, location)
}

// Lines renders a message body under a header for the current time.
func (f *Formatter) Lines(s side.Side, level severity.Level, location, main string, lines []string) []string {
	return Format(f.Header(s, level, location), main, lines)
}
