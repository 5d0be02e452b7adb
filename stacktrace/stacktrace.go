// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package stacktrace reduces raw script failure traces to the frames that
// matter to script authors.
package stacktrace

import (
	"strings"

	"github.com/stacklok/toolhive-scriptlog/message"
)

const (
	// DefaultBoundary is the label prefix of the script engine's entry
	// point. Frames below it belong to the host.
	DefaultBoundary = "groovy.util.GroovyScriptEngine.run"

	// RuntimeNoise is the label prefix of runtime support frames.
	RuntimeNoise = "org.codehaus.groovy.runtime"

	// SandboxNoise is the label prefix of sandbox checker frames.
	SandboxNoise = "org.kohsuke"

	// FrameIndent precedes every rendered frame.
	FrameIndent = "\t\tat "
)

// Filter cuts a trace at its boundary frame and drops noise frames.
type Filter struct {
	// Boundary is the label prefix of the last frame to keep. Empty keeps
	// the whole trace.
	Boundary string
	// Noise lists label prefixes of frames to drop.
	Noise []string
}

// Default returns the filter for the Groovy script engine and sandbox.
func Default() Filter {
	return Filter{
		Boundary: DefaultBoundary,
		Noise:    []string{RuntimeNoise, SandboxNoise},
	}
}

// Apply returns the frames up to and including the first boundary frame,
// or all frames when there is none, without noise frames. The input is not
// modified.
func (f Filter) Apply(frames []message.Frame) []message.Frame {
	end := len(frames)
	if f.Boundary != "" {
		for i, fr := range frames {
			if strings.HasPrefix(fr.Label, f.Boundary) {
				end = i + 1
				break
			}
		}
	}

	out := make([]message.Frame, 0, end)
	for _, fr := range frames[:end] {
		if !f.isNoise(fr.Label) {
			out = append(out, fr)
		}
	}
	return out
}

func (f Filter) isNoise(label string) bool {
	for _, p := range f.Noise {
		if p != "" && strings.HasPrefix(label, p) {
			return true
		}
	}
	return false
}

// Render formats frames as indented "at" lines.
func Render(frames []message.Frame) []string {
	out := make([]string, 0, len(frames))
	for _, fr := range frames {
		out = append(out, FrameIndent+fr.Label)
	}
	return out
}

// Lines filters and renders frames in one step.
func (f Filter) Lines(frames []message.Frame) []string {
	return Render(f.Apply(frames))
}
