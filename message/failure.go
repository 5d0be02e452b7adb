// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Frame is one entry of a call stack, innermost call first.
type Frame struct {
	// Label is the fully qualified call site, e.g. "pkg.Type.method(File:12)".
	Label string
}

// FrameProvider is implemented by errors that carry their own call stack,
// such as errors raised by a script engine.
type FrameProvider interface {
	StackFrames() []Frame
}

// Failure is an immutable description of a raised error.
type Failure struct {
	display string
	frames  []Frame
}

// NewFailure returns a failure with the given display string and frame labels.
func NewFailure(display string, labels ...string) *Failure {
	frames := make([]Frame, 0, len(labels))
	for _, l := range labels {
		frames = append(frames, Frame{Label: l})
	}
	return &Failure{display: display, frames: frames}
}

// FailureFromError builds a failure from err. Frames come from the first
// error in the chain implementing FrameProvider; without one the Go call
// stack of the caller is captured. It returns nil for a nil error.
func FailureFromError(err error) *Failure {
	if err == nil {
		return nil
	}
	var fp FrameProvider
	if errors.As(err, &fp) {
		frames := fp.StackFrames()
		return &Failure{display: err.Error(), frames: append([]Frame(nil), frames...)}
	}
	return &Failure{display: err.Error(), frames: CaptureFrames(1)}
}

// FailureFromPanic builds a failure from a recovered panic value. It must
// be called from the deferred function that recovered, so the captured
// frames still include the panicking call site.
func FailureFromPanic(v any) *Failure {
	display := "panic: " + Stringify(v)
	if err, ok := v.(error); ok {
		var fp FrameProvider
		if errors.As(err, &fp) {
			return &Failure{display: display, frames: append([]Frame(nil), fp.StackFrames()...)}
		}
	}
	return &Failure{display: display, frames: CaptureFrames(1)}
}

// Display returns the one line description of the failure.
func (f *Failure) Display() string {
	return f.display
}

// Frames returns a copy of the failure's frames.
func (f *Failure) Frames() []Frame {
	return append([]Frame(nil), f.frames...)
}

// String renders the failure with its complete, unfiltered trace.
func (f *Failure) String() string {
	var b strings.Builder
	b.WriteString(f.display)
	for _, fr := range f.frames {
		b.WriteString("\n\tat ")
		b.WriteString(fr.Label)
	}
	return b.String()
}

// CaptureFrames returns the Go call stack above its caller, skipping skip
// additional frames. Frames of the runtime package are omitted.
func CaptureFrames(skip int) []Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	it := runtime.CallersFrames(pcs[:n])

	var frames []Frame
	for {
		f, more := it.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			frames = append(frames, Frame{
				Label: fmt.Sprintf("%s(%s:%d)", f.Function, filepath.Base(f.File), f.Line),
			})
		}
		if !more {
			break
		}
	}
	return frames
}
