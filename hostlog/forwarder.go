// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hostlog

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=forwarder.go -destination=mocks/mock_forwarder.go -package=mocks Forwarder

import "github.com/stacklok/toolhive-scriptlog/severity"

// Forwarder writes one line of text to the host log at the given level.
// Implementations must be safe for concurrent use and must not panic.
type Forwarder interface {
	Log(level severity.Level, text string)
}

// Nop discards everything.
type Nop struct{}

// Log implements Forwarder.
func (Nop) Log(severity.Level, string) {}

// Multi forwards to every non-nil forwarder in order.
type Multi []Forwarder

// Log implements Forwarder.
func (m Multi) Log(level severity.Level, text string) {
	for _, f := range m {
		if f != nil {
			f.Log(level, text)
		}
	}
}

// Func adapts a function to Forwarder.
type Func func(level severity.Level, text string)

// Log implements Forwarder.
func (f Func) Log(level severity.Level, text string) {
	f(level, text)
}

var (
	_ Forwarder = Nop{}
	_ Forwarder = Multi(nil)
	_ Forwarder = Func(nil)
)
