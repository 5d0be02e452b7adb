// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package side identifies whether code runs on the client or the server
// side of the host application.
package side

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Side is the execution-context tag written into every log header.
type Side int

const (
	// Client is the default side.
	Client Side = iota
	// Server marks dedicated or integrated server logic.
	Server
)

// ErrUnknownSide is returned by Parse for anything but client or server.
var ErrUnknownSide = errors.New("unknown side")

// String returns CLIENT or SERVER.
func (s Side) String() string {
	if s == Server {
		return "SERVER"
	}
	return "CLIENT"
}

// Parse reads "client" or "server", ignoring case.
func Parse(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return Client, nil
	case "server":
		return Server, nil
	default:
		return Client, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Provider reports the effective side for a context.
type Provider interface {
	Side(ctx context.Context) Side
}

// Static always reports the same side.
type Static Side

// Side returns s.
func (s Static) Side(context.Context) Side {
	return Side(s)
}

type ctxKey struct{}

// WithSide returns a context that overrides the side reported by
// ContextProvider.
func WithSide(ctx context.Context, s Side) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// ContextProvider reports the side stored with WithSide, or Default.
type ContextProvider struct {
	Default Side
}

// Side implements Provider.
func (p ContextProvider) Side(ctx context.Context) Side {
	if ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(Side); ok {
			return s
		}
	}
	return p.Default
}
