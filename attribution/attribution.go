// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package attribution

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=attribution.go -destination=mocks/mock_provider.go -package=mocks Provider

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
)

// Unknown is returned by Resolve when neither a script location nor a
// module id is available.
const Unknown = "unknown"

// Location is a position inside a script file.
type Location struct {
	File string
	Line int
}

// Provider reports what is currently executing for a given context.
type Provider interface {
	// Script returns the active script location, if any.
	Script(ctx context.Context) (Location, bool)

	// ActiveModule returns the id of the host module that is currently
	// active. It is used when no script location is known.
	ActiveModule(ctx context.Context) string
}

// Tracker is the mutable script position of one script execution. The
// owning engine updates it while other goroutines may read it.
type Tracker struct {
	loc atomic.Pointer[Location]
}

// NewTracker returns a tracker positioned at line 0 of file.
func NewTracker(file string) *Tracker {
	tr := &Tracker{}
	tr.Set(Location{File: file})
	return tr
}

// Set moves the tracker to loc.
func (t *Tracker) Set(loc Location) {
	t.loc.Store(&loc)
}

// SetLine moves the tracker to line in its current file.
func (t *Tracker) SetLine(line int) {
	loc := t.Location()
	loc.Line = line
	t.Set(loc)
}

// Location returns the current position.
func (t *Tracker) Location() Location {
	if loc := t.loc.Load(); loc != nil {
		return *loc
	}
	return Location{}
}

type trackerKey struct{}

type moduleKey struct{}

// Track returns a context carrying a new tracker for file.
func Track(ctx context.Context, file string) (context.Context, *Tracker) {
	tr := NewTracker(file)
	return WithTracker(ctx, tr), tr
}

// WithTracker returns a context carrying tr.
func WithTracker(ctx context.Context, tr *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, tr)
}

// WithLocation returns a context pinned to a fixed location.
func WithLocation(ctx context.Context, loc Location) context.Context {
	tr := &Tracker{}
	tr.Set(loc)
	return WithTracker(ctx, tr)
}

// TrackerFrom returns the tracker carried by ctx, or nil.
func TrackerFrom(ctx context.Context) *Tracker {
	if ctx == nil {
		return nil
	}
	tr, _ := ctx.Value(trackerKey{}).(*Tracker)
	return tr
}

// WithModule returns a context naming the active host module.
func WithModule(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, moduleKey{}, id)
}

// ContextProvider implements Provider from values stored with Track,
// WithLocation and WithModule.
type ContextProvider struct {
	// DefaultModule is returned by ActiveModule when ctx names no module.
	DefaultModule string
}

// Script returns the tracked location. A tracker without a file counts as
// no script.
func (p *ContextProvider) Script(ctx context.Context) (Location, bool) {
	tr := TrackerFrom(ctx)
	if tr == nil {
		return Location{}, false
	}
	loc := tr.Location()
	return loc, loc.File != ""
}

// ActiveModule returns the module id stored in ctx or the default.
func (p *ContextProvider) ActiveModule(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(moduleKey{}).(string); ok && id != "" {
			return id
		}
	}
	return p.DefaultModule
}

// Attributor turns the provider's answer into the location string of a
// log header. It holds no per-call state.
type Attributor struct {
	provider Provider
	root     string
}

// NewAttributor returns an attributor that renders script files relative
// to root. A nil provider is replaced by an empty ContextProvider.
func NewAttributor(provider Provider, root string) *Attributor {
	if provider == nil {
		provider = &ContextProvider{}
	}
	return &Attributor{provider: provider, root: root}
}

// Resolve returns "relative/file:line" for script code, otherwise the
// active module id. It is evaluated on every call.
func (a *Attributor) Resolve(ctx context.Context) string {
	if loc, ok := a.provider.Script(ctx); ok {
		return a.Relative(loc.File) + ":" + strconv.Itoa(loc.Line)
	}
	if id := a.provider.ActiveModule(ctx); id != "" {
		return id
	}
	return Unknown
}

// Line returns the current script line, if code of a script is running.
func (a *Attributor) Line(ctx context.Context) (int, bool) {
	loc, ok := a.provider.Script(ctx)
	if !ok {
		return 0, false
	}
	return loc.Line, true
}

// Relative renders file relative to the script root with forward slashes.
// Files outside the root, and all files when no root is set, are returned
// unchanged.
func (a *Attributor) Relative(file string) string {
	file = strings.TrimPrefix(file, "file:")
	if a.root == "" {
		return filepath.ToSlash(file)
	}
	rel, err := filepath.Rel(a.root, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}
