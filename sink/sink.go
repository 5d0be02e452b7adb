// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
)

const (
	// FileName is the name of the session log file.
	FileName = "groovy.log"

	// DefaultName is the subsystem name written into the banner.
	DefaultName = "GroovyLog"

	// DateLayout is the layout of the banner date.
	DateLayout = "02.01.2006"
)

// ErrOpen is wrapped by the error reported from Err when the log file
// could not be created.
var ErrOpen = errors.New("failed to open script log file")

// Path returns the log file location for a configuration directory: the
// file sits one level above it.
func Path(configDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(configDir)), FileName)
}

// DefaultPath returns the log file location for the XDG configuration
// directory.
func DefaultPath() string {
	return Path(xdg.ConfigHome)
}

type config struct {
	name     string
	version  string
	fallback io.Writer
	now      func() time.Time
}

// Option configures a Sink created by Open.
type Option func(*config)

// WithName sets the subsystem name used in the banner.
// The default is DefaultName.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithVersion sets the version written into the banner.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithFallback sets the writer used when the file cannot be opened.
// The default is os.Stdout.
func WithFallback(w io.Writer) Option {
	return func(c *config) {
		c.fallback = w
	}
}

// WithClock sets the time source of the banner date.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Sink is a session scoped, append-only line writer.
// It is safe for concurrent use from multiple goroutines.
type Sink struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	w       *bufio.Writer
	openErr error
	closed  bool
}

// Open creates the log file at path, replacing any previous session's
// file, and writes the banner. It never fails: when the file cannot be
// created the sink writes to the fallback writer and Err reports why.
func Open(path string, opts ...Option) *Sink {
	cfg := &config{
		name:     DefaultName,
		fallback: os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.fallback == nil {
		cfg.fallback = os.Stdout
	}

	s := &Sink{path: path}
	f, err := create(path)
	if err != nil {
		s.openErr = fmt.Errorf("%w %s: %w", ErrOpen, path, err)
		s.w = bufio.NewWriter(cfg.fallback)
	} else {
		s.file = f
		s.w = bufio.NewWriter(f)
	}

	s.AppendLines(
		"============  "+cfg.name+"  ====  "+cfg.now().Format(DateLayout)+"  ============",
		cfg.name+" version: "+cfg.version,
	)
	return s
}

// create removes a regular file at path and creates a new, empty one.
func create(path string) (*os.File, error) {
	if fi, err := os.Lstat(path); err == nil && !fi.IsDir() {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing previous log: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Path returns the path the sink was opened with, even when it fell back.
func (s *Sink) Path() string {
	return s.path
}

// Fallback reports whether the sink writes to its fallback writer.
func (s *Sink) Fallback() bool {
	return s.openErr != nil
}

// Err returns the error that caused the fallback, or nil.
func (s *Sink) Err() error {
	return s.openErr
}

// AppendLine writes line followed by a line break and flushes.
func (s *Sink) AppendLine(line string) {
	s.AppendLines(line)
}

// AppendLines writes every line, each followed by a line break, as one
// uninterrupted unit and flushes. Write errors are dropped.
func (s *Sink) AppendLines(lines ...string) {
	if len(lines) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, l := range lines {
		_, _ = s.w.WriteString(l)
		_ = s.w.WriteByte('\n')
	}
	_ = s.w.Flush()
}

// Write implements io.Writer. Each call is appended as one unit; a missing
// final line break is added.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, os.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.w.Write(p)
	if err == nil && p[len(p)-1] != '\n' {
		err = s.w.WriteByte('\n')
	}
	if ferr := s.w.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

// Close flushes and closes the file. It is safe to call Close multiple
// times; later appends are dropped.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	err := s.w.Flush()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
