// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-scriptlog/env"
	"github.com/stacklok/toolhive-scriptlog/filter"
	"github.com/stacklok/toolhive-scriptlog/side"
	"github.com/stacklok/toolhive-scriptlog/sink"
	"github.com/stacklok/toolhive-scriptlog/stacktrace"
)

// Environment variables read by ApplyEnv and DebugFlag.
const (
	EnvDebug     = "SCRIPTLOG_DEBUG"
	EnvConfigDir = "SCRIPTLOG_CONFIG_DIR"
	EnvSide      = "SCRIPTLOG_SIDE"
)

const schemaFile = "data/config.schema.json"

//go:embed data/config.schema.json
var embeddedSchemaFS embed.FS

// ErrInvalidConfig is returned when a configuration violates the schema
// or contains values that cannot be used.
var ErrInvalidConfig = errors.New("invalid script log configuration")

// StackTrace configures the trace filter.
type StackTrace struct {
	Boundary string   `yaml:"boundary,omitempty" json:"boundary,omitempty"`
	Noise    []string `yaml:"noise,omitempty" json:"noise,omitempty"`
}

// Config holds the settings of a session.
type Config struct {
	// Name is the subsystem name of the banner. Default: sink.DefaultName.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Version is written into the banner.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	// Debug enables DEBUG messages.
	Debug bool `yaml:"debug,omitempty" json:"debug,omitempty"`
	// Side is "client" or "server". Default: client.
	Side string `yaml:"side,omitempty" json:"side,omitempty"`
	// ConfigDir is the host configuration directory; the log file is
	// created next to it. Default: xdg.ConfigHome.
	ConfigDir string `yaml:"config_dir,omitempty" json:"config_dir,omitempty"`
	// LogFile overrides the derived log file path.
	LogFile string `yaml:"log_file,omitempty" json:"log_file,omitempty"`
	// ScriptRoot is the directory script locations are shown relative to.
	ScriptRoot string `yaml:"script_root,omitempty" json:"script_root,omitempty"`
	// DefaultModule is the attribution used outside of scripts.
	DefaultModule string `yaml:"default_module,omitempty" json:"default_module,omitempty"`
	// Filter is an optional CEL expression, see package filter.
	Filter string `yaml:"filter,omitempty" json:"filter,omitempty"`
	// StackTrace configures the trace filter. Default: stacktrace.Default.
	StackTrace *StackTrace `yaml:"stacktrace,omitempty" json:"stacktrace,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	st := stacktrace.Default()
	return &Config{
		Name:          sink.DefaultName,
		Side:          "client",
		DefaultModule: "host",
		StackTrace: &StackTrace{
			Boundary: st.Boundary,
			Noise:    st.Noise,
		},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the schema and decodes it over Default.
func Parse(data []byte) (*Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validateAgainstSchema(raw); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the schema cannot express.
func (c *Config) Validate() error {
	if _, err := side.Parse(c.Side); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Filter != "" {
		if _, err := filter.Compile(c.Filter); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(r env.Reader) error {
	if debug, ok := env.Bool(r, EnvDebug); ok {
		c.Debug = debug
	}
	if dir := strings.TrimSpace(r.Getenv(EnvConfigDir)); dir != "" {
		c.ConfigDir = dir
	}
	if s := strings.TrimSpace(r.Getenv(EnvSide)); s != "" {
		if _, err := side.Parse(s); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSide, err)
		}
		c.Side = s
	}
	return nil
}

// LogPath returns the file the session writes to.
func (c *Config) LogPath() string {
	switch {
	case c.LogFile != "":
		return c.LogFile
	case c.ConfigDir != "":
		return sink.Path(c.ConfigDir)
	default:
		return sink.DefaultPath()
	}
}

// ExecutionSide returns the parsed side, defaulting to client.
func (c *Config) ExecutionSide() side.Side {
	s, err := side.Parse(c.Side)
	if err != nil {
		return side.Client
	}
	return s
}

// TraceFilter returns the configured trace filter.
func (c *Config) TraceFilter() stacktrace.Filter {
	if c.StackTrace == nil {
		return stacktrace.Default()
	}
	return stacktrace.Filter{
		Boundary: c.StackTrace.Boundary,
		Noise:    append([]string(nil), c.StackTrace.Noise...),
	}
}

// DebugFlag reports debug mode from SCRIPTLOG_DEBUG when set and valid,
// otherwise from Default.
type DebugFlag struct {
	Reader  env.Reader
	Default bool
}

// IsDebug reads the environment on every call.
func (d *DebugFlag) IsDebug() bool {
	if d.Reader != nil {
		if v, ok := env.Bool(d.Reader, EnvDebug); ok {
			return v
		}
	}
	return d.Default
}

// validateAgainstSchema validates decoded YAML against the embedded schema.
func validateAgainstSchema(raw any) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
