// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hostlog

import (
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-scriptlog/env"
	"github.com/stacklok/toolhive-scriptlog/severity"
)

// LoggerName is the name of the host logger entries are written under.
const LoggerName = "GroovyLog"

// Zap forwards to a zap logger.
type Zap struct {
	logger *zap.Logger
}

// NewZap returns a forwarder for logger. A nil logger means the global
// zap logger at the time of the call.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.L()
	}
	return &Zap{logger: logger.Named(LoggerName)}
}

// Log implements Forwarder.
func (z *Zap) Log(level severity.Level, text string) {
	if level == severity.Off {
		return
	}
	if ce := z.logger.Check(level.ZapLevel(), text); ce != nil {
		ce.Write(zap.Stringer("severity", level))
	}
}

// Logr returns a logr.Logger backed by the same zap logger.
func (z *Zap) Logr() logr.Logger {
	return zapr.NewLogger(z.logger)
}

// BuildZap creates the default host logger. If UNSTRUCTURED_LOGS is unset
// or true, it writes plain lines with only time and level to stderr;
// otherwise structured JSON to stdout. debug lowers the level so mirrored
// DEBUG messages reach the output. opts are applied to the built logger.
func BuildZap(envReader env.Reader, debug bool, opts ...zap.Option) (*zap.Logger, error) {
	var config zap.Config
	if unstructuredLogsWithEnv(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return config.Build(opts...)
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv("UNSTRUCTURED_LOGS"))
	if err != nil {
		// unset or "" means the default, unstructured output
		return true
	}
	return unstructuredLogs
}

var _ Forwarder = (*Zap)(nil)
