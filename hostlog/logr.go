// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hostlog

import (
	"github.com/go-logr/logr"

	"github.com/stacklok/toolhive-scriptlog/severity"
)

// Logr forwards to a logr.Logger. Debug goes to V(1), errors to Error.
type Logr struct {
	logger logr.Logger
}

// NewLogr returns a forwarder for logger.
func NewLogr(logger logr.Logger) *Logr {
	return &Logr{logger: logger.WithName(LoggerName)}
}

// Log implements Forwarder.
func (l *Logr) Log(level severity.Level, text string) {
	switch level {
	case severity.Off:
	case severity.Debug:
		l.logger.V(1).Info(text, "severity", level.String())
	case severity.Error, severity.Fatal:
		l.logger.Error(nil, text, "severity", level.String())
	default:
		l.logger.Info(text, "severity", level.String())
	}
}

var _ Forwarder = (*Logr)(nil)
