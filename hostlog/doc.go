// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package hostlog forwards script log output into the host application's own
logging pipeline.

A Forwarder receives a severity and a line of text. Adapters are provided
for zap (the default), log/slog and logr:

	fwd := hostlog.NewZap(zap.L())
	fwd := hostlog.NewSlog(hostlog.WithFormat(hostlog.FormatText))
	fwd := hostlog.NewLogr(ctrl.Log.WithName("scripts"))

None of the adapters terminate or panic the process for FATAL messages;
they tag the entry with severity=FATAL instead.

# Zap Configuration

BuildZap creates the host logger with the toolhive defaults. When the
UNSTRUCTURED_LOGS environment variable is unset or true, output is
human-readable on stderr; otherwise JSON on stdout. Sessions opened
without an explicit forwarder use it.

	logger, err := hostlog.BuildZap(&env.OSReader{}, debug)

# Testing

Forwarder is an interface; a generated mock lives in the mocks sub-package.
*/
package hostlog
