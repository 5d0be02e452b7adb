// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter decides with a CEL expression whether a script log message
is written.

A filter sees the message after its severity passed the gate and before any
line is formatted. The expression must evaluate to a bool; true keeps the
message.

# Variables

	severity  string        "DEBUG", "INFO", "WARN", "ERROR" or "FATAL"
	level     int           0 (OFF) to 5 (FATAL)
	message   string        main text
	lines     list(string)  sub-lines
	location  string        resolved attribution, e.g. "recipes/main.groovy:12"
	side      string        "CLIENT" or "SERVER"
	failure   bool          whether a failure is attached

# Basic Usage

	f, err := filter.Compile(`level >= 3 || !location.startsWith("generated/")`)
	if err != nil {
	    // a *ParseError or *CheckError describes the problem
	}
	keep, err := f.Keep(filter.Input{Severity: severity.Info, Location: "generated/a.groovy:1"})

# Safeguards

Expressions longer than DefaultMaxExpressionLength are rejected and
evaluation is bounded by DefaultCostLimit.
*/
package filter
