// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("SCRIPTLOG_SIDE")

Bool interprets a variable as a boolean flag:

	debug, set := env.Bool(reader, "SCRIPTLOG_DEBUG")

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("SCRIPTLOG_DEBUG").Return("true")

Map is a fixed Reader for tests that need many variables at once.
*/
package env
