// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package message provides the accumulating record of one logical script log
event.

A Message has a main text, an ordered list of sub-lines, a severity, a flag
that mirrors it into the host log, and an optional attached Failure. It is
built by one caller and handed to a session for logging; it is not touched
after that.

# Basic Usage

	msg := message.New("Error adding recipe for {}", name).
		AddIf(len(inputs) == 0, "inputs must not be empty").
		AddIf(output == "", "output must be defined").
		Error()

	sess.Submit(ctx, msg)

# Templates

Texts use {} placeholders which are substituted eagerly, at the moment the
line is added. Substitution is total: missing arguments leave the
placeholder in place and a value whose String method panics is rendered as
a marker instead of propagating the panic.

	message.Format("{} of {}", 1, 3) // "1 of 3"
	message.Format("{} and {}", "a")  // "a and {}"

# Conditional Blocks

AddIfBuild hands the callback its own Builder; the lines it collects are
merged into the message afterwards:

	msg.AddIfBuild(strict, func(b *message.Builder) {
		b.Add("strict mode is on")
		b.AddIf(len(extra) > 0, "unexpected keys: {}", extra)
	})
*/
package message
