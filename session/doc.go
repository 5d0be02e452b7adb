// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package session owns one script log session: the log file, the severity
gate and the routing of messages to the file and the host log.

# Basic Usage

	sess, err := session.FromConfig(cfg, session.WithHost(hostlog.NewZap(logger)))
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, tr := attribution.Track(ctx, scriptPath)
	tr.SetLine(12)

	sess.Submit(ctx, message.New("Error adding recipe for {}", name).
		Add("inputs must not be empty").
		Add("output must be defined").
		Error().
		Mirror(true))

Submit never fails and never panics. OFF messages are dropped, DEBUG
messages only pass while the DebugProvider reports debug mode, and an
optional CEL filter may drop more.

# Failures

A message carrying a failure is followed in the file by a failure block:

	[14:03:27] [CLIENT/ERROR] [main.groovy:12]: An exception occurred while running scripts. Look at the host log for a full stacktrace:
		java.lang.NullPointerException
			at main.run(main.groovy:12)
			at groovy.util.GroovyScriptEngine.run(GroovyScriptEngine.java:580)

The host log always receives the unfiltered failure at ERROR, whether or
not the message itself is mirrored.
*/
package session
