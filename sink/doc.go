// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package sink provides the append-only text file behind a script log
session.

Open starts a fresh file for every session: an existing file at the path is
removed and a new one is created, beginning with a two line banner:

	============  GroovyLog  ====  14.10.2026  ============
	GroovyLog version: 1.4.0

If the file cannot be created the sink falls back to a console writer for
the rest of its life. The decision is made once in Open and never retried.

Every AppendLine and AppendLines call is written as a unit under one lock
and flushed before it returns, so lines from concurrent callers never
interleave.

# Location

The file lives next to the host's configuration directory:

	sink.Path("/home/me/.minecraft/config") // "/home/me/.minecraft/groovy.log"
	sink.DefaultPath()                      // derived from xdg.ConfigHome
*/
package sink
