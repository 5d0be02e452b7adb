// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package linefmt renders a message into the lines of the session log.

Every line starts with a header:

	[14:03:27] [CLIENT/WARN] [recipes/main.groovy:12]: 

followed by the message. A message and its sub-lines are folded as
follows:

  - no sub-lines: one line with the main text
  - one sub-line and fewer than CombineLimit characters in total: one
    line "main: - sub"
  - otherwise: a line "main: " followed by one " - sub" line for every
    sub-line after the first

The first sub-line is not written in the last case. Existing consumers of
the log rely on this layout, so it is kept as is.

HostLines applies the same branching to the host log, which has its own
header and appends the script line number instead.
*/
package linefmt
