// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package attribution resolves which script location a log line belongs to.

The current script position is carried in the context of the executing
script rather than in shared state, so concurrent script runs never see
each other's positions. A script engine installs a Tracker when it starts a
file and moves it forward while it executes:

	ctx, tr := attribution.Track(ctx, "/srv/scripts/recipes/main.groovy")
	tr.SetLine(12)
	sess.Info(ctx, "loaded {} recipes", n) // attributed to recipes/main.groovy:12

Calls made outside any script fall back to the id of the active host
module:

	ctx = attribution.WithModule(ctx, "examplemod")

# Testing

Provider is an interface; a generated mock lives in the mocks sub-package.
*/
package attribution
