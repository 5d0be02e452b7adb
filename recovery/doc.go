// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery turns script panics and errors into failure blocks in
// the script log.
//
// Run guards a single script run. A returned error or a panic is written
// to the log as a failure and reported to the caller, so a broken script
// never takes the host down.
//
// # Basic Usage
//
//	err := recovery.Run(ctx, sess, func(ctx context.Context) error {
//		return script.Eval(ctx)
//	})
//
// Middleware does the same for HTTP handlers that trigger script runs,
// answering 500 Internal Server Error after a panic:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/reload", reloadScripts)
//	http.ListenAndServe(":8080", recovery.Middleware(sess, mux))
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package recovery
