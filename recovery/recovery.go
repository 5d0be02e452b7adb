// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"context"
	"net/http"

	"github.com/stacklok/toolhive-scriptlog/message"
)

// FailureLogger writes failure blocks. *session.Session implements it.
type FailureLogger interface {
	Failure(ctx context.Context, f *message.Failure)
}

// PanicError is returned by Run when the guarded function panicked.
type PanicError struct {
	Failure *message.Failure
}

// Error returns the failure's display string.
func (e *PanicError) Error() string {
	return e.Failure.Display()
}

// Run calls fn and logs its error or panic as a failure. A panic is
// returned as *PanicError. A nil logger only recovers.
func Run(ctx context.Context, logger FailureLogger, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f := message.FailureFromPanic(r)
			if logger != nil {
				logger.Failure(ctx, f)
			}
			err = &PanicError{Failure: f}
		}
	}()

	if err = fn(ctx); err != nil && logger != nil {
		logger.Failure(ctx, message.FailureFromError(err))
	}
	return err
}

// Middleware is an HTTP middleware that recovers from panics.
// When a panic occurs, it logs the failure with the request context and
// returns a 500 Internal Server Error response to the client, preventing
// the panic from crashing the server.
func Middleware(logger FailureLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if logger != nil {
					logger.Failure(r.Context(), message.FailureFromPanic(v))
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
