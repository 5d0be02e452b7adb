// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/toolhive-scriptlog/hostlog"
	"github.com/stacklok/toolhive-scriptlog/message"
	"github.com/stacklok/toolhive-scriptlog/session"
	"github.com/stacklok/toolhive-scriptlog/sink"
)

type failureCollector struct {
	mu       sync.Mutex
	failures []*message.Failure
	ctxs     []context.Context
}

func (c *failureCollector) Failure(ctx context.Context, f *message.Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, f)
	c.ctxs = append(c.ctxs, ctx)
}

func TestRun_NoError(t *testing.T) {
	t.Parallel()

	logger := &failureCollector{}
	called := false
	err := Run(context.Background(), logger, func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, logger.failures)
}

func TestRun_LogsReturnedError(t *testing.T) {
	t.Parallel()

	logger := &failureCollector{}
	scriptErr := errors.New("no such item: minecraft:stik")
	err := Run(context.Background(), logger, func(context.Context) error {
		return scriptErr
	})

	require.ErrorIs(t, err, scriptErr)
	require.Len(t, logger.failures, 1)
	assert.Equal(t, "no such item: minecraft:stik", logger.failures[0].Display())
}

func TestRun_RecoverFromPanic(t *testing.T) {
	t.Parallel()

	logger := &failureCollector{}
	var err error
	assert.NotPanics(t, func() {
		err = Run(context.Background(), logger, func(context.Context) error {
			panic("index out of range")
		})
	})

	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "panic: index out of range", panicErr.Error())
	require.Len(t, logger.failures, 1)
	assert.Same(t, panicErr.Failure, logger.failures[0])
	assert.NotEmpty(t, panicErr.Failure.Frames())
}

func TestRun_NilLogger(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), nil, func(context.Context) error {
		panic(errors.New("boom"))
	})

	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "panic: boom", panicErr.Error())
}

func TestRun_WritesFailureBlock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), sink.FileName)
	sess := session.Open(path, session.WithHost(hostlog.Nop{}))

	err := Run(context.Background(), sess, func(context.Context) error {
		panic("recipe registry is frozen")
	})
	require.Error(t, err)
	require.NoError(t, sess.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(content), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasSuffix(lines[2], session.FailureHeader))
	assert.Equal(t, "\tpanic: recipe registry is frozen", lines[3])
}

func TestMiddleware_NoPanic(t *testing.T) {
	t.Parallel()

	// Create a test handler that does not panic
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	logger := &failureCollector{}
	wrappedHandler := Middleware(logger, testHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())
	assert.Empty(t, logger.failures)
}

func TestMiddleware_RecoverFromPanic(t *testing.T) {
	t.Parallel()

	// Create a test handler that panics
	testHandler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	})

	logger := &failureCollector{}
	wrappedHandler := Middleware(logger, testHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	// Execute request - should not panic
	wrappedHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
	require.Len(t, logger.failures, 1)
	assert.Equal(t, "panic: test panic", logger.failures[0].Display())
}

func TestMiddleware_NilLogger(t *testing.T) {
	t.Parallel()

	testHandler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	Middleware(nil, testHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMiddleware_PreservesRequestContext(t *testing.T) {
	t.Parallel()

	type contextKey string
	const key contextKey = "test-key"
	const value = "test-value"

	var receivedValue string

	// Create a test handler that reads from context, then panics
	testHandler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if v := r.Context().Value(key); v != nil {
			receivedValue = v.(string)
		}
		panic("after reading context")
	})

	logger := &failureCollector{}
	wrappedHandler := Middleware(logger, testHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := context.WithValue(req.Context(), key, value)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	assert.Equal(t, value, receivedValue)
	require.Len(t, logger.ctxs, 1)
	assert.Equal(t, value, logger.ctxs[0].Value(key))
}
