// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hostlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/toolhive-scriptlog/env/mocks"
	"github.com/stacklok/toolhive-scriptlog/severity"
)

func TestZap_Log(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	fwd := NewZap(zap.New(core))

	for _, l := range severity.All() {
		fwd.Log(l, "message at "+l.String())
	}

	entries := logs.All()
	require.Len(t, entries, 5, "OFF must not be forwarded")

	wantLevels := []zapcore.Level{
		zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.ErrorLevel,
	}
	for i, e := range entries {
		assert.Equal(t, wantLevels[i], e.Level)
		assert.Equal(t, LoggerName, e.LoggerName)
	}
	assert.Equal(t, "message at FATAL", entries[4].Message)
	assert.Equal(t, "FATAL", entries[4].ContextMap()["severity"])
}

func TestZap_RespectsCoreLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	fwd := NewZap(zap.New(core))

	fwd.Log(severity.Debug, "hidden")
	fwd.Log(severity.Info, "shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestZap_Logr(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	fwd := NewZap(zap.New(core))

	fwd.Logr().Info("through logr")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "through logr", logs.All()[0].Message)
}

// TestUnstructuredLogsCheck tests the unstructuredLogsWithEnv function
func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.envValue)

			assert.Equal(t, tt.expected, unstructuredLogsWithEnv(mockEnv))
		})
	}
}

func TestBuildZap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		env   string
		debug bool
		level zapcore.Level
	}{
		{"unstructured debug", "true", true, zapcore.DebugLevel},
		{"structured info", "false", false, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.env)

			logger, err := BuildZap(mockEnv, tt.debug)
			require.NoError(t, err)
			assert.Equal(t, tt.level, zapcore.LevelOf(logger.Core()))
		})
	}
}

func TestSlog_Log(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fwd := NewSlog(WithOutput(&buf), WithLevel(slog.LevelDebug))

	fwd.Log(severity.Off, "hidden")
	fwd.Log(severity.Warn, "careful")
	fwd.Log(severity.Fatal, "over")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn, fatal map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &fatal))

	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "careful", warn["msg"])
	assert.Equal(t, LoggerName, warn["logger"])
	assert.Equal(t, "FATAL", fatal["level"])

	ts, ok := warn["time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestSlog_TextFormatAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fwd := NewSlog(WithFormat(FormatText), WithOutput(&buf))

	fwd.Log(severity.Debug, "filtered at info")
	assert.Empty(t, buf.String())

	fwd.Log(severity.Info, "hello")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestLogr_Log(t *testing.T) {
	t.Parallel()

	var out []string
	logger := funcr.New(func(prefix, args string) {
		out = append(out, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	fwd := NewLogr(logger)
	fwd.Log(severity.Off, "hidden")
	fwd.Log(severity.Debug, "dbg")
	fwd.Log(severity.Info, "inf")
	fwd.Log(severity.Error, "err")

	require.Len(t, out, 3)
	assert.Contains(t, out[0], `"msg"="dbg"`)
	assert.Contains(t, out[0], `"level"=1`)
	assert.Contains(t, out[1], `"severity"="INFO"`)
	assert.Contains(t, out[2], `"msg"="err"`)
	assert.Contains(t, out[2], `"severity"="ERROR"`)
	for _, line := range out {
		assert.True(t, strings.HasPrefix(line, LoggerName), line)
	}
}

func TestMultiAndFunc(t *testing.T) {
	t.Parallel()

	var got []string
	rec := Func(func(level severity.Level, text string) {
		got = append(got, level.String()+":"+text)
	})

	Multi{rec, nil, Nop{}, rec}.Log(severity.Warn, "x")
	assert.Equal(t, []string{"WARN:x", "WARN:x"}, got)
}
