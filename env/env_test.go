// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader_Getenv(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	const key = "SCRIPTLOG_TEST_ENV_VARIABLE"
	t.Setenv(key, "test_value_123")

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"existing environment variable", key, "test_value_123"},
		{"non-existing environment variable", "SCRIPTLOG_NONEXISTENT_12345", ""},
		{"empty key", "", ""},
	}

	for _, tt := range tests { //nolint:paralleltest // Parent test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Getenv(tt.key))
		})
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	reader := Map{
		"ON":    "true",
		"OFF":   "0",
		"SPACE": " 1 ",
		"BAD":   "sometimes",
		"EMPTY": "",
	}

	tests := []struct {
		key   string
		value bool
		ok    bool
	}{
		{"ON", true, true},
		{"OFF", false, true},
		{"SPACE", true, true},
		{"BAD", false, false},
		{"EMPTY", false, false},
		{"UNSET", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			value, ok := Bool(reader, tt.key)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

// TestReader_InterfaceCompliance ensures the readers implement Reader
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = Map{}
}
