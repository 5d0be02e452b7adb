// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strconv"
	"strings"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Map implements Reader over a fixed set of variables.
type Map map[string]string

// Getenv returns the value stored for key.
func (m Map) Getenv(key string) string {
	return m[key]
}

// Bool parses the variable named by key as a boolean. The second result is
// false when the variable is unset, empty or not a valid boolean.
func Bool(r Reader, key string) (value, ok bool) {
	raw := strings.TrimSpace(r.Getenv(key))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
