// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package side

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse("Server")
	require.NoError(t, err)
	assert.Equal(t, Server, s)

	s, err = Parse("client")
	require.NoError(t, err)
	assert.Equal(t, Client, s)

	_, err = Parse("both")
	require.ErrorIs(t, err, ErrUnknownSide)
}

func TestProviders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SERVER", Static(Server).Side(context.Background()).String())

	p := ContextProvider{Default: Client}
	assert.Equal(t, Client, p.Side(context.Background()))
	assert.Equal(t, Server, p.Side(WithSide(context.Background(), Server)))
}
