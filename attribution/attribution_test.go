// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package attribution_test

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-scriptlog/attribution"
	"github.com/stacklok/toolhive-scriptlog/attribution/mocks"
)

func TestAttributor_Resolve_Script(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "srv", "scripts")
	a := attribution.NewAttributor(&attribution.ContextProvider{DefaultModule: "host"}, root)

	ctx, tr := attribution.Track(context.Background(), filepath.Join(root, "recipes", "main.groovy"))
	tr.SetLine(12)

	assert.Equal(t, "recipes/main.groovy:12", a.Resolve(ctx))

	tr.SetLine(13)
	assert.Equal(t, "recipes/main.groovy:13", a.Resolve(ctx), "resolution must not be cached")

	line, ok := a.Line(ctx)
	require.True(t, ok)
	assert.Equal(t, 13, line)
}

func TestAttributor_Resolve_Fallback(t *testing.T) {
	t.Parallel()

	a := attribution.NewAttributor(&attribution.ContextProvider{DefaultModule: "host"}, "")

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"default module", context.Background(), "host"},
		{"context module", attribution.WithModule(context.Background(), "examplemod"), "examplemod"},
		{"tracker without file", attribution.WithTracker(context.Background(), &attribution.Tracker{}), "host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, a.Resolve(tt.ctx))
			_, ok := a.Line(tt.ctx)
			assert.False(t, ok)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		bare := attribution.NewAttributor(nil, "")
		assert.Equal(t, attribution.Unknown, bare.Resolve(context.Background()))
	})
}

func TestAttributor_Resolve_Mock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)

	gomock.InOrder(
		provider.EXPECT().Script(gomock.Any()).Return(attribution.Location{File: "a.groovy", Line: 3}, true),
		provider.EXPECT().Script(gomock.Any()).Return(attribution.Location{}, false),
		provider.EXPECT().ActiveModule(gomock.Any()).Return("examplemod"),
	)

	a := attribution.NewAttributor(provider, "")
	assert.Equal(t, "a.groovy:3", a.Resolve(context.Background()))
	assert.Equal(t, "examplemod", a.Resolve(context.Background()))
}

func TestAttributor_Relative(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "srv", "scripts")
	a := attribution.NewAttributor(nil, root)

	assert.Equal(t, "post/init.groovy", a.Relative(filepath.Join(root, "post", "init.groovy")))
	assert.Equal(t, "post/init.groovy", a.Relative("file:"+filepath.Join(root, "post", "init.groovy")))

	outside := filepath.Join(string(filepath.Separator), "tmp", "other.groovy")
	assert.Equal(t, filepath.ToSlash(outside), a.Relative(outside))
}

func TestWithLocation(t *testing.T) {
	t.Parallel()

	ctx := attribution.WithLocation(context.Background(), attribution.Location{File: "x.groovy", Line: 7})
	loc, ok := (&attribution.ContextProvider{}).Script(ctx)
	require.True(t, ok)
	assert.Equal(t, attribution.Location{File: "x.groovy", Line: 7}, loc)
	assert.Nil(t, attribution.TrackerFrom(context.Background()))
}

func TestTracker_ConcurrentScripts(t *testing.T) {
	t.Parallel()

	a := attribution.NewAttributor(nil, "")

	var wg sync.WaitGroup
	for _, name := range []string{"a.groovy", "b.groovy", "c.groovy"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, tr := attribution.Track(context.Background(), name)
			for line := 1; line <= 200; line++ {
				tr.SetLine(line)
				assert.Equal(t, name+":"+strconv.Itoa(line), a.Resolve(ctx))
			}
		}()
	}
	wg.Wait()
}
