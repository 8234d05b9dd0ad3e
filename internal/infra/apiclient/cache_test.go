//go:build unit

package apiclient_test

import (
	"context"
	"testing"
	"time"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func store(t *testing.T, cache *apiclient.MemoryCache, entry apiclient.CacheEntry) {
	t.Helper()
	ctx := context.Background()
	epoch, err := cache.Epoch(ctx)
	require.NoError(t, err)
	stored, err := cache.SetIfCurrent(ctx, entry, epoch)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	cache := apiclient.NewMemoryCache(clk)

	key := apiclient.CacheKey{Scope: "s", Method: "GET", Path: "/bookings"}
	store(t, cache, apiclient.CacheEntry{Key: key, Value: []byte("v1"), StoredAt: clk.Now(), TTL: time.Minute})

	t.Run("fresh entry is returned", func(t *testing.T) {
		entry, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "v1", string(entry.Value))
	})

	t.Run("entry expires at storedAt plus ttl", func(t *testing.T) {
		clk.Add(time.Minute)
		_, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, cache.Len(), "expired entries are dropped on read")
	})
}

func TestMemoryCacheInvalidateResource(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	cache := apiclient.NewMemoryCache(clk)

	for _, path := range []string{"/country", "/country/list", "/countries", "/locations"} {
		for _, scope := range []string{"a", "b"} {
			key := apiclient.CacheKey{Scope: scope, Method: "GET", Path: path}
			store(t, cache, apiclient.CacheEntry{Key: key, StoredAt: clk.Now(), TTL: time.Hour})
		}
	}

	require.NoError(t, cache.InvalidateResource(ctx, "/country"))

	assert.Equal(t, 4, cache.Len(), "only /country and /country/... are dropped, in every scope")
	_, ok, _ := cache.Get(ctx, apiclient.CacheKey{Scope: "a", Method: "GET", Path: "/countries"})
	assert.True(t, ok, "a sibling sharing the prefix text survives")
}

func TestCacheKeyUnderResource(t *testing.T) {
	key := apiclient.CacheKey{Path: "/booking/7"}
	assert.True(t, key.UnderResource("/booking"))
	assert.True(t, key.UnderResource("/booking/"))
	assert.True(t, key.UnderResource("/booking/7"))
	assert.False(t, key.UnderResource("/bookings"))
	assert.True(t, key.UnderResource(""))
}

func TestMemoryCacheRefusesReadsOverlappingAnInvalidation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	cache := apiclient.NewMemoryCache(clk)

	since, err := cache.Epoch(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.InvalidateResource(ctx, "/bookings"))

	tests := []struct {
		name  string
		path  string
		since uint64
		want  bool
	}{
		{name: "covered read dispatched before the write", path: "/bookings/7", since: since, want: false},
		{name: "root itself", path: "/bookings", since: since, want: false},
		{name: "unrelated resource", path: "/stats", since: since, want: true},
		{name: "read dispatched after the write", path: "/bookings/7", since: since + 1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := apiclient.CacheEntry{Key: apiclient.CacheKey{Scope: "s", Method: "GET", Path: tt.path}, StoredAt: clk.Now(), TTL: time.Hour}
			stored, err := cache.SetIfCurrent(ctx, entry, tt.since)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}
}
