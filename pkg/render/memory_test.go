package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshblock/pkg/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, domain.CacheEntry{Key: "a", Value: []byte("A"), Tags: []string{"x"}, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, c.Set(ctx, domain.CacheEntry{Key: "b", Value: []byte("B"), Tags: []string{"y"}, ExpiresAt: now.Add(2 * time.Hour)}))
	require.NoError(t, c.Set(ctx, domain.CacheEntry{Key: "c", Value: []byte("C"), ExpiresAt: now.Add(-time.Minute)}))

	e, ok, err := c.Get(ctx, "a", now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("A"), e.Value)

	e.Value[0] = 'Z'
	e, _, _ = c.Get(ctx, "a", now)
	assert.Equal(t, []byte("A"), e.Value, "returned value is a copy")

	_, ok, err = c.Get(ctx, "a", now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "expiry instant is exclusive")

	n, err := c.Purge(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only c is expired")

	require.NoError(t, c.InvalidateTags(ctx, "y", "nope"))
	_, ok, _ = c.Get(ctx, "b", now)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
