package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()
	defer c.Close()

	entry := &Entry{Payload: []byte("state123"), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, c.Set(ctx, "token-a", entry))

	got, ok := c.Get(ctx, "token-a")
	require.True(t, ok)
	assert.Equal(t, []byte("state123"), got.Payload)

	_, ok = c.Get(ctx, "token-b")
	assert.False(t, ok, "unknown token is a miss, not an error")
}

func TestMemoryTokenCache_DropsDeadEntries(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()
	defer c.Close()

	dead := &Entry{Payload: []byte("x"), ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, c.Set(ctx, "dead", dead))

	_, ok := c.Get(ctx, "dead")
	assert.False(t, ok, "entries already expired are never cached")
}

func TestMemoryTokenCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()
	defer c.Close()

	entry := &Entry{Payload: []byte("x"), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, c.Set(ctx, "token-a", entry))
	require.NoError(t, c.Delete(ctx, "token-a"))

	_, ok := c.Get(ctx, "token-a")
	assert.False(t, ok)
}
