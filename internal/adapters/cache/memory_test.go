package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v1"))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	// Last writer wins.
	require.NoError(t, c.Set(ctx, "k", "v2"))
	v, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, c.Delete(ctx, "k"))
}
