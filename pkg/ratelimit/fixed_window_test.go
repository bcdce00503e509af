package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/ratelimit"
)

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	defer store.Close()

	t.Run("valid configuration", func(t *testing.T) {
		t.Parallel()
		limiter, err := ratelimit.NewFixedWindow(store, 5, time.Minute)
		require.NoError(t, err)
		assert.NotNil(t, limiter)
	})

	t.Run("nil store", func(t *testing.T) {
		t.Parallel()
		_, err := ratelimit.NewFixedWindow(nil, 5, time.Minute)
		assert.ErrorIs(t, err, ratelimit.ErrStoreRequired)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()
		_, err := ratelimit.NewFixedWindow(store, 0, time.Minute)
		assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
	})

	t.Run("invalid window", func(t *testing.T) {
		t.Parallel()
		_, err := ratelimit.NewFixedWindow(store, 5, 0)
		assert.ErrorIs(t, err, ratelimit.ErrInvalidWindow)
	})
}

func TestFixedWindow_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("allows up to limit then denies", func(t *testing.T) {
		t.Parallel()
		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewFixedWindow(store, 5, time.Minute)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			res, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d should be allowed", i+1)
			assert.Equal(t, 5-(i+1), res.Remaining)
		}

		res, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Positive(t, res.RetryAfter())
	})

	t.Run("independent keys do not contend", func(t *testing.T) {
		t.Parallel()
		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewFixedWindow(store, 1, time.Minute)
		require.NoError(t, err)

		res, err := limiter.Allow(ctx, "client-b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = limiter.Allow(ctx, "client-c")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		t.Parallel()
		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewFixedWindow(store, 2, 50*time.Millisecond)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			res, err := limiter.Allow(ctx, "client-d")
			require.NoError(t, err)
			assert.True(t, res.Allowed)
		}
		res, err := limiter.Allow(ctx, "client-d")
		require.NoError(t, err)
		assert.False(t, res.Allowed)

		time.Sleep(60 * time.Millisecond)

		res, err = limiter.Allow(ctx, "client-d")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		t.Parallel()
		store := ratelimit.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimit.NewFixedWindow(store, 5, time.Minute)
		require.NoError(t, err)

		_, err = limiter.Allow(ctx, "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})
}

func TestFixedWindow_Status(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimit.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimit.NewFixedWindow(store, 2, time.Minute)
	require.NoError(t, err)

	res, err := limiter.Status(ctx, "client-e")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)

	_, err = limiter.Allow(ctx, "client-e")
	require.NoError(t, err)

	// Status does not consume a slot
	for i := 0; i < 3; i++ {
		res, err = limiter.Status(ctx, "client-e")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}

	_, err = limiter.Allow(ctx, "client-e")
	require.NoError(t, err)

	res, err = limiter.Status(ctx, "client-e")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}

func TestFixedWindow_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimit.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimit.NewFixedWindow(store, 1, time.Minute)
	require.NoError(t, err)

	res, err := limiter.Allow(ctx, "client-f")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "client-f")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	require.NoError(t, limiter.Reset(ctx, "client-f"))

	res, err = limiter.Allow(ctx, "client-f")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
