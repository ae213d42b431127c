package cache_test

import (
	"context"
	"testing"
	"time"

	"schedulink-backend/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocks after limit", func(t *testing.T) {
		clearRedis(t)
		limiter := cache.NewRedisRateLimiter(getTestRdb(), 3, time.Minute)

		for i := 1; i <= 3; i++ {
			result, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, result.Allowed)
			assert.Equal(t, i, result.Count)
			assert.Equal(t, 3-i, result.Remaining)
		}

		result, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, 0, result.Remaining)
		assert.True(t, result.ResetIn > 0 && result.ResetIn <= time.Minute)
	})

	t.Run("Keys are independent", func(t *testing.T) {
		clearRedis(t)
		limiter := cache.NewRedisRateLimiter(getTestRdb(), 1, time.Minute)

		first, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		other, err := limiter.Allow(ctx, "10.0.0.2")
		require.NoError(t, err)

		assert.True(t, first.Allowed)
		assert.True(t, other.Allowed)
	})

	t.Run("Window expires", func(t *testing.T) {
		clearRedis(t)
		limiter := cache.NewRedisRateLimiter(getTestRdb(), 1, 200*time.Millisecond)

		_, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		blocked, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, blocked.Allowed)

		time.Sleep(300 * time.Millisecond)

		result, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Reset", func(t *testing.T) {
		clearRedis(t)
		limiter := cache.NewRedisRateLimiter(getTestRdb(), 1, time.Minute)

		_, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.NoError(t, limiter.Reset(ctx, "10.0.0.1"))

		result, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})
}
