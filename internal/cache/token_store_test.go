package cache_test

import (
	"context"
	"testing"
	"time"

	"schedulink-backend/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Revoke then IsRevoked", func(t *testing.T) {
		clearRedis(t)
		store := cache.NewRedisTokenStore(getTestRdb())

		revoked, err := store.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)

		require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))

		revoked, err = store.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		ttl, err := getTestRdb().TTL(ctx, "auth:revoked:jti-1").Result()
		require.NoError(t, err)
		assert.True(t, ttl > 0 && ttl <= time.Minute)
	})

	t.Run("Expired token is not stored", func(t *testing.T) {
		clearRedis(t)
		store := cache.NewRedisTokenStore(getTestRdb())

		require.NoError(t, store.Revoke(ctx, "jti-2", -time.Second))

		revoked, err := store.IsRevoked(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
