package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore 記錄已登出的 token id，保留到 token 原本的到期時間
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &RedisTokenStore{
		client: client,
	}
}

func (s *RedisTokenStore) getKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	// 已過期的 token 不需要記錄
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.getKey(tokenID), 1, ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, s.getKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
