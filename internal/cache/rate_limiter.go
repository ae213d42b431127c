package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitResult 單次計數結果
type RateLimitResult struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetIn   time.Duration
}

type RateLimiter interface {
	// Allow 對 key 在目前時間窗內計數一次 (使用Lua腳本確保原子性)
	Allow(ctx context.Context, key string) (RateLimitResult, error)
	// Reset 清除 key 的計數
	Reset(ctx context.Context, key string) error
}

type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) getKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

// 固定時間窗：第一次計數時設定過期時間
var allowScript = redis.NewScript(`
	local key = KEYS[1]
	local window_ms = tonumber(ARGV[1])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('PEXPIRE', key, window_ms)
	end

	local ttl = redis.call('PTTL', key)
	return {count, ttl}
`)

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	result, err := allowScript.Run(ctx, l.client, []string{l.getKey(key)}, l.window.Milliseconds()).Result()
	if err != nil {
		return RateLimitResult{}, err
	}

	resSlice, ok := result.([]interface{})
	if !ok || len(resSlice) != 2 {
		return RateLimitResult{}, fmt.Errorf("unexpected rate limit result: %v", result)
	}
	count, _ := resSlice[0].(int64)
	ttl, _ := resSlice[1].(int64)
	if ttl < 0 {
		ttl = l.window.Milliseconds()
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:   int(count) <= l.limit,
		Count:     int(count),
		Remaining: remaining,
		ResetIn:   time.Duration(ttl) * time.Millisecond,
	}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.getKey(key)).Err()
}
