package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"issuetracker/internal/shared/biztime"
)

// RedisRateLimiter is a fixed-window counter shared by every instance that
// points at the same Redis.
type RedisRateLimiter struct {
	client *redis.Client
	config Config
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, prefix string, config Config) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		prefix: prefix,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.config.Enabled() {
		return true, nil
	}

	redisKey := l.windowKey(key, biztime.NowUTC())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// the key is bucketed, so refreshing its TTL never extends the window
	pipe.Expire(ctx, redisKey, l.config.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return incr.Val() <= int64(l.config.Limit), nil
}

// Reset clears every window counter for key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("ratelimit:%s:%s:*", l.prefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) windowKey(key string, now time.Time) string {
	bucket := now.Unix() / int64(l.config.Window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.prefix, key, bucket)
}
