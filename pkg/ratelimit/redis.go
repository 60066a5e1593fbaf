package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"support-desk/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter implements the sliding window with a Redis sorted set of
// request timestamps, shared across service instances.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration

	now func() time.Time
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a Redis-backed sliding-window limiter.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records the request and reports whether it fits inside the window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key
	now := l.now()
	cutoff := now.Add(-l.window).UnixMilli()

	// drop timestamps that slid out of the window
	err := l.client.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10))
	if err != nil {
		return false, err
	}

	count, err := l.client.ZCard(ctx, redisKey)
	if err != nil {
		return false, err
	}
	if count >= int64(l.limit) {
		return false, nil
	}

	err = l.client.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixMilli()),
		Member: fmt.Sprintf("%d-%d", now.UnixNano(), count),
	})
	if err != nil {
		return false, err
	}

	// the key only needs to outlive the oldest timestamp in it
	err = l.client.Expire(ctx, redisKey, l.window)
	if err != nil {
		return false, err
	}

	return true, nil
}
