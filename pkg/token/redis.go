package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"support-desk/pkg/redis"
)

const redisKeyPrefix = "csrf:session:"

// RedisStore keeps token records in Redis with a native TTL, so multiple
// service instances can share one token table.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a token store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

// Issue stores or overwrites the record, expiring it with the record itself.
func (s *RedisStore) Issue(ctx context.Context, sessionID string, rec Record) error {
	ttl := rec.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("record for session %q is already expired", sessionID)
	}

	return s.client.Set(ctx, redisKeyPrefix+sessionID, rec, ttl)
}

// Get returns the record for a session identifier, or ErrNotFound once the
// key has expired.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	var rec Record
	err := s.client.Get(ctx, redisKeyPrefix+sessionID, &rec)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record for a session identifier.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Delete(ctx, redisKeyPrefix+sessionID)
}

// Sweep is a no-op: Redis expires keys natively.
func (s *RedisStore) Sweep(ctx context.Context) error {
	return nil
}
