package token

import (
	"context"
	"testing"
	"time"

	"support-desk/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisStore(redis.NewClientFromRedis(rdb)), mr
}

func TestRedisStoreIssueAndGet(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{Token: "abc123", ExpiresAt: time.Now().Add(30 * time.Minute)}
	require.NoError(t, store.Issue(ctx, "session-1", rec))

	got, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Token)
	assert.WithinDuration(t, rec.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestRedisStoreIssueRejectsExpiredRecord(t *testing.T) {
	store, _ := newTestRedisStore(t)

	rec := Record{Token: "abc", ExpiresAt: time.Now().Add(-time.Minute)}
	err := store.Issue(context.Background(), "session-1", rec)
	assert.Error(t, err)
}

func TestRedisStoreGetUnknownSession(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreRecordExpiresWithTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{Token: "abc", ExpiresAt: time.Now().Add(30 * time.Minute)}
	require.NoError(t, store.Issue(ctx, "session-1", rec))

	mr.FastForward(31 * time.Minute)

	_, err := store.Get(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{Token: "abc", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Issue(ctx, "session-1", rec))
	require.NoError(t, store.Delete(ctx, "session-1"))

	_, err := store.Get(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreSweepIsNoop(t *testing.T) {
	store, _ := newTestRedisStore(t)
	assert.NoError(t, store.Sweep(context.Background()))
}
