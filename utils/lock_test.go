package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, 5*time.Second, 60*time.Millisecond), mr
}

func TestRedisLockerExcludesSecondWriter(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()
	key := ScheduleLockKey("doc-1", "2025-03-01")

	release, err := locker.Acquire(ctx, key)
	require.NoError(t, err)
	assert.True(t, mr.Exists(ScheduleLockPrefix+key))

	_, err = locker.Acquire(ctx, key)
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	release()
	assert.False(t, mr.Exists(ScheduleLockPrefix+key))

	release2, err := locker.Acquire(ctx, key)
	require.NoError(t, err)
	release2()
}

func TestRedisLockerKeysAreIndependent(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	r1, err := locker.Acquire(ctx, ScheduleLockKey("doc-1", "2025-03-01"))
	require.NoError(t, err)
	defer r1()

	r2, err := locker.Acquire(ctx, ScheduleLockKey("doc-1", "2025-03-02"))
	require.NoError(t, err)
	defer r2()
}

func TestRedisLockerReleaseKeepsForeignToken(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()
	key := ScheduleLockKey("doc-1", "2025-03-01")

	release, err := locker.Acquire(ctx, key)
	require.NoError(t, err)

	// Simulate expiry and takeover by another writer.
	require.NoError(t, mr.Set(ScheduleLockPrefix+key, "someone-else"))
	release()

	got, err := mr.Get(ScheduleLockPrefix + key)
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLockerExpiresAfterTTL(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()
	key := ScheduleLockKey("doc-1", "2025-03-01")

	_, err := locker.Acquire(ctx, key)
	require.NoError(t, err)

	mr.FastForward(6 * time.Second)

	release, err := locker.Acquire(ctx, key)
	require.NoError(t, err)
	release()
}
