package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLockNotAcquired is returned when another writer holds the lock past the wait budget.
var ErrLockNotAcquired = errors.New("could not acquire schedule lock")

// Locker serializes writers on a key. The returned func releases the lock.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a single-instance Redis lock (SET NX PX with a random token).
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, wait: wait}
}

// ScheduleLockKey scopes a lock to one doctor's day.
func ScheduleLockKey(doctorID, date string) string {
	return doctorID + ":" + date
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := ScheduleLockPrefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() {
				// Released with a fresh context so a cancelled request still unlocks.
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
					GetLogger().Warn("failed to release schedule lock", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}
