// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hospital/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the client for the slot cache.
	CacheClient *redis.Client
	// LockClient is the dedicated client for schedule locks.
	LockClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects both Redis clients.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
}

// GetCacheClient returns the slot cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetLockClient returns the schedule lock client.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
	}
	return LockClient
}
