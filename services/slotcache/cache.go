// File: services/slotcache/cache.go
package slotcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"hospital/models"
	"hospital/utils"

	"github.com/go-redis/redis/v8"
)

// SlotCache holds computed free slots per doctor and date. Every Invalidate
// bumps the day's generation; Set only stores a list computed at the current
// generation so a slow reader cannot write back slots a booking already took.
type SlotCache interface {
	Get(ctx context.Context, doctorID, date string) (slots []models.Slot, gen int64, ok bool, err error)
	Set(ctx context.Context, doctorID, date string, gen int64, slots []models.Slot) (bool, error)
	Invalidate(ctx context.Context, doctorID, date string) error
}

// generationTTL bounds how long a generation counter outlives its last bump.
const generationTTL = 24 * time.Hour

// setIfCurrent stores the slot list only while the generation is unchanged.
var setIfCurrent = redis.NewScript(`
local gen = redis.call("GET", KEYS[2]) or "0"
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl}
}

func slotKey(doctorID, date string) string {
	return fmt.Sprintf("%s%s:%s", utils.SlotCachePrefix, doctorID, date)
}

func generationKey(doctorID, date string) string {
	return fmt.Sprintf("%s%s:%s", utils.SlotGenerationPrefix, doctorID, date)
}

// Get reports a miss with ok=false; a stored empty list is a hit. The
// generation is returned on hits and misses alike.
func (c *RedisSlotCache) Get(ctx context.Context, doctorID, date string) ([]models.Slot, int64, bool, error) {
	vals, err := c.client.MGet(ctx, slotKey(doctorID, date), generationKey(doctorID, date)).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to read slot cache: %w", err)
	}

	var gen int64
	if raw, ok := vals[1].(string); ok {
		if gen, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, 0, false, fmt.Errorf("corrupt slot cache generation: %w", err)
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false, nil
	}
	slots := []models.Slot{}
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, gen, false, fmt.Errorf("corrupt slot cache entry: %w", err)
	}
	return slots, gen, true, nil
}

// Set reports false without error when the day was invalidated after gen was read.
func (c *RedisSlotCache) Set(ctx context.Context, doctorID, date string, gen int64, slots []models.Slot) (bool, error) {
	if slots == nil {
		slots = []models.Slot{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return false, err
	}
	keys := []string{slotKey(doctorID, date), generationKey(doctorID, date)}
	stored, err := setIfCurrent.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), data, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to write slot cache: %w", err)
	}
	return stored == 1, nil
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, doctorID, date string) error {
	genKey := generationKey(doctorID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, slotKey(doctorID, date))
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		return nil
	})
	return err
}
