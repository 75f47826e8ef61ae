// File: utils/constants.go
package utils

import "time"

// ScheduleLockPrefix is the prefix used for Redis schedule lock keys.
const ScheduleLockPrefix = "lock:schedule:"

// SlotCachePrefix is the prefix used for Redis slot cache keys.
const SlotCachePrefix = "slots:"

// SlotGenerationPrefix keys the per doctor+date invalidation counter.
const SlotGenerationPrefix = "slotgen:"

// lockRetryInterval is how long Acquire sleeps between SET NX attempts.
const lockRetryInterval = 25 * time.Millisecond
