// Package cache provides an optional Redis-backed cache for computed
// cycle detail responses. The cache is best-effort: a nil *Cache or an
// unreachable Redis never fails a request, it only skips caching.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dompet/internal/logger"
)

const cycleTTL = 5 * time.Minute

// Cache wraps a Redis client for cycle-detail lookups.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. Returns nil (caching disabled) when
// addr is empty or the server cannot be reached.
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}

	opt, err := redis.ParseURL(fmt.Sprintf("redis://%s", addr))
	if err != nil {
		opt = &redis.Options{Addr: addr}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warnf("redis unavailable, continuing without cache: %v", err)
		return nil
	}

	return &Cache{client: client}
}

func cycleKey(year, month int) string {
	return fmt.Sprintf("cycle:%04d-%02d", year, month)
}

// GetCycleDetail loads a cached detail into dest. Returns false on miss,
// decode failure, or disabled cache.
func (c *Cache) GetCycleDetail(ctx context.Context, year, month int, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, cycleKey(year, month)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetCycleDetail stores a computed detail with a short TTL.
func (c *Cache) SetCycleDetail(ctx context.Context, year, month int, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cycleKey(year, month), raw, cycleTTL).Err(); err != nil {
		logger.Get().Warnf("cache set failed: %v", err)
	}
}

// InvalidateCycle drops the cached detail for one cycle.
func (c *Cache) InvalidateCycle(ctx context.Context, year, month int) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, cycleKey(year, month)).Err(); err != nil {
		logger.Get().Warnf("cache invalidate failed: %v", err)
	}
}

// InvalidateAll flushes every cached cycle. Used when a shared input
// (config version, initial savings) changes.
func (c *Cache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "cycle:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Get().Warnf("cache invalidate failed: %v", err)
		}
	}
}
