package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"linkpulse/internal/config"
	"linkpulse/internal/domain"
)

const scanBatch = 500

// RedisURLCache stores link projections as JSON under "url:<code>". Backend
// failures never reach the caller: reads degrade to a miss, writes are logged.
type RedisURLCache struct {
	rdb    *redis.Client
	logger *slog.Logger
	hits   atomic.Uint64
	misses atomic.Uint64
}

func ConnectRedis(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (*RedisURLCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisURLCache(rdb, logger), nil
}

func NewRedisURLCache(rdb *redis.Client, logger *slog.Logger) *RedisURLCache {
	return &RedisURLCache{rdb: rdb, logger: logger}
}

func (c *RedisURLCache) Get(ctx context.Context, shortCode string) (*domain.LinkProjection, bool) {
	raw, err := c.rdb.Get(ctx, urlKey(shortCode)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("url cache get failed",
				slog.String("short_code", shortCode),
				slog.String("error", err.Error()))
		}
		c.misses.Add(1)
		return nil, false
	}

	var p domain.LinkProjection
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn("url cache entry corrupt",
			slog.String("short_code", shortCode),
			slog.String("error", err.Error()))
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return &p, true
}

func (c *RedisURLCache) Put(ctx context.Context, shortCode string, p domain.LinkProjection, ttl time.Duration) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Error("failed to encode url cache entry", slog.String("error", err.Error()))
		return
	}
	if err := c.rdb.Set(ctx, urlKey(shortCode), raw, ttl).Err(); err != nil {
		c.logger.Warn("url cache put failed",
			slog.String("short_code", shortCode),
			slog.String("error", err.Error()))
	}
}

func (c *RedisURLCache) Invalidate(ctx context.Context, shortCode string) {
	if err := c.rdb.Del(ctx, urlKey(shortCode)).Err(); err != nil {
		c.logger.Warn("url cache invalidate failed",
			slog.String("short_code", shortCode),
			slog.String("error", err.Error()))
	}
}

// InvalidateAll removes every url entry with SCAN so other keys in the same
// database are left alone.
func (c *RedisURLCache) InvalidateAll(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, urlKeyPrefix+"*", scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	flush := func() bool {
		if len(keys) == 0 {
			return true
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			c.logger.Warn("url cache invalidate all failed", slog.String("error", err.Error()))
			return false
		}
		keys = keys[:0]
		return true
	}

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= scanBatch && !flush() {
			return
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("url cache scan failed", slog.String("error", err.Error()))
		return
	}
	flush()
}

func (c *RedisURLCache) Stats() (hits, misses uint64, ratio float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

func (c *RedisURLCache) Close() error {
	return c.rdb.Close()
}
