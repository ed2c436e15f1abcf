package cache

import (
	"context"
	"time"

	"linkpulse/internal/domain"
)

const urlKeyPrefix = "url:"

func urlKey(shortCode string) string {
	return urlKeyPrefix + shortCode
}

// LocalURLCache keeps link projections in process. Used when no redis address
// is configured.
type LocalURLCache struct {
	store *Local
}

func NewLocalURLCache(maxSizePow2 int) (*LocalURLCache, error) {
	store, err := NewLocal(maxSizePow2)
	if err != nil {
		return nil, err
	}
	return &LocalURLCache{store: store}, nil
}

func (c *LocalURLCache) Get(_ context.Context, shortCode string) (*domain.LinkProjection, bool) {
	val, found := c.store.Get(urlKey(shortCode))
	if !found {
		return nil, false
	}
	p, ok := val.(domain.LinkProjection)
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *LocalURLCache) Put(_ context.Context, shortCode string, p domain.LinkProjection, ttl time.Duration) {
	c.store.Set(urlKey(shortCode), p, ttl)
}

func (c *LocalURLCache) Invalidate(_ context.Context, shortCode string) {
	c.store.Del(urlKey(shortCode))
}

func (c *LocalURLCache) InvalidateAll(_ context.Context) {
	c.store.Clear()
}

func (c *LocalURLCache) Wait() {
	c.store.Wait()
}

func (c *LocalURLCache) Stats() (hits, misses uint64, ratio float64) {
	return c.store.Stats()
}

func (c *LocalURLCache) Close() error {
	c.store.Close()
	return nil
}
