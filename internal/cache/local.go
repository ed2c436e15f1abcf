package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"linkpulse/internal/domain"
)

// Local is an in-process TTL cache with a byte budget of 2^maxSizePow2.
type Local struct {
	cache *ristretto.Cache
}

func NewLocal(maxSizePow2 int) (*Local, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        estimateCost,
	})
	if err != nil {
		return nil, err
	}
	return &Local{cache: cache}, nil
}

func (c *Local) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Set stores value for ttl. A zero ttl keeps the entry until evicted.
func (c *Local) Set(key string, value any, ttl time.Duration) {
	c.cache.SetWithTTL(key, value, 0, ttl)
}

func (c *Local) Del(key string) {
	c.cache.Del(key)
}

func (c *Local) Clear() {
	c.cache.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Local) Wait() {
	c.cache.Wait()
}

func (c *Local) Close() {
	c.cache.Close()
}

func (c *Local) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

func estimateCost(value any) int64 {
	const overhead = 64
	switch v := value.(type) {
	case string:
		return int64(len(v)) + overhead
	case []byte:
		return int64(len(v)) + overhead
	case domain.LinkProjection:
		return int64(len(v.OriginalURL)+len(v.OwnerName)) + overhead
	case domain.DeviceInfo:
		return int64(len(v.Browser)+len(v.DeviceType)+len(v.OperatingSystem)) + overhead
	case domain.GeoLocation:
		return int64(len(v.Country)+len(v.City)+len(v.Region)+len(v.Timezone)+len(v.ISP)) + overhead
	case []domain.DimensionCount:
		return int64(len(v))*32 + overhead
	case []domain.TimeBucket:
		return int64(len(v))*32 + overhead
	case []domain.ClickEvent:
		return int64(len(v))*256 + overhead
	default:
		return overhead
	}
}
