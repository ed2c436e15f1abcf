package device

import (
	"context"
	"time"

	"linkpulse/internal/cache"
	"linkpulse/internal/domain"
)

// CachedClassifier memoizes Classify by exact user agent.
type CachedClassifier struct {
	store cache.Store
	ttl   time.Duration
}

func NewCachedClassifier(store cache.Store, ttl time.Duration) *CachedClassifier {
	return &CachedClassifier{store: store, ttl: ttl}
}

func (c *CachedClassifier) Classify(ctx context.Context, userAgent string) domain.DeviceInfo {
	if userAgent == "" {
		return domain.UnknownDevice()
	}
	info, _ := cache.Aside(ctx, c.store, "ua:"+userAgent, c.ttl, func(context.Context) (domain.DeviceInfo, error) {
		return Classify(userAgent), nil
	})
	return info
}
