package cache

import (
	"context"
	"time"
)

type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// Aside returns the cached value for key, or calls load and caches its result
// for ttl. Loader errors are returned as-is and never cached.
func Aside[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if cached, ok := store.Get(key); ok {
		if v, ok := cached.(T); ok {
			return v, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	store.Set(key, v, ttl)
	return v, nil
}
