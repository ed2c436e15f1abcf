package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/cache"
)

type mapStore struct {
	entries map[string]any
	ttls    map[string]time.Duration
}

func newMapStore() *mapStore {
	return &mapStore{entries: map[string]any{}, ttls: map[string]time.Duration{}}
}

func (s *mapStore) Get(key string) (any, bool) {
	v, ok := s.entries[key]
	return v, ok
}

func (s *mapStore) Set(key string, value any, ttl time.Duration) {
	s.entries[key] = value
	s.ttls[key] = ttl
}

func TestAside_LoadsOnceThenServesFromCache(t *testing.T) {
	store := newMapStore()
	calls := 0
	load := func(context.Context) (int64, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := cache.Aside(context.Background(), store, "total:abc", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, store.ttls["total:abc"])
}

func TestAside_LoaderErrorNotCached(t *testing.T) {
	store := newMapStore()
	loadErr := errors.New("db down")
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", loadErr
		}
		return "ok", nil
	}

	_, err := cache.Aside(context.Background(), store, "k", time.Minute, load)
	require.ErrorIs(t, err, loadErr)
	_, found := store.Get("k")
	assert.False(t, found)

	v, err := cache.Aside(context.Background(), store, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestAside_TypeMismatchReloads(t *testing.T) {
	store := newMapStore()
	store.Set("k", "not an int", time.Minute)

	v, err := cache.Aside(context.Background(), store, "k", time.Minute, func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, store.entries["k"])
}

func TestAside_WithLocalStore(t *testing.T) {
	local, err := cache.NewLocal(20)
	require.NoError(t, err)
	defer local.Close()

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	_, err = cache.Aside(context.Background(), local, "list", time.Minute, load)
	require.NoError(t, err)
	local.Wait()

	v, err := cache.Aside(context.Background(), local, "list", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)
}
