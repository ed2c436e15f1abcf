package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/cache"
	"linkpulse/internal/domain"
	"linkpulse/internal/repository"
	"linkpulse/internal/service"
	"linkpulse/internal/service/mocks"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const ttl = 24 * time.Hour

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type redirectDeps struct {
	links    *mocks.MockLinkStore
	owners   *mocks.MockOwnerDirectory
	cache    *mocks.MockURLCache
	clicks   *mocks.MockClickRecorder
	recorder *mocks.MockBusinessRecorder
	clock    *domain.MockClock
}

func newRedirectService(t *testing.T) (*service.RedirectService, redirectDeps) {
	d := redirectDeps{
		links:    mocks.NewMockLinkStore(t),
		owners:   mocks.NewMockOwnerDirectory(t),
		cache:    mocks.NewMockURLCache(t),
		clicks:   mocks.NewMockClickRecorder(t),
		recorder: mocks.NewMockBusinessRecorder(t),
		clock:    domain.NewMockClock(now),
	}
	d.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	svc := service.NewRedirectService(d.links, d.owners, d.cache, d.clicks, d.recorder, d.clock, ttl, discardLogger())
	return svc, d
}

func projection(active bool, expiresAt *time.Time) *domain.LinkProjection {
	return &domain.LinkProjection{
		ID:          uuid.New(),
		OriginalURL: "https://example.com/target",
		Active:      active,
		ExpiresAt:   expiresAt,
		ClickCount:  4,
	}
}

func resolveRequest() service.ResolveRequest {
	return service.ResolveRequest{
		ShortCode: "abcd1234",
		ClientIP:  "203.0.113.7",
		UserAgent: "Mozilla/5.0",
		Referer:   "https://news.example.com/?utm_source=hn",
	}
}

func TestResolve_CacheHit(t *testing.T) {
	svc, d := newRedirectService(t)
	p := projection(true, nil)

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(p, true)
	d.links.EXPECT().IncrementClickCount(mock.Anything, p.ID).Return(int64(5), nil)
	d.clicks.EXPECT().RecordAsync(mock.Anything).Run(func(req domain.ClickRequest) {
		assert.Equal(t, p.ID, req.LinkID)
		assert.Equal(t, "abcd1234", req.ShortCode)
		assert.Equal(t, "203.0.113.7", req.ClientIP)
		assert.Equal(t, "Mozilla/5.0", req.UserAgent)
		assert.Equal(t, "https://news.example.com/?utm_source=hn", req.Referer)
		assert.Equal(t, now, req.RequestedAt)
	}).Return().Once()
	d.cache.EXPECT().Put(mock.Anything, "abcd1234", mock.MatchedBy(func(got domain.LinkProjection) bool {
		return got.ID == p.ID && got.ClickCount == 5
	}), ttl).Return().Once()

	target, err := svc.Resolve(context.Background(), resolveRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/target", target)
}

func TestResolve_CacheMissLoadsFromStore(t *testing.T) {
	svc, d := newRedirectService(t)
	owner := uuid.New()
	link := &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: "https://example.com/target",
		ShortCode:   "abcd1234",
		OwnerID:     &owner,
		ClickCount:  9,
		Active:      true,
	}

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(nil, false)
	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(link, nil)
	d.owners.EXPECT().DisplayName(mock.Anything, owner).Return("Ada", nil)
	d.cache.EXPECT().Put(mock.Anything, "abcd1234", mock.MatchedBy(func(got domain.LinkProjection) bool {
		return got.ClickCount == 9 && got.OwnerName == "Ada"
	}), ttl).Return().Once()
	d.links.EXPECT().IncrementClickCount(mock.Anything, link.ID).Return(int64(10), nil)
	d.clicks.EXPECT().RecordAsync(mock.Anything).Return().Once()
	d.cache.EXPECT().Put(mock.Anything, "abcd1234", mock.MatchedBy(func(got domain.LinkProjection) bool {
		return got.ClickCount == 10 && got.OwnerName == "Ada"
	}), ttl).Return().Once()

	target, err := svc.Resolve(context.Background(), resolveRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/target", target)
}

func TestResolve_NotFound(t *testing.T) {
	svc, d := newRedirectService(t)

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(nil, false)
	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(nil, domain.ErrNotFound)

	_, err := svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_StoreError(t *testing.T) {
	svc, d := newRedirectService(t)
	storeErr := errors.New("connection refused")

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(nil, false)
	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(nil, storeErr)

	_, err := svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_InactiveIsGone(t *testing.T) {
	svc, d := newRedirectService(t)

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(projection(false, nil), true)

	_, err := svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, domain.ErrGone)
}

func TestResolve_ExpiredIsGoneEvenWhenCachedActive(t *testing.T) {
	svc, d := newRedirectService(t)
	expires := now.Add(time.Hour)
	p := projection(true, &expires)

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(p, true)
	d.links.EXPECT().IncrementClickCount(mock.Anything, p.ID).Return(int64(5), nil).Once()
	d.clicks.EXPECT().RecordAsync(mock.Anything).Return().Once()
	d.cache.EXPECT().Put(mock.Anything, "abcd1234", mock.Anything, ttl).Return().Once()

	_, err := svc.Resolve(context.Background(), resolveRequest())
	require.NoError(t, err)

	d.clock.Advance(2 * time.Hour)

	_, err = svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, domain.ErrGone)
}

func TestResolve_IncrementNotFoundInvalidates(t *testing.T) {
	svc, d := newRedirectService(t)
	p := projection(true, nil)

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(p, true)
	d.links.EXPECT().IncrementClickCount(mock.Anything, p.ID).Return(int64(0), domain.ErrNotFound)
	d.cache.EXPECT().Invalidate(mock.Anything, "abcd1234").Return().Once()

	_, err := svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_IncrementError(t *testing.T) {
	svc, d := newRedirectService(t)
	p := projection(true, nil)
	incErr := errors.New("deadlock detected")

	d.cache.EXPECT().Get(mock.Anything, "abcd1234").Return(p, true)
	d.links.EXPECT().IncrementClickCount(mock.Anything, p.ID).Return(int64(0), incErr)

	_, err := svc.Resolve(context.Background(), resolveRequest())
	assert.ErrorIs(t, err, incErr)
}

type countingClicks struct {
	n atomic.Int64
}

func (c *countingClicks) RecordAsync(domain.ClickRequest) {
	c.n.Add(1)
}

func TestResolve_ConcurrentRedirectsCountEveryVisit(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(now)
	links := repository.NewMemoryLinkRepository(clock)
	urlCache, err := cache.NewLocalURLCache(20)
	require.NoError(t, err)
	defer urlCache.Close()

	link := &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: "https://example.com/target",
		ShortCode:   "abcd1234",
		CreatedAt:   now,
		Active:      true,
	}
	require.NoError(t, links.Create(ctx, link))

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	clicks := &countingClicks{}
	svc := service.NewRedirectService(links, repository.NewMemoryUserRepository(), urlCache, clicks, recorder, clock, ttl, discardLogger())

	const n = 100
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, err := svc.Resolve(ctx, resolveRequest())
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	stored, err := links.FindByShortCode(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, int64(n), stored.ClickCount)
	assert.Equal(t, int64(n), clicks.n.Load())
}

type countingLinks struct {
	*repository.MemoryLinkRepository
	finds atomic.Int64
}

func (c *countingLinks) FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	c.finds.Add(1)
	return c.MemoryLinkRepository.FindByShortCode(ctx, shortCode)
}

func TestResolve_DeactivationInvalidatesCachedLink(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(now)
	store := repository.NewMemoryLinkRepository(clock)
	links := &countingLinks{MemoryLinkRepository: store}
	users := repository.NewMemoryUserRepository()
	urlCache, err := cache.NewLocalURLCache(20)
	require.NoError(t, err)
	defer urlCache.Close()

	owner := uuid.New()
	require.NoError(t, store.Create(ctx, &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: "https://example.com/target",
		ShortCode:   "abcd1234",
		OwnerID:     &owner,
		CreatedAt:   now,
		Active:      true,
	}))

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	codes := mocks.NewMockCodeGenerator(t)

	redirects := service.NewRedirectService(links, users, urlCache, &countingClicks{}, recorder, clock, ttl, discardLogger())
	linkSvc := service.NewLinkService(store, users, urlCache, codes, recorder, clock, "http://short.url", ttl, discardLogger())

	_, err = redirects.Resolve(ctx, resolveRequest())
	require.NoError(t, err)
	urlCache.Wait()

	_, err = redirects.Resolve(ctx, resolveRequest())
	require.NoError(t, err)
	urlCache.Wait()
	assert.Equal(t, int64(1), links.finds.Load(), "second resolve should be served from cache")

	require.NoError(t, linkSvc.Deactivate(ctx, "abcd1234", owner))

	_, err = redirects.Resolve(ctx, resolveRequest())
	assert.ErrorIs(t, err, domain.ErrGone)
	assert.Equal(t, int64(2), links.finds.Load(), "resolve after deactivation should reach the store")

	stored, err := store.FindByShortCode(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ClickCount)
}
