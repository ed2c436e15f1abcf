package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/domain"
	"linkpulse/internal/service"
	"linkpulse/internal/service/mocks"
)

type linkDeps struct {
	links    *mocks.MockLinkStore
	owners   *mocks.MockOwnerDirectory
	cache    *mocks.MockURLCache
	codes    *mocks.MockCodeGenerator
	recorder *mocks.MockBusinessRecorder
	clock    *domain.MockClock
}

func newLinkService(t *testing.T) (*service.LinkService, linkDeps) {
	d := linkDeps{
		links:    mocks.NewMockLinkStore(t),
		owners:   mocks.NewMockOwnerDirectory(t),
		cache:    mocks.NewMockURLCache(t),
		codes:    mocks.NewMockCodeGenerator(t),
		recorder: mocks.NewMockBusinessRecorder(t),
		clock:    domain.NewMockClock(now),
	}
	d.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	svc := service.NewLinkService(d.links, d.owners, d.cache, d.codes, d.recorder, d.clock, "http://short.url", ttl, discardLogger())
	return svc, d
}

// Shorten tests

func TestShorten_CreatesLink(t *testing.T) {
	svc, d := newLinkService(t)
	owner := uuid.New()
	expires := now.Add(48 * time.Hour)

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, "https://example.com", &owner).Return(nil, domain.ErrNotFound)
	d.codes.EXPECT().NewCode().Return("xyz78901", nil).Once()
	d.links.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, link *domain.ShortLink) {
		assert.Equal(t, "xyz78901", link.ShortCode)
		assert.Equal(t, "https://example.com", link.OriginalURL)
		assert.Equal(t, &owner, link.OwnerID)
		assert.Equal(t, "Docs", link.Title)
		assert.Equal(t, now, link.CreatedAt)
		assert.True(t, link.Active)
		assert.Zero(t, link.ClickCount)
	}).Return(nil)
	d.owners.EXPECT().DisplayName(mock.Anything, owner).Return("Ada", nil)
	d.cache.EXPECT().Put(mock.Anything, "xyz78901", mock.MatchedBy(func(p domain.LinkProjection) bool {
		return p.Active && p.OwnerName == "Ada"
	}), ttl).Return()

	resp, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{
		URL:       "https://example.com",
		Title:     "Docs",
		ExpiresAt: &expires,
	}, &owner)
	require.NoError(t, err)

	assert.True(t, resp.Created)
	assert.Equal(t, "xyz78901", resp.ShortCode)
	assert.Equal(t, "http://short.url/xyz78901", resp.ShortURL)
	assert.Equal(t, &expires, resp.ExpiresAt)
}

func TestShorten_ReturnsExistingLink(t *testing.T) {
	svc, d := newLinkService(t)
	existing := &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: "https://example.com",
		ShortCode:   "existing",
		Active:      true,
	}

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, "https://example.com", (*uuid.UUID)(nil)).Return(existing, nil)

	resp, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, "existing", resp.ShortCode)
}

func TestShorten_ExpiredExistingLinkIsNotReused(t *testing.T) {
	svc, d := newLinkService(t)
	past := now.Add(-time.Hour)
	existing := &domain.ShortLink{ID: uuid.New(), ShortCode: "stale000", Active: true, ExpiresAt: &past}

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, "https://example.com", (*uuid.UUID)(nil)).Return(existing, nil)
	d.codes.EXPECT().NewCode().Return("fresh000", nil).Once()
	d.links.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Put(mock.Anything, "fresh000", mock.Anything, ttl).Return()

	resp, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "fresh000", resp.ShortCode)
}

func TestShorten_RetriesOnCollision(t *testing.T) {
	svc, d := newLinkService(t)

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	d.codes.EXPECT().NewCode().Return("taken000", nil).Once()
	d.codes.EXPECT().NewCode().Return("free0000", nil).Once()
	d.links.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.ShortLink) bool {
		return l.ShortCode == "taken000"
	})).Return(domain.ErrCodeExists).Once()
	d.links.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.ShortLink) bool {
		return l.ShortCode == "free0000"
	})).Return(nil).Once()
	d.cache.EXPECT().Put(mock.Anything, "free0000", mock.Anything, ttl).Return()

	resp, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "free0000", resp.ShortCode)
}

func TestShorten_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, d := newLinkService(t)

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	d.codes.EXPECT().NewCode().Return("taken000", nil).Times(5)
	d.links.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCodeExists).Times(5)

	_, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	assert.ErrorIs(t, err, domain.ErrCodeExists)
}

func TestShorten_LookupError(t *testing.T) {
	svc, d := newLinkService(t)
	lookupErr := errors.New("db error")

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil, lookupErr)

	_, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	assert.ErrorIs(t, err, lookupErr)
}

func TestShorten_GenerateError(t *testing.T) {
	svc, d := newLinkService(t)
	genErr := errors.New("shortener error")

	d.links.EXPECT().FindByOriginalURLAndOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	d.codes.EXPECT().NewCode().Return("", genErr)

	_, err := svc.Shorten(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"}, nil)
	assert.ErrorIs(t, err, genErr)
}

// ShortenBatch tests

func TestShortenBatch_Success(t *testing.T) {
	svc, d := newLinkService(t)

	d.codes.EXPECT().NewCode().Return("code0000", nil).Once()
	d.codes.EXPECT().NewCode().Return("code0000", nil).Once()
	d.codes.EXPECT().NewCode().Return("code1111", nil).Once()
	d.links.EXPECT().CreateBatch(mock.Anything, mock.Anything).Run(func(_ context.Context, links []*domain.ShortLink) {
		require.Len(t, links, 2)
		assert.Equal(t, "code0000", links[0].ShortCode)
		assert.Equal(t, "code1111", links[1].ShortCode)
	}).Return(nil)

	resp, err := svc.ShortenBatch(context.Background(), []string{"https://example.com/1", "https://example.com/2"}, nil)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "http://short.url/code0000", resp[0].ShortURL)
	assert.Equal(t, "https://example.com/2", resp[1].OriginalURL)
}

func TestShortenBatch_RegeneratesOnCollision(t *testing.T) {
	svc, d := newLinkService(t)

	d.codes.EXPECT().NewCode().Return("taken000", nil).Once()
	d.codes.EXPECT().NewCode().Return("free0000", nil).Once()
	d.links.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(domain.ErrCodeExists).Once()
	d.links.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := svc.ShortenBatch(context.Background(), []string{"https://example.com/1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "free0000", resp[0].ShortCode)
}

func TestShortenBatch_StoreError(t *testing.T) {
	svc, d := newLinkService(t)
	storeErr := errors.New("copy failed")

	d.codes.EXPECT().NewCode().Return("code0000", nil)
	d.links.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(storeErr)

	_, err := svc.ShortenBatch(context.Background(), []string{"https://example.com/1"}, nil)
	assert.ErrorIs(t, err, storeErr)
}

// Get tests

func TestGet_ReturnsView(t *testing.T) {
	svc, d := newLinkService(t)
	owner := uuid.New()
	link := &domain.ShortLink{
		ID: uuid.New(), OriginalURL: "https://example.com", ShortCode: "abcd1234",
		OwnerID: &owner, CreatedAt: now, ClickCount: 3, Active: true,
	}

	d.links.EXPECT().FindActiveByShortCode(mock.Anything, "abcd1234").Return(link, nil)
	d.owners.EXPECT().DisplayName(mock.Anything, owner).Return("", domain.ErrNotFound)

	view, err := svc.Get(context.Background(), "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "http://short.url/abcd1234", view.ShortURL)
	assert.Equal(t, int64(3), view.ClickCount)
	assert.Empty(t, view.OwnerName)
}

func TestGet_NotFound(t *testing.T) {
	svc, d := newLinkService(t)

	d.links.EXPECT().FindActiveByShortCode(mock.Anything, "missing0").Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Deactivate tests

func TestDeactivate_ByOwner(t *testing.T) {
	svc, d := newLinkService(t)
	owner := uuid.New()
	link := &domain.ShortLink{ID: uuid.New(), ShortCode: "abcd1234", OwnerID: &owner, Active: true}

	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(link, nil)
	d.links.EXPECT().Deactivate(mock.Anything, link.ID).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "abcd1234").Return().Once()

	require.NoError(t, svc.Deactivate(context.Background(), "abcd1234", owner))
}

func TestDeactivate_OtherOwnerForbidden(t *testing.T) {
	svc, d := newLinkService(t)
	owner := uuid.New()
	link := &domain.ShortLink{ID: uuid.New(), ShortCode: "abcd1234", OwnerID: &owner, Active: true}

	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(link, nil)

	err := svc.Deactivate(context.Background(), "abcd1234", uuid.New())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeactivate_AnonymousLinkForbidden(t *testing.T) {
	svc, d := newLinkService(t)
	link := &domain.ShortLink{ID: uuid.New(), ShortCode: "abcd1234", Active: true}

	d.links.EXPECT().FindByShortCode(mock.Anything, "abcd1234").Return(link, nil)

	err := svc.Deactivate(context.Background(), "abcd1234", uuid.New())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeactivate_NotFound(t *testing.T) {
	svc, d := newLinkService(t)

	d.links.EXPECT().FindByShortCode(mock.Anything, "missing0").Return(nil, domain.ErrNotFound)

	err := svc.Deactivate(context.Background(), "missing0", uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// SweepExpired tests

func TestSweepExpired(t *testing.T) {
	svc, d := newLinkService(t)
	first := &domain.ShortLink{ID: uuid.New(), ShortCode: "expired1"}
	second := &domain.ShortLink{ID: uuid.New(), ShortCode: "expired2"}
	third := &domain.ShortLink{ID: uuid.New(), ShortCode: "expired3"}

	d.links.EXPECT().FindExpiredActive(mock.Anything, now).Return([]*domain.ShortLink{first, second, third}, nil)
	d.links.EXPECT().Deactivate(mock.Anything, first.ID).Return(nil)
	d.links.EXPECT().Deactivate(mock.Anything, second.ID).Return(errors.New("lock timeout"))
	d.links.EXPECT().Deactivate(mock.Anything, third.ID).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "expired1").Return().Once()
	d.cache.EXPECT().Invalidate(mock.Anything, "expired3").Return().Once()

	n, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSweepExpired_QueryError(t *testing.T) {
	svc, d := newLinkService(t)
	queryErr := errors.New("db error")

	d.links.EXPECT().FindExpiredActive(mock.Anything, now).Return(nil, queryErr)

	_, err := svc.SweepExpired(context.Background())
	assert.ErrorIs(t, err, queryErr)
}
