package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/domain"
)

var epoch = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newLink(code, url string, owner *uuid.UUID, createdAt time.Time) *domain.ShortLink {
	return &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: url,
		ShortCode:   code,
		OwnerID:     owner,
		CreatedAt:   createdAt,
		Active:      true,
	}
}

func TestMemoryLinkRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))

	link := newLink("abcd1234", "https://example.com", nil, epoch)
	require.NoError(t, repo.Create(ctx, link))

	got, err := repo.FindByShortCode(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, link.ID, got.ID)

	got.OriginalURL = "mutated"
	again, err := repo.FindByShortCode(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", again.OriginalURL)

	assert.ErrorIs(t, repo.Create(ctx, newLink("abcd1234", "https://other.com", nil, epoch)), domain.ErrCodeExists)

	_, err = repo.FindByShortCode(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryLinkRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("all or nothing", func(t *testing.T) {
		repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))
		require.NoError(t, repo.Create(ctx, newLink("taken000", "https://a.com", nil, epoch)))

		err := repo.CreateBatch(ctx, []*domain.ShortLink{
			newLink("fresh000", "https://b.com", nil, epoch),
			newLink("taken000", "https://c.com", nil, epoch),
		})
		assert.ErrorIs(t, err, domain.ErrCodeExists)

		_, err = repo.FindByShortCode(ctx, "fresh000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate inside batch", func(t *testing.T) {
		repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))
		err := repo.CreateBatch(ctx, []*domain.ShortLink{
			newLink("same0000", "https://b.com", nil, epoch),
			newLink("same0000", "https://c.com", nil, epoch),
		})
		assert.ErrorIs(t, err, domain.ErrCodeExists)
	})

	t.Run("success", func(t *testing.T) {
		repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))
		require.NoError(t, repo.CreateBatch(ctx, []*domain.ShortLink{
			newLink("one00000", "https://b.com", nil, epoch),
			newLink("two00000", "https://c.com", nil, epoch),
		}))
		_, err := repo.FindByShortCode(ctx, "two00000")
		assert.NoError(t, err)
	})
}

func TestMemoryLinkRepository_FindActiveByShortCode(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(epoch)
	repo := NewMemoryLinkRepository(clock)

	expires := epoch.Add(time.Hour)
	link := newLink("expiring", "https://example.com", nil, epoch)
	link.ExpiresAt = &expires
	require.NoError(t, repo.Create(ctx, link))

	_, err := repo.FindActiveByShortCode(ctx, "expiring")
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	_, err = repo.FindActiveByShortCode(ctx, "expiring")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inactive := newLink("inactive", "https://example.com", nil, epoch)
	require.NoError(t, repo.Create(ctx, inactive))
	require.NoError(t, repo.Deactivate(ctx, inactive.ID))
	_, err = repo.FindActiveByShortCode(ctx, "inactive")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryLinkRepository_FindByOriginalURLAndOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))
	owner := uuid.New()

	older := newLink("older000", "https://example.com", &owner, epoch)
	newer := newLink("newer000", "https://example.com", &owner, epoch.Add(time.Minute))
	anon := newLink("anon0000", "https://example.com", nil, epoch)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, anon))

	got, err := repo.FindByOriginalURLAndOwner(ctx, "https://example.com", &owner)
	require.NoError(t, err)
	assert.Equal(t, "newer000", got.ShortCode)

	got, err = repo.FindByOriginalURLAndOwner(ctx, "https://example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "anon0000", got.ShortCode)

	other := uuid.New()
	_, err = repo.FindByOriginalURLAndOwner(ctx, "https://example.com", &other)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Deactivate(ctx, newer.ID))
	got, err = repo.FindByOriginalURLAndOwner(ctx, "https://example.com", &owner)
	require.NoError(t, err)
	assert.Equal(t, "older000", got.ShortCode)
}

func TestMemoryLinkRepository_IncrementClickCount_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))
	link := newLink("counted0", "https://example.com", nil, epoch)
	require.NoError(t, repo.Create(ctx, link))

	const n = 200
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, err := repo.IncrementClickCount(ctx, link.ID)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	got, err := repo.FindByShortCode(ctx, "counted0")
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.ClickCount)

	_, err = repo.IncrementClickCount(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryLinkRepository_FindExpiredActive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLinkRepository(domain.NewMockClock(epoch))

	past := epoch.Add(-time.Hour)
	future := epoch.Add(time.Hour)

	expired := newLink("expired0", "https://a.com", nil, epoch)
	expired.ExpiresAt = &past
	live := newLink("live0000", "https://b.com", nil, epoch)
	live.ExpiresAt = &future
	forever := newLink("forever0", "https://c.com", nil, epoch)
	for _, l := range []*domain.ShortLink{expired, live, forever} {
		require.NoError(t, repo.Create(ctx, l))
	}

	got, err := repo.FindExpiredActive(ctx, epoch)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "expired0", got[0].ShortCode)

	require.NoError(t, repo.Deactivate(ctx, expired.ID))
	got, err = repo.FindExpiredActive(ctx, epoch)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func click(linkID uuid.UUID, at time.Time, browser string) *domain.ClickEvent {
	return &domain.ClickEvent{ID: uuid.New(), LinkID: linkID, ClickedAt: at, Browser: browser}
}

func TestMemoryClickRepository_InsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClickRepository()
	linkID := uuid.New()

	c := click(linkID, epoch, "Chrome")
	require.NoError(t, repo.Insert(ctx, c))
	require.NoError(t, repo.Insert(ctx, c))

	n, err := repo.CountByLink(ctx, linkID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryClickRepository_CountByDimension(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClickRepository()
	linkID := uuid.New()

	for _, b := range []string{"Chrome", "Firefox", "Chrome", "", "Safari", "Firefox", "Chrome"} {
		require.NoError(t, repo.Insert(ctx, click(linkID, epoch, b)))
	}

	got, err := repo.CountByDimension(ctx, linkID, domain.DimensionBrowser)
	require.NoError(t, err)
	assert.Equal(t, []domain.DimensionCount{
		{Value: "Chrome", Count: 3},
		{Value: "Firefox", Count: 2},
		{Value: "Safari", Count: 1},
		{Value: domain.Unknown, Count: 1},
	}, got)
}

func TestMemoryClickRepository_Buckets(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClickRepository()
	linkID := uuid.New()

	for _, at := range []time.Time{
		epoch.Add(-25 * time.Hour),
		epoch.Add(-90 * time.Minute),
		epoch.Add(-50 * time.Minute),
		epoch.Add(10 * time.Minute),
	} {
		require.NoError(t, repo.Insert(ctx, click(linkID, at, "")))
	}

	hourly, err := repo.HourlyBuckets(ctx, linkID, epoch.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeBucket{
		{Start: epoch.Add(-2 * time.Hour), Count: 1},
		{Start: epoch.Add(-time.Hour), Count: 1},
		{Start: epoch, Count: 1},
	}, hourly)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	daily, err := repo.DailyBuckets(ctx, linkID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeBucket{
		{Start: day.AddDate(0, 0, -1), Count: 1},
		{Start: day, Count: 3},
	}, daily)
}

func TestMemoryClickRepository_HistoryAndRange(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClickRepository()
	linkID := uuid.New()

	for i := range 5 {
		require.NoError(t, repo.Insert(ctx, click(linkID, epoch.Add(time.Duration(i)*time.Minute), "")))
	}

	page, err := repo.History(ctx, linkID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, epoch.Add(4*time.Minute), page[0].ClickedAt)
	assert.Equal(t, epoch.Add(3*time.Minute), page[1].ClickedAt)

	page, err = repo.History(ctx, linkID, 4, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, epoch, page[0].ClickedAt)

	page, err = repo.History(ctx, linkID, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = repo.History(ctx, linkID, -2, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	ranged, err := repo.Range(ctx, linkID, epoch.Add(time.Minute), epoch.Add(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, ranged, 3)
	assert.Equal(t, epoch.Add(3*time.Minute), ranged[0].ClickedAt)

	since, err := repo.CountByLinkSince(ctx, linkID, epoch.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(3), since)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()
	id := uuid.New()

	_, err := repo.DisplayName(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, id, "Ada"))
	name, err := repo.DisplayName(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
}
