package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"linkpulse/internal/domain"
)

// MemoryLinkRepository keeps links in process. It backs local runs and tests
// and is safe for concurrent use.
type MemoryLinkRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*domain.ShortLink
	byCode map[string]uuid.UUID
	clock  domain.Clock
}

func NewMemoryLinkRepository(clock domain.Clock) *MemoryLinkRepository {
	return &MemoryLinkRepository{
		byID:   make(map[uuid.UUID]*domain.ShortLink),
		byCode: make(map[string]uuid.UUID),
		clock:  clock,
	}
}

func (r *MemoryLinkRepository) Create(_ context.Context, link *domain.ShortLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byCode[link.ShortCode]; ok {
		return domain.ErrCodeExists
	}
	r.byID[link.ID] = link.Clone()
	r.byCode[link.ShortCode] = link.ID
	return nil
}

func (r *MemoryLinkRepository) CreateBatch(_ context.Context, links []*domain.ShortLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(links))
	for _, l := range links {
		if _, ok := r.byCode[l.ShortCode]; ok {
			return domain.ErrCodeExists
		}
		if _, ok := seen[l.ShortCode]; ok {
			return domain.ErrCodeExists
		}
		seen[l.ShortCode] = struct{}{}
	}
	for _, l := range links {
		r.byID[l.ID] = l.Clone()
		r.byCode[l.ShortCode] = l.ID
	}
	return nil
}

func (r *MemoryLinkRepository) FindByShortCode(_ context.Context, shortCode string) (*domain.ShortLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[shortCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryLinkRepository) FindActiveByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	link, err := r.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if !link.Active || link.Expired(r.clock.Now()) {
		return nil, domain.ErrNotFound
	}
	return link, nil
}

func (r *MemoryLinkRepository) FindByOriginalURLAndOwner(_ context.Context, originalURL string, ownerID *uuid.UUID) (*domain.ShortLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *domain.ShortLink
	for _, l := range r.byID {
		if l.OriginalURL != originalURL || !l.Active || !sameOwner(l.OwnerID, ownerID) {
			continue
		}
		if best == nil || l.CreatedAt.After(best.CreatedAt) {
			best = l
		}
	}
	if best == nil {
		return nil, domain.ErrNotFound
	}
	return best.Clone(), nil
}

func (r *MemoryLinkRepository) IncrementClickCount(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	l.ClickCount++
	return l.ClickCount, nil
}

func (r *MemoryLinkRepository) Deactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Active = false
	return nil
}

func (r *MemoryLinkRepository) FindExpiredActive(_ context.Context, now time.Time) ([]*domain.ShortLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ShortLink
	for _, l := range r.byID {
		if l.Active && l.Expired(now) {
			out = append(out, l.Clone())
		}
	}
	return out, nil
}

func sameOwner(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// MemoryClickRepository keeps click events in process, deduplicated by id.
type MemoryClickRepository struct {
	mu     sync.RWMutex
	seen   map[uuid.UUID]struct{}
	byLink map[uuid.UUID][]domain.ClickEvent
}

func NewMemoryClickRepository() *MemoryClickRepository {
	return &MemoryClickRepository{
		seen:   make(map[uuid.UUID]struct{}),
		byLink: make(map[uuid.UUID][]domain.ClickEvent),
	}
}

func (r *MemoryClickRepository) Insert(_ context.Context, c *domain.ClickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[c.ID]; ok {
		return nil
	}
	r.seen[c.ID] = struct{}{}
	r.byLink[c.LinkID] = append(r.byLink[c.LinkID], *c)
	return nil
}

func (r *MemoryClickRepository) CountByLink(_ context.Context, linkID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byLink[linkID])), nil
}

func (r *MemoryClickRepository) CountByLinkSince(_ context.Context, linkID uuid.UUID, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, c := range r.byLink[linkID] {
		if !c.ClickedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryClickRepository) CountByDimension(_ context.Context, linkID uuid.UUID, dim domain.Dimension) ([]domain.DimensionCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for i := range r.byLink[linkID] {
		counts[dim.Value(&r.byLink[linkID][i])]++
	}

	out := make([]domain.DimensionCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, domain.DimensionCount{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.DimensionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out, nil
}

func (r *MemoryClickRepository) HourlyBuckets(_ context.Context, linkID uuid.UUID, since time.Time) ([]domain.TimeBucket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return bucket(r.byLink[linkID], since, time.Time{}, time.Hour), nil
}

func (r *MemoryClickRepository) DailyBuckets(_ context.Context, linkID uuid.UUID, from, to time.Time) ([]domain.TimeBucket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return bucket(r.byLink[linkID], from, to, 24*time.Hour), nil
}

func (r *MemoryClickRepository) History(_ context.Context, linkID uuid.UUID, offset, limit int) ([]domain.ClickEvent, error) {
	r.mu.RLock()
	sorted := newestFirst(r.byLink[linkID])
	r.mu.RUnlock()

	if offset < 0 || offset >= len(sorted) {
		return []domain.ClickEvent{}, nil
	}
	end := min(offset+limit, len(sorted))
	return sorted[offset:end], nil
}

func (r *MemoryClickRepository) Range(_ context.Context, linkID uuid.UUID, start, end time.Time) ([]domain.ClickEvent, error) {
	r.mu.RLock()
	sorted := newestFirst(r.byLink[linkID])
	r.mu.RUnlock()

	out := make([]domain.ClickEvent, 0, len(sorted))
	for _, c := range sorted {
		if !c.ClickedAt.Before(start) && !c.ClickedAt.After(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func newestFirst(events []domain.ClickEvent) []domain.ClickEvent {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b domain.ClickEvent) int {
		return b.ClickedAt.Compare(a.ClickedAt)
	})
	return out
}

// bucket groups events into UTC buckets of size width within [from, to). A
// zero to leaves the range open-ended.
func bucket(events []domain.ClickEvent, from, to time.Time, width time.Duration) []domain.TimeBucket {
	counts := make(map[time.Time]int64)
	for _, c := range events {
		if c.ClickedAt.Before(from) || (!to.IsZero() && !c.ClickedAt.Before(to)) {
			continue
		}
		counts[c.ClickedAt.UTC().Truncate(width)]++
	}

	out := make([]domain.TimeBucket, 0, len(counts))
	for start, n := range counts {
		out = append(out, domain.TimeBucket{Start: start, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.TimeBucket) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// MemoryUserRepository maps owner ids to display names.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	names map[uuid.UUID]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{names: make(map[uuid.UUID]string)}
}

func (r *MemoryUserRepository) DisplayName(_ context.Context, id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.names[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}

func (r *MemoryUserRepository) Upsert(_ context.Context, id uuid.UUID, displayName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names[id] = displayName
	return nil
}
