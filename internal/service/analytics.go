package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"linkpulse/internal/cache"
	"linkpulse/internal/domain"
)

const (
	day             = 24 * time.Hour
	defaultPageSize = 20
	maxTrendDays    = 366
)

type AnalyticsConfig struct {
	CacheTTL      time.Duration
	MaxPageSize   int
	MaxTrendHours int
}

// AnalyticsService answers read-only click queries keyed by short code.
// Every query result is cached for a short TTL.
type AnalyticsService struct {
	links  LinkStore
	owners OwnerDirectory
	clicks ClickQuerier
	store  cache.Store
	clock  domain.Clock
	cfg    AnalyticsConfig
	logger *slog.Logger
}

func NewAnalyticsService(
	links LinkStore,
	owners OwnerDirectory,
	clicks ClickQuerier,
	store cache.Store,
	clock domain.Clock,
	cfg AnalyticsConfig,
	logger *slog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		links:  links,
		owners: owners,
		clicks: clicks,
		store:  store,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *AnalyticsService) link(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	link, err := cache.Aside(ctx, s.store, "link:"+shortCode, s.cfg.CacheTTL, func(ctx context.Context) (*domain.ShortLink, error) {
		return s.links.FindByShortCode(ctx, shortCode)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// cached resolves the link and runs query through the cache under key.
func cached[T any](ctx context.Context, s *AnalyticsService, shortCode, key string, query func(context.Context, *domain.ShortLink) (T, error)) (T, error) {
	var zero T
	link, err := s.link(ctx, shortCode)
	if err != nil {
		return zero, err
	}
	return cache.Aside(ctx, s.store, link.ID.String()+":"+key, s.cfg.CacheTTL, func(ctx context.Context) (T, error) {
		return query(ctx, link)
	})
}

func (s *AnalyticsService) TotalClicks(ctx context.Context, shortCode string) (int64, error) {
	return cached(ctx, s, shortCode, "total", func(ctx context.Context, link *domain.ShortLink) (int64, error) {
		return s.clicks.CountByLink(ctx, link.ID)
	})
}

func (s *AnalyticsService) ClicksSince(ctx context.Context, shortCode string, since time.Time) (int64, error) {
	key := fmt.Sprintf("since:%d", since.Unix())
	return cached(ctx, s, shortCode, key, func(ctx context.Context, link *domain.ShortLink) (int64, error) {
		return s.clicks.CountByLinkSince(ctx, link.ID, since)
	})
}

// RecentClicks counts clicks in the trailing day, week and calendar month.
func (s *AnalyticsService) RecentClicks(ctx context.Context, shortCode string) (domain.RecentClicks, error) {
	return cached(ctx, s, shortCode, "recent", func(ctx context.Context, link *domain.ShortLink) (domain.RecentClicks, error) {
		return s.recent(ctx, link)
	})
}

func (s *AnalyticsService) recent(ctx context.Context, link *domain.ShortLink) (domain.RecentClicks, error) {
	now := s.clock.Now()
	var out domain.RecentClicks
	windows := []struct {
		since time.Time
		dst   *int64
	}{
		{now.Add(-day), &out.Today},
		{now.AddDate(0, 0, -7), &out.ThisWeek},
		{now.AddDate(0, -1, 0), &out.ThisMonth},
	}
	for _, w := range windows {
		n, err := s.clicks.CountByLinkSince(ctx, link.ID, w.since)
		if err != nil {
			return domain.RecentClicks{}, fmt.Errorf("failed to count recent clicks: %w", err)
		}
		*w.dst = n
	}
	return out, nil
}

func (s *AnalyticsService) Breakdown(ctx context.Context, shortCode string, dim domain.Dimension) ([]domain.DimensionCount, error) {
	return cached(ctx, s, shortCode, "dim:"+string(dim), func(ctx context.Context, link *domain.ShortLink) ([]domain.DimensionCount, error) {
		counts, err := s.clicks.CountByDimension(ctx, link.ID, dim)
		if err != nil {
			return nil, fmt.Errorf("failed to group clicks: %w", err)
		}
		if counts == nil {
			counts = []domain.DimensionCount{}
		}
		return counts, nil
	})
}

// HourlyTrend returns one bucket per hour for the trailing hours, oldest
// first, the current hour included. Hours without clicks count zero.
func (s *AnalyticsService) HourlyTrend(ctx context.Context, shortCode string, hours int) ([]domain.TimeBucket, error) {
	if hours < 1 || hours > s.cfg.MaxTrendHours {
		return nil, fmt.Errorf("%w: hours must be between 1 and %d", domain.ErrInvalidRange, s.cfg.MaxTrendHours)
	}

	since := s.clock.Now().UTC().Truncate(time.Hour).Add(-time.Duration(hours-1) * time.Hour)
	key := fmt.Sprintf("hourly:%d:%d", since.Unix(), hours)
	return cached(ctx, s, shortCode, key, func(ctx context.Context, link *domain.ShortLink) ([]domain.TimeBucket, error) {
		buckets, err := s.clicks.HourlyBuckets(ctx, link.ID, since)
		if err != nil {
			return nil, fmt.Errorf("failed to bucket clicks: %w", err)
		}
		return fillBuckets(buckets, since, hours, time.Hour), nil
	})
}

// DailyTrend returns one bucket per UTC day from start's day through end's
// day inclusive.
func (s *AnalyticsService) DailyTrend(ctx context.Context, shortCode string, start, end time.Time) ([]domain.TimeBucket, error) {
	from := start.UTC().Truncate(day)
	to := end.UTC().Truncate(day).Add(day)
	days := int(to.Sub(from) / day)
	if days < 1 || days > maxTrendDays {
		return nil, fmt.Errorf("%w: range must cover 1 to %d days", domain.ErrInvalidRange, maxTrendDays)
	}

	key := fmt.Sprintf("daily:%d:%d", from.Unix(), to.Unix())
	return cached(ctx, s, shortCode, key, func(ctx context.Context, link *domain.ShortLink) ([]domain.TimeBucket, error) {
		buckets, err := s.clicks.DailyBuckets(ctx, link.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to bucket clicks: %w", err)
		}
		return fillBuckets(buckets, from, days, day), nil
	})
}

// History pages through clicks newest first. Pages are zero-based.
func (s *AnalyticsService) History(ctx context.Context, shortCode string, page, size int) (*domain.ClickPage, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", domain.ErrInvalidRange)
	}
	if size <= 0 {
		size = defaultPageSize
	}
	size = min(size, s.cfg.MaxPageSize)
	if page > math.MaxInt/size {
		return nil, fmt.Errorf("%w: page is out of range", domain.ErrInvalidRange)
	}

	key := fmt.Sprintf("history:%d:%d", page, size)
	return cached(ctx, s, shortCode, key, func(ctx context.Context, link *domain.ShortLink) (*domain.ClickPage, error) {
		total, err := s.clicks.CountByLink(ctx, link.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count clicks: %w", err)
		}
		events, err := s.clicks.History(ctx, link.ID, page*size, size)
		if err != nil {
			return nil, fmt.Errorf("failed to load click history: %w", err)
		}
		if events == nil {
			events = []domain.ClickEvent{}
		}
		return &domain.ClickPage{Clicks: events, Page: page, Size: size, Total: total}, nil
	})
}

// Range returns every click in [start, end], newest first.
func (s *AnalyticsService) Range(ctx context.Context, shortCode string, start, end time.Time) ([]domain.ClickEvent, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", domain.ErrInvalidRange)
	}

	key := fmt.Sprintf("range:%d:%d", start.UnixMilli(), end.UnixMilli())
	return cached(ctx, s, shortCode, key, func(ctx context.Context, link *domain.ShortLink) ([]domain.ClickEvent, error) {
		events, err := s.clicks.Range(ctx, link.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load click range: %w", err)
		}
		if events == nil {
			events = []domain.ClickEvent{}
		}
		return events, nil
	})
}

func (s *AnalyticsService) Overview(ctx context.Context, shortCode string) (*domain.AnalyticsOverview, error) {
	link, err := s.link(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	total, err := s.TotalClicks(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentClicks(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	breakdowns := make(map[domain.Dimension][]domain.DimensionCount, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		counts, err := s.Breakdown(ctx, shortCode, dim)
		if err != nil {
			return nil, err
		}
		breakdowns[dim] = counts
	}

	return &domain.AnalyticsOverview{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		OwnerName:   ownerName(ctx, s.owners, link, s.logger),
		CreatedAt:   link.CreatedAt,
		TotalClicks: total,
		Recent:      recent,
		Breakdowns:  breakdowns,
	}, nil
}

// fillBuckets expands sparse buckets into n consecutive buckets of width
// starting at from.
func fillBuckets(sparse []domain.TimeBucket, from time.Time, n int, width time.Duration) []domain.TimeBucket {
	counts := make(map[int64]int64, len(sparse))
	for _, b := range sparse {
		counts[b.Start.UTC().Truncate(width).Unix()] += b.Count
	}

	out := make([]domain.TimeBucket, n)
	for i := range out {
		start := from.Add(time.Duration(i) * width)
		out[i] = domain.TimeBucket{Start: start, Count: counts[start.Unix()]}
	}
	return out
}
