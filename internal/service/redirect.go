package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"linkpulse/internal/domain"
)

type ResolveRequest struct {
	ShortCode string
	ClientIP  string
	UserAgent string
	Referer   string
}

type RedirectService struct {
	links    LinkStore
	owners   OwnerDirectory
	cache    URLCache
	clicks   ClickRecorder
	recorder BusinessRecorder
	clock    domain.Clock
	ttl      time.Duration
	logger   *slog.Logger
}

func NewRedirectService(
	links LinkStore,
	owners OwnerDirectory,
	cache URLCache,
	clicks ClickRecorder,
	recorder BusinessRecorder,
	clock domain.Clock,
	ttl time.Duration,
	logger *slog.Logger,
) *RedirectService {
	return &RedirectService{
		links:    links,
		owners:   owners,
		cache:    cache,
		clicks:   clicks,
		recorder: recorder,
		clock:    clock,
		ttl:      ttl,
		logger:   logger,
	}
}

// Resolve returns the target URL for a short code and counts the visit.
// Inactive and expired links return domain.ErrGone and are not counted.
func (s *RedirectService) Resolve(ctx context.Context, req ResolveRequest) (string, error) {
	p, err := s.lookup(ctx, req.ShortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recorder.RecordBusiness("url_not_found", 1, map[string]string{"short_code": req.ShortCode})
		}
		return "", err
	}

	now := s.clock.Now()
	if !p.Active || p.Expired(now) {
		s.recorder.RecordBusiness("url_gone", 1, map[string]string{"short_code": req.ShortCode})
		return "", domain.ErrGone
	}

	count, err := s.links.IncrementClickCount(ctx, p.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.cache.Invalidate(ctx, req.ShortCode)
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to increment click count: %w", err)
	}

	s.clicks.RecordAsync(domain.ClickRequest{
		LinkID:      p.ID,
		ShortCode:   req.ShortCode,
		ClientIP:    req.ClientIP,
		UserAgent:   req.UserAgent,
		Referer:     req.Referer,
		RequestedAt: now,
	})

	p.ClickCount = count
	s.cache.Put(ctx, req.ShortCode, *p, s.ttl)

	s.recorder.RecordBusiness("redirects", 1, map[string]string{"short_code": req.ShortCode})
	return p.OriginalURL, nil
}

func (s *RedirectService) lookup(ctx context.Context, shortCode string) (*domain.LinkProjection, error) {
	if p, ok := s.cache.Get(ctx, shortCode); ok {
		s.recorder.RecordBusiness("cache_hit", 1, nil)
		return p, nil
	}
	s.recorder.RecordBusiness("cache_miss", 1, nil)

	link, err := s.links.FindByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}

	p := link.Projection(ownerName(ctx, s.owners, link, s.logger))
	s.cache.Put(ctx, shortCode, p, s.ttl)
	return &p, nil
}
