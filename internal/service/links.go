package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"linkpulse/internal/domain"
)

// maxCodeAttempts bounds retries when a generated code is already taken.
const maxCodeAttempts = 5

type LinkService struct {
	links    LinkStore
	owners   OwnerDirectory
	cache    URLCache
	codes    CodeGenerator
	recorder BusinessRecorder
	clock    domain.Clock
	baseURL  string
	ttl      time.Duration
	logger   *slog.Logger
}

func NewLinkService(
	links LinkStore,
	owners OwnerDirectory,
	cache URLCache,
	codes CodeGenerator,
	recorder BusinessRecorder,
	clock domain.Clock,
	baseURL string,
	ttl time.Duration,
	logger *slog.Logger,
) *LinkService {
	return &LinkService{
		links:    links,
		owners:   owners,
		cache:    cache,
		codes:    codes,
		recorder: recorder,
		clock:    clock,
		baseURL:  baseURL,
		ttl:      ttl,
		logger:   logger,
	}
}

// Shorten creates a link, or returns the caller's existing live link for the
// same URL. Created on the response tells the two cases apart.
func (s *LinkService) Shorten(ctx context.Context, req domain.CreateLinkRequest, ownerID *uuid.UUID) (*domain.CreateLinkResponse, error) {
	now := s.clock.Now()

	existing, err := s.links.FindByOriginalURLAndOwner(ctx, req.URL, ownerID)
	switch {
	case err == nil && !existing.Expired(now):
		s.recorder.RecordBusiness("urls_deduplicated", 1, nil)
		resp := s.response(existing)
		return &resp, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to look up existing link: %w", err)
	}

	link := &domain.ShortLink{
		ID:          uuid.New(),
		OriginalURL: req.URL,
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		ExpiresAt:   req.ExpiresAt,
		Active:      true,
	}

	if err := s.createWithFreshCode(ctx, link); err != nil {
		return nil, err
	}

	s.cache.Put(ctx, link.ShortCode, link.Projection(ownerName(ctx, s.owners, link, s.logger)), s.ttl)
	s.recorder.RecordBusiness("urls_created", 1, nil)

	resp := s.response(link)
	resp.Created = true
	return &resp, nil
}

func (s *LinkService) createWithFreshCode(ctx context.Context, link *domain.ShortLink) error {
	for range maxCodeAttempts {
		code, err := s.codes.NewCode()
		if err != nil {
			return fmt.Errorf("failed to generate short code: %w", err)
		}
		link.ShortCode = code

		err = s.links.Create(ctx, link)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrCodeExists) {
			return fmt.Errorf("failed to create link: %w", err)
		}
		s.logger.Warn("short code collision, retrying", slog.String("short_code", code))
	}
	return fmt.Errorf("failed to allocate short code: %w", domain.ErrCodeExists)
}

// ShortenBatch creates one anonymous or owned link per URL in a single store
// write. A code collision regenerates every code in the batch.
func (s *LinkService) ShortenBatch(ctx context.Context, urls []string, ownerID *uuid.UUID) ([]domain.CreateLinkResponse, error) {
	now := s.clock.Now()

	links := make([]*domain.ShortLink, len(urls))
	for i, u := range urls {
		links[i] = &domain.ShortLink{
			ID:          uuid.New(),
			OriginalURL: u,
			OwnerID:     ownerID,
			CreatedAt:   now,
			Active:      true,
		}
	}

	var created bool
	for attempt := range maxCodeAttempts {
		if err := s.assignCodes(links); err != nil {
			return nil, err
		}

		err := s.links.CreateBatch(ctx, links)
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, domain.ErrCodeExists) {
			return nil, fmt.Errorf("failed to create links: %w", err)
		}
		s.logger.Warn("short code collision in batch, retrying",
			slog.Int("attempt", attempt+1),
			slog.Int("size", len(links)))
	}
	if !created {
		return nil, fmt.Errorf("failed to allocate short codes: %w", domain.ErrCodeExists)
	}

	s.recorder.RecordBusiness("urls_created", float64(len(links)), map[string]string{
		"batch_size": strconv.Itoa(len(links)),
	})

	out := make([]domain.CreateLinkResponse, len(links))
	for i, l := range links {
		out[i] = s.response(l)
		out[i].Created = true
	}
	return out, nil
}

func (s *LinkService) assignCodes(links []*domain.ShortLink) error {
	seen := make(map[string]struct{}, len(links))
	for _, l := range links {
		for {
			code, err := s.codes.NewCode()
			if err != nil {
				return fmt.Errorf("failed to generate short code: %w", err)
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			l.ShortCode = code
			break
		}
	}
	return nil
}

// Get returns a live link. Inactive and expired links are not found.
func (s *LinkService) Get(ctx context.Context, shortCode string) (*domain.LinkView, error) {
	link, err := s.links.FindActiveByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	if link.Expired(s.clock.Now()) {
		return nil, domain.ErrNotFound
	}

	return &domain.LinkView{
		ShortCode:   link.ShortCode,
		ShortURL:    s.shortURL(link.ShortCode),
		OriginalURL: link.OriginalURL,
		Title:       link.Title,
		Description: link.Description,
		OwnerName:   ownerName(ctx, s.owners, link, s.logger),
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		ClickCount:  link.ClickCount,
	}, nil
}

// Deactivate turns a link off for good. Only its owner may do so.
func (s *LinkService) Deactivate(ctx context.Context, shortCode string, ownerID uuid.UUID) error {
	link, err := s.links.FindByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to find link: %w", err)
	}
	if link.OwnerID == nil || *link.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := s.links.Deactivate(ctx, link.ID); err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	s.cache.Invalidate(ctx, shortCode)

	s.recorder.RecordBusiness("urls_deactivated", 1, nil)
	return nil
}

// SweepExpired deactivates every active link whose expiry has passed and
// evicts it from the cache. Per-link failures are logged and skipped.
func (s *LinkService) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.links.FindExpiredActive(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to find expired links: %w", err)
	}

	var n int
	for _, link := range expired {
		if err := s.links.Deactivate(ctx, link.ID); err != nil {
			s.logger.Error("failed to deactivate expired link",
				slog.String("short_code", link.ShortCode),
				slog.String("error", err.Error()))
			continue
		}
		s.cache.Invalidate(ctx, link.ShortCode)
		n++
	}

	if n > 0 {
		s.recorder.RecordBusiness("urls_expired", float64(n), nil)
	}
	return n, nil
}

func (s *LinkService) response(link *domain.ShortLink) domain.CreateLinkResponse {
	return domain.CreateLinkResponse{
		ShortCode:   link.ShortCode,
		ShortURL:    s.shortURL(link.ShortCode),
		OriginalURL: link.OriginalURL,
		ExpiresAt:   link.ExpiresAt,
	}
}

func (s *LinkService) shortURL(code string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, code)
}
