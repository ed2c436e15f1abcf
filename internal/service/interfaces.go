package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"linkpulse/internal/domain"
)

type LinkStore interface {
	Create(ctx context.Context, link *domain.ShortLink) error
	CreateBatch(ctx context.Context, links []*domain.ShortLink) error
	FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error)
	FindActiveByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error)
	FindByOriginalURLAndOwner(ctx context.Context, originalURL string, ownerID *uuid.UUID) (*domain.ShortLink, error)
	IncrementClickCount(ctx context.Context, id uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	FindExpiredActive(ctx context.Context, now time.Time) ([]*domain.ShortLink, error)
}

type OwnerDirectory interface {
	DisplayName(ctx context.Context, id uuid.UUID) (string, error)
}

type URLCache interface {
	Get(ctx context.Context, shortCode string) (*domain.LinkProjection, bool)
	Put(ctx context.Context, shortCode string, p domain.LinkProjection, ttl time.Duration)
	Invalidate(ctx context.Context, shortCode string)
	InvalidateAll(ctx context.Context)
}

type ClickRecorder interface {
	RecordAsync(req domain.ClickRequest)
}

type ClickQuerier interface {
	CountByLink(ctx context.Context, linkID uuid.UUID) (int64, error)
	CountByLinkSince(ctx context.Context, linkID uuid.UUID, since time.Time) (int64, error)
	CountByDimension(ctx context.Context, linkID uuid.UUID, dim domain.Dimension) ([]domain.DimensionCount, error)
	HourlyBuckets(ctx context.Context, linkID uuid.UUID, since time.Time) ([]domain.TimeBucket, error)
	DailyBuckets(ctx context.Context, linkID uuid.UUID, from, to time.Time) ([]domain.TimeBucket, error)
	History(ctx context.Context, linkID uuid.UUID, offset, limit int) ([]domain.ClickEvent, error)
	Range(ctx context.Context, linkID uuid.UUID, start, end time.Time) ([]domain.ClickEvent, error)
}

type CodeGenerator interface {
	NewCode() (string, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
