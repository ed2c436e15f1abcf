package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"linkpulse/internal/domain"
	"linkpulse/internal/service"
)

type RedirectService interface {
	Resolve(ctx context.Context, req service.ResolveRequest) (string, error)
}

type LinkService interface {
	Shorten(ctx context.Context, req domain.CreateLinkRequest, ownerID *uuid.UUID) (*domain.CreateLinkResponse, error)
	ShortenBatch(ctx context.Context, urls []string, ownerID *uuid.UUID) ([]domain.CreateLinkResponse, error)
	Get(ctx context.Context, shortCode string) (*domain.LinkView, error)
	Deactivate(ctx context.Context, shortCode string, ownerID uuid.UUID) error
}

type AnalyticsService interface {
	Overview(ctx context.Context, shortCode string) (*domain.AnalyticsOverview, error)
	TotalClicks(ctx context.Context, shortCode string) (int64, error)
	ClicksSince(ctx context.Context, shortCode string, since time.Time) (int64, error)
	RecentClicks(ctx context.Context, shortCode string) (domain.RecentClicks, error)
	History(ctx context.Context, shortCode string, page, size int) (*domain.ClickPage, error)
	Range(ctx context.Context, shortCode string, start, end time.Time) ([]domain.ClickEvent, error)
	Breakdown(ctx context.Context, shortCode string, dim domain.Dimension) ([]domain.DimensionCount, error)
	HourlyTrend(ctx context.Context, shortCode string, hours int) ([]domain.TimeBucket, error)
	DailyTrend(ctx context.Context, shortCode string, start, end time.Time) ([]domain.TimeBucket, error)
}

type LinkValidator interface {
	ValidateCreate(req domain.CreateLinkRequest, now time.Time) error
	ValidateBatch(urls []string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
