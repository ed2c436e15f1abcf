package clicks

//go:generate go tool mockery

import (
	"context"

	"linkpulse/internal/domain"
)

type DeviceClassifier interface {
	Classify(ctx context.Context, userAgent string) domain.DeviceInfo
}

type GeoResolver interface {
	Resolve(ctx context.Context, ip string) domain.GeoLocation
}

type Store interface {
	Insert(ctx context.Context, click *domain.ClickEvent) error
}

type Publisher interface {
	Publish(ctx context.Context, click *domain.ClickEvent) error
}
