// Package geo resolves client IP addresses to coarse locations. Resolution
// never fails: errors degrade to the Unknown sentinel and private addresses
// short-circuit to Local.
package geo

//go:generate go tool mockery

import (
	"context"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/avast/retry-go/v4"

	"linkpulse/internal/cache"
	"linkpulse/internal/config"
	"linkpulse/internal/domain"
	"linkpulse/internal/validation"
)

type Provider interface {
	Name() string
	Lookup(ctx context.Context, addr netip.Addr) (domain.GeoLocation, error)
}

type Resolver struct {
	provider Provider
	store    cache.Store
	cfg      *config.GeoConfig
	logger   *slog.Logger
}

func NewResolver(provider Provider, store cache.Store, cfg *config.GeoConfig, logger *slog.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, ip string) domain.GeoLocation {
	ip = strings.TrimSpace(ip)
	if !r.cfg.Enabled || ip == "" {
		return domain.UnknownLocation()
	}
	if validation.IsLocalAddress(ip) {
		r.logger.Debug("local address, skipping geo lookup", slog.String("ip", ip))
		return domain.LocalLocation()
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		r.logger.Debug("unparseable client address", slog.String("ip", ip))
		return domain.UnknownLocation()
	}
	addr = addr.Unmap()

	loc, err := cache.Aside(ctx, r.store, "geo:"+addr.String(), r.cfg.CacheTTL, func(ctx context.Context) (domain.GeoLocation, error) {
		return r.lookupWithRetry(ctx, addr)
	})
	if err != nil {
		r.logger.Warn("geo lookup failed",
			slog.String("provider", r.provider.Name()),
			slog.String("ip", ip),
			slog.String("error", err.Error()))
		return domain.UnknownLocation()
	}
	return loc
}

func (r *Resolver) lookupWithRetry(ctx context.Context, addr netip.Addr) (domain.GeoLocation, error) {
	return retry.DoWithData(
		func() (domain.GeoLocation, error) {
			return r.provider.Lookup(ctx, addr)
		},
		retry.Attempts(max(1, r.cfg.Attempts)),
		retry.Delay(r.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}
