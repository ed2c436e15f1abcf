package geo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/cache"
	"linkpulse/internal/config"
	"linkpulse/internal/domain"
	"linkpulse/internal/geo"
	"linkpulse/internal/geo/mocks"
)

func testGeoConfig() *config.GeoConfig {
	return &config.GeoConfig{
		Enabled:    true,
		Attempts:   2,
		RetryDelay: time.Millisecond,
		CacheTTL:   time.Hour,
	}
}

func newTestResolver(t *testing.T, cfg *config.GeoConfig) (*geo.Resolver, *mocks.MockProvider, *cache.Local) {
	t.Helper()
	store, err := cache.NewLocal(20)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	provider := mocks.NewMockProvider(t)
	provider.EXPECT().Name().Return("mock").Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return geo.NewResolver(provider, store, cfg, logger), provider, store
}

func berlin() domain.GeoLocation {
	lat, lon := 52.52, 13.405
	return domain.GeoLocation{
		Country:     "Germany",
		CountryCode: "DE",
		City:        "Berlin",
		Region:      "Berlin",
		Latitude:    &lat,
		Longitude:   &lon,
		Timezone:    "Europe/Berlin",
	}
}

func TestResolve_Disabled(t *testing.T) {
	cfg := testGeoConfig()
	cfg.Enabled = false
	r, _, _ := newTestResolver(t, cfg)

	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), "8.8.8.8"))
}

func TestResolve_Blank(t *testing.T) {
	r, _, _ := newTestResolver(t, testGeoConfig())

	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), ""))
	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), "   "))
}

func TestResolve_PrivateAddressIsLocal(t *testing.T) {
	r, _, _ := newTestResolver(t, testGeoConfig())

	for _, ip := range []string{"192.168.1.5", "10.0.0.1", "172.16.4.4", "127.0.0.1", "::1", "fe80::1", "fd00::1", "localhost"} {
		loc := r.Resolve(context.Background(), ip)
		assert.Equal(t, domain.LocalLocation(), loc, ip)
		assert.False(t, loc.Resolved())
	}
}

func TestResolve_Unparseable(t *testing.T) {
	r, _, _ := newTestResolver(t, testGeoConfig())

	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), "not-an-ip"))
}

func TestResolve_SuccessIsCached(t *testing.T) {
	r, provider, store := newTestResolver(t, testGeoConfig())
	provider.EXPECT().Lookup(mock.Anything, netip.MustParseAddr("85.214.132.117")).Return(berlin(), nil).Once()

	first := r.Resolve(context.Background(), "85.214.132.117")
	assert.Equal(t, berlin(), first)
	assert.True(t, first.Resolved())

	store.Wait()

	second := r.Resolve(context.Background(), "85.214.132.117")
	assert.Equal(t, berlin(), second)
}

func TestResolve_RetriesThenSucceeds(t *testing.T) {
	r, provider, _ := newTestResolver(t, testGeoConfig())
	addr := netip.MustParseAddr("8.8.8.8")
	provider.EXPECT().Lookup(mock.Anything, addr).Return(domain.GeoLocation{}, errors.New("timeout")).Once()
	provider.EXPECT().Lookup(mock.Anything, addr).Return(berlin(), nil).Once()

	assert.Equal(t, berlin(), r.Resolve(context.Background(), "8.8.8.8"))
}

func TestResolve_ExhaustedAttemptsDegradeToUnknown(t *testing.T) {
	r, provider, store := newTestResolver(t, testGeoConfig())
	addr := netip.MustParseAddr("8.8.4.4")
	provider.EXPECT().Lookup(mock.Anything, addr).Return(domain.GeoLocation{}, errors.New("unavailable")).Times(2)

	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), "8.8.4.4"))

	store.Wait()
	_, cached := store.Get("geo:8.8.4.4")
	assert.False(t, cached, "failures must not be cached")
}

func TestResolve_FailureNotCachedRetriedNextTime(t *testing.T) {
	cfg := testGeoConfig()
	cfg.Attempts = 1
	r, provider, _ := newTestResolver(t, cfg)
	addr := netip.MustParseAddr("1.1.1.1")
	provider.EXPECT().Lookup(mock.Anything, addr).Return(domain.GeoLocation{}, errors.New("down")).Once()
	provider.EXPECT().Lookup(mock.Anything, addr).Return(berlin(), nil).Once()

	assert.Equal(t, domain.UnknownLocation(), r.Resolve(context.Background(), "1.1.1.1"))
	assert.Equal(t, berlin(), r.Resolve(context.Background(), "1.1.1.1"))
}

func TestResolve_IPv4MappedAddressUnmapped(t *testing.T) {
	r, provider, _ := newTestResolver(t, testGeoConfig())
	provider.EXPECT().Lookup(mock.Anything, netip.MustParseAddr("9.9.9.9")).Return(berlin(), nil).Once()

	assert.Equal(t, berlin(), r.Resolve(context.Background(), "::ffff:9.9.9.9"))
}
