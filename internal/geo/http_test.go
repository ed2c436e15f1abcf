package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/config"
	"linkpulse/internal/geo"
)

func TestIPStackProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/85.214.132.117", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("access_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ip": "85.214.132.117",
			"country_code": "DE",
			"country_name": "Germany",
			"region_name": "Land Berlin",
			"city": "Berlin",
			"latitude": 52.52,
			"longitude": 13.4,
			"time_zone": {"id": "Europe/Berlin"},
			"connection": {"isp": "Strato AG"}
		}`))
	}))
	defer srv.Close()

	p := geo.NewIPStackProvider(srv.Client(), srv.URL, "secret")
	loc, err := p.Lookup(context.Background(), netip.MustParseAddr("85.214.132.117"))
	require.NoError(t, err)

	assert.Equal(t, "Germany", loc.Country)
	assert.Equal(t, "DE", loc.CountryCode)
	assert.Equal(t, "Berlin", loc.City)
	assert.Equal(t, "Land Berlin", loc.Region)
	require.NotNil(t, loc.Latitude)
	assert.InDelta(t, 52.52, *loc.Latitude, 0.0001)
	assert.Equal(t, "Europe/Berlin", loc.Timezone)
	assert.Equal(t, "Strato AG", loc.ISP)
}

func TestIPStackProvider_ReportedErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 101, "type": "invalid_access_key", "info": "bad key"}}`))
	}))
	defer srv.Close()

	p := geo.NewIPStackProvider(srv.Client(), srv.URL, "wrong")
	_, err := p.Lookup(context.Background(), netip.MustParseAddr("8.8.8.8"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestIPAPIProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/8.8.8.8", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "success",
			"country": "United States",
			"countryCode": "US",
			"regionName": "Virginia",
			"city": "Ashburn",
			"lat": 39.03,
			"lon": -77.5,
			"timezone": "America/New_York",
			"isp": "Google LLC"
		}`))
	}))
	defer srv.Close()

	p := geo.NewIPAPIProvider(srv.Client(), srv.URL)
	loc, err := p.Lookup(context.Background(), netip.MustParseAddr("8.8.8.8"))
	require.NoError(t, err)

	assert.Equal(t, "United States", loc.Country)
	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, "Ashburn", loc.City)
	assert.Equal(t, "Virginia", loc.Region)
	assert.Equal(t, "Google LLC", loc.ISP)
}

func TestIPAPIProvider_FailStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "fail", "message": "reserved range"}`))
	}))
	defer srv.Close()

	p := geo.NewIPAPIProvider(srv.Client(), srv.URL)
	_, err := p.Lookup(context.Background(), netip.MustParseAddr("8.8.8.8"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved range")
}

func TestIPAPIProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := geo.NewIPAPIProvider(srv.Client(), srv.URL)
	_, err := p.Lookup(context.Background(), netip.MustParseAddr("8.8.8.8"))
	require.Error(t, err)
}

func TestNewProvider_Selection(t *testing.T) {
	cfg := &config.GeoConfig{Timeout: time.Second, APIURL: "http://keyed", FreeAPIURL: "http://free"}

	p, err := geo.NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "ip-api", p.Name())

	cfg.APIKey = "key"
	p, err = geo.NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "ipstack", p.Name())

	cfg.MaxMindDB = "/nonexistent/GeoLite2-City.mmdb"
	_, err = geo.NewProvider(cfg)
	assert.Error(t, err)
}
