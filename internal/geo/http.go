package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"time"

	"linkpulse/internal/domain"
)

var errProviderRejected = errors.New("geo provider rejected lookup")

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        32,
			MaxIdleConnsPerHost: 32,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// IPStackProvider is the keyed provider.
type IPStackProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewIPStackProvider(client *http.Client, baseURL, apiKey string) *IPStackProvider {
	return &IPStackProvider{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (p *IPStackProvider) Name() string { return "ipstack" }

type ipStackResponse struct {
	CountryName string   `json:"country_name"`
	CountryCode string   `json:"country_code"`
	RegionName  string   `json:"region_name"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	TimeZone    *struct {
		ID string `json:"id"`
	} `json:"time_zone"`
	Connection *struct {
		ISP string `json:"isp"`
	} `json:"connection"`
	Error *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

func (p *IPStackProvider) Lookup(ctx context.Context, addr netip.Addr) (domain.GeoLocation, error) {
	endpoint := fmt.Sprintf("%s/%s?access_key=%s", p.baseURL, addr, url.QueryEscape(p.apiKey))

	var body ipStackResponse
	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return domain.GeoLocation{}, fmt.Errorf("ipstack: %w", err)
	}
	if body.Error != nil {
		return domain.GeoLocation{}, fmt.Errorf("%w: ipstack %d %s", errProviderRejected, body.Error.Code, body.Error.Info)
	}
	if body.CountryName == "" {
		return domain.GeoLocation{}, fmt.Errorf("%w: ipstack returned no country", errProviderRejected)
	}

	loc := domain.GeoLocation{
		Country:     body.CountryName,
		CountryCode: body.CountryCode,
		City:        orUnknown(body.City),
		Region:      orUnknown(body.RegionName),
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	}
	if body.TimeZone != nil {
		loc.Timezone = body.TimeZone.ID
	}
	if body.Connection != nil {
		loc.ISP = body.Connection.ISP
	}
	return loc, nil
}

// IPAPIProvider is the free-tier provider.
type IPAPIProvider struct {
	client  *http.Client
	baseURL string
}

func NewIPAPIProvider(client *http.Client, baseURL string) *IPAPIProvider {
	return &IPAPIProvider{client: client, baseURL: baseURL}
}

func (p *IPAPIProvider) Name() string { return "ip-api" }

type ipAPIResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	RegionName  string   `json:"regionName"`
	City        string   `json:"city"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Timezone    string   `json:"timezone"`
	ISP         string   `json:"isp"`
}

const ipAPIFields = "status,message,country,countryCode,regionName,city,lat,lon,timezone,isp"

func (p *IPAPIProvider) Lookup(ctx context.Context, addr netip.Addr) (domain.GeoLocation, error) {
	endpoint := fmt.Sprintf("%s/json/%s?fields=%s", p.baseURL, addr, ipAPIFields)

	var body ipAPIResponse
	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return domain.GeoLocation{}, fmt.Errorf("ip-api: %w", err)
	}
	if body.Status != "success" {
		return domain.GeoLocation{}, fmt.Errorf("%w: ip-api %s", errProviderRejected, body.Message)
	}

	return domain.GeoLocation{
		Country:     orUnknown(body.Country),
		CountryCode: body.CountryCode,
		City:        orUnknown(body.City),
		Region:      orUnknown(body.RegionName),
		Latitude:    body.Lat,
		Longitude:   body.Lon,
		Timezone:    body.Timezone,
		ISP:         body.ISP,
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return domain.Unknown
	}
	return s
}
