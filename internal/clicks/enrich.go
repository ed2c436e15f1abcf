package clicks

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"linkpulse/internal/device"
	"linkpulse/internal/domain"
	"linkpulse/internal/utm"
)

// Enricher turns a raw ClickRequest into a ClickEvent: device, then geo,
// then UTM attribution.
type Enricher struct {
	devices DeviceClassifier
	geo     GeoResolver
}

func NewEnricher(devices DeviceClassifier, geo GeoResolver) *Enricher {
	return &Enricher{devices: devices, geo: geo}
}

// Enrich assigns the click id. The id stays fixed across persistence retries.
func (e *Enricher) Enrich(ctx context.Context, req domain.ClickRequest) *domain.ClickEvent {
	click := &domain.ClickEvent{
		ID:        uuid.New(),
		LinkID:    req.LinkID,
		ClientIP:  req.ClientIP,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		ClickedAt: req.RequestedAt.UTC(),
	}

	dev := e.devices.Classify(ctx, req.UserAgent)
	click.Browser = dev.Browser
	click.DeviceType = dev.DeviceType
	click.OperatingSystem = dev.OperatingSystem
	click.Bot = device.LooksLikeBot(req.UserAgent)
	click.Suspicious = strings.TrimSpace(req.UserAgent) == ""
	click.DeviceEnriched = !click.Suspicious

	loc := e.geo.Resolve(ctx, req.ClientIP)
	click.Country = loc.Country
	click.CountryCode = loc.CountryCode
	click.City = loc.City
	click.Region = loc.Region
	click.Latitude = loc.Latitude
	click.Longitude = loc.Longitude
	click.Timezone = loc.Timezone
	click.ISP = loc.ISP
	click.GeoEnriched = loc.Resolved()

	params := utm.Extract(req.Referer)
	click.UTMSource = params.Source
	click.UTMMedium = params.Medium
	click.UTMCampaign = params.Campaign
	click.UTMTerm = params.Term
	click.UTMContent = params.Content

	return click
}
