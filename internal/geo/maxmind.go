package geo

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/avast/retry-go/v4"
	"github.com/oschwald/geoip2-golang"

	"linkpulse/internal/domain"
)

// MaxMindProvider resolves against a local GeoLite2/GeoIP2 City database.
type MaxMindProvider struct {
	reader *geoip2.Reader
}

func NewMaxMindProvider(path string) (*MaxMindProvider, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maxmind database: %w", err)
	}
	return &MaxMindProvider{reader: reader}, nil
}

func (p *MaxMindProvider) Name() string { return "maxmind" }

// Lookup errors are unrecoverable: the database is local, so a retry would
// return the same answer.
func (p *MaxMindProvider) Lookup(_ context.Context, addr netip.Addr) (domain.GeoLocation, error) {
	record, err := p.reader.City(net.IP(addr.AsSlice()))
	if err != nil {
		return domain.GeoLocation{}, retry.Unrecoverable(fmt.Errorf("maxmind: %w", err))
	}

	country := record.Country.Names["en"]
	if country == "" {
		return domain.GeoLocation{}, retry.Unrecoverable(fmt.Errorf("%w: maxmind has no record for %s", errProviderRejected, addr))
	}

	loc := domain.GeoLocation{
		Country:     country,
		CountryCode: record.Country.IsoCode,
		City:        orUnknown(record.City.Names["en"]),
		Region:      domain.Unknown,
		Timezone:    record.Location.TimeZone,
	}
	if len(record.Subdivisions) > 0 {
		loc.Region = orUnknown(record.Subdivisions[0].Names["en"])
	}
	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		lat, lon := record.Location.Latitude, record.Location.Longitude
		loc.Latitude, loc.Longitude = &lat, &lon
	}
	return loc, nil
}

func (p *MaxMindProvider) Close() error {
	return p.reader.Close()
}
