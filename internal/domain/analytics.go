package domain

import (
	"fmt"
	"time"
)

type Dimension string

const (
	DimensionCountry     Dimension = "country"
	DimensionBrowser     Dimension = "browser"
	DimensionDevice      Dimension = "device"
	DimensionOS          Dimension = "os"
	DimensionUTMSource   Dimension = "utm_source"
	DimensionUTMMedium   Dimension = "utm_medium"
	DimensionUTMCampaign Dimension = "utm_campaign"
)

var Dimensions = []Dimension{
	DimensionCountry,
	DimensionBrowser,
	DimensionDevice,
	DimensionOS,
	DimensionUTMSource,
	DimensionUTMMedium,
	DimensionUTMCampaign,
}

func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

// Column is the click_events column backing the dimension.
func (d Dimension) Column() string {
	switch d {
	case DimensionDevice:
		return "device_type"
	case DimensionOS:
		return "operating_system"
	default:
		return string(d)
	}
}

// Value reads the dimension from a click. Nil and empty both mean Unknown.
func (d Dimension) Value(c *ClickEvent) string {
	var v string
	switch d {
	case DimensionCountry:
		v = c.Country
	case DimensionBrowser:
		v = c.Browser
	case DimensionDevice:
		v = c.DeviceType
	case DimensionOS:
		v = c.OperatingSystem
	case DimensionUTMSource:
		v = deref(c.UTMSource)
	case DimensionUTMMedium:
		v = deref(c.UTMMedium)
	case DimensionUTMCampaign:
		v = deref(c.UTMCampaign)
	}
	if v == "" {
		return Unknown
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type DimensionCount struct {
	Value string `db:"value" json:"value"`
	Count int64  `db:"count" json:"count"`
}

type TimeBucket struct {
	Start time.Time `db:"bucket" json:"start"`
	Count int64     `db:"count" json:"count"`
}

type ClickPage struct {
	Clicks []ClickEvent `json:"clicks"`
	Page   int          `json:"page"`
	Size   int          `json:"size"`
	Total  int64        `json:"total"`
}

type RecentClicks struct {
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
}

type AnalyticsOverview struct {
	ShortCode   string                         `json:"short_code"`
	OriginalURL string                         `json:"original_url"`
	OwnerName   string                         `json:"owner_name,omitempty"`
	CreatedAt   time.Time                      `json:"created_at"`
	TotalClicks int64                          `json:"total_clicks"`
	Recent      RecentClicks                   `json:"recent"`
	Breakdowns  map[Dimension][]DimensionCount `json:"breakdowns"`
}
