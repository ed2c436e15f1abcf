package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	Unknown = "Unknown"
	Local   = "Local"
)

// ClickRequest is what the redirect path hands to the recorder. It carries
// only raw request data; enrichment happens off the hot path.
type ClickRequest struct {
	LinkID      uuid.UUID
	ShortCode   string
	ClientIP    string
	UserAgent   string
	Referer     string
	RequestedAt time.Time
}

type ClickEvent struct {
	ID              uuid.UUID `db:"id" json:"id"`
	LinkID          uuid.UUID `db:"link_id" json:"link_id"`
	ClientIP        string    `db:"client_ip" json:"client_ip"`
	UserAgent       string    `db:"user_agent" json:"user_agent"`
	Referer         string    `db:"referer" json:"referer,omitempty"`
	ClickedAt       time.Time `db:"clicked_at" json:"clicked_at"`
	Browser         string    `db:"browser" json:"browser"`
	DeviceType      string    `db:"device_type" json:"device_type"`
	OperatingSystem string    `db:"operating_system" json:"operating_system"`
	Bot             bool      `db:"is_bot" json:"is_bot"`
	Suspicious      bool      `db:"is_suspicious" json:"is_suspicious"`
	Country         string    `db:"country" json:"country"`
	CountryCode     string    `db:"country_code" json:"country_code,omitempty"`
	City            string    `db:"city" json:"city"`
	Region          string    `db:"region" json:"region,omitempty"`
	Latitude        *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude       *float64  `db:"longitude" json:"longitude,omitempty"`
	Timezone        string    `db:"timezone" json:"timezone,omitempty"`
	ISP             string    `db:"isp" json:"isp,omitempty"`
	UTMSource       *string   `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium       *string   `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign     *string   `db:"utm_campaign" json:"utm_campaign,omitempty"`
	UTMTerm         *string   `db:"utm_term" json:"utm_term,omitempty"`
	UTMContent      *string   `db:"utm_content" json:"utm_content,omitempty"`
	GeoEnriched     bool      `db:"geo_enriched" json:"geo_enriched"`
	DeviceEnriched  bool      `db:"device_enriched" json:"device_enriched"`
}

type DeviceInfo struct {
	Browser         string `json:"browser"`
	DeviceType      string `json:"device_type"`
	OperatingSystem string `json:"operating_system"`
}

func UnknownDevice() DeviceInfo {
	return DeviceInfo{Browser: Unknown, DeviceType: Unknown, OperatingSystem: Unknown}
}

type GeoLocation struct {
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code,omitempty"`
	City        string   `json:"city"`
	Region      string   `json:"region,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	ISP         string   `json:"isp,omitempty"`
}

func UnknownLocation() GeoLocation {
	return GeoLocation{Country: Unknown, City: Unknown, Region: Unknown}
}

func LocalLocation() GeoLocation {
	return GeoLocation{Country: Local, City: Local, Region: Local}
}

// Resolved reports whether the location came from a provider rather than a
// sentinel.
func (g GeoLocation) Resolved() bool {
	return g.Country != Unknown && g.Country != Local
}

type UTM struct {
	Source   *string `json:"utm_source,omitempty"`
	Medium   *string `json:"utm_medium,omitempty"`
	Campaign *string `json:"utm_campaign,omitempty"`
	Term     *string `json:"utm_term,omitempty"`
	Content  *string `json:"utm_content,omitempty"`
}
