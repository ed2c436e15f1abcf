// Package device classifies user agents into browser, device type and
// operating system with ordered substring rules.
package device

import (
	"strings"

	"linkpulse/internal/domain"
)

// rule matches when the user agent contains any of the markers and none of
// the exclusions. Rules are checked in order; the first match wins.
type rule struct {
	value string
	any   []string
	none  []string
}

func (r rule) matches(ua string) bool {
	for _, n := range r.none {
		if strings.Contains(ua, n) {
			return false
		}
	}
	for _, m := range r.any {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

var browserRules = []rule{
	{value: "Edge", any: []string{"edg/", "edge/"}},
	{value: "Chrome", any: []string{"chrome/"}, none: []string{"chromium"}},
	{value: "Firefox", any: []string{"firefox/", "gecko/"}},
	{value: "Safari", any: []string{"safari/"}, none: []string{"chrome"}},
	{value: "Opera", any: []string{"opera", "opr/"}},
	{value: "Internet Explorer", any: []string{"trident", "msie"}},
	{value: "Samsung Browser", any: []string{"samsungbrowser"}},
	{value: "UC Browser", any: []string{"ucbrowser", "uc browser"}},
}

var deviceRules = []rule{
	{value: "Mobile", any: []string{"mobile", "iphone", "ipod"}},
	{value: "Tablet", any: []string{"tablet", "ipad"}},
	{value: "Tablet", any: []string{"android"}, none: []string{"mobile"}},
	{value: "Smart TV", any: []string{"smart-tv", "smarttv", "tv"}},
	{value: "Gaming Console", any: []string{"playstation", "xbox", "nintendo"}},
	{value: "IoT Device", any: []string{"iot", "embedded", "headless"}},
}

const defaultDevice = "Desktop"

var osRules = []rule{
	{value: "Windows", any: []string{"windows nt", "windows"}},
	// iOS agents carry "like Mac OS X". Checking macOS first without the
	// exclusion would report every iPhone and iPad as macOS, so Apple mobile
	// tokens veto this rule and fall through to iOS.
	{value: "macOS", any: []string{"mac os x", "macos"}, none: []string{"iphone", "ipad", "ipod"}},
	{value: "iOS", any: []string{"ios", "iphone", "ipad"}},
	{value: "Android", any: []string{"android"}},
	{value: "Ubuntu", any: []string{"ubuntu"}},
	{value: "Fedora", any: []string{"fedora"}},
	{value: "CentOS", any: []string{"centos"}},
	{value: "Debian", any: []string{"debian"}},
	{value: "FreeBSD", any: []string{"freebsd"}},
	{value: "Chrome OS", any: []string{"cros", "chromeos"}},
	{value: "Linux", any: []string{"linux"}},
}

// Classify is pure and deterministic. An empty or blank agent is all Unknown.
func Classify(userAgent string) domain.DeviceInfo {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return domain.UnknownDevice()
	}
	return domain.DeviceInfo{
		Browser:         firstMatch(browserRules, ua, domain.Unknown),
		DeviceType:      firstMatch(deviceRules, ua, defaultDevice),
		OperatingSystem: firstMatch(osRules, ua, domain.Unknown),
	}
}

func firstMatch(rules []rule, ua, fallback string) string {
	for _, r := range rules {
		if r.matches(ua) {
			return r.value
		}
	}
	return fallback
}

var botMarkers = []string{
	"bot", "crawler", "spider", "slurp", "facebookexternalhit",
	"curl/", "wget/", "python-requests", "go-http-client", "headlesschrome",
}

// LooksLikeBot flags crawlers and scripted clients.
func LooksLikeBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
