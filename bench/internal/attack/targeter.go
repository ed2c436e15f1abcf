package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	urlCounter atomic.Uint64
	bodyPool   = sync.Pool{
		New: func() any {
			return make([]byte, 0, 64)
		},
	}
)

// Redirect traffic rotates through these so that every breakdown has more
// than one bucket.
var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148",
		"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Mobile Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
		"curl/8.6.0",
	}
	referers = []string{
		"",
		"https://www.google.com/",
		"https://news.ycombinator.com/",
		"https://t.co/abc",
	}
	campaigns = []url.Values{
		nil,
		{"utm_source": {"newsletter"}, "utm_medium": {"email"}, "utm_campaign": {"spring"}},
		{"utm_source": {"twitter"}, "utm_medium": {"social"}},
	}
	analyticsPaths = []string{
		"/overview",
		"/clicks/count",
		"/clicks/recent",
		"/clicks/history?page=0&size=20",
		"/stats/country",
		"/stats/browser",
		"/stats/device",
		"/trends/hourly?hours=24",
		"/trends/daily",
	}
)

func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	endpoint := baseURL + "/api/v1/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = endpoint
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"url":"https://example.com/%d"}`, urlCounter.Add(1))
		t.Body = buf
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		header := http.Header{"User-Agent": []string{userAgents[rand.IntN(len(userAgents))]}}
		if ref := referers[rand.IntN(len(referers))]; ref != "" {
			// Campaign attribution is read from the referer's query string.
			if q := campaigns[rand.IntN(len(campaigns))]; q != nil {
				ref += "?" + q.Encode()
			}
			header.Set("Referer", ref)
		}
		if bypassSecret != "" {
			header.Set(bypassHeader, bypassSecret)
		}

		t.Method = http.MethodGet
		t.URL = baseURL + "/" + code
		t.Header = header
		t.Body = nil
		return nil
	}
}

func AnalyticsTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/api/v1/analytics/" + code + analyticsPaths[rand.IntN(len(analyticsPaths))]
		t.Header = header
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio, analyticsRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, bypassSecret)
	redirectTarget := RedirectTargeter(baseURL, codes, bypassSecret)
	analyticsTarget := AnalyticsTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		switch r := rand.Float64(); {
		case r < createRatio:
			return createTarget(t)
		case r < createRatio+analyticsRatio:
			return analyticsTarget(t)
		default:
			return redirectTarget(t)
		}
	}
}
