// Package utm reads campaign attribution parameters from a referer URL.
package utm

import (
	"net/url"
	"strings"

	"linkpulse/internal/domain"
)

const (
	keySource   = "utm_source"
	keyMedium   = "utm_medium"
	keyCampaign = "utm_campaign"
	keyTerm     = "utm_term"
	keyContent  = "utm_content"
)

// Extract never fails. Pairs without "=" or with bad percent-encoding are
// skipped, and the first occurrence of a key wins.
func Extract(referer string) domain.UTM {
	_, query, found := strings.Cut(referer, "?")
	if !found {
		return domain.UTM{}
	}
	query, _, _ = strings.Cut(query, "#")

	params := make(map[string]string, 5)
	for pair := range strings.SplitSeq(query, "&") {
		rawKey, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		if _, seen := params[key]; !seen {
			params[key] = value
		}
	}

	return domain.UTM{
		Source:   lookup(params, keySource),
		Medium:   lookup(params, keyMedium),
		Campaign: lookup(params, keyCampaign),
		Term:     lookup(params, keyTerm),
		Content:  lookup(params, keyContent),
	}
}

func lookup(params map[string]string, key string) *string {
	v, ok := params[key]
	if !ok {
		return nil
	}
	return &v
}
