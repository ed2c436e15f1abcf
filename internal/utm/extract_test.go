package utm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkpulse/internal/domain"
	"linkpulse/internal/utm"
)

func ptr(s string) *string { return &s }

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    domain.UTM
	}{
		{
			name:    "source and medium",
			referer: "https://x?utm_source=google&utm_medium=cpc",
			want:    domain.UTM{Source: ptr("google"), Medium: ptr("cpc")},
		},
		{
			name:    "all five parameters",
			referer: "https://shop.example/landing?utm_source=newsletter&utm_medium=email&utm_campaign=spring&utm_term=shoes&utm_content=hero",
			want: domain.UTM{
				Source:   ptr("newsletter"),
				Medium:   ptr("email"),
				Campaign: ptr("spring"),
				Term:     ptr("shoes"),
				Content:  ptr("hero"),
			},
		},
		{
			name:    "no query string",
			referer: "https://example.com/path",
			want:    domain.UTM{},
		},
		{
			name:    "empty referer",
			referer: "",
			want:    domain.UTM{},
		},
		{
			name:    "percent and plus decoding",
			referer: "https://x?utm_campaign=black%20friday&utm_term=red+shoes",
			want:    domain.UTM{Campaign: ptr("black friday"), Term: ptr("red shoes")},
		},
		{
			name:    "encoded key",
			referer: "https://x?utm%5Fsource=bing",
			want:    domain.UTM{Source: ptr("bing")},
		},
		{
			name:    "pair without equals skipped",
			referer: "https://x?utm_source&utm_medium=social",
			want:    domain.UTM{Medium: ptr("social")},
		},
		{
			name:    "bad escape skipped",
			referer: "https://x?utm_source=%zz&utm_medium=cpc",
			want:    domain.UTM{Medium: ptr("cpc")},
		},
		{
			name:    "fragment dropped",
			referer: "https://x?utm_source=twitter#section",
			want:    domain.UTM{Source: ptr("twitter")},
		},
		{
			name:    "empty value kept",
			referer: "https://x?utm_source=",
			want:    domain.UTM{Source: ptr("")},
		},
		{
			name:    "value containing equals",
			referer: "https://x?utm_content=a=b",
			want:    domain.UTM{Content: ptr("a=b")},
		},
		{
			name:    "first occurrence wins",
			referer: "https://x?utm_source=first&utm_source=second",
			want:    domain.UTM{Source: ptr("first")},
		},
		{
			name:    "unrelated params ignored",
			referer: "https://x?q=search&page=2",
			want:    domain.UTM{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utm.Extract(tt.referer))
		})
	}
}
