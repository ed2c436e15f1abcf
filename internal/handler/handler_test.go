package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected string
	}{
		{
			name:     "empty referer returns direct",
			referer:  "",
			expected: "direct",
		},
		{
			name:     "https url extracts host",
			referer:  "https://google.com/search?q=test",
			expected: "google.com",
		},
		{
			name:     "http url extracts host",
			referer:  "http://example.com/path",
			expected: "example.com",
		},
		{
			name:     "url with port preserves port",
			referer:  "http://example.com:8080/path",
			expected: "example.com:8080",
		},
		{
			name:     "subdomain preserved",
			referer:  "https://sub.domain.com/",
			expected: "sub.domain.com",
		},
		{
			name:     "invalid url returns unknown",
			referer:  "not-a-valid-url",
			expected: "unknown",
		},
		{
			name:     "url without host returns unknown",
			referer:  "/just/a/path",
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDomain(tt.referer)
			if result != tt.expected {
				t.Errorf("extractDomain(%q) = %q, want %q", tt.referer, result, tt.expected)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		expected   string
	}{
		{
			name:       "first forwarded hop wins",
			forwarded:  "203.0.113.7, 10.0.0.1",
			realIP:     "198.51.100.4",
			remoteAddr: "10.0.0.2:5555",
			expected:   "203.0.113.7",
		},
		{
			name:       "unknown forwarded falls back to real ip",
			forwarded:  "unknown",
			realIP:     "198.51.100.4",
			remoteAddr: "10.0.0.2:5555",
			expected:   "198.51.100.4",
		},
		{
			name:       "peer address without headers",
			remoteAddr: "192.0.2.1:40000",
			expected:   "192.0.2.1",
		},
		{
			name:       "peer address without port",
			remoteAddr: "192.0.2.1",
			expected:   "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/abc", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := clientIP(r); got != tt.expected {
				t.Errorf("clientIP() = %q, want %q", got, tt.expected)
			}
		})
	}
}
