package attack

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestRedirectTargeter(t *testing.T) {
	codes := []string{"aaaaaaaa", "bbbbbbbb"}
	tr := RedirectTargeter("http://localhost:8080", codes, "secret")

	for range 50 {
		var target vegeta.Target
		require.NoError(t, tr(&target))

		assert.Equal(t, http.MethodGet, target.Method)
		assert.Contains(t, codes, strings.TrimPrefix(target.URL, "http://localhost:8080/"))
		assert.NotEmpty(t, target.Header.Get("User-Agent"))
		assert.Equal(t, "secret", target.Header.Get(bypassHeader))
	}
}

func TestAnalyticsTargeter(t *testing.T) {
	tr := AnalyticsTargeter("http://localhost:8080", []string{"aaaaaaaa"}, "")

	var target vegeta.Target
	require.NoError(t, tr(&target))

	assert.Equal(t, http.MethodGet, target.Method)
	assert.True(t, strings.HasPrefix(target.URL, "http://localhost:8080/api/v1/analytics/aaaaaaaa/"))
	assert.Nil(t, target.Header)
}

func TestCreateTargeter(t *testing.T) {
	tr := CreateTargeter("http://localhost:8080", "")

	var first, second vegeta.Target
	require.NoError(t, tr(&first))
	require.NoError(t, tr(&second))

	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "http://localhost:8080/api/v1/urls", first.URL)
	assert.NotEqual(t, string(first.Body), string(second.Body))
}

func TestTargeter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"create needs no codes", Config{Type: TypeCreate}, false},
		{"redirect without codes", Config{Type: TypeRedirect}, true},
		{"analytics with codes", Config{Type: TypeAnalytics, Codes: []string{"a"}}, false},
		{"mixed with codes", Config{Type: TypeMixed, Codes: []string{"a"}, CreateRatio: 0.1}, false},
		{"unknown type", Config{Type: "soak", Codes: []string{"a"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Targeter(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tr)
		})
	}
}
