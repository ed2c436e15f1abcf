package middleware

//go:generate go tool mockery

import (
	"cmp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"linkpulse/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Probe and profiling routes are not recorded.
var unmeteredPrefixes = []string{"/api/v1/health", "/debug/pprof"}

// Metrics records one HTTPMetric per request, tagged with the route template
// and, for routes carrying a :code parameter, the short code.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := cmp.Or(c.Path(), "/")
			if unmetered(path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       path,
				ShortCode:  c.Param("code"),
				StatusCode: statusCode,
				DurationMs: float64(duration.Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}

func unmetered(path string) bool {
	for _, p := range unmeteredPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
