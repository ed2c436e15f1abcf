package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"linkpulse/internal/domain"
	"linkpulse/internal/validation"
)

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errURLRequired       = map[string]string{"error": "url is required"}
	errURLsRequired      = map[string]string{"error": "urls is required"}
	errCodeRequired      = map[string]string{"error": "code is required"}
	errURLNotFound       = map[string]string{"error": "url not found"}
	errURLGone           = map[string]string{"error": "url expired or inactive"}
	errCreateFailed      = map[string]string{"error": "failed to create short url"}
	errCreateBatchFailed = map[string]string{"error": "failed to create short urls"}
	errGetFailed         = map[string]string{"error": "failed to get url"}
	errDeactivateFailed  = map[string]string{"error": "failed to deactivate url"}
	errQRFailed          = map[string]string{"error": "failed to render qr code"}
	errInvalidURL        = map[string]string{"error": "invalid url format"}
	errUnsafeURL         = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong        = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP         = map[string]string{"error": "private ip addresses not allowed"}
	errBatchTooLarge     = map[string]string{"error": "batch size exceeds maximum"}
	errExpiryInPast      = map[string]string{"error": "expires_at must be in the future"}
	errTitleTooLong      = map[string]string{"error": "title exceeds maximum length"}
	errDescTooLong       = map[string]string{"error": "description exceeds maximum length"}
	errUserRequired      = map[string]string{"error": "user id is required"}
	errInvalidUser       = map[string]string{"error": "invalid user id"}
	errInvalidParam      = map[string]string{"error": "invalid query parameter"}
	errAnalyticsFailed   = map[string]string{"error": "failed to load analytics"}
	respHealthOK         = map[string]string{"status": "ok"}
)

type Handler struct {
	redirects RedirectService
	links     LinkService
	analytics AnalyticsService
	validator LinkValidator
	clock     domain.Clock
	logger    *slog.Logger
	recorder  BusinessRecorder
}

func New(
	redirects RedirectService,
	links LinkService,
	analytics AnalyticsService,
	validator LinkValidator,
	clock domain.Clock,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		redirects: redirects,
		links:     links,
		analytics: analytics,
		validator: validator,
		clock:     clock,
		logger:    logger,
		recorder:  recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	api.POST("/urls", h.CreateURL)
	api.POST("/urls/batch", h.CreateURLBatch)
	api.GET("/urls/:code", h.GetURL)
	api.DELETE("/urls/:code", h.DeactivateURL)
	api.GET("/urls/:code/qr", h.QRCode)

	stats := api.Group("/analytics/:code")
	stats.GET("/overview", h.Overview)
	stats.GET("/clicks/count", h.ClickCount)
	stats.GET("/clicks/recent", h.RecentClicks)
	stats.GET("/clicks/history", h.ClickHistory)
	stats.GET("/clicks/history/range", h.ClickRange)
	stats.GET("/stats/:dimension", h.Breakdown)
	stats.GET("/trends/hourly", h.HourlyTrend)
	stats.GET("/trends/daily", h.DailyTrend)

	e.GET("/redirect/:code", h.Redirect)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	case errors.Is(err, validation.ErrBatchTooLarge):
		return c.JSON(http.StatusBadRequest, errBatchTooLarge)
	case errors.Is(err, validation.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, errURLsRequired)
	case errors.Is(err, validation.ErrExpiryInPast):
		return c.JSON(http.StatusBadRequest, errExpiryInPast)
	case errors.Is(err, validation.ErrTitleTooLong):
		return c.JSON(http.StatusBadRequest, errTitleTooLong)
	case errors.Is(err, validation.ErrDescriptionTooLong):
		return c.JSON(http.StatusBadRequest, errDescTooLong)
	default:
		var batchErr *validation.BatchValidationError
		if errors.As(err, &batchErr) {
			return c.JSON(http.StatusBadRequest, h.formatBatchErrors(batchErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func (h *Handler) formatBatchErrors(err *validation.BatchValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
