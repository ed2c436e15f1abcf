package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"linkpulse/internal/domain"
)

const (
	defaultTrendHours = 24
	defaultTrendDays  = 7
)

func (h *Handler) handleAnalyticsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errURLNotFound)
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrUnknownDimension):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.logger.Error("failed to load analytics",
		slog.String("short_code", c.Param("code")),
		slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
}

func (h *Handler) Overview(c echo.Context) error {
	overview, err := h.analytics.Overview(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// ClickCount returns the total, or the count since the optional "since"
// timestamp.
func (h *Handler) ClickCount(c echo.Context) error {
	code := c.Param("code")
	ctx := c.Request().Context()

	var (
		n   int64
		err error
	)
	if raw := c.QueryParam("since"); raw != "" {
		since, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, errInvalidParam)
		}
		n, err = h.analytics.ClicksSince(ctx, code, since)
	} else {
		n, err = h.analytics.TotalClicks(ctx, code)
	}
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"short_code": code, "clicks": n})
}

func (h *Handler) RecentClicks(c echo.Context) error {
	recent, err := h.analytics.RecentClicks(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, recent)
}

func (h *Handler) ClickHistory(c echo.Context) error {
	page, ok := intParam(c, "page", 0)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidParam)
	}
	size, ok := intParam(c, "size", 0)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidParam)
	}

	history, err := h.analytics.History(c.Request().Context(), c.Param("code"), page, size)
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) ClickRange(c echo.Context) error {
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidParam)
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidParam)
	}

	events, err := h.analytics.Range(c.Request().Context(), c.Param("code"), start, end)
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *Handler) Breakdown(c echo.Context) error {
	dim, err := domain.ParseDimension(c.Param("dimension"))
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}

	counts, err := h.analytics.Breakdown(c.Request().Context(), c.Param("code"), dim)
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"dimension": dim, "counts": counts})
}

func (h *Handler) HourlyTrend(c echo.Context) error {
	hours, ok := intParam(c, "hours", defaultTrendHours)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidParam)
	}

	buckets, err := h.analytics.HourlyTrend(c.Request().Context(), c.Param("code"), hours)
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}

// DailyTrend defaults to the last seven days when start or end is omitted.
func (h *Handler) DailyTrend(c echo.Context) error {
	end := h.clock.Now()
	if raw := c.QueryParam("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errInvalidParam)
		}
		end = t
	}
	start := end.AddDate(0, 0, -(defaultTrendDays - 1))
	if raw := c.QueryParam("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errInvalidParam)
		}
		start = t
	}

	buckets, err := h.analytics.DailyTrend(c.Request().Context(), c.Param("code"), start, end)
	if err != nil {
		return h.handleAnalyticsError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}

func intParam(c echo.Context, name string, fallback int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
