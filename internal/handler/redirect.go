package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"linkpulse/internal/domain"
	"linkpulse/internal/service"
)

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	req := c.Request()
	referer := req.Referer()

	target, err := h.redirects.Resolve(req.Context(), service.ResolveRequest{
		ShortCode: code,
		ClientIP:  clientIP(req),
		UserAgent: req.UserAgent(),
		Referer:   referer,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, errURLNotFound)
		case errors.Is(err, domain.ErrGone):
			return c.JSON(http.StatusGone, errURLGone)
		}
		h.logger.Error("failed to resolve short code",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	h.recorder.RecordBusiness("referrer_redirects", 1, map[string]string{
		"short_code": code,
		"referrer":   extractDomain(referer),
	})

	return c.Redirect(http.StatusFound, target)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address. Proxies that write "unknown" are skipped.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := usableIP(first); ip != "" {
			return ip
		}
	}
	if ip := usableIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func usableIP(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "unknown") {
		return ""
	}
	return v
}
