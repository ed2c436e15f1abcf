package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"

	"linkpulse/internal/domain"
)

// headerUserID carries the caller's id, set by the upstream auth gateway.
const headerUserID = "X-User-ID"

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

var errNoUser = errors.New("no user id")

func ownerFromHeader(c echo.Context) (*uuid.UUID, error) {
	raw := c.Request().Header.Get(headerUserID)
	if raw == "" {
		return nil, errNoUser
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalOwner returns nil for anonymous callers and false when the header
// is present but malformed.
func optionalOwner(c echo.Context) (*uuid.UUID, bool) {
	owner, err := ownerFromHeader(c)
	if errors.Is(err, errNoUser) {
		return nil, true
	}
	return owner, err == nil
}

func (h *Handler) CreateURL(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	owner, ok := optionalOwner(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidUser)
	}

	if err := h.validator.ValidateCreate(req, h.clock.Now()); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.links.Shorten(c.Request().Context(), req, owner)
	if err != nil {
		h.logger.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	status := http.StatusCreated
	if !resp.Created {
		status = http.StatusOK
	}
	return c.JSON(status, resp)
}

func (h *Handler) CreateURLBatch(c echo.Context) error {
	var req domain.CreateLinkBatchRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	owner, ok := optionalOwner(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidUser)
	}

	if err := h.validator.ValidateBatch(req.URLs); err != nil {
		return h.handleValidationError(c, err)
	}

	responses, err := h.links.ShortenBatch(c.Request().Context(), req.URLs, owner)
	if err != nil {
		h.logger.Error("failed to create short urls", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateBatchFailed)
	}

	return c.JSON(http.StatusCreated, domain.CreateLinkBatchResponse{URLs: responses})
}

func (h *Handler) GetURL(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	view, err := h.links.Get(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to get url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.JSON(http.StatusOK, view)
}

// DeactivateURL answers 404 for links owned by someone else.
func (h *Handler) DeactivateURL(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	owner, err := ownerFromHeader(c)
	if err != nil {
		if errors.Is(err, errNoUser) {
			return c.JSON(http.StatusUnauthorized, errUserRequired)
		}
		return c.JSON(http.StatusBadRequest, errInvalidUser)
	}

	err = h.links.Deactivate(c.Request().Context(), code, *owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to deactivate url",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeactivateFailed)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) QRCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	size := defaultQRSize
	if raw := c.QueryParam("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < minQRSize || n > maxQRSize {
			return c.JSON(http.StatusBadRequest, errInvalidParam)
		}
		size = n
	}

	view, err := h.links.Get(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to get url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	png, err := qrcode.Encode(view.ShortURL, qrcode.Medium, size)
	if err != nil {
		h.logger.Error("failed to render qr code", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errQRFailed)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
