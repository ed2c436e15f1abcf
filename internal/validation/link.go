package validation

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"linkpulse/internal/domain"
)

// schemes maps a lowercased scheme to the error a target with that scheme
// produces. Anything missing from the table is malformed.
var schemes = map[string]error{
	"http":       nil,
	"https":      nil,
	"javascript": ErrUnsafeProtocol,
	"data":       ErrUnsafeProtocol,
	"file":       ErrUnsafeProtocol,
	"vbscript":   ErrUnsafeProtocol,
	"about":      ErrUnsafeProtocol,
	"blob":       ErrUnsafeProtocol,
}

type Limits struct {
	MaxURLLength         int
	MaxBatchSize         int
	MaxTitleLength       int
	MaxDescriptionLength int
	AllowPrivateIPs      bool
}

// LinkValidator checks shorten requests before they reach the link service.
type LinkValidator struct {
	limits Limits
	ips    *IPValidator
}

func NewLinkValidator(limits Limits) *LinkValidator {
	return &LinkValidator{limits: limits, ips: NewIPValidator()}
}

// ValidateCreate checks the target, the metadata lengths and the expiry of a
// single shorten request. The first failing check wins.
func (v *LinkValidator) ValidateCreate(req domain.CreateLinkRequest, now time.Time) error {
	if err := v.ValidateTarget(req.URL); err != nil {
		return err
	}
	if tooLong(req.Title, v.limits.MaxTitleLength) {
		return ErrTitleTooLong
	}
	if req.Description != nil && tooLong(*req.Description, v.limits.MaxDescriptionLength) {
		return ErrDescriptionTooLong
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return ErrExpiryInPast
	}
	return nil
}

// ValidateTarget accepts absolute http(s) URLs with a host. Literal private
// addresses are rejected unless the limits allow them; hostnames are never
// resolved.
func (v *LinkValidator) ValidateTarget(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyURL
	}
	if len(raw) > v.limits.MaxURLLength {
		return ErrURLTooLong
	}

	target, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURLFormat
	}
	schemeErr, known := schemes[strings.ToLower(target.Scheme)]
	switch {
	case !known:
		return ErrInvalidURLFormat
	case schemeErr != nil:
		return schemeErr
	case target.Host == "":
		return ErrInvalidURLFormat
	}

	if v.limits.AllowPrivateIPs {
		return nil
	}
	return v.ips.ValidateHost(target.Host)
}

// ValidateBatch reports every invalid target together with its position.
func (v *LinkValidator) ValidateBatch(urls []string) error {
	switch {
	case len(urls) == 0:
		return ErrEmptyBatch
	case len(urls) > v.limits.MaxBatchSize:
		return ErrBatchTooLarge
	}

	var failed []IndexedError
	for i, u := range urls {
		if err := v.ValidateTarget(u); err != nil {
			failed = append(failed, IndexedError{Index: i, Err: err})
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &BatchValidationError{Errors: failed, Total: len(urls)}
}

// A non-positive limit disables the check.
func tooLong(s string, limit int) bool {
	return limit > 0 && utf8.RuneCountInString(s) > limit
}
