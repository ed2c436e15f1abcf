package validation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrBatchTooLarge       = errors.New("batch size exceeds maximum")
	ErrEmptyBatch          = errors.New("urls is required")
	ErrExpiryInPast        = errors.New("expires_at must be in the future")
	ErrTitleTooLong        = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
)

// BatchValidationError lists the rejected entries of a batch shorten request.
type BatchValidationError struct {
	Errors []IndexedError
	Total  int
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("batch validation failed: %d of %d urls rejected", len(e.Errors), e.Total)
}
