package domain

import "errors"

var (
	ErrNotFound         = errors.New("short link not found")
	ErrGone             = errors.New("short link expired or inactive")
	ErrCodeExists       = errors.New("short code already exists")
	ErrForbidden        = errors.New("short link belongs to another owner")
	ErrUnknownDimension = errors.New("unknown analytics dimension")
	ErrInvalidRange     = errors.New("invalid analytics range")
)
