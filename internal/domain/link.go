package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShortLink struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	OriginalURL string     `db:"original_url" json:"original_url"`
	ShortCode   string     `db:"short_code" json:"short_code"`
	OwnerID     *uuid.UUID `db:"owner_id" json:"owner_id,omitempty"`
	Title       string     `db:"title" json:"title,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt   *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	ClickCount  int64      `db:"click_count" json:"click_count"`
	Active      bool       `db:"is_active" json:"is_active"`
}

// Expired reports whether the link has an expiry that lies before now.
func (l *ShortLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

func (l *ShortLink) Projection(ownerName string) LinkProjection {
	return LinkProjection{
		ID:          l.ID,
		OriginalURL: l.OriginalURL,
		Active:      l.Active,
		ExpiresAt:   l.ExpiresAt,
		ClickCount:  l.ClickCount,
		OwnerName:   ownerName,
	}
}

// Clone returns a deep copy so stores never hand out their own pointers.
func (l *ShortLink) Clone() *ShortLink {
	c := *l
	if l.OwnerID != nil {
		owner := *l.OwnerID
		c.OwnerID = &owner
	}
	if l.Description != nil {
		desc := *l.Description
		c.Description = &desc
	}
	if l.ExpiresAt != nil {
		exp := *l.ExpiresAt
		c.ExpiresAt = &exp
	}
	return &c
}

// LinkProjection is the cached, non-authoritative view of a link used on the
// redirect path.
type LinkProjection struct {
	ID          uuid.UUID  `json:"id"`
	OriginalURL string     `json:"original_url"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ClickCount  int64      `json:"click_count"`
	OwnerName   string     `json:"owner_name,omitempty"`
}

func (p *LinkProjection) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

type CreateLinkRequest struct {
	URL         string     `json:"url"`
	Title       string     `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type CreateLinkResponse struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Created     bool       `json:"-"`
}

type CreateLinkBatchRequest struct {
	URLs []string `json:"urls"`
}

type CreateLinkBatchResponse struct {
	URLs []CreateLinkResponse `json:"urls"`
}

type LinkView struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	Title       string     `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	OwnerName   string     `json:"owner_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ClickCount  int64      `json:"click_count"`
}
