package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkpulse/internal/domain"
)

const linkColumns = `id, original_url, short_code, owner_id, title, description,
	created_at, expires_at, click_count, is_active`

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.ShortLink) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO short_links (`+linkColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		link.ID, link.OriginalURL, link.ShortCode, link.OwnerID, link.Title, link.Description,
		link.CreatedAt, link.ExpiresAt, link.ClickCount, link.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeExists
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

// CreateBatch copies all links in one round trip. A single duplicate code
// fails the whole batch with domain.ErrCodeExists.
func (r *LinkRepository) CreateBatch(ctx context.Context, links []*domain.ShortLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([][]any, len(links))
	for i, l := range links {
		rows[i] = []any{
			l.ID, l.OriginalURL, l.ShortCode, l.OwnerID, l.Title, l.Description,
			l.CreatedAt, l.ExpiresAt, l.ClickCount, l.Active,
		}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"short_links"},
		[]string{
			"id", "original_url", "short_code", "owner_id", "title", "description",
			"created_at", "expires_at", "click_count", "is_active",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeExists
		}
		return fmt.Errorf("failed to copy links: %w", err)
	}
	return nil
}

func (r *LinkRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	return r.findOne(ctx, `SELECT `+linkColumns+` FROM short_links WHERE short_code = $1`, shortCode)
}

func (r *LinkRepository) FindActiveByShortCode(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	return r.findOne(ctx,
		`SELECT `+linkColumns+` FROM short_links
		WHERE short_code = $1 AND is_active AND (expires_at IS NULL OR expires_at > now())`,
		shortCode)
}

// FindByOriginalURLAndOwner returns the newest active link for the pair. A nil
// owner matches anonymous links only.
func (r *LinkRepository) FindByOriginalURLAndOwner(ctx context.Context, originalURL string, ownerID *uuid.UUID) (*domain.ShortLink, error) {
	return r.findOne(ctx,
		`SELECT `+linkColumns+` FROM short_links
		WHERE original_url = $1 AND owner_id IS NOT DISTINCT FROM $2 AND is_active
		ORDER BY created_at DESC
		LIMIT 1`,
		originalURL, ownerID)
}

func (r *LinkRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`UPDATE short_links SET click_count = click_count + 1 WHERE id = $1 RETURNING click_count`,
		id,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment click count: %w", err)
	}
	return count, nil
}

func (r *LinkRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE short_links SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LinkRepository) FindExpiredActive(ctx context.Context, now time.Time) ([]*domain.ShortLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+linkColumns+` FROM short_links
		WHERE is_active AND expires_at IS NOT NULL AND expires_at < $1`,
		now)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired links: %w", err)
	}

	links, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.ShortLink])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expired links: %w", err)
	}
	return links, nil
}

func (r *LinkRepository) findOne(ctx context.Context, query string, args ...any) (*domain.ShortLink, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query link: %w", err)
	}

	link, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.ShortLink])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan link: %w", err)
	}
	return link, nil
}
