package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkpulse/internal/domain"
)

const clickColumns = `id, link_id, client_ip, user_agent, referer, clicked_at,
	browser, device_type, operating_system, is_bot, is_suspicious,
	country, country_code, city, region, latitude, longitude, timezone, isp,
	utm_source, utm_medium, utm_campaign, utm_term, utm_content,
	geo_enriched, device_enriched`

type ClickRepository struct {
	pool *pgxpool.Pool
}

func NewClickRepository(pool *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{pool: pool}
}

// Insert is idempotent on the click id so a retried write never duplicates.
func (r *ClickRepository) Insert(ctx context.Context, c *domain.ClickEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO click_events (`+clickColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (id) DO NOTHING`,
		clickArgs(c)...,
	)
	if err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}
	return nil
}

func (r *ClickRepository) CountByLink(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM click_events WHERE link_id = $1`, linkID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}

func (r *ClickRepository) CountByLinkSince(ctx context.Context, linkID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM click_events WHERE link_id = $1 AND clicked_at >= $2`,
		linkID, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks since: %w", err)
	}
	return n, nil
}

func (r *ClickRepository) CountByDimension(ctx context.Context, linkID uuid.UUID, dim domain.Dimension) ([]domain.DimensionCount, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(NULLIF(%s, ''), 'Unknown') AS value, count(*) AS count
		FROM click_events
		WHERE link_id = $1
		GROUP BY 1
		ORDER BY count DESC, value ASC`,
		dim.Column(),
	)
	rows, err := r.pool.Query(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to group clicks by %s: %w", dim, err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.DimensionCount])
}

func (r *ClickRepository) HourlyBuckets(ctx context.Context, linkID uuid.UUID, since time.Time) ([]domain.TimeBucket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date_trunc('hour', clicked_at AT TIME ZONE 'UTC') AS bucket, count(*) AS count
		FROM click_events
		WHERE link_id = $1 AND clicked_at >= $2
		GROUP BY 1
		ORDER BY 1`,
		linkID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket clicks by hour: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.TimeBucket])
}

func (r *ClickRepository) DailyBuckets(ctx context.Context, linkID uuid.UUID, from, to time.Time) ([]domain.TimeBucket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date_trunc('day', clicked_at AT TIME ZONE 'UTC') AS bucket, count(*) AS count
		FROM click_events
		WHERE link_id = $1 AND clicked_at >= $2 AND clicked_at < $3
		GROUP BY 1
		ORDER BY 1`,
		linkID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket clicks by day: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.TimeBucket])
}

func (r *ClickRepository) History(ctx context.Context, linkID uuid.UUID, offset, limit int) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clickColumns+` FROM click_events
		WHERE link_id = $1
		ORDER BY clicked_at DESC, id
		LIMIT $2 OFFSET $3`,
		linkID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query click history: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.ClickEvent])
}

func (r *ClickRepository) Range(ctx context.Context, linkID uuid.UUID, start, end time.Time) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clickColumns+` FROM click_events
		WHERE link_id = $1 AND clicked_at >= $2 AND clicked_at <= $3
		ORDER BY clicked_at DESC, id`,
		linkID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query click range: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.ClickEvent])
}

func clickArgs(c *domain.ClickEvent) []any {
	return []any{
		c.ID, c.LinkID, c.ClientIP, c.UserAgent, c.Referer, c.ClickedAt,
		c.Browser, c.DeviceType, c.OperatingSystem, c.Bot, c.Suspicious,
		c.Country, c.CountryCode, c.City, c.Region, c.Latitude, c.Longitude, c.Timezone, c.ISP,
		c.UTMSource, c.UTMMedium, c.UTMCampaign, c.UTMTerm, c.UTMContent,
		c.GeoEnriched, c.DeviceEnriched,
	}
}
