package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"linkpulse/internal/config"
	"linkpulse/internal/domain"
)

// ClickHouseRepository stores click events in a ReplacingMergeTree keyed on
// the click id. Reads use FINAL so a retried insert is counted once.
type ClickHouseRepository struct {
	db *sqlx.DB
}

func ConnectClickHouse(ctx context.Context, cfg *config.ClickHouseConfig, logger *slog.Logger) (*ClickHouseRepository, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		DialTimeout: 30 * time.Second,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	if err := migrateClickHouse(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run clickhouse migrations: %w", err)
	}
	logger.Info("clickhouse migrations applied")

	return &ClickHouseRepository{db: sqlx.NewDb(conn, "clickhouse")}, nil
}

func (r *ClickHouseRepository) Insert(ctx context.Context, c *domain.ClickEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clickhouse batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO click_events (`+clickColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare click insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	if _, err := stmt.ExecContext(ctx, clickArgs(c)...); err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit click: %w", err)
	}
	return nil
}

func (r *ClickHouseRepository) CountByLink(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT toInt64(count()) FROM click_events FINAL WHERE link_id = ?`, linkID)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}

func (r *ClickHouseRepository) CountByLinkSince(ctx context.Context, linkID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT toInt64(count()) FROM click_events FINAL WHERE link_id = ? AND clicked_at >= ?`,
		linkID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks since: %w", err)
	}
	return n, nil
}

func (r *ClickHouseRepository) CountByDimension(ctx context.Context, linkID uuid.UUID, dim domain.Dimension) ([]domain.DimensionCount, error) {
	query := fmt.Sprintf(
		`SELECT ifNull(nullIf(%s, ''), 'Unknown') AS value, toInt64(count()) AS count
		FROM click_events FINAL
		WHERE link_id = ?
		GROUP BY value
		ORDER BY count DESC, value ASC`,
		dim.Column(),
	)
	var out []domain.DimensionCount
	if err := r.db.SelectContext(ctx, &out, query, linkID); err != nil {
		return nil, fmt.Errorf("failed to group clicks by %s: %w", dim, err)
	}
	return out, nil
}

func (r *ClickHouseRepository) HourlyBuckets(ctx context.Context, linkID uuid.UUID, since time.Time) ([]domain.TimeBucket, error) {
	var out []domain.TimeBucket
	err := r.db.SelectContext(ctx, &out,
		`SELECT toStartOfHour(clicked_at) AS bucket, toInt64(count()) AS count
		FROM click_events FINAL
		WHERE link_id = ? AND clicked_at >= ?
		GROUP BY bucket
		ORDER BY bucket`,
		linkID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket clicks by hour: %w", err)
	}
	return out, nil
}

func (r *ClickHouseRepository) DailyBuckets(ctx context.Context, linkID uuid.UUID, from, to time.Time) ([]domain.TimeBucket, error) {
	var out []domain.TimeBucket
	err := r.db.SelectContext(ctx, &out,
		`SELECT toStartOfDay(clicked_at) AS bucket, toInt64(count()) AS count
		FROM click_events FINAL
		WHERE link_id = ? AND clicked_at >= ? AND clicked_at < ?
		GROUP BY bucket
		ORDER BY bucket`,
		linkID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket clicks by day: %w", err)
	}
	return out, nil
}

func (r *ClickHouseRepository) History(ctx context.Context, linkID uuid.UUID, offset, limit int) ([]domain.ClickEvent, error) {
	var out []domain.ClickEvent
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+clickColumns+` FROM click_events FINAL
		WHERE link_id = ?
		ORDER BY clicked_at DESC, id
		LIMIT ? OFFSET ?`,
		linkID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query click history: %w", err)
	}
	return out, nil
}

func (r *ClickHouseRepository) Range(ctx context.Context, linkID uuid.UUID, start, end time.Time) ([]domain.ClickEvent, error) {
	var out []domain.ClickEvent
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+clickColumns+` FROM click_events FINAL
		WHERE link_id = ? AND clicked_at >= ? AND clicked_at <= ?
		ORDER BY clicked_at DESC, id`,
		linkID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query click range: %w", err)
	}
	return out, nil
}

func (r *ClickHouseRepository) Close() error {
	return r.db.Close()
}
