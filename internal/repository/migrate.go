package repository

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	clickmigrations "github.com/golang-migrate/migrate/v4/database/clickhouse"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var (
	//go:embed migrations/postgres/*.sql
	postgresMigrations embed.FS

	//go:embed migrations/clickhouse/*.sql
	clickhouseMigrations embed.FS
)

func migratePostgres(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}
	return up(postgresMigrations, "migrations/postgres", "pgx5", driver)
}

func migrateClickHouse(db *sql.DB) error {
	driver, err := clickmigrations.WithInstance(db, &clickmigrations.Config{})
	if err != nil {
		return err
	}
	return up(clickhouseMigrations, "migrations/clickhouse", "clickhouse", driver)
}

func up(fsys embed.FS, dir, name string, driver database.Driver) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
