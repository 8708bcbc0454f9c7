package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultMigrationsDir is where the server binary expects migration files,
// relative to its working directory.
const DefaultMigrationsDir = "migrations"

// pingTimeout bounds the startup connectivity check so a wrong DSN fails
// fast instead of hanging the binary.
const pingTimeout = 5 * time.Second

// DB is the workout repository, backed by a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New opens a connection pool against dsn and verifies connectivity with a
// bounded ping before handing the pool out.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close releases the pool. Safe to defer immediately after New.
func (db *DB) Close() {
	db.Pool.Close()
}

// RunMigrations brings the workouts schema up to date. It runs before the
// pool opens, at server startup. An already-current schema is not an error.
// An empty dir falls back to DefaultMigrationsDir.
func RunMigrations(dsn, dir string) error {
	if dir == "" {
		dir = DefaultMigrationsDir
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("opening migrations at %s: %w", dir, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
