// Package pgtest starts a migrated PostgreSQL container for integration and e2e suites.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Database is a running container with a pool on the migrated schema.
type Database struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// Start runs postgres, waits for it, applies the migrations found in migrationsDir and opens a pool.
func Start(ctx context.Context, logger *slog.Logger, migrationsDir string) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("catalog_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run PostgreSQL container: %w", err)
	}
	d := &Database{Container: container}

	d.ConnStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		d.Close(ctx, logger)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	d.Pool, err = pgxpool.New(ctx, d.ConnStr)
	if err != nil {
		d.Close(ctx, logger)
		return nil, fmt.Errorf("failed to create pgxpool: %w", err)
	}
	for i := range 10 {
		logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		if err = d.Pool.Ping(ctx); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		d.Close(ctx, logger)
		return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
	}

	absDir, err := filepath.Abs(migrationsDir)
	if err != nil {
		d.Close(ctx, logger)
		return nil, err
	}
	m, err := migrate.New("file://"+absDir, d.ConnStr)
	if err != nil {
		d.Close(ctx, logger)
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		d.Close(ctx, logger)
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Migrations applied", "dir", absDir)
	return d, nil
}

// Truncate empties every catalog table.
func (d *Database) Truncate(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, "TRUNCATE TABLE product_stores, products, stores CASCADE")
	return err
}

// Close releases the pool and terminates the container.
func (d *Database) Close(ctx context.Context, logger *slog.Logger) {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Container != nil {
		if err := d.Container.Terminate(ctx); err != nil {
			logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}
