package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	dbschema "cosme-store/db"
)

// RunMigrations executes the embedded DDL schema against the pool. The
// schema is idempotent (CREATE TABLE IF NOT EXISTS) so startup can run it
// unconditionally.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, dbschema.Schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
