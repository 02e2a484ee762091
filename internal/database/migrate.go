package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Bootstrap applies the schema and seed data. Already applied versions are
// skipped, so running it against an existing store is a no-op.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	dialect := db.DriverName()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB, "migrations/"+dialect); err != nil {
		return fmt.Errorf("bootstrap %s store: %w", dialect, err)
	}
	return nil
}
