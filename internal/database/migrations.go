package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One row per stored board; the board itself is an opaque JSON document
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS board_snapshots (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			revision INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
