package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/snapshot"
)

// SnapshotRepo stores the board snapshot as a single row of board_snapshots
type SnapshotRepo struct {
	db  *sql.DB
	key string
}

// SnapshotInfo describes the stored row without decoding it
type SnapshotInfo struct {
	Revision  int64
	UpdatedAt time.Time
}

// NewSnapshotRepo wraps an initialized database. An empty key uses snapshot.Key.
func NewSnapshotRepo(db *sql.DB, key string) *SnapshotRepo {
	if key == "" {
		key = snapshot.Key
	}
	return &SnapshotRepo{db: db, key: key}
}

// Load returns the stored snapshot bytes
func (r *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM board_snapshots WHERE key = ?`, r.key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, snapshot.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return []byte(data), nil
}

// Save upserts the board and bumps the revision
func (r *SnapshotRepo) Save(ctx context.Context, b models.Board) error {
	data, err := snapshot.Encode(b)
	if err != nil {
		return err
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO board_snapshots (key, data, revision, updated_at)
			 VALUES (?, ?, 1, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET
				data = excluded.data,
				revision = board_snapshots.revision + 1,
				updated_at = CURRENT_TIMESTAMP`,
			r.key, string(data),
		)
		if err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	})
}

// Info reports the revision and last write time of the stored snapshot
func (r *SnapshotRepo) Info(ctx context.Context) (SnapshotInfo, error) {
	var info SnapshotInfo
	err := r.db.QueryRowContext(ctx,
		`SELECT revision, updated_at FROM board_snapshots WHERE key = ?`, r.key,
	).Scan(&info.Revision, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotInfo{}, snapshot.ErrNotFound
	}
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("failed to read snapshot info: %w", err)
	}
	return info, nil
}

// Close closes the underlying database
func (r *SnapshotRepo) Close() error {
	return r.db.Close()
}
