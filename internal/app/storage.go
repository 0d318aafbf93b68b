package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/snapshot"
)

// OpenStore opens the snapshot backend named by the storage config
func OpenStore(ctx context.Context, cfg config.StorageConfig) (snapshot.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.InitDB(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return database.NewSnapshotRepo(db, snapshot.Key), nil

	case config.BackendFile:
		path := cfg.Path
		if path == "" {
			dir, err := config.DataDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "board.json")
		}
		return snapshot.NewFileStore(path)

	case config.BackendRedis:
		return snapshot.DialRedis(ctx, cfg.RedisAddr, cfg.RedisKey)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
