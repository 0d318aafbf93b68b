package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
)

func setupTestRepo(t *testing.T) *SnapshotRepo {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	repo := NewSnapshotRepo(db, "")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSnapshotRepo_LoadEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	_, err = repo.Info(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestSnapshotRepo_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	b := board.Seed(time.Now())

	require.NoError(t, repo.Save(ctx, b))

	got, err := snapshot.LoadOrSeed(ctx, repo, nil)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestSnapshotRepo_SaveBumpsRevision(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	b := board.Seed(time.Now())

	require.NoError(t, repo.Save(ctx, b))
	b.Tasks["task-2"].Title = "Changed"
	require.NoError(t, repo.Save(ctx, b))

	info, err := repo.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Revision)

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	decoded, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Changed", decoded.Tasks["task-2"].Title)
}

func TestSnapshotRepo_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	repo := NewSnapshotRepo(db, "")
	b := board.Seed(time.Now())
	delete(b.Tasks, "task-1")
	b.Columns["todo"].TaskIDs = []string{"task-2"}
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, repo.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	reopened := NewSnapshotRepo(db, "")
	defer func() { _ = reopened.Close() }()

	got, err := snapshot.LoadOrSeed(ctx, reopened, nil)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestSnapshotRepo_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	other := NewSnapshotRepo(repo.db, "other-board")

	require.NoError(t, repo.Save(ctx, board.Seed(time.Now())))

	_, err := other.Load(ctx)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}
