package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
)

type staticSuggester struct{}

func (staticSuggester) SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error) {
	return []board.Suggestion{{Title: "Kickoff " + projectName}}, nil
}

func (staticSuggester) SuggestSubtasks(ctx context.Context, title, description string) ([]string, error) {
	return []string{"step"}, nil
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	cfg := config.Default()
	cfg.Storage.Backend = backend
	return cfg
}

func TestNew(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	cfg.Storage.Path = filepath.Join(t.TempDir(), "board.json")

	application, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	require.NotNil(t, application.BoardService)
	assert.Nil(t, application.Assistant, "no API key means no assistant")

	b, err := application.BoardService.GetBoard(context.Background())
	require.NoError(t, err)
	assert.Len(t, b.Tasks, 2, "a fresh install starts from the seed board")
}

func TestNew_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite)
	cfg.Storage.Path = filepath.Join(t.TempDir(), "board.db")

	first, err := New(ctx, cfg)
	require.NoError(t, err)
	created, err := first.BoardService.CreateTask(ctx, boardservice.CreateTaskRequest{Title: "Survives restart"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, err := second.BoardService.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survives restart", got.Title)
}

func TestNew_RedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := testConfig(t, config.BackendRedis)
	cfg.Storage.RedisAddr = mr.Addr()

	application, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	_, err = application.BoardService.CreateTask(context.Background(), boardservice.CreateTaskRequest{})
	require.NoError(t, err)
	assert.True(t, mr.Exists(cfg.Storage.RedisKey))
}

func TestNew_WithSuggester(t *testing.T) {
	ctx := context.Background()
	store, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	application, err := New(ctx, testConfig(t, config.BackendFile),
		WithSnapshotStore(store), WithSuggester(staticSuggester{}))
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	require.NotNil(t, application.Assistant)
	created, err := application.BoardService.GenerateTasks(ctx, "Garden")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Kickoff Garden", created[0].Title)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := OpenStore(context.Background(), config.StorageConfig{Backend: "etcd"})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	cfg.Storage.Path = filepath.Join(t.TempDir(), "board.json")

	application, err := New(context.Background(), cfg)
	require.NoError(t, err)

	assert.NoError(t, application.Close())
}
