package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
)

// SetupCLITest builds an App backed by a snapshot file in a temp dir.
// The board starts as the seed board; extra options are applied after the defaults.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	store, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "board.json"))
	if err != nil {
		t.Fatalf("Failed to create snapshot store: %v", err)
	}

	ids := 0
	defaults := []app.Option{
		app.WithSnapshotStore(store),
		app.WithBoardOptions(board.WithIDGenerator(board.IDGeneratorFunc(func() string {
			ids++
			return fmt.Sprintf("task-test-%d", ids)
		}))),
	}

	appInstance, err := app.New(context.Background(), config.Default(), append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return appInstance
}

// CreateTestTask adds a task through the service and returns its ID
func CreateTestTask(t *testing.T, a *app.App, title string) string {
	t.Helper()

	task, err := a.BoardService.CreateTask(context.Background(), boardservice.CreateTaskRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}
