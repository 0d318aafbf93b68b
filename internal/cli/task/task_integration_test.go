package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	testcli "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func columnIDs(t *testing.T, columns []models.ColumnSummary, columnID string) []string {
	t.Helper()
	for _, col := range columns {
		if col.ID == columnID {
			ids := make([]string, 0, len(col.Tasks))
			for _, task := range col.Tasks {
				ids = append(ids, task.ID)
			}
			return ids
		}
	}
	t.Fatalf("column %s missing", columnID)
	return nil
}

func TestAddTask(t *testing.T) {
	app := testcli.SetupCLITest(t)
	ctx := context.Background()

	t.Run("quiet prints the new ID", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--title", "Write release notes", "--priority", "high", "--quiet"})
		require.NoError(t, err)

		taskID := strings.TrimSpace(output)
		task, err := app.BoardService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "Write release notes", task.Title)
		assert.Equal(t, models.PriorityHigh, task.Priority)
		assert.Equal(t, models.ColumnTodo, task.Status)

		columns, err := app.BoardService.GetColumns(ctx)
		require.NoError(t, err)
		assert.Equal(t, taskID, columnIDs(t, columns, models.ColumnTodo)[0], "new tasks go to the top of To Do")
	})

	t.Run("defaults apply without flags", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, AddCmd(), []string{"--json"})
		require.NoError(t, err)

		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, models.DefaultTaskTitle, data["title"])
		assert.Equal(t, "medium", data["priority"])
		assert.Equal(t, "", data["description"])
	})

	t.Run("description from stdin", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommandWithInput(t, app, AddCmd(),
			[]string{"--title", "Piped", "--description", "-", "--quiet"}, "line one\nline two\n")
		require.NoError(t, err)

		task, err := app.BoardService.GetTask(ctx, strings.TrimSpace(output))
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", task.Description)
	})

	t.Run("invalid priority is a validation error", func(t *testing.T) {
		before, _ := app.BoardService.GetBoard(ctx)

		output, err := testcli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--title", "Bad", "--priority", "urgent", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "INVALID_PRIORITY", errData["code"])

		after, _ := app.BoardService.GetBoard(ctx)
		assert.Len(t, after.Tasks, len(before.Tasks))
	})
}

func TestUpdateTask(t *testing.T) {
	app := testcli.SetupCLITest(t)
	ctx := context.Background()

	t.Run("only passed flags change", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "task-1", "--priority", "low", "--quiet"})
		require.NoError(t, err)

		task, err := app.BoardService.GetTask(ctx, "task-1")
		require.NoError(t, err)
		assert.Equal(t, models.PriorityLow, task.Priority)
		assert.Equal(t, "Design Landing Page", task.Title)
		assert.Equal(t, models.ColumnTodo, task.Status)
	})

	t.Run("empty title is allowed", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "task-2", "--title", "", "--quiet"})
		require.NoError(t, err)

		task, _ := app.BoardService.GetTask(ctx, "task-2")
		assert.Equal(t, "", task.Title)
	})

	t.Run("no fields is a usage error", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", "task-1", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown task", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "task-missing", "--title", "x", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.Contains(t, output, "TASK_NOT_FOUND")
	})
}

func TestDeleteTask(t *testing.T) {
	app := testcli.SetupCLITest(t)
	ctx := context.Background()

	t.Run("declined confirmation keeps the task", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", "task-1"}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		_, err = app.BoardService.GetTask(ctx, "task-1")
		assert.NoError(t, err)
	})

	t.Run("confirmed delete removes the task", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", "task-1"}, "y\n")
		require.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")

		_, err = app.BoardService.GetTask(ctx, "task-1")
		assert.Error(t, err)
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "task-2", "--force", "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "task-2", result["task_id"])

		columns, _ := app.BoardService.GetColumns(ctx)
		assert.NotContains(t, columnIDs(t, columns, models.ColumnTodo), "task-2")
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "task-1", "--force", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestMoveTask(t *testing.T) {
	app := testcli.SetupCLITest(t)
	ctx := context.Background()

	t.Run("next goes to the top of In Progress", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "task-2", "next", "--quiet"})
		require.NoError(t, err)

		task, _ := app.BoardService.GetTask(ctx, "task-2")
		assert.Equal(t, models.ColumnInProgress, task.Status)
	})

	t.Run("column by title with index", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(),
			[]string{"--id", "task-1", "in progress", "--index", "5", "--quiet"})
		require.NoError(t, err)

		columns, _ := app.BoardService.GetColumns(ctx)
		assert.Equal(t, []string{"task-2", "task-1"}, columnIDs(t, columns, models.ColumnInProgress),
			"index is clamped to the end")
	})

	t.Run("up within a column", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "task-1", "up", "--quiet"})
		require.NoError(t, err)

		columns, _ := app.BoardService.GetColumns(ctx)
		assert.Equal(t, []string{"task-1", "task-2"}, columnIDs(t, columns, models.ColumnInProgress))
	})

	t.Run("prev from the first column is rejected", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "task-1", "prev", "--quiet"})
		require.NoError(t, err)

		output, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "task-1", "prev", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, output, "INVALID_MOVE")
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "task-1", "archive", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestShowTask(t *testing.T) {
	app := testcli.SetupCLITest(t)

	t.Run("json", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"task-2", "--json"})
		require.NoError(t, err)

		task := testutil.ParseJSON(t, output)["task"].(map[string]any)
		assert.Equal(t, "User Research", task["title"])
		assert.Equal(t, "medium", task["priority"])
		assert.Equal(t, float64(1), task["position"])
		column := task["column"].(map[string]any)
		assert.Equal(t, "To Do", column["title"])
	})

	t.Run("human", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "task-1"})
		require.NoError(t, err)
		assert.Contains(t, output, "Design Landing Page")
		assert.Contains(t, output, "[high]")
		assert.Contains(t, output, "To Do")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
