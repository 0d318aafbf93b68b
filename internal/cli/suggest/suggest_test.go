package suggest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	suggestsvc "github.com/thenoetrevino/tablero/internal/suggest"
	"github.com/thenoetrevino/tablero/internal/testutil"
	testcli "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

type stubSuggester struct {
	tasks    []board.Suggestion
	subtasks []string
	err      error

	gotProject string
	gotTitle   string
}

func (s *stubSuggester) SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error) {
	s.gotProject = projectName
	return s.tasks, s.err
}

func (s *stubSuggester) SuggestSubtasks(ctx context.Context, title, description string) ([]string, error) {
	s.gotTitle = title
	return s.subtasks, s.err
}

func TestSuggestTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("adds suggestions to the top of To Do", func(t *testing.T) {
		stub := &stubSuggester{tasks: []board.Suggestion{
			{Title: "Audit content", Priority: models.PriorityHigh},
			{Title: "Pick a CMS", Priority: "urgent"},
		}}
		a := testcli.SetupCLITest(t, app.WithSuggester(stub))

		output, err := testcli.ExecuteCLICommand(t, a, TasksCmd(), []string{"Website", "relaunch", "--json"})
		require.NoError(t, err)
		assert.Equal(t, "Website relaunch", stub.gotProject)

		tasks := testutil.ParseJSON(t, output)["tasks"].([]any)
		require.Len(t, tasks, 2)
		assert.Equal(t, "medium", tasks[1].(map[string]any)["priority"], "unknown priorities fall back to medium")

		columns, err := a.BoardService.GetColumns(ctx)
		require.NoError(t, err)
		todo := columns[0].Tasks
		require.Len(t, todo, 4)
		assert.Equal(t, "Pick a CMS", todo[0].Title)
		assert.Equal(t, "Audit content", todo[1].Title)
	})

	t.Run("failure leaves the board untouched", func(t *testing.T) {
		stub := &stubSuggester{err: fmt.Errorf("%w: status 503", suggestsvc.ErrSuggestionService)}
		a := testcli.SetupCLITest(t, app.WithSuggester(stub))

		output, err := testcli.ExecuteCLICommand(t, a, TasksCmd(), []string{"Website", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitSuggestion, cli.ExitCode(err))

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, suggestsvc.FailureMessage, errData["message"])

		b, _ := a.BoardService.GetBoard(ctx)
		assert.Len(t, b.Tasks, 2)
	})

	t.Run("blank project name", func(t *testing.T) {
		a := testcli.SetupCLITest(t, app.WithSuggester(&stubSuggester{}))

		_, err := testcli.ExecuteCLICommand(t, a, TasksCmd(), []string{"   ", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("empty answer adds nothing", func(t *testing.T) {
		a := testcli.SetupCLITest(t, app.WithSuggester(&stubSuggester{}))

		output, err := testcli.ExecuteCLICommand(t, a, TasksCmd(), []string{"Website"})
		require.NoError(t, err)
		assert.Contains(t, output, "no suggestions")
	})
}

func TestSuggestSubtasks(t *testing.T) {
	t.Run("numbered steps", func(t *testing.T) {
		stub := &stubSuggester{subtasks: []string{"Sketch wireframes", "Pick colours"}}
		a := testcli.SetupCLITest(t, app.WithSuggester(stub))

		output, err := testcli.ExecuteCLICommand(t, a, SubtasksCmd(), []string{"--id", "task-1"})
		require.NoError(t, err)
		assert.Equal(t, "Design Landing Page", stub.gotTitle)
		assert.Equal(t, "1. Sketch wireframes\n2. Pick colours", strings.TrimSpace(output))
	})

	t.Run("unknown task", func(t *testing.T) {
		a := testcli.SetupCLITest(t, app.WithSuggester(&stubSuggester{}))

		_, err := testcli.ExecuteCLICommand(t, a, SubtasksCmd(), []string{"--id", "task-9", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("service error", func(t *testing.T) {
		a := testcli.SetupCLITest(t, app.WithSuggester(&stubSuggester{err: suggestsvc.ErrSuggestionService}))

		_, err := testcli.ExecuteCLICommand(t, a, SubtasksCmd(), []string{"--id", "task-1", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitSuggestion, cli.ExitCode(err))
	})
}
