package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/suggest"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type stubSuggester struct {
	tasks    []board.Suggestion
	subtasks []string
	err      error
}

func (s *stubSuggester) SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error) {
	return s.tasks, s.err
}

func (s *stubSuggester) SuggestSubtasks(ctx context.Context, title, description string) ([]string, error) {
	return s.subtasks, s.err
}

// setupTestModel builds a model over the seed board with a sized terminal.
// A nil suggester leaves the assistant unconfigured.
func setupTestModel(t *testing.T, suggester suggest.Suggester) Model {
	t.Helper()

	n := 0
	st := board.NewSeeded(
		board.WithClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) }),
		board.WithIDGenerator(board.IDGeneratorFunc(func() string {
			n++
			return fmt.Sprintf("task-tui-%d", n)
		})),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := boardservice.NewService(st, nil, suggester, logger)

	m := New(context.Background(), svc, config.Default())
	m.uiState.SetSize(120, 40)
	return m
}

// keyPress builds a key press from its string form, e.g. "a", "H", "ctrl+s", "esc"
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(Model)
	}
	return m, cmd
}

// collect runs cmd and flattens any batches into their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

// deliver feeds the first message of type T produced by cmd back into the model
func deliver[T tea.Msg](t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if typed, ok := msg.(T); ok {
			next, _ := m.Update(typed)
			return next.(Model)
		}
	}
	var zero T
	t.Fatalf("command produced no %T", zero)
	return m
}

func columnTaskIDs(m Model, columnID string) []string {
	for _, col := range m.columns {
		if col.ID != columnID {
			continue
		}
		ids := make([]string, 0, len(col.Tasks))
		for _, task := range col.Tasks {
			ids = append(ids, task.ID)
		}
		return ids
	}
	return nil
}

func notification(t *testing.T, m Model) state.Notification {
	t.Helper()
	n, ok := m.notificationState.Current()
	if !ok {
		t.Fatal("expected a notification")
	}
	return n
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNew_LoadsBoard(t *testing.T) {
	m := setupTestModel(t, nil)

	if len(m.columns) != 4 {
		t.Fatalf("len(columns) = %d, want 4", len(m.columns))
	}
	if task := m.currentTask(); task == nil || task.ID != "task-1" {
		t.Errorf("currentTask() = %v, want task-1", task)
	}
}

func TestNavigation(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "j")
	if m.uiState.SelectedTask() != 1 {
		t.Errorf("after j: SelectedTask() = %d, want 1", m.uiState.SelectedTask())
	}

	// Bottom of the column is a hard stop
	m, _ = press(t, m, "j", "down")
	if m.uiState.SelectedTask() != 1 {
		t.Errorf("past bottom: SelectedTask() = %d, want 1", m.uiState.SelectedTask())
	}

	m, _ = press(t, m, "l", "right")
	if m.uiState.SelectedColumn() != 2 || m.uiState.SelectedTask() != 0 {
		t.Errorf("after l, right: selection = (%d, %d), want (2, 0)",
			m.uiState.SelectedColumn(), m.uiState.SelectedTask())
	}

	m, _ = press(t, m, "h", "h", "h")
	if m.uiState.SelectedColumn() != 0 {
		t.Errorf("past first column: SelectedColumn() = %d, want 0", m.uiState.SelectedColumn())
	}
}

// ============================================================================
// MOVES
// ============================================================================

func TestMoveTaskRight_FollowsTask(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "L")

	if got := columnTaskIDs(m, models.ColumnInProgress); !slices.Equal(got, []string{"task-1"}) {
		t.Errorf("inprogress = %v, want [task-1]", got)
	}
	if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-2"}) {
		t.Errorf("todo = %v, want [task-2]", got)
	}
	if task := m.currentTask(); task == nil || task.ID != "task-1" {
		t.Errorf("cursor did not follow the moved task: %v", task)
	}
}

func TestMoveTaskDownAndUp(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "J")
	if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-2", "task-1"}) {
		t.Fatalf("after J: todo = %v", got)
	}
	if m.uiState.SelectedTask() != 1 {
		t.Errorf("after J: SelectedTask() = %d, want 1", m.uiState.SelectedTask())
	}

	m, _ = press(t, m, "K")
	if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-1", "task-2"}) {
		t.Errorf("after K: todo = %v", got)
	}
}

func TestMove_AtEdgeWarns(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "up from top", key: "K"},
		{name: "left from first column", key: "H"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t, nil)

			m, _ = press(t, m, tt.key)

			if n := notification(t, m); n.Level != state.LevelWarning {
				t.Errorf("notification level = %v, want warning", n.Level)
			}
			if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-1", "task-2"}) {
				t.Errorf("board changed: todo = %v", got)
			}
		})
	}
}

// ============================================================================
// FORMS
// ============================================================================

func TestAddTask_SaveShortcut(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "a")
	if m.uiState.Mode() != state.TaskFormMode || m.formState.TaskForm == nil {
		t.Fatalf("after a: mode = %v, form = %v", m.uiState.Mode(), m.formState.TaskForm)
	}

	// The form writes through these fields as the user types
	m.formState.FormTitle = "Write tests"
	m.formState.FormPriority = models.PriorityLow

	m, _ = press(t, m, "ctrl+s")

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
	task := m.currentTask()
	if task == nil || task.Title != "Write tests" || task.Priority != models.PriorityLow {
		t.Fatalf("currentTask() = %+v, want the new task", task)
	}
	if got := columnTaskIDs(m, models.ColumnTodo); len(got) != 3 || got[0] != task.ID {
		t.Errorf("todo = %v, want new task first", got)
	}
}

func TestAddTask_BlankTitleUsesDefault(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "a", "ctrl+s")

	if task := m.currentTask(); task == nil || task.Title != models.DefaultTaskTitle {
		t.Errorf("currentTask() = %+v, want %q", task, models.DefaultTaskTitle)
	}
}

func TestAddTask_EscCancels(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "a")
	m.formState.FormTitle = "Never saved"
	m, _ = press(t, m, "esc")

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
	if m.formState.TaskForm != nil {
		t.Error("form was not cleared")
	}
	if got := columnTaskIDs(m, models.ColumnTodo); len(got) != 2 {
		t.Errorf("todo = %v, want unchanged", got)
	}
}

func TestEditTask(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "e")
	if m.formState.EditingTaskID != "task-1" || m.formState.FormTitle != "Design Landing Page" {
		t.Fatalf("form not prefilled: %+v", m.formState)
	}

	m.formState.FormTitle = "Design Pricing Page"
	m, _ = press(t, m, "ctrl+s")

	task := m.currentTask()
	if task == nil || task.ID != "task-1" || task.Title != "Design Pricing Page" {
		t.Errorf("currentTask() = %+v, want renamed task-1", task)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("priority = %v, want unchanged high", task.Priority)
	}
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteTask(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		m := setupTestModel(t, nil)

		m, _ = press(t, m, "d")
		if m.uiState.Mode() != state.DeleteConfirmMode {
			t.Fatalf("mode = %v, want delete confirm", m.uiState.Mode())
		}

		m, _ = press(t, m, "y")
		if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-2"}) {
			t.Errorf("todo = %v, want [task-2]", got)
		}
		if task := m.currentTask(); task == nil || task.ID != "task-2" {
			t.Errorf("cursor = %v, want task-2", task)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		m := setupTestModel(t, nil)

		m, _ = press(t, m, "d", "n")
		if m.uiState.Mode() != state.NormalMode {
			t.Errorf("mode = %v, want normal", m.uiState.Mode())
		}
		if got := columnTaskIDs(m, models.ColumnTodo); len(got) != 2 {
			t.Errorf("todo = %v, want unchanged", got)
		}
	})

	t.Run("empty column does nothing", func(t *testing.T) {
		m := setupTestModel(t, nil)

		m, _ = press(t, m, "l", "d")
		if m.uiState.Mode() != state.NormalMode {
			t.Errorf("mode = %v, want normal", m.uiState.Mode())
		}
	})
}

// ============================================================================
// ASSISTANT
// ============================================================================

func TestGenerateTasks(t *testing.T) {
	suggester := &stubSuggester{tasks: []board.Suggestion{
		{Title: "Pick a domain", Priority: models.PriorityHigh},
		{Title: "Photograph the menu", Priority: "urgent"},
	}}
	m := setupTestModel(t, suggester)

	m, _ = press(t, m, "g")
	if m.uiState.Mode() != state.GeneratePromptMode {
		t.Fatalf("mode = %v, want generate prompt", m.uiState.Mode())
	}

	m.formState.ProjectName = "Bakery website"
	m, cmd := press(t, m, "ctrl+s")
	if !m.uiState.Busy() {
		t.Fatal("model should be busy while the assistant works")
	}

	// A second request is refused while the first is in flight
	m, _ = press(t, m, "g")
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("prompt reopened while busy: mode = %v", m.uiState.Mode())
	}
	if n := notification(t, m); n.Level != state.LevelWarning {
		t.Errorf("notification = %+v, want pending warning", n)
	}

	m = deliver[tasksGeneratedMsg](t, m, cmd)

	if m.uiState.Busy() {
		t.Error("model still busy after the result arrived")
	}
	todo := m.columns[0].Tasks
	if len(todo) != 4 {
		t.Fatalf("len(todo) = %d, want 4", len(todo))
	}
	// The last suggestion ends up on top
	if todo[0].Title != "Photograph the menu" || todo[0].Priority != models.PriorityMedium {
		t.Errorf("todo[0] = %+v", todo[0])
	}
	if todo[1].Title != "Pick a domain" {
		t.Errorf("todo[1] = %+v", todo[1])
	}
	if n := notification(t, m); !strings.Contains(n.Message, "Added 2 tasks") {
		t.Errorf("notification = %q", n.Message)
	}
}

func TestGenerateTasks_BlankNameSendsNothing(t *testing.T) {
	m := setupTestModel(t, &stubSuggester{})

	m, cmd := press(t, m, "g", "ctrl+s")

	if cmd != nil || m.uiState.Busy() {
		t.Errorf("blank project name started a request (cmd = %v, busy = %v)", cmd != nil, m.uiState.Busy())
	}
}

func TestGenerateTasks_FailureLeavesBoard(t *testing.T) {
	m := setupTestModel(t, &stubSuggester{err: suggest.ErrSuggestionService})

	m, _ = press(t, m, "g")
	m.formState.ProjectName = "Bakery website"
	m, cmd := press(t, m, "ctrl+s")
	m = deliver[tasksGeneratedMsg](t, m, cmd)

	n := notification(t, m)
	if n.Level != state.LevelError || n.Message != suggest.FailureMessage {
		t.Errorf("notification = %+v, want failure message", n)
	}
	if got := columnTaskIDs(m, models.ColumnTodo); len(got) != 2 {
		t.Errorf("todo = %v, want unchanged", got)
	}
}

func TestSuggestSubtasks(t *testing.T) {
	m := setupTestModel(t, &stubSuggester{subtasks: []string{"Sketch wireframes", "Pick colors"}})

	m, cmd := press(t, m, "s")
	if !m.uiState.Busy() {
		t.Fatal("model should be busy while the assistant works")
	}
	m = deliver[subtasksMsg](t, m, cmd)

	if m.uiState.Mode() != state.SubtasksMode {
		t.Fatalf("mode = %v, want subtasks", m.uiState.Mode())
	}
	if !slices.Equal(m.formState.Subtasks, []string{"Sketch wireframes", "Pick colors"}) {
		t.Errorf("subtasks = %v", m.formState.Subtasks)
	}
	// Suggestions never touch the board
	if got := columnTaskIDs(m, models.ColumnTodo); !slices.Equal(got, []string{"task-1", "task-2"}) {
		t.Errorf("todo = %v, want unchanged", got)
	}

	m, _ = press(t, m, "esc")
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
}

func TestSuggestSubtasks_NoAssistant(t *testing.T) {
	m := setupTestModel(t, nil)

	m, cmd := press(t, m, "s")
	m = deliver[subtasksMsg](t, m, cmd)

	if n := notification(t, m); !strings.Contains(n.Message, "not configured") {
		t.Errorf("notification = %q", n.Message)
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
}

// ============================================================================
// VIEW AND MODES
// ============================================================================

func TestViewTask(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "space")
	if m.uiState.Mode() != state.TaskViewMode || m.formState.ViewingTaskID != "task-1" {
		t.Fatalf("mode = %v, viewing = %q", m.uiState.Mode(), m.formState.ViewingTaskID)
	}

	content := m.View().Content
	if !strings.Contains(content, "Design Landing Page") {
		t.Errorf("task view missing title")
	}

	m, _ = press(t, m, "space")
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
}

func TestHelpToggle(t *testing.T) {
	m := setupTestModel(t, nil)

	m, _ = press(t, m, "?")
	if m.uiState.Mode() != state.HelpMode {
		t.Fatalf("mode = %v, want help", m.uiState.Mode())
	}
	if !strings.Contains(m.View().Content, "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	m, _ = press(t, m, "?")
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("mode = %v, want normal", m.uiState.Mode())
	}
}

func TestQuit(t *testing.T) {
	m := setupTestModel(t, nil)

	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView_WaitsForSize(t *testing.T) {
	m := setupTestModel(t, nil)
	m.uiState.SetSize(0, 0)

	if got := m.View().Content; got != "Loading..." {
		t.Errorf("View().Content = %q, want Loading...", got)
	}
}

func TestView_RendersColumns(t *testing.T) {
	m := setupTestModel(t, nil)

	content := m.View().Content
	for _, title := range []string{"To Do (2)", "In Progress (0)", "Design Landing Page"} {
		if !strings.Contains(content, title) {
			t.Errorf("board view missing %q", title)
		}
	}
}
