package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	TaskFormMode                   // Creating or editing a task with huh
	DeleteConfirmMode              // Confirming task deletion
	TaskViewMode                   // Read-only task detail
	GeneratePromptMode             // Asking the assistant for starter tasks
	SubtasksMode                   // Showing suggested subtasks for a task
	HelpMode                       // Displaying help screen
)

// String returns the mode name, used in logs and test failures
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case TaskFormMode:
		return "task-form"
	case DeleteConfirmMode:
		return "delete-confirm"
	case TaskViewMode:
		return "task-view"
	case GeneratePromptMode:
		return "generate-prompt"
	case SubtasksMode:
		return "subtasks"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// busy is set while an assistant request started by this UI is in flight
	busy bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedColumn sets the selected column and resets the task selection.
func (s *UIState) SetSelectedColumn(idx int) {
	s.selectedColumn = idx
	s.selectedTask = 0
}

// SetSelectedTask sets the selected task index.
func (s *UIState) SetSelectedTask(idx int) {
	s.selectedTask = idx
}

// Select moves the cursor to a column and task at once.
func (s *UIState) Select(column, task int) {
	s.selectedColumn = column
	s.selectedTask = task
}

// Clamp keeps the selection inside a board with the given column task counts.
// An empty column leaves the task index at 0.
func (s *UIState) Clamp(taskCounts []int) {
	if len(taskCounts) == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(taskCounts)-1)

	n := taskCounts[s.selectedColumn]
	if n == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(max(s.selectedTask, 0), n-1)
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Busy reports whether an assistant request is in flight
func (s *UIState) Busy() bool {
	return s.busy
}

// SetBusy marks the start or end of an assistant request
func (s *UIState) SetBusy(busy bool) {
	s.busy = busy
}
