package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/suggest"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// descriptionLines is the height of the description field in the task form
const descriptionLines = 6

// updateNormal dispatches key presses while browsing the board
func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the last notification
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.uiState.SetMode(state.HelpMode)

	// Navigation
	case key.Matches(msg, m.keys.PrevColumn):
		m.navigateColumn(-1)
	case key.Matches(msg, m.keys.NextColumn):
		m.navigateColumn(1)
	case key.Matches(msg, m.keys.PrevTask):
		m.navigateTask(-1)
	case key.Matches(msg, m.keys.NextTask):
		m.navigateTask(1)

	// Task movement
	case key.Matches(msg, m.keys.MoveTaskLeft):
		m.moveCurrentTask(m.svc.MoveTaskToPrevColumn)
	case key.Matches(msg, m.keys.MoveTaskRight):
		m.moveCurrentTask(m.svc.MoveTaskToNextColumn)
	case key.Matches(msg, m.keys.MoveTaskUp):
		m.moveCurrentTask(m.svc.MoveTaskUp)
	case key.Matches(msg, m.keys.MoveTaskDown):
		m.moveCurrentTask(m.svc.MoveTaskDown)

	// Task operations
	case key.Matches(msg, m.keys.AddTask):
		return m.openTaskForm("")
	case key.Matches(msg, m.keys.EditTask):
		if task := m.currentTask(); task != nil {
			return m.openTaskForm(task.ID)
		}
	case key.Matches(msg, m.keys.DeleteTask):
		if task := m.currentTask(); task != nil {
			m.confirmDelete(task.ID)
		}
	case key.Matches(msg, m.keys.ViewTask):
		if task := m.currentTask(); task != nil {
			// Keep suggestions that arrived for this task while a dialog was open
			if m.formState.ViewingTaskID != task.ID {
				m.formState.Subtasks = nil
			}
			m.formState.ViewingTaskID = task.ID
			m.uiState.SetMode(state.TaskViewMode)
		}

	// Assistant
	case key.Matches(msg, m.keys.GenerateTasks):
		return m.openProjectForm()
	case key.Matches(msg, m.keys.SuggestSubtasks):
		if task := m.currentTask(); task != nil {
			return m.requestSubtasks(task.ID)
		}
	}

	return m, nil
}

func (m *Model) navigateColumn(delta int) {
	target := m.uiState.SelectedColumn() + delta
	if target < 0 || target >= len(m.columns) {
		return
	}
	m.uiState.SetSelectedColumn(target)
}

func (m *Model) navigateTask(delta int) {
	col := m.currentColumn()
	if col == nil {
		return
	}
	target := m.uiState.SelectedTask() + delta
	if target < 0 || target >= len(col.Tasks) {
		return
	}
	m.uiState.SetSelectedTask(target)
}

// moveCurrentTask applies one of the service's keyboard moves and keeps the
// cursor on the moved task
func (m *Model) moveCurrentTask(move func(ctx context.Context, taskID string) error) {
	task := m.currentTask()
	if task == nil {
		return
	}

	ctx, cancel := m.operationContext()
	defer cancel()

	err := move(ctx, task.ID)
	if applied(err) {
		m.reload()
		m.selectTask(task.ID)
	}
	if err != nil {
		m.notifyError(err)
	}
}

func (m *Model) confirmDelete(taskID string) {
	m.formState.DeletingTaskID = taskID
	m.uiState.SetMode(state.DeleteConfirmMode)
}

// openTaskForm opens the huh task form, blank for an empty taskID
func (m Model) openTaskForm(taskID string) (tea.Model, tea.Cmd) {
	if taskID == "" {
		m.formState.ResetTaskForm(nil)
	} else {
		task, _ := m.findTask(taskID)
		if task == nil {
			return m, nil
		}
		m.formState.ResetTaskForm(task)
	}

	m.formState.TaskForm = huhforms.CreateTaskForm(
		&m.formState.FormTitle,
		&m.formState.FormDescription,
		&m.formState.FormPriority,
		&m.formState.FormConfirm,
		descriptionLines,
	).WithTheme(huhforms.CreateTheme(m.config.ColorScheme))
	m.uiState.SetMode(state.TaskFormMode)
	return m, m.formState.TaskForm.Init()
}

// openProjectForm opens the assistant prompt. Only one request may be in flight.
func (m Model) openProjectForm() (tea.Model, tea.Cmd) {
	if m.uiState.Busy() || m.svc.SuggestionPending() {
		m.notificationState.Warn(suggest.UserMessage(suggest.ErrRequestPending))
		return m, nil
	}

	m.formState.ResetProjectForm()
	m.formState.ProjectForm = huhforms.CreateProjectForm(
		&m.formState.ProjectName,
		&m.formState.ProjectConfirm,
	).WithTheme(huhforms.CreateTheme(m.config.ColorScheme))
	m.uiState.SetMode(state.GeneratePromptMode)
	return m, m.formState.ProjectForm.Init()
}

func (m Model) requestSubtasks(taskID string) (tea.Model, tea.Cmd) {
	if m.uiState.Busy() || m.svc.SuggestionPending() {
		m.notificationState.Warn(suggest.UserMessage(suggest.ErrRequestPending))
		return m, nil
	}
	return m.startAssistant(m.suggestSubtasksCmd(taskID))
}
