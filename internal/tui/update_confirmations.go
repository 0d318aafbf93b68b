package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// updateDeleteConfirm handles the y/n prompt before deleting a task
func (m Model) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		taskID := m.formState.DeletingTaskID
		m.formState.DeletingTaskID = ""
		m.uiState.SetMode(state.NormalMode)

		ctx, cancel := m.operationContext()
		defer cancel()

		task, err := m.svc.DeleteTask(ctx, taskID)
		if !applied(err) {
			m.notifyError(err)
			return m, nil
		}
		m.reload()
		if err != nil {
			m.notifyError(err)
			return m, nil
		}
		m.notificationState.Info(fmt.Sprintf("Deleted '%s'", task.Title))

	case "n", "N", "esc":
		m.formState.DeletingTaskID = ""
		m.uiState.SetMode(state.NormalMode)
	}

	return m, nil
}

// updateTaskView handles keys while the task detail is open
func (m Model) updateTaskView(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	taskID := m.formState.ViewingTaskID

	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.ViewTask), key.Matches(msg, m.keys.Quit):
		m.uiState.SetMode(state.NormalMode)
	case key.Matches(msg, m.keys.EditTask):
		m.uiState.SetMode(state.NormalMode)
		return m.openTaskForm(taskID)
	case key.Matches(msg, m.keys.DeleteTask):
		m.confirmDelete(taskID)
	case key.Matches(msg, m.keys.SuggestSubtasks):
		return m.requestSubtasks(taskID)
	}

	return m, nil
}

// updateHelp closes the help screen
func (m Model) updateHelp(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || key.Matches(msg, m.keys.ShowHelp) || key.Matches(msg, m.keys.Quit) {
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
