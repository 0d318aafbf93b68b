package tui

import (
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once the request is done
		if !m.uiState.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksGeneratedMsg:
		return m.handleTasksGenerated(msg)

	case subtasksMsg:
		return m.handleSubtasks(msg)
	}

	// Forms need to receive ALL messages, not just key presses
	switch m.uiState.Mode() {
	case state.TaskFormMode:
		return m.updateTaskForm(msg)
	case state.GeneratePromptMode:
		return m.updateProjectForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(keyMsg)
	case state.TaskViewMode, state.SubtasksMode:
		return m.updateTaskView(keyMsg)
	case state.HelpMode:
		return m.updateHelp(keyMsg)
	default:
		return m.updateNormal(keyMsg)
	}
}

// startAssistant marks the UI busy and starts the spinner alongside the request
func (m Model) startAssistant(request tea.Cmd) (tea.Model, tea.Cmd) {
	m.uiState.SetBusy(true)
	return m, tea.Batch(m.spinner.Tick, request)
}

func (m Model) handleTasksGenerated(msg tasksGeneratedMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetBusy(false)

	if !applied(msg.err) {
		m.notifyError(msg.err)
		return m, nil
	}

	m.reload()
	if msg.err != nil {
		m.notifyError(msg.err)
		return m, nil
	}

	if len(msg.tasks) == 0 {
		m.notificationState.Info("The assistant had no suggestions")
		return m, nil
	}

	// New tasks are pushed onto the front of the first column
	m.uiState.Select(0, 0)
	m.notificationState.Info(fmt.Sprintf("Added %d tasks for %s", len(msg.tasks), msg.project))
	return m, nil
}

func (m Model) handleSubtasks(msg subtasksMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetBusy(false)

	if msg.err != nil {
		m.notifyError(msg.err)
		return m, nil
	}

	// Don't pull the user out of a form or dialog they opened meanwhile
	switch m.uiState.Mode() {
	case state.NormalMode, state.TaskViewMode, state.SubtasksMode:
	default:
		m.notificationState.Info("Subtask suggestions are ready, open the task to see them")
		m.formState.ViewingTaskID = msg.taskID
		m.formState.Subtasks = msg.subtasks
		return m, nil
	}

	if task, _ := m.findTask(msg.taskID); task == nil {
		m.notificationState.Warn("The task was deleted before the suggestions arrived")
		return m, nil
	}

	m.formState.ViewingTaskID = msg.taskID
	m.formState.Subtasks = msg.subtasks
	if m.formState.Subtasks == nil {
		m.formState.Subtasks = []string{}
	}
	m.uiState.SetMode(state.SubtasksMode)
	return m, nil
}
