package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// tasksGeneratedMsg carries the result of an assistant task generation
type tasksGeneratedMsg struct {
	project string
	tasks   []models.Task
	err     error
}

// subtasksMsg carries suggested subtasks for one task
type subtasksMsg struct {
	taskID   string
	subtasks []string
	err      error
}

// generateTasksCmd asks the assistant for starter tasks off the UI goroutine.
// The service adds them to the board before the message is delivered.
func (m Model) generateTasksCmd(project string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		tasks, err := svc.GenerateTasks(ctx, project)
		return tasksGeneratedMsg{project: project, tasks: tasks, err: err}
	}
}

// suggestSubtasksCmd asks the assistant for subtasks off the UI goroutine
func (m Model) suggestSubtasksCmd(taskID string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		subtasks, err := svc.SuggestSubtasks(ctx, taskID)
		return subtasksMsg{taskID: taskID, subtasks: subtasks, err: err}
	}
}
