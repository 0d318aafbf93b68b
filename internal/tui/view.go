package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// statusBarHeight is the number of lines below the board
const statusBarHeight = 1

// View renders the current state of the application.
// The board is always drawn, with dialogs layered on top of it.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	board := lipgloss.JoinVertical(lipgloss.Left, m.renderBoard(), m.renderStatusBar())
	stack := []*lipgloss.Layer{lipgloss.NewLayer(board)}

	if modal := m.renderModalLayer(); modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderBoard draws the columns that fit on screen, scrolled to keep the
// selected column visible
func (m Model) renderBoard() string {
	if len(m.columns) == 0 {
		return components.SubtleStyle.Render("The board has no columns")
	}

	height := m.uiState.Height() - statusBarHeight
	perScreen := max(m.uiState.Width()/(components.ColumnWidth+2), 1)

	start := 0
	if selected := m.uiState.SelectedColumn(); selected >= perScreen {
		start = selected - perScreen + 1
	}
	end := min(start+perScreen, len(m.columns))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selectedTask := -1
		if i == m.uiState.SelectedColumn() {
			selectedTask = m.uiState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(
			m.columns[i],
			i == m.uiState.SelectedColumn(),
			selectedTask,
			height,
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStatusBar() string {
	props := components.StatusBarProps{
		Width:   m.uiState.Width(),
		Busy:    m.uiState.Busy(),
		Spinner: m.spinner.View(),
	}
	if n, ok := m.notificationState.Current(); ok {
		props.Notification = &n
	} else if task := m.currentTask(); task != nil {
		props.TaskHint = task.ID
	}
	return components.RenderStatusBar(props)
}

// renderModalLayer returns the dialog for the current mode, or nil in normal mode
func (m Model) renderModalLayer() *lipgloss.Layer {
	width := layers.ModalWidth(m.uiState.Width())

	var content string
	switch m.uiState.Mode() {
	case state.TaskFormMode:
		content = m.renderTaskForm(width)
	case state.GeneratePromptMode:
		content = m.renderProjectForm(width)
	case state.DeleteConfirmMode:
		content = m.renderDeleteConfirm()
	case state.TaskViewMode, state.SubtasksMode:
		content = m.renderTaskView(width)
	case state.HelpMode:
		content = m.renderHelp()
	default:
		return nil
	}

	return layers.CreateCenteredLayer(content, m.uiState.Width(), m.uiState.Height())
}

func (m Model) renderTaskForm(width int) string {
	if m.formState.TaskForm == nil {
		return ""
	}

	title := "New Task"
	style := components.CreateFormBoxStyle
	if m.formState.IsEditing() {
		title = "Edit Task"
		style = components.FormBoxStyle
	}

	help := components.IndicatorStyle.Render(m.config.KeyMappings.SaveForm + ": save  esc: cancel")
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		m.formState.TaskForm.View(),
		"",
		help,
	))
}

func (m Model) renderProjectForm(width int) string {
	if m.formState.ProjectForm == nil {
		return ""
	}

	return components.CreateFormBoxStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Generate Tasks"),
		"",
		m.formState.ProjectForm.View(),
	))
}

func (m Model) renderDeleteConfirm() string {
	task, _ := m.findTask(m.formState.DeletingTaskID)
	if task == nil {
		return ""
	}

	return components.DeleteConfirmBoxStyle.Render(fmt.Sprintf(
		"Delete task '%s'?\n\n%s",
		task.Title,
		components.IndicatorStyle.Render("[y] yes  [n] no"),
	))
}

func (m Model) renderTaskView(width int) string {
	task, columnTitle := m.findTask(m.formState.ViewingTaskID)
	if task == nil {
		return ""
	}

	km := m.config.KeyMappings
	footer := fmt.Sprintf("%s: edit  %s: delete  %s: suggest subtasks  esc: close",
		km.EditTask, km.DeleteTask, km.SuggestSubtasks)

	return components.RenderTaskView(components.TaskViewProps{
		Task:        task,
		ColumnTitle: columnTitle,
		Subtasks:    m.formState.Subtasks,
		Width:       width,
		Footer:      footer,
	})
}

func (m Model) renderHelp() string {
	return components.HelpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Keyboard Shortcuts"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
	))
}
