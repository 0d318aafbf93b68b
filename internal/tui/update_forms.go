package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func(*Model) tea.Cmd // Called when form completes successfully
	confirmPtr *bool                // Pointer to confirmation field for quick save
}

// handleFormUpdate processes form messages generically
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	switch form.State {
	case huh.StateCompleted:
		done := cfg.onComplete(&m)
		m.uiState.SetMode(state.NormalMode)
		cfg.clearForm()
		return m, done
	case huh.StateAborted:
		m.uiState.SetMode(state.NormalMode)
		cfg.clearForm()
		return m, nil
	}

	return m, cmd
}

// handleFormSave handles the save shortcut for forms.
// Sets confirmation to true and completes the form, triggering the save flow.
func (m Model) handleFormSave(cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if cfg.confirmPtr != nil {
		*cfg.confirmPtr = true
	}
	cfg.form.State = huh.StateCompleted

	done := cfg.onComplete(&m)
	m.uiState.SetMode(state.NormalMode)
	cfg.clearForm()
	return m, done
}

// updateTaskForm handles all messages when in TaskFormMode
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cfg := formConfig{
		form:       m.formState.TaskForm,
		setForm:    func(f *huh.Form) { m.formState.TaskForm = f },
		clearForm:  m.formState.ClearTaskForm,
		onComplete: (*Model).submitTaskForm,
		confirmPtr: &m.formState.FormConfirm,
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.formState.HasTaskFormChanges() {
				m.notificationState.Info("Changes discarded")
			}
			m.uiState.SetMode(state.NormalMode)
			m.formState.ClearTaskForm()
			return m, nil
		case m.config.KeyMappings.SaveForm:
			return m.handleFormSave(cfg)
		}
	}

	return m.handleFormUpdate(msg, cfg)
}

// submitTaskForm creates or updates the task from the form values
func (m *Model) submitTaskForm() tea.Cmd {
	fs := m.formState
	if !fs.FormConfirm {
		return nil
	}

	ctx, cancel := m.operationContext()
	defer cancel()

	if !fs.IsEditing() {
		task, err := m.svc.CreateTask(ctx, boardservice.CreateTaskRequest{
			Title:       strings.TrimSpace(fs.FormTitle),
			Description: fs.FormDescription,
			Priority:    fs.FormPriority,
		})
		if !applied(err) {
			m.notifyError(err)
			return nil
		}
		m.reload()
		m.selectTask(task.ID)
		if err != nil {
			m.notifyError(err)
			return nil
		}
		m.notificationState.Info(fmt.Sprintf("Created '%s'", task.Title))
		return nil
	}

	req := boardservice.UpdateTaskRequest{TaskID: fs.EditingTaskID}
	original, _ := m.findTask(fs.EditingTaskID)
	if original == nil {
		m.notificationState.Error("Task no longer exists")
		return nil
	}
	if title := strings.TrimSpace(fs.FormTitle); title != original.Title {
		req.Title = &title
	}
	if fs.FormDescription != original.Description {
		description := fs.FormDescription
		req.Description = &description
	}
	if fs.FormPriority != original.Priority {
		priority := fs.FormPriority
		req.Priority = &priority
	}

	task, err := m.svc.UpdateTask(ctx, req)
	if !applied(err) {
		m.notifyError(err)
		return nil
	}
	m.reload()
	if err != nil {
		m.notifyError(err)
		return nil
	}
	m.notificationState.Info(fmt.Sprintf("Updated '%s'", task.Title))
	return nil
}

// updateProjectForm handles all messages when in GeneratePromptMode
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cfg := formConfig{
		form:       m.formState.ProjectForm,
		setForm:    func(f *huh.Form) { m.formState.ProjectForm = f },
		clearForm:  m.formState.ClearProjectForm,
		onComplete: (*Model).submitProjectForm,
		confirmPtr: &m.formState.ProjectConfirm,
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.uiState.SetMode(state.NormalMode)
			m.formState.ClearProjectForm()
			return m, nil
		case m.config.KeyMappings.SaveForm:
			return m.handleFormSave(cfg)
		}
	}

	return m.handleFormUpdate(msg, cfg)
}

// submitProjectForm starts task generation. A blank name sends nothing.
func (m *Model) submitProjectForm() tea.Cmd {
	name := strings.TrimSpace(m.formState.ProjectName)
	if !m.formState.ProjectConfirm || name == "" {
		return nil
	}

	m.uiState.SetBusy(true)
	return tea.Batch(m.spinner.Tick, m.generateTasksCmd(name))
}
