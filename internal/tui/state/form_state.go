package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// FormState holds the huh forms and the values they write into.
// Form fields keep pointers into this struct, so it must not be copied while a form is open.
type FormState struct {
	// Task form (create or edit)
	TaskForm        *huh.Form
	EditingTaskID   string // empty while creating
	FormTitle       string
	FormDescription string
	FormPriority    models.Priority
	FormConfirm     bool

	// Assistant prompt
	ProjectForm    *huh.Form
	ProjectName    string
	ProjectConfirm bool

	// Delete confirmation
	DeletingTaskID string

	// Task detail and subtask suggestions
	ViewingTaskID string
	Subtasks      []string

	initialTitle       string
	initialDescription string
	initialPriority    models.Priority
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// ResetTaskForm fills the task form values, either blank or from an existing task.
func (s *FormState) ResetTaskForm(task *models.Task) {
	s.EditingTaskID = ""
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormPriority = models.DefaultPriority
	s.FormConfirm = true

	if task != nil {
		s.EditingTaskID = task.ID
		s.FormTitle = task.Title
		s.FormDescription = task.Description
		s.FormPriority = task.Priority
	}

	s.initialTitle = s.FormTitle
	s.initialDescription = s.FormDescription
	s.initialPriority = s.FormPriority
}

// HasTaskFormChanges reports whether the user edited any task form field.
func (s *FormState) HasTaskFormChanges() bool {
	return s.FormTitle != s.initialTitle ||
		s.FormDescription != s.initialDescription ||
		s.FormPriority != s.initialPriority
}

// IsEditing reports whether the task form edits an existing task.
func (s *FormState) IsEditing() bool {
	return s.EditingTaskID != ""
}

// ClearTaskForm drops the task form and its values.
func (s *FormState) ClearTaskForm() {
	s.TaskForm = nil
	s.ResetTaskForm(nil)
}

// ResetProjectForm clears the assistant prompt values.
func (s *FormState) ResetProjectForm() {
	s.ProjectName = ""
	s.ProjectConfirm = true
}

// ClearProjectForm drops the assistant prompt.
func (s *FormState) ClearProjectForm() {
	s.ProjectForm = nil
	s.ResetProjectForm()
}
