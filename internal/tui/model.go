// Package tui is the interactive Bubble Tea board.
//
// Every change goes through the board service; the model only keeps a read-only
// copy of the columns, refreshed after each operation.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/suggest"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// operationTimeout bounds a single board operation, including the save
const operationTimeout = 5 * time.Second

// Model is the Bubble Tea model for the board
type Model struct {
	ctx    context.Context
	svc    boardservice.Service
	config *config.Config
	keys   keyMap

	// columns is the last snapshot read from the service, in display order
	columns []models.ColumnSummary

	uiState           *state.UIState
	formState         *state.FormState
	notificationState *state.NotificationState

	spinner spinner.Model
	help    help.Model
}

// New builds the board model and loads the current columns
func New(ctx context.Context, svc boardservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))

	m := Model{
		ctx:               ctx,
		svc:               svc,
		config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
		spinner:           s,
		help:              help.New(),
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// operationContext returns a context for one service call
func (m Model) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, operationTimeout)
}

// reload refreshes the column snapshot and keeps the selection in range
func (m *Model) reload() {
	ctx, cancel := m.operationContext()
	defer cancel()

	columns, err := m.svc.GetColumns(ctx)
	if err != nil {
		slog.Error("failed to load columns", "error", err)
		m.notificationState.Error("Failed to load board")
		return
	}
	m.columns = columns

	counts := make([]int, len(columns))
	for i, col := range columns {
		counts[i] = len(col.Tasks)
	}
	m.uiState.Clamp(counts)
}

// currentColumn returns the selected column, or nil for an empty board
func (m Model) currentColumn() *models.ColumnSummary {
	idx := m.uiState.SelectedColumn()
	if idx < 0 || idx >= len(m.columns) {
		return nil
	}
	return &m.columns[idx]
}

// currentTask returns the selected task, or nil when the column is empty
func (m Model) currentTask() *models.Task {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	idx := m.uiState.SelectedTask()
	if idx < 0 || idx >= len(col.Tasks) {
		return nil
	}
	return col.Tasks[idx]
}

// findTask looks a task up in the snapshot and returns it with its column title
func (m Model) findTask(taskID string) (*models.Task, string) {
	for _, col := range m.columns {
		for _, task := range col.Tasks {
			if task.ID == taskID {
				return task, col.Title
			}
		}
	}
	return nil, ""
}

// selectTask moves the cursor onto the task if it is on the board
func (m *Model) selectTask(taskID string) {
	for c, col := range m.columns {
		for t, task := range col.Tasks {
			if task.ID == taskID {
				m.uiState.Select(c, t)
				return
			}
		}
	}
}

// notifyError turns a service error into a status bar message
func (m *Model) notifyError(err error) {
	switch {
	case errors.Is(err, boardservice.ErrNoSuggester):
		m.notificationState.Warn("The assistant is not configured. Set GEMINI_API_KEY to enable it.")
	case errors.Is(err, suggest.ErrRequestPending):
		m.notificationState.Warn(suggest.UserMessage(err))
	case errors.Is(err, suggest.ErrSuggestionService):
		m.notificationState.Error(suggest.UserMessage(err))
	case errors.Is(err, boardservice.ErrPersist):
		m.notificationState.Warn("Change applied but could not be saved")
	case errors.Is(err, boardservice.ErrAlreadyFirstColumn),
		errors.Is(err, boardservice.ErrAlreadyLastColumn),
		errors.Is(err, boardservice.ErrAlreadyFirstTask),
		errors.Is(err, boardservice.ErrAlreadyLastTask):
		m.notificationState.Warn(err.Error())
	default:
		m.notificationState.Error(err.Error())
	}
}

// applied reports whether a mutation took effect. A persist failure still
// changed the board, so the caller refreshes and shows a warning.
func applied(err error) bool {
	return err == nil || errors.Is(err, boardservice.ErrPersist)
}
