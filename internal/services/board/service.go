// Package board is the business layer over the board store. It serialises
// callers, persists the board after each change and brokers AI suggestions.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	store "github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/snapshot"
	"github.com/thenoetrevino/tablero/internal/suggest"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context) (models.Board, error)
	GetColumns(ctx context.Context) ([]models.ColumnSummary, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	ResolveColumn(ctx context.Context, ref string) (string, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) (*models.Task, error)

	// Task movements
	MoveTask(ctx context.Context, req MoveTaskRequest) error
	MoveTaskToColumn(ctx context.Context, taskID, columnID string, index int) error
	MoveTaskToNextColumn(ctx context.Context, taskID string) error
	MoveTaskToPrevColumn(ctx context.Context, taskID string) error
	MoveTaskUp(ctx context.Context, taskID string) error
	MoveTaskDown(ctx context.Context, taskID string) error

	// Suggestions
	GenerateTasks(ctx context.Context, projectName string) ([]models.Task, error)
	SuggestSubtasks(ctx context.Context, taskID string) ([]string, error)
	SuggestionPending() bool
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Empty fields fall back to the store defaults.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
	Priority    *models.Priority
}

// MoveTaskRequest is a drag-and-drop style relocation
type MoveTaskRequest struct {
	TaskID         string
	SourceColumnID string
	DestColumnID   string
	DestIndex      int
}

// service implements Service interface
type service struct {
	mu        sync.Mutex
	store     *store.Store
	saver     snapshot.Saver
	suggester suggest.Suggester
	logger    *slog.Logger
}

// NewService creates a new board service. saver and suggester may be nil,
// in which case nothing is persisted and suggestions fail with ErrNoSuggester.
func NewService(st *store.Store, saver snapshot.Saver, suggester suggest.Suggester, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:     st,
		saver:     saver,
		suggester: suggester,
		logger:    logger,
	}
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

func (s *service) GetBoard(ctx context.Context) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Board(), nil
}

func (s *service) GetColumns(ctx context.Context) ([]models.ColumnSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Columns(), nil
}

func (s *service) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	if taskID == "" {
		return nil, ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.Task(taskID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ResolveColumn accepts a column ID or a column title (case-insensitive)
func (s *service) ResolveColumn(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, col := range s.store.Columns() {
		if col.ID == ref || strings.EqualFold(col.Title, ref) {
			return col.ID, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownColumnRef, ref)
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// CreateTask adds a task to the top of the first column
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.AddTask(store.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "task_id", task.ID)
	return &task, s.persist(ctx)
}

// UpdateTask handles task updates with validation
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID == "" {
		return nil, ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	task, err := s.store.UpdateTask(req.TaskID, patch)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return &task, nil
	}

	s.logger.Debug("task updated", "task_id", task.ID)
	return &task, s.persist(ctx)
}

func (s *service) DeleteTask(ctx context.Context, taskID string) (*models.Task, error) {
	if taskID == "" {
		return nil, ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.DeleteTask(taskID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task deleted", "task_id", taskID)
	return &task, s.persist(ctx)
}

// ============================================================================
// TASK MOVEMENTS
// ============================================================================

func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) error {
	if req.TaskID == "" {
		return ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.move(ctx, req.TaskID, req.SourceColumnID, req.DestColumnID, req.DestIndex)
}

// MoveTaskToColumn moves a task from wherever it is to index in columnID
func (s *service) MoveTaskToColumn(ctx context.Context, taskID, columnID string, index int) error {
	if taskID == "" {
		return ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, _, err := s.store.Locate(taskID)
	if err != nil {
		return err
	}
	return s.move(ctx, taskID, src, columnID, index)
}

// MoveTaskToNextColumn moves task to the top of the next column
func (s *service) MoveTaskToNextColumn(ctx context.Context, taskID string) error {
	return s.shiftColumn(ctx, taskID, 1)
}

// MoveTaskToPrevColumn moves task to the top of the previous column
func (s *service) MoveTaskToPrevColumn(ctx context.Context, taskID string) error {
	return s.shiftColumn(ctx, taskID, -1)
}

// MoveTaskUp moves task up in its column
func (s *service) MoveTaskUp(ctx context.Context, taskID string) error {
	return s.shiftPosition(ctx, taskID, -1)
}

// MoveTaskDown moves task down in its column
func (s *service) MoveTaskDown(ctx context.Context, taskID string) error {
	return s.shiftPosition(ctx, taskID, 1)
}

func (s *service) shiftColumn(ctx context.Context, taskID string, delta int) error {
	if taskID == "" {
		return ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, _, err := s.store.Locate(taskID)
	if err != nil {
		return err
	}

	order := s.store.ColumnOrder()
	target := slices.Index(order, src) + delta
	switch {
	case target < 0:
		return ErrAlreadyFirstColumn
	case target >= len(order):
		return ErrAlreadyLastColumn
	}

	return s.move(ctx, taskID, src, order[target], 0)
}

func (s *service) shiftPosition(ctx context.Context, taskID string, delta int) error {
	if taskID == "" {
		return ErrEmptyTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	colID, idx, err := s.store.Locate(taskID)
	if err != nil {
		return err
	}
	col, err := s.store.Column(colID)
	if err != nil {
		return err
	}

	target := idx + delta
	switch {
	case target < 0:
		return ErrAlreadyFirstTask
	case target >= len(col.TaskIDs):
		return ErrAlreadyLastTask
	}

	return s.move(ctx, taskID, colID, colID, target)
}

// move must be called with s.mu held
func (s *service) move(ctx context.Context, taskID, src, dst string, index int) error {
	if err := s.store.MoveTask(taskID, src, dst, index); err != nil {
		return err
	}
	s.logger.Debug("task moved", "task_id", taskID, "from", src, "to", dst, "index", index)
	return s.persist(ctx)
}

// ============================================================================
// SUGGESTIONS
// ============================================================================

// GenerateTasks asks the assistant for starter tasks and adds them to the board.
// The board is only touched once the suggestions have arrived.
func (s *service) GenerateTasks(ctx context.Context, projectName string) ([]models.Task, error) {
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		return nil, ErrEmptyProjectName
	}
	if s.suggester == nil {
		return nil, ErrNoSuggester
	}

	// s.mu is not held across the network call
	suggestions, err := s.suggester.SuggestTasks(ctx, projectName)
	if err != nil {
		s.logger.Error("task generation failed", "project", projectName, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.BulkInsertSuggested(suggestions)
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return created, nil
	}

	s.logger.Info("generated tasks added", "project", projectName, "count", len(created))
	return created, s.persist(ctx)
}

// SuggestSubtasks returns suggested steps for a task. The board is never modified.
func (s *service) SuggestSubtasks(ctx context.Context, taskID string) ([]string, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if s.suggester == nil {
		return nil, ErrNoSuggester
	}

	subtasks, err := s.suggester.SuggestSubtasks(ctx, task.Title, task.Description)
	if err != nil {
		s.logger.Error("subtask suggestion failed", "task_id", taskID, "error", err)
		return nil, err
	}
	return subtasks, nil
}

// SuggestionPending reports whether an assistant request is in flight
func (s *service) SuggestionPending() bool {
	p, ok := s.suggester.(interface{ Pending() bool })
	return ok && p.Pending()
}

// ============================================================================
// HELPERS
// ============================================================================

// persist saves the whole board. The in-memory change is kept on failure.
// Must be called with s.mu held.
func (s *service) persist(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(ctx, s.store.Board()); err != nil {
		s.logger.Error("failed to persist board", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
