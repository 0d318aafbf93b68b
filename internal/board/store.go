// Package board holds the canonical kanban board in memory and applies every mutation to it.
//
// A Store is single-writer: callers must not invoke its methods concurrently. Each
// mutation validates its input before touching state, so a failed call leaves the
// board exactly as it was.
package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// maxIDAttempts bounds how often a colliding ID is regenerated
const maxIDAttempts = 16

// TaskInput holds the optional fields for a new task. Zero values mean "use the default".
type TaskInput struct {
	Title       string
	Description string
	Priority    models.Priority
}

// TaskPatch holds the fields to change on an existing task.
// Fields with pointers are optional - nil means don't update.
// ID and status are deliberately absent: only MoveTask changes status.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *models.Priority
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil
}

// Suggestion is a generated starter task, as returned by the suggestion service
type Suggestion struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
}

// Store owns one Board value
type Store struct {
	board models.Board
	now   func() time.Time
	ids   IDGenerator

	// retired holds every task ID seen by this store, so deleted IDs are never handed out again
	retired map[string]struct{}
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the task ID source
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// New creates a Store from an existing board. The board is copied and must satisfy Validate.
func New(b models.Board, opts ...Option) (*Store, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}

	s := &Store{
		board:   b.Clone(),
		now:     time.Now,
		ids:     UUIDGenerator{},
		retired: make(map[string]struct{}, len(b.Tasks)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for id := range s.board.Tasks {
		s.retired[id] = struct{}{}
	}
	return s, nil
}

// NewSeeded creates a Store holding the default seed board
func NewSeeded(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	// Seed always validates, the error path is unreachable
	store, err := New(Seed(s.now()), opts...)
	if err != nil {
		panic(fmt.Sprintf("board: seed board is invalid: %v", err))
	}
	return store
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// Board returns a deep copy of the current board
func (s *Store) Board() models.Board {
	return s.board.Clone()
}

// Task returns a copy of the task with the given ID
func (s *Store) Task(id string) (models.Task, error) {
	task, ok := s.board.Tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return *task, nil
}

// Column returns a copy of the column with the given ID
func (s *Store) Column(id string) (models.Column, error) {
	col, ok := s.board.Columns[id]
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	c := *col
	c.TaskIDs = slices.Clone(col.TaskIDs)
	return c, nil
}

// Columns returns every column in display order with its tasks resolved
func (s *Store) Columns() []models.ColumnSummary {
	out := make([]models.ColumnSummary, 0, len(s.board.ColumnOrder))
	for _, colID := range s.board.ColumnOrder {
		col := s.board.Columns[colID]
		summary := models.ColumnSummary{
			ID:    col.ID,
			Title: col.Title,
			Tasks: make([]*models.Task, 0, len(col.TaskIDs)),
		}
		for _, taskID := range col.TaskIDs {
			t := *s.board.Tasks[taskID]
			summary.Tasks = append(summary.Tasks, &t)
		}
		out = append(out, summary)
	}
	return out
}

// ColumnOrder returns the column IDs in display order
func (s *Store) ColumnOrder() []string {
	return slices.Clone(s.board.ColumnOrder)
}

// Locate returns the column holding the task and the task's index within it
func (s *Store) Locate(taskID string) (string, int, error) {
	task, ok := s.board.Tasks[taskID]
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	col, ok := s.board.Columns[task.Status]
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrColumnNotFound, task.Status)
	}
	return col.ID, slices.Index(col.TaskIDs, taskID), nil
}

// Len returns the number of tasks on the board
func (s *Store) Len() int {
	return len(s.board.Tasks)
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// MoveTask removes taskID from the source column and inserts it at destIndex in the
// destination column. destIndex is clamped to [0, len(dest)], measured after the
// removal, so a same-column move behaves like splice-out then splice-in.
// Moving across columns also sets the task's status to destColumnID.
//
// A task that is not listed in sourceColumnID fails with ErrTaskNotInColumn and
// no column is touched.
func (s *Store) MoveTask(taskID, sourceColumnID, destColumnID string, destIndex int) error {
	task, ok := s.board.Tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	src, ok := s.board.Columns[sourceColumnID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, sourceColumnID)
	}
	dst, ok := s.board.Columns[destColumnID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, destColumnID)
	}

	from := slices.Index(src.TaskIDs, taskID)
	if from < 0 {
		return fmt.Errorf("%w: %s not in %s", ErrTaskNotInColumn, taskID, sourceColumnID)
	}

	srcIDs := slices.Delete(slices.Clone(src.TaskIDs), from, from+1)

	if sourceColumnID == destColumnID {
		src.TaskIDs = slices.Insert(srcIDs, clamp(destIndex, len(srcIDs)), taskID)
		return nil
	}

	dstIDs := slices.Clone(dst.TaskIDs)
	dst.TaskIDs = slices.Insert(dstIDs, clamp(destIndex, len(dstIDs)), taskID)
	src.TaskIDs = srcIDs
	task.Status = destColumnID
	return nil
}

// AddTask creates a task from in and puts it at the front of the "todo" column.
// A blank title becomes "New Task", an empty priority becomes medium.
func (s *Store) AddTask(in TaskInput) (models.Task, error) {
	priority := in.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}

	todo, ok := s.board.Columns[models.ColumnTodo]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, models.ColumnTodo)
	}

	ids, err := s.freshIDs(1)
	if err != nil {
		return models.Task{}, err
	}

	task := &models.Task{
		ID:          ids[0],
		Title:       defaultTitle(in.Title),
		Description: in.Description,
		Priority:    priority,
		Status:      models.ColumnTodo,
		CreatedAt:   s.now().UnixMilli(),
	}
	s.insertFront(todo, task)

	return *task, nil
}

// UpdateTask merges the non-nil fields of patch into the task.
// A blank title becomes the default title, as in AddTask.
// An empty patch is a no-op that still reports ErrTaskNotFound for unknown IDs.
func (s *Store) UpdateTask(taskID string, patch TaskPatch) (models.Task, error) {
	task, ok := s.board.Tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, *patch.Priority)
	}

	if patch.Title != nil {
		task.Title = defaultTitle(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}

	return *task, nil
}

// DeleteTask removes the task and drops it from the column named by its status
func (s *Store) DeleteTask(taskID string) (models.Task, error) {
	task, ok := s.board.Tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	if col, ok := s.board.Columns[task.Status]; ok {
		col.TaskIDs = slices.DeleteFunc(col.TaskIDs, func(id string) bool { return id == taskID })
	}
	delete(s.board.Tasks, taskID)

	return *task, nil
}

// BulkInsertSuggested creates one task per suggestion. Suggestions are processed in
// input order and each new task is pushed onto the front of "todo", so the last
// suggestion ends up at index 0 and the first sits deepest among the new tasks.
// Priorities outside low/medium/high fall back to medium.
func (s *Store) BulkInsertSuggested(suggestions []Suggestion) ([]models.Task, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	todo, ok := s.board.Columns[models.ColumnTodo]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, models.ColumnTodo)
	}

	ids, err := s.freshIDs(len(suggestions))
	if err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	created := make([]models.Task, 0, len(suggestions))
	for i, sg := range suggestions {
		priority := sg.Priority
		if !priority.Valid() {
			priority = models.DefaultPriority
		}
		task := &models.Task{
			ID:          ids[i],
			Title:       defaultTitle(sg.Title),
			Description: sg.Description,
			Priority:    priority,
			Status:      models.ColumnTodo,
			CreatedAt:   now,
		}
		s.insertFront(todo, task)
		created = append(created, *task)
	}

	return created, nil
}

// ============================================================================
// HELPERS
// ============================================================================

func (s *Store) insertFront(col *models.Column, task *models.Task) {
	s.board.Tasks[task.ID] = task
	col.TaskIDs = slices.Insert(col.TaskIDs, 0, task.ID)
}

// freshIDs reserves n IDs that are not in use and have never been used by this store.
// Nothing is reserved if any ID cannot be generated.
func (s *Store) freshIDs(n int) ([]string, error) {
	ids := make([]string, 0, n)
	taken := make(map[string]struct{}, n)
	for range n {
		id, err := s.nextID(taken)
		if err != nil {
			return nil, err
		}
		taken[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range ids {
		s.retired[id] = struct{}{}
	}
	return ids, nil
}

func (s *Store) nextID(taken map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewTaskID()
		if id == "" {
			continue
		}
		if _, used := s.retired[id]; used {
			continue
		}
		if _, used := taken[id]; used {
			continue
		}
		if _, used := s.board.Tasks[id]; used {
			continue
		}
		return id, nil
	}
	return "", ErrIDCollision
}

func defaultTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return models.DefaultTaskTitle
	}
	return title
}

func clamp(i, upper int) int {
	return max(0, min(i, upper))
}
