package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/suggest"
)

// Board service errors
var (
	// Validation errors
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrUnknownColumnRef = errors.New("no column matches")

	// Persistence errors
	ErrPersist = errors.New("failed to save board")

	// ErrNoSuggester indicates the service was built without a suggestion backend
	ErrNoSuggester = fmt.Errorf("%w: assistant is not configured", suggest.ErrSuggestionService)
)

// Movement-related errors
var (
	// ErrAlreadyFirstTask indicates that the task is already at the top of the column
	ErrAlreadyFirstTask = errors.New("task is already at the top of the column")

	// ErrAlreadyLastTask indicates that the task is already at the bottom of the column
	ErrAlreadyLastTask = errors.New("task is already at the bottom of the column")

	// ErrAlreadyLastColumn indicates that the task is already in the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")

	// ErrAlreadyFirstColumn indicates that the task is already in the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")
)
