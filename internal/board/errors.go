package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Lookup errors
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotInColumn indicates stale move data: the task exists but is not in the
	// declared source column. It matches ErrTaskNotFound with errors.Is.
	ErrTaskNotInColumn = fmt.Errorf("%w in source column", ErrTaskNotFound)
)

// Validation errors
var (
	ErrInvalidPriority = models.ErrInvalidPriority

	// ErrInvariant indicates a board whose tasks, columns and column order disagree
	ErrInvariant = errors.New("board invariant violated")

	// ErrIDCollision indicates the ID generator kept returning IDs already in use
	ErrIDCollision = errors.New("could not generate a unique task ID")
)
