package board

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Validate checks that b is internally consistent:
//   - every ID in a column's taskIds exists in tasks
//   - every task's status names a column, and the task appears exactly once, in that column only
//   - columnOrder is a permutation of the column keys
//
// Every returned error wraps ErrInvariant.
func Validate(b models.Board) error {
	if b.Tasks == nil || b.Columns == nil {
		return fmt.Errorf("%w: missing tasks or columns", ErrInvariant)
	}

	for id, col := range b.Columns {
		if col == nil {
			return fmt.Errorf("%w: column %q is empty", ErrInvariant, id)
		}
		if col.ID != id {
			return fmt.Errorf("%w: column key %q holds column %q", ErrInvariant, id, col.ID)
		}
	}

	seenColumns := make(map[string]bool, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if _, ok := b.Columns[id]; !ok {
			return fmt.Errorf("%w: column order references unknown column %q", ErrInvariant, id)
		}
		if seenColumns[id] {
			return fmt.Errorf("%w: column %q appears twice in column order", ErrInvariant, id)
		}
		seenColumns[id] = true
	}
	if len(seenColumns) != len(b.Columns) {
		return fmt.Errorf("%w: column order lists %d of %d columns", ErrInvariant, len(seenColumns), len(b.Columns))
	}

	// owner maps each listed task to the column that lists it
	owner := make(map[string]string, len(b.Tasks))
	for _, colID := range b.ColumnOrder {
		for _, taskID := range b.Columns[colID].TaskIDs {
			if _, ok := b.Tasks[taskID]; !ok {
				return fmt.Errorf("%w: column %q references unknown task %q", ErrInvariant, colID, taskID)
			}
			if prev, dup := owner[taskID]; dup {
				return fmt.Errorf("%w: task %q listed in both %q and %q", ErrInvariant, taskID, prev, colID)
			}
			owner[taskID] = colID
		}
	}

	for id, task := range b.Tasks {
		if task == nil {
			return fmt.Errorf("%w: task %q is empty", ErrInvariant, id)
		}
		if task.ID != id {
			return fmt.Errorf("%w: task key %q holds task %q", ErrInvariant, id, task.ID)
		}
		colID, listed := owner[id]
		if !listed {
			return fmt.Errorf("%w: task %q is not in any column", ErrInvariant, id)
		}
		if task.Status != colID {
			return fmt.Errorf("%w: task %q has status %q but is listed in %q", ErrInvariant, id, task.Status, colID)
		}
	}

	return nil
}
