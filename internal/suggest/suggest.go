// Package suggest asks a generative text service for starter tasks and subtasks.
package suggest

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/board"
)

// Suggester produces task suggestions. Implementations must be safe for concurrent use.
type Suggester interface {
	// SuggestTasks returns starter tasks for a project
	SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error)

	// SuggestSubtasks returns short actionable steps for an existing task
	SuggestSubtasks(ctx context.Context, title, description string) ([]string, error)
}
