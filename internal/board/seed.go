package board

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Seed returns the default board: two sample tasks in "To Do" followed by
// empty "In Progress", "Review" and "Done" columns.
func Seed(now time.Time) models.Board {
	return models.Board{
		Tasks: map[string]*models.Task{
			"task-1": {
				ID:          "task-1",
				Title:       "Design Landing Page",
				Description: "Create high-fidelity mockups for the new homepage.",
				Priority:    models.PriorityHigh,
				Status:      models.ColumnTodo,
				CreatedAt:   now.UnixMilli(),
			},
			"task-2": {
				ID:          "task-2",
				Title:       "User Research",
				Description: "Interview at least 5 potential users.",
				Priority:    models.PriorityMedium,
				Status:      models.ColumnTodo,
				CreatedAt:   now.Add(-10 * time.Second).UnixMilli(),
			},
		},
		Columns: map[string]*models.Column{
			models.ColumnTodo:       {ID: models.ColumnTodo, Title: "To Do", TaskIDs: []string{"task-1", "task-2"}},
			models.ColumnInProgress: {ID: models.ColumnInProgress, Title: "In Progress", TaskIDs: []string{}},
			models.ColumnReview:     {ID: models.ColumnReview, Title: "Review", TaskIDs: []string{}},
			models.ColumnDone:       {ID: models.ColumnDone, Title: "Done", TaskIDs: []string{}},
		},
		ColumnOrder: []string{
			models.ColumnTodo,
			models.ColumnInProgress,
			models.ColumnReview,
			models.ColumnDone,
		},
	}
}
