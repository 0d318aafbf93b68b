package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *models.Board)
		wantErr bool
	}{
		{
			name:   "seed board is valid",
			mutate: func(b *models.Board) {},
		},
		{
			name:    "missing maps",
			mutate:  func(b *models.Board) { b.Tasks = nil },
			wantErr: true,
		},
		{
			name:    "column lists unknown task",
			mutate:  func(b *models.Board) { b.Columns[models.ColumnDone].TaskIDs = []string{"task-9"} },
			wantErr: true,
		},
		{
			name:    "task listed in two columns",
			mutate:  func(b *models.Board) { b.Columns[models.ColumnDone].TaskIDs = []string{"task-1"} },
			wantErr: true,
		},
		{
			name:    "task listed twice in one column",
			mutate:  func(b *models.Board) { b.Columns[models.ColumnTodo].TaskIDs = []string{"task-1", "task-2", "task-1"} },
			wantErr: true,
		},
		{
			name:    "task in no column",
			mutate:  func(b *models.Board) { b.Columns[models.ColumnTodo].TaskIDs = []string{"task-1"} },
			wantErr: true,
		},
		{
			name:    "status disagrees with owning column",
			mutate:  func(b *models.Board) { b.Tasks["task-1"].Status = models.ColumnDone },
			wantErr: true,
		},
		{
			name:    "status names unknown column",
			mutate:  func(b *models.Board) { b.Tasks["task-2"].Status = "backlog" },
			wantErr: true,
		},
		{
			name:    "column order misses a column",
			mutate:  func(b *models.Board) { b.ColumnOrder = b.ColumnOrder[:3] },
			wantErr: true,
		},
		{
			name:    "column order has duplicate",
			mutate:  func(b *models.Board) { b.ColumnOrder = append(b.ColumnOrder[:3], models.ColumnTodo) },
			wantErr: true,
		},
		{
			name:    "column order references unknown column",
			mutate:  func(b *models.Board) { b.ColumnOrder[3] = "archive" },
			wantErr: true,
		},
		{
			name:    "task key mismatch",
			mutate:  func(b *models.Board) { b.Tasks["task-1"].ID = "task-x" },
			wantErr: true,
		},
		{
			name:    "column key mismatch",
			mutate:  func(b *models.Board) { b.Columns[models.ColumnReview].ID = "qa" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Seed(fixedNow)
			tt.mutate(&b)

			err := Validate(b)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvariant), "expected invariant error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
