package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		wantErr  bool
	}{
		{"low", PriorityLow, false},
		{"MEDIUM", PriorityMedium, false},
		{"  High ", PriorityHigh, false},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPriority))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities() {
		assert.True(t, p.Valid(), "expected %q to be valid", p)
	}
	assert.False(t, Priority("urgent").Valid())
	assert.False(t, Priority("").Valid())
}

func TestBoard_CloneIsDeep(t *testing.T) {
	b := Board{
		Tasks: map[string]*Task{
			"task-1": {ID: "task-1", Title: "One", Priority: PriorityLow, Status: ColumnTodo},
		},
		Columns: map[string]*Column{
			ColumnTodo: {ID: ColumnTodo, Title: "To Do", TaskIDs: []string{"task-1"}},
		},
		ColumnOrder: []string{ColumnTodo},
	}

	clone := b.Clone()
	clone.Tasks["task-1"].Title = "Changed"
	clone.Columns[ColumnTodo].TaskIDs[0] = "task-9"
	clone.ColumnOrder[0] = "other"

	assert.Equal(t, "One", b.Tasks["task-1"].Title)
	assert.Equal(t, []string{"task-1"}, b.Columns[ColumnTodo].TaskIDs)
	assert.Equal(t, []string{ColumnTodo}, b.ColumnOrder)
}

func TestTask_Created(t *testing.T) {
	task := Task{CreatedAt: 1700000000000}
	assert.Equal(t, int64(1700000000000), task.Created().UnixMilli())
}
