package models

// ============================================================================
// COLUMN CONSTANTS
// ============================================================================

// Fixed column IDs. Columns are created with the board and never added or removed.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "inprogress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

// ============================================================================
// TASK DEFAULTS
// ============================================================================

// DefaultTaskTitle is used when a task is created without a title
const DefaultTaskTitle = "New Task"

// DefaultPriority is used when a task is created without a valid priority
const DefaultPriority = PriorityMedium

// TaskIDPrefix prefixes every generated task ID
const TaskIDPrefix = "task-"
