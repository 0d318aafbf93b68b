package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// TaskIDs is the only source of ordering for the tasks inside the column.
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	TaskIDs []string `json:"taskIds"`
}

// ColumnSummary is a DTO for rendering a column with its tasks resolved, in display order
type ColumnSummary struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Tasks []*Task `json:"tasks"`
}
