package models

import "time"

// Task represents a single task in the kanban board
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      string   `json:"status"`    // ID of the column that owns the task
	CreatedAt   int64    `json:"createdAt"` // Unix milliseconds
}

// Created returns the creation time in the local time zone
func (t Task) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// GetID lets the CLI formatter print just the ID in quiet mode
func (t Task) GetID() string {
	return t.ID
}
