package board

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// IDGenerator produces candidate task IDs. The Store rejects candidates that are in use
// or were used earlier in the process, so generators only need to be unlikely to repeat.
type IDGenerator interface {
	NewTaskID() string
}

// UUIDGenerator generates IDs of the form "task-<uuid>"
type UUIDGenerator struct{}

// NewTaskID returns a fresh random task ID
func (UUIDGenerator) NewTaskID() string {
	return models.TaskIDPrefix + uuid.NewString()
}

// IDGeneratorFunc adapts a function to the IDGenerator interface
type IDGeneratorFunc func() string

// NewTaskID calls f
func (f IDGeneratorFunc) NewTaskID() string {
	return f()
}
