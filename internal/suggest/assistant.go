package suggest

import (
	"context"
	"sync/atomic"

	"github.com/thenoetrevino/tablero/internal/board"
)

// Assistant wraps a Suggester and allows one request in flight at a time.
// A call made while another is running fails immediately with ErrRequestPending.
type Assistant struct {
	next    Suggester
	pending atomic.Bool
}

// NewAssistant wraps next
func NewAssistant(next Suggester) *Assistant {
	return &Assistant{next: next}
}

// Pending reports whether a request is currently in flight
func (a *Assistant) Pending() bool {
	return a.pending.Load()
}

// SuggestTasks implements Suggester
func (a *Assistant) SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error) {
	if !a.pending.CompareAndSwap(false, true) {
		return nil, ErrRequestPending
	}
	defer a.pending.Store(false)

	return a.next.SuggestTasks(ctx, projectName)
}

// SuggestSubtasks implements Suggester
func (a *Assistant) SuggestSubtasks(ctx context.Context, title, description string) ([]string, error) {
	if !a.pending.CompareAndSwap(false, true) {
		return nil, ErrRequestPending
	}
	defer a.pending.Store(false)

	return a.next.SuggestSubtasks(ctx, title, description)
}
