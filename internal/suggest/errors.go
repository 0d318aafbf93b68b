package suggest

import "errors"

var (
	// ErrSuggestionService indicates the generative service could not produce a usable answer
	ErrSuggestionService = errors.New("suggestion service failed")

	// ErrRequestPending indicates another suggestion request is still in flight
	ErrRequestPending = errors.New("a suggestion request is already pending")

	// ErrNoAPIKey indicates that no API key was configured for the client
	ErrNoAPIKey = errors.New("no API key configured")
)

// FailureMessage is the text shown to the user when task generation fails
const FailureMessage = "Failed to generate tasks. Please try again."

// UserMessage converts a suggestion error into text fit for the user.
// It returns "" for a nil error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRequestPending):
		return "Still thinking about the last request..."
	default:
		return FailureMessage
	}
}
