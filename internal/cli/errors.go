package cli

import (
	"errors"
	"log"

	"github.com/thenoetrevino/tablero/internal/board"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
	"github.com/thenoetrevino/tablero/internal/suggest"
)

// errorClass maps a domain error onto an output code and an exit code
type errorClass struct {
	code       string
	exit       int
	suggestion string
}

func classify(err error) errorClass {
	switch {
	case errors.Is(err, board.ErrTaskNotInColumn):
		return errorClass{code: "TASK_MOVED", exit: ExitNotFound, suggestion: "Run 'tablero board show' to see where the task is now"}
	case errors.Is(err, board.ErrTaskNotFound):
		return errorClass{code: "TASK_NOT_FOUND", exit: ExitNotFound, suggestion: "Run 'tablero board show' to list task IDs"}
	case errors.Is(err, board.ErrColumnNotFound), errors.Is(err, boardservice.ErrUnknownColumnRef):
		return errorClass{code: "COLUMN_NOT_FOUND", exit: ExitNotFound, suggestion: "Columns: todo, inprogress, review, done"}
	case errors.Is(err, board.ErrInvalidPriority):
		return errorClass{code: "INVALID_PRIORITY", exit: ExitValidation, suggestion: "Use one of: low, medium, high"}
	case errors.Is(err, boardservice.ErrEmptyTaskID), errors.Is(err, boardservice.ErrEmptyProjectName):
		return errorClass{code: "VALIDATION_ERROR", exit: ExitValidation}
	case errors.Is(err, boardservice.ErrAlreadyFirstColumn), errors.Is(err, boardservice.ErrAlreadyLastColumn),
		errors.Is(err, boardservice.ErrAlreadyFirstTask), errors.Is(err, boardservice.ErrAlreadyLastTask):
		return errorClass{code: "INVALID_MOVE", exit: ExitValidation}
	case errors.Is(err, boardservice.ErrNoSuggester):
		return errorClass{code: "ASSISTANT_DISABLED", exit: ExitSuggestion, suggestion: "Set GEMINI_API_KEY or ai.api_key_env in the config file"}
	case errors.Is(err, suggest.ErrRequestPending), errors.Is(err, suggest.ErrSuggestionService):
		return errorClass{code: "SUGGESTION_ERROR", exit: ExitSuggestion}
	case errors.Is(err, snapshot.ErrMalformed), errors.Is(err, boardservice.ErrPersist):
		return errorClass{code: "STORAGE_ERROR", exit: ExitDataErr}
	default:
		return errorClass{code: "INTERNAL_ERROR", exit: ExitError}
	}
}

// HandleError reports err through the formatter and returns it wrapped with its exit code
func HandleError(formatter *OutputFormatter, err error) error {
	class := classify(err)

	message := err.Error()
	if class.exit == ExitSuggestion && !errors.Is(err, boardservice.ErrNoSuggester) {
		message = suggest.UserMessage(err)
	}

	if fmtErr := formatter.ErrorWithSuggestion(class.code, message, class.suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(class.exit, err)
}

// UsageError reports a usage problem and returns an ExitUsage error
func UsageError(formatter *OutputFormatter, message string) error {
	if fmtErr := formatter.Error("USAGE_ERROR", message); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(ExitUsage, errors.New(message))
}

// InitError reports a failure to open the board
func InitError(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(ExitError, err)
}
