package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/suggest"
)

type handlers struct {
	svc    boardservice.Service
	logger *slog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type createTaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type updateTaskBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// moveTaskBody accepts either a direction or an explicit destination.
// SourceColumnID is optional; when set, a task that has since left that column is rejected.
type moveTaskBody struct {
	Direction      string `json:"direction"`
	SourceColumnID string `json:"sourceColumnId"`
	DestColumnID   string `json:"destColumnId"`
	Index          int    `json:"index"`
}

type generateTasksBody struct {
	ProjectName string `json:"projectName"`
}

func (h *handlers) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *handlers) getBoard(c echo.Context) error {
	b, err := h.svc.GetBoard(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *handlers) getColumns(c echo.Context) error {
	columns, err := h.svc.GetColumns(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"columns": columns})
}

func (h *handlers) getTask(c echo.Context) error {
	task, err := h.svc.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *handlers) createTask(c echo.Context) error {
	var body createTaskBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	req := boardservice.CreateTaskRequest{Title: body.Title, Description: body.Description}
	if body.Priority != "" {
		p, err := models.ParsePriority(body.Priority)
		if err != nil {
			return h.fail(c, err)
		}
		req.Priority = p
	}

	task, err := h.svc.CreateTask(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *handlers) updateTask(c echo.Context) error {
	var body updateTaskBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	req := boardservice.UpdateTaskRequest{
		TaskID:      c.Param("id"),
		Title:       body.Title,
		Description: body.Description,
	}
	if body.Priority != nil {
		p, err := models.ParsePriority(*body.Priority)
		if err != nil {
			return h.fail(c, err)
		}
		req.Priority = &p
	}

	task, err := h.svc.UpdateTask(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *handlers) deleteTask(c echo.Context) error {
	if _, err := h.svc.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handlers) moveTask(c echo.Context) error {
	var body moveTaskBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	ctx := c.Request().Context()
	taskID := c.Param("id")

	var err error
	switch strings.ToLower(body.Direction) {
	case "next":
		err = h.svc.MoveTaskToNextColumn(ctx, taskID)
	case "prev":
		err = h.svc.MoveTaskToPrevColumn(ctx, taskID)
	case "up":
		err = h.svc.MoveTaskUp(ctx, taskID)
	case "down":
		err = h.svc.MoveTaskDown(ctx, taskID)
	case "":
		if body.DestColumnID == "" {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "direction or destColumnId is required"})
		}
		if body.SourceColumnID != "" {
			err = h.svc.MoveTask(ctx, boardservice.MoveTaskRequest{
				TaskID:         taskID,
				SourceColumnID: body.SourceColumnID,
				DestColumnID:   body.DestColumnID,
				DestIndex:      body.Index,
			})
		} else {
			err = h.svc.MoveTaskToColumn(ctx, taskID, body.DestColumnID, body.Index)
		}
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown direction " + body.Direction})
	}
	if err != nil {
		return h.fail(c, err)
	}

	task, err := h.svc.GetTask(ctx, taskID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *handlers) generateTasks(c echo.Context) error {
	var body generateTasksBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	created, err := h.svc.GenerateTasks(c.Request().Context(), body.ProjectName)
	if err != nil {
		return h.fail(c, err)
	}
	if created == nil {
		created = []models.Task{}
	}
	return c.JSON(http.StatusCreated, map[string]any{"tasks": created})
}

func (h *handlers) suggestSubtasks(c echo.Context) error {
	subtasks, err := h.svc.SuggestSubtasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if subtasks == nil {
		subtasks = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"subtasks": subtasks})
}

// fail writes err as {"error": message} with the matching status code
func (h *handlers) fail(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusBadGateway || errors.Is(err, suggest.ErrRequestPending) {
		message = suggest.UserMessage(err)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.JSON(status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrTaskNotInColumn), errors.Is(err, suggest.ErrRequestPending):
		return http.StatusConflict
	case errors.Is(err, board.ErrTaskNotFound), errors.Is(err, board.ErrColumnNotFound),
		errors.Is(err, boardservice.ErrUnknownColumnRef):
		return http.StatusNotFound
	case errors.Is(err, board.ErrInvalidPriority), errors.Is(err, boardservice.ErrEmptyTaskID),
		errors.Is(err, boardservice.ErrEmptyProjectName),
		errors.Is(err, boardservice.ErrAlreadyFirstColumn), errors.Is(err, boardservice.ErrAlreadyLastColumn),
		errors.Is(err, boardservice.ErrAlreadyFirstTask), errors.Is(err, boardservice.ErrAlreadyLastTask):
		return http.StatusBadRequest
	case errors.Is(err, boardservice.ErrNoSuggester):
		return http.StatusServiceUnavailable
	case errors.Is(err, suggest.ErrSuggestionService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
