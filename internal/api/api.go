// Package api exposes the board service over HTTP for scripts and other local tools.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// ShutdownTimeout bounds how long Serve waits for in-flight requests
const ShutdownTimeout = 10 * time.Second

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, svc boardservice.Service, logger *slog.Logger) {
	h := &handlers{svc: svc, logger: logger}

	e.GET("/healthz", h.healthz)
	e.GET("/api/board", h.getBoard)
	e.GET("/api/columns", h.getColumns)
	e.POST("/api/tasks", h.createTask)
	e.GET("/api/tasks/:id", h.getTask)
	e.PATCH("/api/tasks/:id", h.updateTask)
	e.DELETE("/api/tasks/:id", h.deleteTask)
	e.POST("/api/tasks/:id/move", h.moveTask)
	e.GET("/api/tasks/:id/subtasks", h.suggestSubtasks)
	e.POST("/api/suggestions", h.generateTasks)
}

// New returns an Echo instance with the API routes and middleware installed
func New(svc boardservice.Service, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = sonicSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	Register(e, svc, logger)
	return e
}

// Serve runs the API on addr until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, addr string, svc boardservice.Service, logger *slog.Logger) error {
	e := New(svc, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
