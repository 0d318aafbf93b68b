package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
	"github.com/thenoetrevino/tablero/internal/suggest"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Persistence backend for the board snapshot
	store snapshot.Store

	// Service layer (business logic)
	BoardService boardservice.Service

	// Assistant is nil when no API key is configured
	Assistant *suggest.Assistant

	logger *slog.Logger
}

// New loads the board from the configured backend (or seeds it) and wires the services.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	settings := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(settings)
	}

	store := settings.store
	if store == nil {
		var err error
		if store, err = OpenStore(ctx, cfg.Storage); err != nil {
			return nil, err
		}
	}

	b, err := snapshot.LoadOrSeed(ctx, store, settings.logger)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	boardStore, err := board.New(b, settings.storeOptions...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to load board: %w", err), store.Close())
	}

	suggester := settings.suggester
	if suggester == nil {
		suggester = newGemini(ctx, cfg.AI, settings.logger)
	}

	var assistant *suggest.Assistant
	var svcSuggester suggest.Suggester
	if suggester != nil {
		assistant = suggest.NewAssistant(suggester)
		svcSuggester = assistant
	}

	return &App{
		Config:       cfg,
		store:        store,
		BoardService: boardservice.NewService(boardStore, store, svcSuggester, settings.logger),
		Assistant:    assistant,
		logger:       settings.logger,
	}, nil
}

// newGemini returns nil when the client cannot be built; the assistant is optional
func newGemini(ctx context.Context, ai config.AIConfig, logger *slog.Logger) suggest.Suggester {
	client, err := suggest.NewGeminiClient(ctx, ai.APIKey(),
		suggest.WithModel(ai.Model),
		suggest.WithTimeout(ai.Timeout),
		suggest.WithLogger(logger),
	)
	if err != nil {
		logger.Info("assistant disabled", "reason", err)
		return nil
	}
	return client
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
