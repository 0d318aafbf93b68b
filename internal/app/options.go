package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/snapshot"
	"github.com/thenoetrevino/tablero/internal/suggest"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store        snapshot.Store
	suggester    suggest.Suggester
	storeOptions []board.Option
	logger       *slog.Logger
}

// WithSnapshotStore uses store instead of opening the configured backend.
// The App takes ownership and closes it.
func WithSnapshotStore(store snapshot.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithSuggester uses s instead of building a Gemini client from the config
func WithSuggester(s suggest.Suggester) Option {
	return func(cfg *appConfig) {
		cfg.suggester = s
	}
}

// WithBoardOptions passes options through to the board store
func WithBoardOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, opts...)
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
