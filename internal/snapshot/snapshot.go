// Package snapshot serializes the board and moves it to and from persistent storage.
//
// A snapshot is the full board as JSON, keyed exactly like models.Board
// (tasks, columns, columnOrder). It is loaded once at start-up and overwritten
// in full after every successful mutation.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Key is the storage key shared by every backend
const Key = "kanban-data"

var (
	// ErrNotFound indicates that no snapshot has been saved yet
	ErrNotFound = errors.New("snapshot not found")

	// ErrMalformed indicates a snapshot that cannot be decoded or breaks a board invariant
	ErrMalformed = errors.New("malformed snapshot")
)

// Loader reads the raw snapshot bytes. It returns ErrNotFound when nothing is stored.
type Loader interface {
	Load(ctx context.Context) ([]byte, error)
}

// Saver overwrites the stored snapshot with the given board
type Saver interface {
	Save(ctx context.Context, b models.Board) error
}

// Store is a backend that can both load and save snapshots
type Store interface {
	Loader
	Saver
	Close() error
}

// Encode serializes a board to its snapshot form
func Encode(b models.Board) ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot and checks the board invariants
func Decode(data []byte) (models.Board, error) {
	var b models.Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := board.Validate(b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}

// LoadOrSeed loads the stored board. An absent or malformed snapshot falls back
// to the seed board; any other load error is returned.
func LoadOrSeed(ctx context.Context, loader Loader, logger *slog.Logger) (models.Board, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := loader.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		logger.Info("no saved board, starting from seed")
		return board.Seed(time.Now()), nil
	}
	if err != nil {
		return models.Board{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	b, err := Decode(data)
	if err != nil {
		logger.Warn("discarding unreadable board snapshot", "error", err)
		return board.Seed(time.Now()), nil
	}
	return b, nil
}
