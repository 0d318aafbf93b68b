package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was handed in through the context
	owned bool
}

// NewCLI loads the user config and opens the configured board store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI around the app stored in ctx, or a fresh one from NewCLI.
// Tests inject their app with testutil.TestAppKey.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
			styles.Init(a.Config.ColorScheme)
			return &CLI{App: a}, nil
		}
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
