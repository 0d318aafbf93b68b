package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/serve"
	"github.com/thenoetrevino/tablero/internal/cli/suggest"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/launcher"
	"github.com/thenoetrevino/tablero/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - A terminal kanban board with an AI assistant",
	Long: `Tablero is a single-user kanban board with To Do, In Progress, Review and Done columns.

Run it without arguments to open the board in your terminal, or use the
subcommands to script it. Set GEMINI_API_KEY to let the assistant draft tasks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logging.Init("")
		if err != nil {
			// Logging is best effort; keep slog's default handler
			slog.Debug("file logging unavailable", "error", err)
			return nil
		}
		logCloser = closer
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(suggest.SuggestCmd())
	rootCmd.AddCommand(serve.ServeCmd())
}

// Execute runs the root command. Errors that a command already reported carry an
// exit code; anything else (bad flags, TUI failures) is printed here.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer closeLog()

	err := rootCmd.ExecuteContext(ctx)
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// closeLog closes the log file opened by PersistentPreRunE.
// It runs after every command, including ones that failed.
func closeLog() {
	if logCloser == nil {
		return
	}
	_ = logCloser.Close()
	logCloser = nil
}
