package serve

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the board as a JSON API until interrupted.

Routes:
  GET    /api/board                  full board snapshot
  GET    /api/columns                columns in order with their tasks
  POST   /api/tasks                  add a task to To Do
  GET    /api/tasks/:id              one task
  PATCH  /api/tasks/:id              update title, description or priority
  DELETE /api/tasks/:id              delete a task
  POST   /api/tasks/:id/move         move by direction or to a column
  GET    /api/tasks/:id/subtasks     suggested steps for a task
  POST   /api/suggestions            generate tasks for a project name`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.App.Config.Server.Addr
	}

	fmt.Printf("Serving board on %s\n", addr)
	slog.Info("api server starting", "addr", addr)

	if err := api.Serve(ctx, addr, cliInstance.App.BoardService, slog.Default()); err != nil {
		return cli.HandleError(formatter, fmt.Errorf("server stopped: %w", err))
	}

	slog.Info("api server stopped")
	return nil
}
