package task

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <next|prev|up|down|column>",
		Short: "Move a task between or within columns",
		Long: `Move a task.

Targets:
  next, prev   move to the top of the neighbouring column
  up, down     move one position within the current column
  <column>     move to a column by ID or title, at --index (default 0, clamped)

Examples:
  tablero task move --id task-123 next
  tablero task move --id task-123 "In Review" --index 2`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("index", 0, "Position in the destination column (column targets only)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	taskID, _ := cmd.Flags().GetString("id")
	index, _ := cmd.Flags().GetInt("index")
	target := strings.TrimSpace(args[0])

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	svc := cliInstance.App.BoardService

	switch strings.ToLower(target) {
	case "next":
		err = svc.MoveTaskToNextColumn(ctx, taskID)
	case "prev", "previous":
		err = svc.MoveTaskToPrevColumn(ctx, taskID)
	case "up":
		err = svc.MoveTaskUp(ctx, taskID)
	case "down":
		err = svc.MoveTaskDown(ctx, taskID)
	default:
		var columnID string
		columnID, err = svc.ResolveColumn(ctx, target)
		if err == nil {
			err = svc.MoveTaskToColumn(ctx, taskID, columnID, index)
		}
	}
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	task, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task '%s' is now in %s\n", task.Title, task.Status)
	return nil
}
