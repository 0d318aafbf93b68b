package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task's title, description or priority",
		Long:  "Update a task. Only the flags you pass are changed; the column is changed with 'task move'.",
		Args:  cobra.NoArgs,
		RunE:  runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - to read from stdin)")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	taskID, _ := cmd.Flags().GetString("id")
	req := boardservice.UpdateTaskRequest{TaskID: taskID}

	if len(cli.ChangedFlags(cmd.Flags(), "title", "description", "priority")) == 0 {
		return cli.UsageError(formatter, "nothing to update: pass --title, --description or --priority")
	}

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		descFlag, _ := cmd.Flags().GetString("description")
		description, err := cli.ReadDescription(cmd, descFlag)
		if err != nil {
			return cli.UsageError(formatter, err.Error())
		}
		req.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		priorityFlag, _ := cmd.Flags().GetString("priority")
		priority, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return cli.HandleError(formatter, err)
		}
		req.Priority = &priority
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, err := cliInstance.App.BoardService.UpdateTask(ctx, req)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %s updated\n", task.ID)
	return nil
}
