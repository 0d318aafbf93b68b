package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the To Do column",
		Long: `Add a task to the top of the To Do column.

Without --title the task is called "New Task"; without --priority it is medium.
Pass --description - to read the description from stdin.`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Task description (use - to read from stdin)")
	cmd.Flags().String("priority", "", "Task priority: low, medium, high (default medium)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	descFlag, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")

	var priority models.Priority
	if priorityFlag != "" {
		p, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return cli.HandleError(formatter, err)
		}
		priority = p
	}

	description, err := cli.ReadDescription(cmd, descFlag)
	if err != nil {
		return cli.UsageError(formatter, err.Error())
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

	task, err := cliInstance.App.BoardService.CreateTask(ctx, boardservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task '%s' created (ID: %s, priority: %s)\n", task.Title, task.ID, task.Priority)
	return nil
}
