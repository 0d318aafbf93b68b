package suggest

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// SuggestCmd returns the suggest parent command
func SuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI assistant for tasks",
		Long:  "Ask the AI assistant for tasks. Requires GEMINI_API_KEY (or the variable named by ai.api_key_env).",
	}

	cmd.AddCommand(TasksCmd())
	cmd.AddCommand(SubtasksCmd())

	return cmd
}

// TasksCmd returns the suggest tasks subcommand
func TasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks <project name>",
		Short:   "Generate starter tasks for a project and add them to To Do",
		Example: `  tablero suggest tasks "Marketing website relaunch"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runTasks,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runTasks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	projectName := strings.Join(args, " ")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	created, err := cliInstance.App.BoardService.GenerateTasks(ctx, projectName)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		for _, task := range created {
			fmt.Println(task.ID)
		}
		return nil
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"tasks":   created,
		})
	}

	if len(created) == 0 {
		fmt.Println("The assistant had no suggestions")
		return nil
	}

	fmt.Printf("✓ Added %d tasks to To Do\n", len(created))
	for _, task := range created {
		fmt.Printf("  %s %s %s\n",
			styles.RenderPriority(task.Priority),
			styles.ValueStyle.Render(task.Title),
			styles.SubtitleStyle.Render(task.ID))
	}
	return nil
}

// SubtasksCmd returns the suggest subtasks subcommand
func SubtasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtasks",
		Short: "Suggest steps for completing a task (the board is not changed)",
		Args:  cobra.NoArgs,
		RunE:  runSubtasks,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSubtasks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	taskID, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	subtasks, err := cliInstance.App.BoardService.SuggestSubtasks(ctx, taskID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success":  true,
			"task_id":  taskID,
			"subtasks": subtasks,
		})
	}

	for i, step := range subtasks {
		if formatter.Quiet {
			fmt.Println(step)
			continue
		}
		fmt.Printf("%d. %s\n", i+1, step)
	}
	return nil
}
