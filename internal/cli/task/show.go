package task

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (or pass it as an argument)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	taskID, _ := cmd.Flags().GetString("id")
	if len(args) == 1 {
		taskID = args[0]
	}
	if taskID == "" {
		return cli.UsageError(formatter, "a task ID is required")
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

	svc := cliInstance.App.BoardService

	task, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	columns, err := svc.GetColumns(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	columnTitle, position := task.Status, -1
	for _, col := range columns {
		if col.ID != task.Status {
			continue
		}
		columnTitle = col.Title
		position = slices.IndexFunc(col.Tasks, func(t *models.Task) bool { return t.ID == task.ID })
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"task": map[string]any{
				"id":          task.ID,
				"title":       task.Title,
				"description": task.Description,
				"priority":    task.Priority,
				"column": map[string]any{
					"id":    task.Status,
					"title": columnTitle,
				},
				"position":  position,
				"createdAt": task.CreatedAt,
			},
		})
	}

	return outputHuman(task, columnTitle)
}

func outputHuman(task *models.Task, columnTitle string) error {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(task.ID))
	content.WriteString("\n\n")

	if task.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		for _, line := range strings.Split(task.Description, "\n") {
			content.WriteString("  " + styles.ValueStyle.Render(line) + "\n")
		}
		content.WriteString("\n")
	}

	fmt.Fprintf(&content, "%s %s  %s %s  %s %s",
		styles.LabelStyle.Render("Priority:"),
		styles.RenderPriority(task.Priority),
		styles.LabelStyle.Render("Column:"),
		styles.ValueStyle.Render(columnTitle),
		styles.LabelStyle.Render("Created:"),
		styles.ValueStyle.Render(cli.FormatCreated(task)),
	)

	fmt.Println(styles.RenderCard(content.String()))
	return nil
}
