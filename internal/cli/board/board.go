package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect the board",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every column and its tasks",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cmd.Flags().String("column", "", "Only show this column (ID or title)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	columnRef, _ := cmd.Flags().GetString("column")

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

	columns, err := svc.GetColumns(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if columnRef != "" {
		columnID, err := svc.ResolveColumn(ctx, columnRef)
		if err != nil {
			return cli.HandleError(formatter, err)
		}
		for _, col := range columns {
			if col.ID == columnID {
				columns = []models.ColumnSummary{col}
				break
			}
		}
	}

	if formatter.Quiet {
		for _, col := range columns {
			for _, task := range col.Tasks {
				fmt.Println(task.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"columns": columns,
		})
	}

	for i, col := range columns {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s\n", styles.ColumnStyle.Render(col.Title), styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(col.Tasks))))
		if len(col.Tasks) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("  No tasks"))
			continue
		}
		for _, task := range col.Tasks {
			fmt.Println(formatTaskLine(task))
		}
	}
	return nil
}

func formatTaskLine(task *models.Task) string {
	var line strings.Builder
	line.WriteString("  ")
	line.WriteString(styles.RenderPriority(task.Priority))
	line.WriteString(" ")
	line.WriteString(styles.ValueStyle.Render(task.Title))
	line.WriteString(" ")
	line.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s · %s", task.ID, cli.FormatCreated(task))))
	return line.String()
}
