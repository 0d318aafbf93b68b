package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskViewProps holds the data for the read-only task detail
type TaskViewProps struct {
	Task        *models.Task
	ColumnTitle string
	// Subtasks are assistant suggestions; nil hides the section
	Subtasks []string
	Width    int
	Footer   string
}

// RenderTaskView renders the task detail dialog
func RenderTaskView(props TaskViewProps) string {
	innerWidth := props.Width - TaskViewBoxStyle.GetHorizontalFrameSize()

	meta := fmt.Sprintf("%s  %s  %s",
		RenderPriority(props.Task.Priority),
		IndicatorStyle.Render(props.ColumnTitle),
		IndicatorStyle.Render("created "+props.Task.Created().Local().Format(createdDateLayout)),
	)

	sections := []string{
		TitleStyle.Render(props.Task.Title),
		meta,
		"",
		RenderDescription(DescriptionProps{
			Description: props.Task.Description,
			Width:       innerWidth,
		}),
	}

	if props.Subtasks != nil {
		sections = append(sections, "", TitleStyle.Render("Suggested subtasks"))
		sections = append(sections, RenderSubtasks(props.Subtasks))
	}

	if props.Footer != "" {
		sections = append(sections, "", IndicatorStyle.Render(props.Footer))
	}

	return TaskViewBoxStyle.
		Width(props.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderSubtasks renders suggested subtasks as a numbered list
func RenderSubtasks(subtasks []string) string {
	if len(subtasks) == 0 {
		return SubtleStyle.Render("The assistant had no suggestions")
	}

	lines := make([]string, 0, len(subtasks))
	for i, s := range subtasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	return strings.Join(lines, "\n")
}
