package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}             ┃
//	┃ {first description line} ┃
//	┃ [priority]   Jan 2, 2006 ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed width and height.
func RenderTask(task *models.Task, selected bool) string {
	bg := theme.TaskBg
	border := theme.TaskBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + truncate(task.Title, taskTitleMaxLength))

	content := title + "\n" +
		renderTaskSnippet(task, bg) + "\n" +
		renderTaskMetadata(task, bg)

	style := TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(content)
}

func renderTaskSnippet(task *models.Task, bg string) string {
	style := SubtleStyle.Background(lipgloss.Color(bg))

	line, _, _ := strings.Cut(strings.TrimSpace(task.Description), "\n")
	if line == "" {
		return " " + style.Render("no description")
	}
	return " " + style.Italic(false).Render(truncate(line, taskTitleMaxLength))
}

// renderTaskMetadata shows the priority badge and the creation date in local time
func renderTaskMetadata(task *models.Task, bg string) string {
	priority := RenderPriority(task.Priority)
	created := IndicatorStyle.Render(task.Created().Local().Format(createdDateLayout))

	gap := TaskCardWidth - 2 - lipgloss.Width(priority) - lipgloss.Width(created) - 2
	gap = max(gap, 1)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Render(" " + priority + strings.Repeat(" ", gap) + created)
}

// RenderPriority renders a priority badge such as "[high]" in the priority's color
func RenderPriority(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render("[" + p.String() + "]")
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
