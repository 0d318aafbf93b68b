package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ n more (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ n more (if more tasks below)
//
// selectedTaskIdx is -1 when the cursor is in another column. height is the
// outer height of the column; 0 renders every task.
func RenderColumn(column models.ColumnSummary, selected bool, selectedTaskIdx int, height int) string {
	header := fmt.Sprintf("%s (%d)", column.Title, len(column.Tasks))

	var b strings.Builder
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")

	if len(column.Tasks) == 0 {
		b.WriteString(SubtleStyle.Padding(1, 0).Render("No tasks"))
	} else {
		start, end := visibleRange(len(column.Tasks), selectedTaskIdx, height)

		if start > 0 {
			b.WriteString(IndicatorStyle.Render(fmt.Sprintf("▲ %d more", start)))
		}
		b.WriteString("\n")

		for i := start; i < end; i++ {
			b.WriteString(RenderTask(column.Tasks[i], i == selectedTaskIdx))
			b.WriteString("\n")
		}

		if end < len(column.Tasks) {
			b.WriteString(IndicatorStyle.Render(fmt.Sprintf("▼ %d more", len(column.Tasks)-end)))
		}
	}

	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(b.String())
}

// visibleRange returns the half-open range of tasks that fit in the column,
// scrolled so the selected task stays on screen
func visibleRange(count, selected, height int) (int, int) {
	if height <= 0 {
		return 0, count
	}

	available := height - columnBorderOverhead - headerLines - scrollIndicatorLines
	visible := max(available/TaskCardHeight, 1)
	if visible >= count {
		return 0, count
	}

	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	return start, min(start+visible, count)
}
