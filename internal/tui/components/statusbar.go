package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// StatusBarProps holds everything the status bar shows
type StatusBarProps struct {
	Width        int
	Notification *state.Notification
	// Spinner is the rendered spinner frame, shown while the assistant works
	Spinner  string
	Busy     bool
	TaskHint string
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: the app name, then the spinner or the latest notification.
// Right side: the help hint.
func RenderStatusBar(props StatusBarProps) string {
	left := TitleStyle.Render("tablero")

	switch {
	case props.Busy:
		left += " " + props.Spinner + " " + IndicatorStyle.Render("Asking the assistant...")
	case props.Notification != nil:
		left += " " + RenderNotification(*props.Notification)
	case props.TaskHint != "":
		left += " " + IndicatorStyle.Render(props.TaskHint)
	}

	right := IndicatorStyle.Render("press ? for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := strings.Repeat(" ", gapWidth)

	return StatusBarStyle.Width(props.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right),
	)
}

// RenderNotification renders a notification as a colored banner
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return ErrorBannerStyle.Render("✗ " + n.Message)
	case state.LevelWarning:
		return WarningBannerStyle.Render("! " + n.Message)
	default:
		return InfoBannerStyle.Render("✓ " + n.Message)
	}
}
