// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// Modal sizing
const (
	ModalWidthNumerator   = 6
	ModalWidthDenominator = 10
	ModalMinWidth         = 40
	ModalMaxWidth         = 90
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth returns the width of a centered dialog for the given screen width
func ModalWidth(screenWidth int) int {
	width := screenWidth * ModalWidthNumerator / ModalWidthDenominator
	width = min(max(width, ModalMinWidth), ModalMaxWidth)
	return min(width, screenWidth)
}
