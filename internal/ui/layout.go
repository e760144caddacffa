package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the side and top tube views on the left, puts the
// screen in the middle and the parameter column on the right, with the
// menu bar on top and the status bar at the bottom.
func ComposeLayout(menuBar, sideView, topView, screen, params, statusBar string) string {
	left := lipgloss.JoinVertical(lipgloss.Left, sideView, topView)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, screen, params)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
