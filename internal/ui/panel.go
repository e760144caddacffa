package ui

import "strings"

// RenderPanel wraps view content with a titled border of exactly
// width×height cells. The view itself is rendered by the caller.
func RenderPanel(width, height int, title, content string, active bool) string {
	style := StylePanelBorder
	if active {
		style = StylePanelActive
	}
	body := StylePanelTitle.Render(title) + "\n" + content
	return clampLines(style.Width(width-2).Height(height-2).Render(body), height)
}

// clampLines pads or truncates s to exactly n lines.
// lipgloss Height() only sets a minimum; it won't truncate overflow.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
