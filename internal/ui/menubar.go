package ui

import (
	"fmt"
	"strings"

	"crt-scope.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, mode, model string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"M", "ode"},
		{"K", "inematic"},
		{"C", "lear"},
		{"P", "reset"},
		{"SPC", "pause"},
		{"ESC", "quit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := StyleMenuLabel.Render("Mode: ") + StyleMenuKey.Render(strings.ToUpper(mode)) +
		StyleMenuLabel.Render("  Model: ") + StyleMenuKey.Render(strings.ToUpper(model)) + " "

	left := StyleMenuKey.Render(title) + menu

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
