package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the bottom-line summary of the running simulation.
type Status struct {
	Running   bool
	Held      bool // last frame kept the previous beam state
	Points    int  // live trail entries
	PersistMs int
	FPS       float64
	Preset    string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusRunning.Render("[RUNNING]")
	if !s.Running {
		state = StyleStatusPaused.Render("[PAUSED]")
	}
	if s.Held {
		state += " " + StyleHold.Render("[HOLD]")
	}

	info := fmt.Sprintf(" Trail: %d pts  Persist: %d ms  FPS~%.0f", s.Points, s.PersistMs, s.FPS)
	if s.Preset != "" {
		info += "  Preset: " + s.Preset
	}

	content := state + StyleStatusBar.Render(info)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
