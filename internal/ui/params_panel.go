package ui

import (
	"fmt"
	"math"
	"strings"

	"crt-scope.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// HUD carries the parameter readout shown beside the screen.
type HUD struct {
	Mode      string
	Model     string
	Va        float64
	Vacc      float64
	Vx, Vy    float64
	FreqX     float64
	FreqY     float64
	Phase     float64 // Y phase minus X phase
	Amp       float64
	PersistMs int
	TraceX    []float64 // recent beam x positions, oldest first
	TraceY    []float64
}

var controlHelp = []string{
	"M mode   K model   C clear",
	"WASD Vx/Vy   1/2 Va or Vacc",
	"</> fx   v/^ fy   Q/E phase",
	"Z/X amp   T/G persist",
	"P or [/] preset   SPC pause",
}

// RenderParamsPanel renders the parameter readout, beam traces and
// phase dial.
func RenderParamsPanel(width, height int, h HUD) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{StylePanelTitle.Render("PARAMETERS"), StyleSeparator.Render(strings.Repeat("-", innerW))}

	accel := fmt.Sprintf("%.2f", h.Va)
	if h.Model == config.ModelKinematic {
		accel = fmt.Sprintf("%.0f V", h.Vacc)
	}

	fields := []struct{ label, value string }{
		{"Mode", strings.ToUpper(h.Mode)},
		{"Accel", accel},
		{"Vx / Vy", fmt.Sprintf("%+.2f / %+.2f", h.Vx, h.Vy)},
		{"fx / fy", fmt.Sprintf("%.2f / %.2f Hz", h.FreqX, h.FreqY)},
		{"dPhase", fmt.Sprintf("%.2f rad", h.Phase)},
		{"Amp", fmt.Sprintf("%.2f", h.Amp)},
		{"Persist", fmt.Sprintf("%d ms", h.PersistMs)},
	}
	for _, f := range fields {
		lines = append(lines, StyleFieldLabel.Render(fmt.Sprintf("  %-9s", f.label))+StyleFieldValue.Render(f.value))
	}

	barW := innerW - 14
	if barW < 6 {
		barW = 6
	}
	lines = append(lines, "",
		StyleFieldLabel.Render("  Persist  ")+renderLevelBar(
			float64(h.PersistMs-config.PersistMsMin)/float64(config.PersistMsMax-config.PersistMsMin), barW))

	sparkW := innerW - 6
	if sparkW < 8 {
		sparkW = 8
	}
	sparkSty := lipgloss.NewStyle().Foreground(ColorGreen)
	lines = append(lines,
		StyleFieldLabel.Render("  X  ")+sparkSty.Render(renderSparkline(h.TraceX, sparkW)),
		StyleFieldLabel.Render("  Y  ")+sparkSty.Render(renderSparkline(h.TraceY, sparkW)),
		"")

	// Dial takes what the help text leaves.
	dialH := height - 2 - len(lines) - len(controlHelp) - 1
	if dialH >= 5 {
		dialW := innerW
		if dialW > dialH*3 {
			dialW = dialH * 3
		}
		pad := strings.Repeat(" ", max(0, (innerW-dialW)/2))
		for _, dl := range strings.Split(RenderPhaseDial(dialW, dialH, h.Phase), "\n") {
			lines = append(lines, pad+dl)
		}
	}

	lines = append(lines, "")
	for _, hl := range controlHelp {
		lines = append(lines, StyleHelp.Render(" "+hl))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 {
		lines = lines[:max(0, height-2)]
	}

	return clampLines(StylePanelBorder.Width(width-2).Height(height-2).Render(strings.Join(lines, "\n")), height)
}

// renderLevelBar draws a bar filled to ratio in [0, 1].
func renderLevelBar(ratio float64, width int) string {
	if !(ratio > 0) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	filledPart := lipgloss.NewStyle().Foreground(ColorPhosphor).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

// renderSparkline plots the last width values, scaled to [-1, 1].
func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		v := values[i]
		if math.IsNaN(v) {
			sb.WriteByte(' ')
			continue
		}
		idx := int(math.Round((v + 1) / 2 * float64(len(chars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
