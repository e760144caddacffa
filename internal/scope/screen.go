package scope

import (
	"strings"
	"time"

	"crt-scope.klederson.com/internal/crt"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGraticule = lipgloss.Color("#2A3A2E")
	colorAxis      = lipgloss.Color("#3C5A44")
	colorHold      = lipgloss.Color("#FFAA00")

	styleGraticule = lipgloss.NewStyle().Foreground(colorGraticule)
	styleAxis      = lipgloss.NewStyle().Foreground(colorAxis)
	styleHold      = lipgloss.NewStyle().Foreground(colorHold).Bold(true)
)

const (
	divisionsX = 10
	divisionsY = 8
)

// Frame is everything the screen view needs for one tick.
type Frame struct {
	Beam        crt.Point
	Trail       []crt.TrailPoint
	Now         time.Time
	Persistence time.Duration
	Intensity   float64 // beam brightness in [0, 1]
	Stale       bool    // last step was held
}

// RenderScreen draws the phosphor screen: graticule, fading trail and beam.
func RenderScreen(width, height int, f Frame) string {
	if width < 3 || height < 3 {
		return ""
	}

	// Brightest trail opacity per cell. Several entries can land on one cell.
	glow := make([]float64, width*height)
	for _, tp := range f.Trail {
		a := crt.Fade(f.Now.Sub(tp.At), f.Persistence)
		if a <= 0 {
			continue
		}
		col, row := ToCell(tp.Point, width, height)
		if i := row*width + col; a > glow[i] {
			glow[i] = a
		}
	}

	beamCol, beamRow := ToCell(f.Beam, width, height)
	beamStyle := lipgloss.NewStyle().Foreground(BeamColor(f.Intensity)).Bold(true)
	if f.Stale {
		beamStyle = styleHold
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col == beamCol && row == beamRow {
				sb.WriteString(beamStyle.Render("@"))
				continue
			}
			if a := glow[row*width+col]; a > 0 {
				sb.WriteString(lipgloss.NewStyle().Foreground(Phosphor(a * f.Intensity)).Render(string(trailChar(a))))
				continue
			}
			sb.WriteString(graticuleCell(col, row, width, height))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// trailChar picks a glyph that thins out as the trail fades.
func trailChar(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return 'o'
	case alpha > 0.33:
		return ':'
	default:
		return '.'
	}
}

func graticuleCell(col, row, width, height int) string {
	cx, cy := (width-1)/2, (height-1)/2
	onDivX := isDivision(col, width, divisionsX)
	onDivY := isDivision(row, height, divisionsY)

	switch {
	case col == cx && row == cy:
		return styleAxis.Render("+")
	case row == cy:
		if onDivX {
			return styleAxis.Render("+")
		}
		return styleAxis.Render("-")
	case col == cx:
		if onDivY {
			return styleAxis.Render("+")
		}
		return styleAxis.Render("|")
	case onDivX && onDivY:
		return styleGraticule.Render(".")
	}
	return " "
}

// isDivision reports whether pos is the nearest cell to a graticule line.
func isDivision(pos, size, divisions int) bool {
	for d := 0; d <= divisions; d++ {
		if pos == (size-1)*d/divisions {
			return true
		}
	}
	return false
}
