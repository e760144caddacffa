package scope

import (
	"strings"

	"crt-scope.klederson.com/internal/crt"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPlate  = lipgloss.Color("#FFAA00")
	colorGun    = lipgloss.Color("#FF3300")
	colorScreen = lipgloss.Color("#C8C8D2")

	stylePlate  = lipgloss.NewStyle().Foreground(colorPlate)
	styleGun    = lipgloss.NewStyle().Foreground(colorGun).Bold(true)
	styleScreen = lipgloss.NewStyle().Foreground(colorScreen)
)

// plateOffset is where the plates are drawn, in normalized deflection.
const plateOffset = 0.8

// TubeView describes a side or top cut through the tube.
type TubeView struct {
	Axis       Axis
	Path       []crt.PathPoint
	PlateStart float64 // normalized z
	PlateEnd   float64
	Intensity  float64
}

type tubeCell int

const (
	cellEmpty tubeCell = iota
	cellAxis
	cellPlate
	cellGun
	cellScreen
	cellBeam
	cellImpact
)

// RenderTube draws the gun, deflection plates, screen and beam path.
func RenderTube(width, height int, v TubeView) string {
	if width < 8 || height < 5 {
		return ""
	}

	grid := make([][]tubeCell, height)
	for i := range grid {
		grid[i] = make([]tubeCell, width)
	}
	set := func(col, row int, c tubeCell) {
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = c
		}
	}

	centerRow := DeflectionToRow(0, height)
	for col := 1; col < width-1; col++ {
		set(col, centerRow, cellAxis)
	}

	pStart := ZToCol(v.PlateStart, width)
	pEnd := ZToCol(v.PlateEnd, width)
	upper := DeflectionToRow(plateOffset, height)
	lower := DeflectionToRow(-plateOffset, height)
	for col := pStart; col <= pEnd; col++ {
		set(col, upper, cellPlate)
		set(col, lower, cellPlate)
	}

	for row := 0; row < height; row++ {
		set(width-1, row, cellScreen)
	}

	if len(v.Path) > 0 {
		for col := 1; col < width-1; col++ {
			z := ColToZ(col, width)
			if z < v.Path[0].Z {
				set(col, centerRow, cellBeam)
				continue
			}
			set(col, DeflectionToRow(PathAt(v.Path, z, v.Axis), height), cellBeam)
		}
		impact := v.Axis.of(v.Path[len(v.Path)-1])
		set(width-1, clampInt(DeflectionToRow(impact, height), 0, height-1), cellImpact)
	}

	set(0, centerRow, cellGun)

	beamStyle := lipgloss.NewStyle().Foreground(Phosphor(v.Intensity))
	impactStyle := lipgloss.NewStyle().Foreground(BeamColor(v.Intensity)).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			switch grid[row][col] {
			case cellAxis:
				sb.WriteString(styleAxis.Render("."))
			case cellPlate:
				sb.WriteString(stylePlate.Render("="))
			case cellGun:
				sb.WriteString(styleGun.Render(">"))
			case cellScreen:
				sb.WriteString(styleScreen.Render("#"))
			case cellBeam:
				sb.WriteString(beamStyle.Render("*"))
			case cellImpact:
				sb.WriteString(impactStyle.Render("@"))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
