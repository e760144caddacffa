package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dialCell kinds, in increasing draw priority.
const (
	dialEmpty = iota
	dialRing
	dialNeedle
	dialMark
)

type dialGrid struct {
	w, h  int
	chars [][]byte
	kinds [][]int
}

func newDialGrid(w, h int) *dialGrid {
	g := &dialGrid{w: w, h: h, chars: make([][]byte, h), kinds: make([][]int, h)}
	for r := range g.chars {
		g.chars[r] = []byte(strings.Repeat(" ", w))
		g.kinds[r] = make([]int, w)
	}
	return g
}

func (g *dialGrid) set(col, row int, ch byte, kind int) bool {
	if col < 0 || col >= g.w || row < 0 || row >= g.h || kind < g.kinds[row][col] {
		return false
	}
	g.chars[row][col] = ch
	g.kinds[row][col] = kind
	return true
}

// RenderPhaseDial draws the relative phase as a needle on an elliptical
// dial. 0 rad points right and the needle turns counterclockwise.
func RenderPhaseDial(width, height int, phase float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	g := newDialGrid(width, height)
	fcx, fcy := float64(width-1)/2, float64(height-1)/2
	rx, ry := math.Max(3, fcx-1), math.Max(1, fcy-1)
	at := func(a, r float64) (int, int) {
		return int(math.Round(fcx + r*rx*math.Cos(a))), int(math.Round(fcy - r*ry*math.Sin(a)))
	}

	const ringSteps = 80
	for i := 0; i < ringSteps; i++ {
		a := float64(i) * 2 * math.Pi / ringSteps
		col, row := at(a, 1)
		g.set(col, row, ringChar(a), dialRing)
	}

	const reach = 0.85
	n := int(math.Max(2, math.Max(rx, ry)*reach))
	tipCol, tipRow := at(phase, 0)
	for s := 1; s <= n; s++ {
		col, row := at(phase, reach*float64(s)/float64(n))
		if g.set(col, row, shaftChar(phase), dialNeedle) {
			tipCol, tipRow = col, row
		}
	}
	g.set(tipCol, tipRow, arrowTip(phase), dialNeedle)

	cx, cy := at(0, 0)
	g.set(cx, cy, '+', dialMark)
	g.set(cx+int(math.Round(rx))+1, cy, '0', dialMark)

	styles := map[int]lipgloss.Style{
		dialRing:   lipgloss.NewStyle().Foreground(ColorMidGreen),
		dialNeedle: lipgloss.NewStyle().Foreground(ColorPhosphor).Bold(true),
		dialMark:   lipgloss.NewStyle().Foreground(ColorLabel).Bold(true),
	}

	rows := make([]string, height)
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < width; c++ {
			if st, ok := styles[g.kinds[r][c]]; ok {
				sb.WriteString(st.Render(string(g.chars[r][c])))
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// sector buckets an angle into eighths: 0 is east, 2 north, 4 west, 6 south.
func sector(a float64) int {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Round(a/(math.Pi/4))) % 8
}

// ringChar is the glyph tangent to the dial at angle a.
func ringChar(a float64) byte {
	return "|\\-/|\\-/"[sector(a)]
}

// shaftChar is the glyph along a needle pointing at angle a.
func shaftChar(a float64) byte {
	return "-/|\\-/|\\"[sector(a)]
}

func arrowTip(a float64) byte {
	return ">/^\\</v\\"[sector(a)]
}
