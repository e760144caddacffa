package scope

import (
	"math"

	"crt-scope.klederson.com/internal/crt"
)

// ToCell maps a normalized screen point to a cell in a width×height grid.
// (-1, 1) is the top-left cell and (1, -1) the bottom-right.
func ToCell(p crt.Point, width, height int) (col, row int) {
	col = int(math.Round((p.X*0.5 + 0.5) * float64(width-1)))
	row = int(math.Round((-p.Y*0.5 + 0.5) * float64(height-1)))
	return clampInt(col, 0, width-1), clampInt(row, 0, height-1)
}

// ZToCol maps a normalized tube position (-1 gun, 1 screen) to a column.
func ZToCol(z float64, width int) int {
	return clampInt(int(math.Round((z*0.5+0.5)*float64(width-1))), 0, width-1)
}

// ColToZ is the inverse of ZToCol for the column's center.
func ColToZ(col, width int) float64 {
	if width < 2 {
		return 0
	}
	return float64(col)/float64(width-1)*2 - 1
}

// DeflectionToRow maps a deflection in [-1, 1] to a row, positive up.
// Values outside the range map outside [0, height) and are not clamped.
func DeflectionToRow(d float64, height int) int {
	return int(math.Round((-d*0.5 + 0.5) * float64(height-1)))
}

// PathAt interpolates the path's deflection on the chosen axis at z.
// Before the first sample the beam is undeflected; past the last sample
// the last value holds.
func PathAt(path []crt.PathPoint, z float64, axis Axis) float64 {
	if len(path) == 0 || z <= path[0].Z {
		return 0
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if z > b.Z {
			continue
		}
		span := b.Z - a.Z
		if span <= 0 {
			return axis.of(b)
		}
		f := (z - a.Z) / span
		return axis.of(a) + (axis.of(b)-axis.of(a))*f
	}
	return axis.of(path[len(path)-1])
}

// Axis selects which deflection a tube view shows.
type Axis int

const (
	AxisY Axis = iota // side view: z vs y
	AxisX             // top view: z vs x
)

func (a Axis) of(p crt.PathPoint) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Label is the view title for the axis.
func (a Axis) Label() string {
	if a == AxisX {
		return "TOP (Z-X)"
	}
	return "SIDE (Z-Y)"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
