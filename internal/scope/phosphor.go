package scope

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	phosphorBeam = mustHex("#B4FFB4")
	phosphorGlow = mustHex("#28C83C")
	screenDark   = mustHex("#0F1116")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Phosphor returns the trail color at the given opacity in [0, 1],
// blended from the dark screen toward the phosphor glow.
func Phosphor(alpha float64) lipgloss.Color {
	return lipgloss.Color(screenDark.BlendRgb(phosphorGlow, clamp01(alpha)).Clamped().Hex())
}

// BeamColor returns the spot color for a beam of the given intensity.
// Intensity below 1 dims the spot toward the trail glow.
func BeamColor(intensity float64) lipgloss.Color {
	return lipgloss.Color(phosphorGlow.BlendRgb(phosphorBeam, clamp01(intensity)).Clamped().Hex())
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
