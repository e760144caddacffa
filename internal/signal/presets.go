package signal

import (
	"fmt"
	"math"
)

// Preset is a Lissajous figure: frequency ratio m:n with phase delta on Y.
type Preset struct {
	M, N  int
	Delta float64 // rad
	Label string
}

var presetRatios = [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 3}}

var presetDeltas = []struct {
	val   float64
	label string
}{
	{0, "0"},
	{math.Pi / 4, "π/4"},
	{math.Pi / 2, "π/2"},
	{3 * math.Pi / 4, "3π/4"},
	{math.Pi, "π"},
}

// Presets is the ratio × phase grid, row-major by ratio.
var Presets = buildPresets()

func buildPresets() []Preset {
	out := make([]Preset, 0, len(presetRatios)*len(presetDeltas))
	for _, r := range presetRatios {
		for _, d := range presetDeltas {
			out = append(out, Preset{
				M:     r[0],
				N:     r[1],
				Delta: d.val,
				Label: fmt.Sprintf("%d:%d δ=%s", r[0], r[1], d.label),
			})
		}
	}
	return out
}

// Apply drives x at M Hz with zero phase and y at N Hz shifted by Delta,
// both at amplitude amp.
func (p Preset) Apply(x, y *Sine, amp float64) {
	x.SetFrequency(float64(p.M))
	y.SetFrequency(float64(p.N))
	x.SetPhase(0)
	y.SetPhase(p.Delta)
	x.SetAmplitude(amp)
	y.SetAmplitude(amp)
}
