package crt

import (
	"errors"
	"fmt"
	"math"
)

const (
	electronMass   = 9.109e-31  // kg
	electronCharge = -1.602e-19 // C

	pathSamples = 20 // samples per segment (plates, free flight)
)

// ErrNoAcceleration is returned when the accelerating voltage cannot
// give the electron any forward velocity.
var ErrNoAcceleration = errors.New("accelerating voltage must be positive")

// Geometry describes the tube in meters.
type Geometry struct {
	GunToPlates    float64
	PlateLength    float64
	PlatesToScreen float64
	PlateGapX      float64
	PlateGapY      float64
	ScreenSize     float64 // screen spans ±ScreenSize/2
}

// DefaultGeometry is a small bench tube.
func DefaultGeometry() Geometry {
	return Geometry{
		GunToPlates:    0.02,
		PlateLength:    0.05,
		PlatesToScreen: 0.25,
		PlateGapX:      0.02,
		PlateGapY:      0.02,
		ScreenSize:     0.15,
	}
}

// Length is the gun-to-screen distance.
func (g Geometry) Length() float64 {
	return g.GunToPlates + g.PlateLength + g.PlatesToScreen
}

// PlateSpan returns the plate entry and exit positions on the normalized
// z axis, where -1 is the gun and 1 is the screen.
func (g Geometry) PlateSpan() (start, end float64) {
	l := g.Length()
	return g.GunToPlates/l*2 - 1, (g.GunToPlates+g.PlateLength)/l*2 - 1
}

// PathPoint is a sample of the beam path in normalized tube coordinates.
type PathPoint struct {
	Z, X, Y float64
}

// Trajectory is the result of tracing one electron through the tube.
type Trajectory struct {
	Impact Point       // clipped to [-1, 1]²
	Path   []PathPoint // plates then free flight, X/Y not clipped
}

// Kinematic traces electrons through the deflection plates using the
// closed-form constant-field solution.
type Kinematic struct {
	Geometry Geometry
}

// NewKinematic creates a kinematic model for the given tube.
func NewKinematic(g Geometry) *Kinematic {
	return &Kinematic{Geometry: g}
}

// Trajectory computes where an electron accelerated by vacc lands for
// plate voltages vx and vy, and samples its path for the side views.
func (k *Kinematic) Trajectory(vx, vy, vacc float64) (Trajectory, error) {
	if !(vacc > 0) || math.IsInf(vacc, 0) {
		return Trajectory{}, fmt.Errorf("trajectory at vacc=%v: %w", vacc, ErrNoAcceleration)
	}
	if !finite(vx) || !finite(vy) {
		return Trajectory{}, fmt.Errorf("trajectory: non-finite plate voltage (vx=%v, vy=%v)", vx, vy)
	}

	g := k.Geometry
	v0 := math.Sqrt(2 * math.Abs(electronCharge) * vacc / electronMass)

	ax := electronCharge * (vx / g.PlateGapX) / electronMass
	ay := electronCharge * (vy / g.PlateGapY) / electronMass

	tPlates := g.PlateLength / v0
	tFree := g.PlatesToScreen / v0

	dxPlates := 0.5 * ax * tPlates * tPlates
	dyPlates := 0.5 * ay * tPlates * tPlates
	vxExit := ax * tPlates
	vyExit := ay * tPlates

	half := g.ScreenSize / 2
	impact := Point{
		X: clampUnit((dxPlates + vxExit*tFree) / half),
		Y: clampUnit((dyPlates + vyExit*tFree) / half),
	}

	l := g.Length()
	z1 := g.GunToPlates
	z2 := g.GunToPlates + g.PlateLength
	path := make([]PathPoint, 0, 2*pathSamples)

	for i := 0; i < pathSamples; i++ {
		z := z1 + (z2-z1)*float64(i)/float64(pathSamples-1)
		tl := (z - z1) / v0
		path = append(path, PathPoint{
			Z: z/l*2 - 1,
			X: 0.5 * ax * tl * tl / half,
			Y: 0.5 * ay * tl * tl / half,
		})
	}
	for i := 0; i < pathSamples; i++ {
		z := z2 + (l-z2)*float64(i)/float64(pathSamples-1)
		tl := (z - z2) / v0
		path = append(path, PathPoint{
			Z: z/l*2 - 1,
			X: (dxPlates + vxExit*tl) / half,
			Y: (dyPlates + vyExit*tl) / half,
		})
	}

	return Trajectory{Impact: impact, Path: path}, nil
}

// BeamIntensity maps the accelerating voltage to a brightness in [0.3, 1].
func BeamIntensity(vacc float64) float64 {
	v := math.Max(500, math.Min(4000, vacc))
	return 0.3 + 0.7*(v-500)/3500
}

// PathTo returns a beam path with the tube's deflection profile that ends
// at impact. It lets models without kinematics draw the side views.
func (k *Kinematic) PathTo(impact Point) []PathPoint {
	g := k.Geometry
	l := g.Length()
	z1 := g.GunToPlates
	z2 := g.GunToPlates + g.PlateLength
	end := 0.5*g.PlateLength*g.PlateLength + g.PlateLength*g.PlatesToScreen

	path := make([]PathPoint, 0, 2*pathSamples)
	add := func(z, profile float64) {
		f := profile / end
		path = append(path, PathPoint{Z: z/l*2 - 1, X: impact.X * f, Y: impact.Y * f})
	}
	for i := 0; i < pathSamples; i++ {
		d := g.PlateLength * float64(i) / float64(pathSamples-1)
		add(z1+d, 0.5*d*d)
	}
	for i := 0; i < pathSamples; i++ {
		d := g.PlatesToScreen * float64(i) / float64(pathSamples-1)
		add(z2+d, 0.5*g.PlateLength*g.PlateLength+g.PlateLength*d)
	}
	return path
}
