package config

import "time"

const (
	// Beam model
	GainNumerator = 0.8 // Deflection gain numerator: k = 0.8 / max(MinVa, Va)
	MinVa         = 0.2 // Acceleration voltage floor (caps gain at 4.0)
	VaDefault     = 1.0 // Initial acceleration voltage (abstract units)
	VaStep        = 0.1 // Va change per key press

	// Persistence (milliseconds)
	PersistMsDefault = 500
	PersistMsMin     = 50
	PersistMsMax     = 2000
	PersistMsStep    = 50

	// Manual input
	VManualStep = 0.1 // Vx/Vy change per key press, clamped to [-1, 1]

	// Sine generators
	FreqDefault  = 1.0 // Hz
	FreqStep     = 0.2 // Hz per key press
	MinFrequency = 0.1 // Hz
	PhaseDefault = 0.0 // rad
	PhaseStep    = 0.1 // rad per key press
	AmpDefault   = 0.8
	AmpStep      = 0.1
	MinAmplitude = 0.1

	// Kinematic model (SI units)
	VaccDefault  = 2000.0 // Accelerating voltage [V]
	VaccStep     = 100.0  // [V] per key press
	VaccMin      = 500.0
	VaccMax      = 4000.0
	VoltsPerUnit = 200.0 // Plate volts per unit of generator output

	// Lissajous presets
	PresetAmp = 0.5 // Amplitude applied to both axes

	// Display
	AspectRatio  = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS    = 60  // Target frames per second
	FPSSmoothing = 0.1 // EMA weight of the newest FPS measurement
	FrameWindow  = 30  // Frame intervals averaged for the FPS estimate

	// App
	AppName    = "CRT-SCOPE"
	AppVersion = "1.0"
)

// TickInterval is the frame period at the given frame rate.
func TickInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = TargetFPS
	}
	return time.Second / time.Duration(fps)
}
