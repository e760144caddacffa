package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Input modes.
const (
	ModeManual = "manual"
	ModeSine   = "sine"
)

// Beam models.
const (
	ModelGain      = "gain"
	ModelKinematic = "kinematic"
)

// Settings holds the startup parameters taken from the command line.
type Settings struct {
	Mode      string
	Model     string
	Va        float64
	Vacc      float64
	FreqX     float64
	FreqY     float64
	Phase     float64
	Amp       float64
	PersistMs int
	FPS       int
	LogFile   string
}

// Default returns the settings the program starts with when no flags are given.
func Default() Settings {
	return Settings{
		Mode:      ModeManual,
		Model:     ModelGain,
		Va:        VaDefault,
		Vacc:      VaccDefault,
		FreqX:     FreqDefault,
		FreqY:     FreqDefault,
		Phase:     PhaseDefault,
		Amp:       AmpDefault,
		PersistMs: PersistMsDefault,
		FPS:       TargetFPS,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch s.Mode {
	case ModeManual, ModeSine:
	default:
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalidSettings, s.Mode, ModeManual, ModeSine)
	}

	switch s.Model {
	case ModelGain, ModelKinematic:
	default:
		return fmt.Errorf("%w: model %q (want %s or %s)", ErrInvalidSettings, s.Model, ModelGain, ModelKinematic)
	}

	for _, f := range []struct {
		name string
		val  float64
	}{
		{"va", s.Va}, {"vacc", s.Vacc}, {"freq-x", s.FreqX},
		{"freq-y", s.FreqY}, {"phase", s.Phase}, {"amp", s.Amp},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidSettings, f.name)
		}
	}

	if s.Va < MinVa {
		return fmt.Errorf("%w: va %.2f below %.2f", ErrInvalidSettings, s.Va, MinVa)
	}
	if s.Vacc < VaccMin || s.Vacc > VaccMax {
		return fmt.Errorf("%w: vacc %.0f outside [%.0f, %.0f]", ErrInvalidSettings, s.Vacc, VaccMin, VaccMax)
	}
	if s.FreqX < MinFrequency || s.FreqY < MinFrequency {
		return fmt.Errorf("%w: frequencies must be >= %.1f Hz", ErrInvalidSettings, MinFrequency)
	}
	if s.Amp < MinAmplitude {
		return fmt.Errorf("%w: amp %.2f below %.2f", ErrInvalidSettings, s.Amp, MinAmplitude)
	}
	if s.PersistMs < PersistMsMin || s.PersistMs > PersistMsMax {
		return fmt.Errorf("%w: persist %d ms outside [%d, %d]", ErrInvalidSettings, s.PersistMs, PersistMsMin, PersistMsMax)
	}
	if s.FPS < 1 || s.FPS > 240 {
		return fmt.Errorf("%w: fps %d outside [1, 240]", ErrInvalidSettings, s.FPS)
	}
	return nil
}
