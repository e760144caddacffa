package signal

import (
	"math"

	"crt-scope.klederson.com/internal/config"
)

// Generator produces a deflection voltage at time t (seconds).
type Generator interface {
	Value(t float64) float64
}

// Manual holds a single voltage set by the user. Time is ignored.
type Manual struct {
	value float64
}

// NewManual creates a manual generator holding v.
func NewManual(v float64) *Manual {
	return &Manual{value: v}
}

// Value returns the held voltage.
func (m *Manual) Value(float64) float64 {
	return m.value
}

// Set replaces the held voltage as-is.
func (m *Manual) Set(v float64) {
	m.value = v
}

// Nudge adds delta to the held voltage and clamps it to [-1, 1].
func (m *Manual) Nudge(delta float64) float64 {
	m.value = Clamp(m.value+delta, -1, 1)
	return m.value
}

// Sine is a sinusoidal generator: amp * sin(2π·freq·t + phase).
type Sine struct {
	freq  float64 // Hz
	phase float64 // rad
	amp   float64
}

// NewSine creates a sine generator with the given parameters.
func NewSine(freq, phase, amp float64) *Sine {
	return &Sine{freq: freq, phase: phase, amp: amp}
}

// Value evaluates the sinusoid at time t.
func (s *Sine) Value(t float64) float64 {
	return s.amp * math.Sin(2*math.Pi*s.freq*t+s.phase)
}

func (s *Sine) Frequency() float64 { return s.freq }
func (s *Sine) Phase() float64     { return s.phase }
func (s *Sine) Amplitude() float64 { return s.amp }

// SetFrequency sets the frequency, floored at config.MinFrequency.
func (s *Sine) SetFrequency(hz float64) {
	s.freq = math.Max(config.MinFrequency, hz)
}

// SetPhase sets the phase offset in radians.
func (s *Sine) SetPhase(rad float64) {
	s.phase = rad
}

// SetAmplitude sets the amplitude, floored at config.MinAmplitude.
func (s *Sine) SetAmplitude(a float64) {
	s.amp = math.Max(config.MinAmplitude, a)
}

// AdjustFrequency shifts the frequency by delta Hz.
func (s *Sine) AdjustFrequency(delta float64) { s.SetFrequency(s.freq + delta) }

// AdjustPhase shifts the phase by delta radians.
func (s *Sine) AdjustPhase(delta float64) { s.SetPhase(s.phase + delta) }

// AdjustAmplitude shifts the amplitude by delta.
func (s *Sine) AdjustAmplitude(delta float64) { s.SetAmplitude(s.amp + delta) }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
