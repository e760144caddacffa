package app

import (
	"time"

	"crt-scope.klederson.com/internal/config"
)

// FPSMeter estimates the frame rate from recent frame intervals.
type FPSMeter struct {
	intervals *Ring
	fps       float64
}

// NewFPSMeter starts the estimate at the target rate.
func NewFPSMeter(target int) *FPSMeter {
	return &FPSMeter{
		intervals: NewRing(config.FrameWindow),
		fps:       float64(target),
	}
}

// Observe records one frame interval and returns the smoothed estimate.
func (f *FPSMeter) Observe(dt time.Duration) float64 {
	if dt <= 0 {
		return f.fps
	}
	f.intervals.Push(dt.Seconds())
	measured := 1 / f.intervals.Mean()
	f.fps = (1-config.FPSSmoothing)*f.fps + config.FPSSmoothing*measured
	return f.fps
}

// FPS returns the current estimate.
func (f *FPSMeter) FPS() float64 {
	return f.fps
}
