package app

import (
	"io"
	"math"
	"time"

	"crt-scope.klederson.com/internal/config"
	"crt-scope.klederson.com/internal/crt"
	"crt-scope.klederson.com/internal/signal"
	"github.com/sirupsen/logrus"
)

// Simulation owns the generators and beam models and advances them one
// frame at a time. It has no knowledge of the terminal.
type Simulation struct {
	mode  string
	model string
	va    float64
	vacc  float64

	manualX, manualY *signal.Manual
	sineX, sineY     *signal.Sine

	beam *crt.Model
	tube *crt.Kinematic
	path []crt.PathPoint

	elapsed float64 // seconds of simulated time
	vx, vy  float64 // last sampled generator outputs
	preset  int     // index into signal.Presets, -1 when none applied

	log logrus.FieldLogger
}

// NewSimulation builds a simulation from validated settings.
func NewSimulation(s config.Settings, log logrus.FieldLogger, opts ...crt.Option) *Simulation {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	tube := crt.NewKinematic(crt.DefaultGeometry())
	return &Simulation{
		mode:    s.Mode,
		model:   s.Model,
		va:      s.Va,
		vacc:    s.Vacc,
		manualX: signal.NewManual(0),
		manualY: signal.NewManual(0),
		sineX:   signal.NewSine(s.FreqX, s.Phase, s.Amp),
		sineY:   signal.NewSine(s.FreqY, s.Phase, s.Amp),
		beam:    crt.NewModel(s.PersistMs, opts...),
		tube:    tube,
		path:    tube.PathTo(crt.Point{}),
		preset:  -1,
		log:     log,
	}
}

// generators returns the active X and Y sources for the current mode.
func (s *Simulation) generators() (signal.Generator, signal.Generator) {
	if s.mode == config.ModeSine {
		return s.sineX, s.sineY
	}
	return s.manualX, s.manualY
}

// Step advances simulated time by dt, samples the generators and moves
// the beam. A failed frame holds the previous beam state.
func (s *Simulation) Step(dt time.Duration) crt.Point {
	s.elapsed += dt.Seconds()

	gx, gy := s.generators()
	s.vx, s.vy = gx.Value(s.elapsed), gy.Value(s.elapsed)

	switch s.model {
	case config.ModelKinematic:
		tr, err := s.tube.Trajectory(s.vx*config.VoltsPerUnit, s.vy*config.VoltsPerUnit, s.vacc)
		if err != nil {
			s.beam.Hold()
			s.log.WithError(err).WithField("t", s.elapsed).Debug("trajectory failed, holding beam")
			return s.beam.Position()
		}
		s.beam.Record(tr.Impact.X, tr.Impact.Y)
		s.path = tr.Path
	default:
		p := s.beam.Step(dt, s.vx, s.vy, s.va)
		if !s.beam.Stale() {
			s.path = s.tube.PathTo(p)
		}
	}

	if s.beam.Stale() {
		s.log.WithFields(logrus.Fields{
			"t":  s.elapsed,
			"vx": s.vx,
			"vy": s.vy,
		}).Debug("non-finite beam input, holding beam")
	}
	return s.beam.Position()
}

// ToggleMode switches between manual and sine input.
func (s *Simulation) ToggleMode() {
	if s.mode == config.ModeSine {
		s.mode = config.ModeManual
	} else {
		s.mode = config.ModeSine
	}
	s.log.WithField("mode", s.mode).Info("input mode changed")
}

// ToggleModel switches between the gain and kinematic beam models.
func (s *Simulation) ToggleModel() {
	if s.model == config.ModelKinematic {
		s.model = config.ModelGain
	} else {
		s.model = config.ModelKinematic
	}
	s.log.WithField("model", s.model).Info("beam model changed")
}

// AdjustAccel steps the acceleration voltage of the active model by dir
// (+1 or -1) increments.
func (s *Simulation) AdjustAccel(dir int) {
	if s.model == config.ModelKinematic {
		s.vacc = signal.Clamp(s.vacc+float64(dir)*config.VaccStep, config.VaccMin, config.VaccMax)
		return
	}
	s.va = math.Max(config.MinVa, s.va+float64(dir)*config.VaStep)
}

// NudgeManual moves the manual voltages. Ignored outside manual mode.
func (s *Simulation) NudgeManual(dx, dy float64) {
	if s.mode != config.ModeManual {
		return
	}
	s.manualX.Nudge(dx)
	s.manualY.Nudge(dy)
}

// AdjustFrequency changes the X and Y sine frequencies. Ignored outside sine mode.
func (s *Simulation) AdjustFrequency(dx, dy float64) {
	if s.mode != config.ModeSine {
		return
	}
	s.sineX.AdjustFrequency(dx)
	s.sineY.AdjustFrequency(dy)
	s.preset = -1
}

// AdjustPhase shifts the X phase. Ignored outside sine mode.
func (s *Simulation) AdjustPhase(delta float64) {
	if s.mode != config.ModeSine {
		return
	}
	s.sineX.AdjustPhase(delta)
	s.preset = -1
}

// AdjustAmplitude changes both sine amplitudes. Ignored outside sine mode.
func (s *Simulation) AdjustAmplitude(delta float64) {
	if s.mode != config.ModeSine {
		return
	}
	s.sineX.AdjustAmplitude(delta)
	s.sineY.AdjustAmplitude(delta)
}

// AdjustPersistence steps the trail window and returns the stored value.
func (s *Simulation) AdjustPersistence(dir int) int {
	return s.beam.AdjustPersistence(dir * config.PersistMsStep)
}

// CyclePreset applies the next (dir > 0) or previous Lissajous preset and
// switches to sine mode.
func (s *Simulation) CyclePreset(dir int) signal.Preset {
	n := len(signal.Presets)
	switch {
	case s.preset < 0 && dir < 0:
		s.preset = n - 1
	case s.preset < 0:
		s.preset = 0
	default:
		s.preset = ((s.preset+dir)%n + n) % n
	}
	p := signal.Presets[s.preset]
	p.Apply(s.sineX, s.sineY, config.PresetAmp)
	s.mode = config.ModeSine
	s.log.WithField("preset", p.Label).Info("preset applied")
	return p
}

// ClearTrail drops the persistence trail.
func (s *Simulation) ClearTrail() {
	s.beam.Clear()
}

// Beam exposes the beam model for rendering.
func (s *Simulation) Beam() *crt.Model { return s.beam }

// Path is the beam path for the side and top views.
func (s *Simulation) Path() []crt.PathPoint { return s.path }

// Geometry is the tube geometry used for the side and top views.
func (s *Simulation) Geometry() crt.Geometry { return s.tube.Geometry }

// Intensity is the beam brightness for the active model.
func (s *Simulation) Intensity() float64 {
	if s.model == config.ModelKinematic {
		return crt.BeamIntensity(s.vacc)
	}
	return 1
}

// Preset returns the label of the active preset, or "" if none.
func (s *Simulation) Preset() string {
	if s.preset < 0 {
		return ""
	}
	return signal.Presets[s.preset].Label
}

// Current input mode, beam model and acceleration voltages.
func (s *Simulation) Mode() string  { return s.mode }
func (s *Simulation) Model() string { return s.model }
func (s *Simulation) Va() float64   { return s.va }
func (s *Simulation) Vacc() float64 { return s.vacc }

// Inputs returns the last sampled generator outputs.
func (s *Simulation) Inputs() (vx, vy float64) { return s.vx, s.vy }

// Sines returns the sinusoidal generators.
func (s *Simulation) Sines() (x, y *signal.Sine) { return s.sineX, s.sineY }

// RelativePhase is the Y phase minus the X phase, the value that shapes
// the Lissajous figure.
func (s *Simulation) RelativePhase() float64 {
	return s.sineY.Phase() - s.sineX.Phase()
}
