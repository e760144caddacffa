package app

import (
	"math"
	"strings"
	"testing"
	"time"

	"crt-scope.klederson.com/internal/config"
	"crt-scope.klederson.com/internal/crt"
	"crt-scope.klederson.com/internal/signal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T, mutate func(*config.Settings)) (*Simulation, *test.Hook) {
	t.Helper()
	s := config.Default()
	if mutate != nil {
		mutate(&s)
	}
	require.NoError(t, s.Validate())

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	clk := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sim := NewSimulation(s, log, crt.WithClock(func() time.Time { return clk }))
	return sim, hook
}

func TestRing(t *testing.T) {
	t.Parallel()

	r := NewRing(3)
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())
	assert.Equal(t, 0.0, r.Mean())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []float64{1, 2}, r.Values())
	assert.Equal(t, 1.5, r.Mean())

	r.Push(3)
	r.Push(4)
	assert.Equal(t, []float64{2, 3, 4}, r.Values())
	assert.Equal(t, 4.0, r.Last())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3.0, r.Mean())

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Len(t, NewRing(0).buf, 1)
}

func TestFPSMeter(t *testing.T) {
	t.Parallel()

	f := NewFPSMeter(60)
	assert.Equal(t, 60.0, f.FPS())

	for i := 0; i < 500; i++ {
		f.Observe(time.Second / 30)
	}
	assert.InDelta(t, 30, f.FPS(), 0.01)

	before := f.FPS()
	assert.Equal(t, before, f.Observe(0))
}

func TestSimulationManualStep(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	sim.NudgeManual(0.5, -0.3)

	p := sim.Step(16 * time.Millisecond)
	assert.InDelta(t, 0.4, p.X, 1e-9)
	assert.InDelta(t, -0.24, p.Y, 1e-9)

	vx, vy := sim.Inputs()
	assert.InDelta(t, 0.5, vx, 1e-9)
	assert.InDelta(t, -0.3, vy, 1e-9)
	assert.Equal(t, 1, sim.Beam().Len())

	last := sim.Path()[len(sim.Path())-1]
	assert.InDelta(t, p.X, last.X, 1e-9)
}

func TestSimulationSineStep(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, func(s *config.Settings) {
		s.Mode = config.ModeSine
		s.FreqX = 1
		s.FreqY = 2
		s.Amp = 1
	})

	// A quarter period of X: sin(π/2) = 1, sin(π) = 0.
	p := sim.Step(250 * time.Millisecond)
	assert.InDelta(t, 0.8, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Manual nudges are ignored in sine mode.
	sim.NudgeManual(1, 1)
	sim.ToggleMode()
	vx, _ := sim.generators()
	assert.Equal(t, 0.0, vx.Value(0))
}

func TestSimulationKinematic(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, func(s *config.Settings) { s.Model = config.ModelKinematic })
	sim.NudgeManual(0.5, 0)
	p := sim.Step(time.Millisecond)

	want, err := crt.NewKinematic(crt.DefaultGeometry()).Trajectory(0.5*config.VoltsPerUnit, 0, config.VaccDefault)
	require.NoError(t, err)
	assert.InDelta(t, want.Impact.X, p.X, 1e-12)
	assert.Less(t, p.X, 0.0)
	assert.Equal(t, want.Path, sim.Path())
	assert.InDelta(t, crt.BeamIntensity(config.VaccDefault), sim.Intensity(), 1e-12)

	sim.ToggleModel()
	assert.Equal(t, config.ModelGain, sim.Model())
	assert.Equal(t, 1.0, sim.Intensity())
}

func TestSimulationKinematicHoldsOnFailure(t *testing.T) {
	t.Parallel()

	sim, hook := newTestSim(t, func(s *config.Settings) { s.Model = config.ModelKinematic })
	sim.NudgeManual(0.5, 0.5)
	good := sim.Step(time.Millisecond)
	path := sim.Path()

	sim.vacc = 0 // not reachable from the keys; forces the failure path
	held := sim.Step(time.Millisecond)

	assert.Equal(t, good, held)
	assert.True(t, sim.Beam().Stale())
	assert.Equal(t, path, sim.Path())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.ErrorIs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), crt.ErrNoAcceleration)
}

func TestSimulationGainHoldsOnNonFinite(t *testing.T) {
	t.Parallel()

	sim, hook := newTestSim(t, nil)
	sim.NudgeManual(0.2, 0.2)
	good := sim.Step(time.Millisecond)

	sim.manualX.Set(math.NaN())
	held := sim.Step(time.Millisecond)

	assert.Equal(t, good, held)
	assert.True(t, sim.Beam().Stale())
	assert.Equal(t, "non-finite beam input, holding beam", hook.LastEntry().Message)
}

func TestSimulationAdjustAccel(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	for i := 0; i < 20; i++ {
		sim.AdjustAccel(-1)
	}
	assert.Equal(t, config.MinVa, sim.Va())
	sim.AdjustAccel(1)
	assert.InDelta(t, 0.3, sim.Va(), 1e-9)

	sim.ToggleModel()
	for i := 0; i < 100; i++ {
		sim.AdjustAccel(1)
	}
	assert.Equal(t, config.VaccMax, sim.Vacc())
	for i := 0; i < 100; i++ {
		sim.AdjustAccel(-1)
	}
	assert.Equal(t, config.VaccMin, sim.Vacc())
}

func TestSimulationSineControls(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	x, y := sim.Sines()

	sim.AdjustFrequency(1, 1)
	assert.Equal(t, config.FreqDefault, x.Frequency(), "ignored in manual mode")

	sim.ToggleMode()
	sim.AdjustFrequency(config.FreqStep, -config.FreqStep)
	assert.InDelta(t, 1.2, x.Frequency(), 1e-9)
	assert.InDelta(t, 0.8, y.Frequency(), 1e-9)

	sim.AdjustPhase(config.PhaseStep)
	assert.InDelta(t, -config.PhaseStep, sim.RelativePhase(), 1e-9)

	sim.AdjustAmplitude(-10)
	assert.Equal(t, config.MinAmplitude, x.Amplitude())
	assert.Equal(t, config.MinAmplitude, y.Amplitude())
}

func TestSimulationPersistence(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	for i := 0; i < 100; i++ {
		sim.AdjustPersistence(1)
	}
	assert.Equal(t, config.PersistMsMax, sim.Beam().Persistence())
	for i := 0; i < 100; i++ {
		sim.AdjustPersistence(-1)
	}
	assert.Equal(t, config.PersistMsMin, sim.Beam().Persistence())
}

func TestSimulationPresets(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	assert.Equal(t, "", sim.Preset())

	p := sim.CyclePreset(1)
	assert.Equal(t, signal.Presets[0], p)
	assert.Equal(t, config.ModeSine, sim.Mode())
	assert.Equal(t, p.Label, sim.Preset())

	x, _ := sim.Sines()
	assert.Equal(t, config.PresetAmp, x.Amplitude())

	sim.CyclePreset(-1)
	assert.Equal(t, signal.Presets[len(signal.Presets)-1].Label, sim.Preset(), "wraps backwards")

	sim.AdjustPhase(0.1)
	assert.Equal(t, "", sim.Preset(), "manual tweaks leave the preset")

	sim.CyclePreset(-1)
	assert.Equal(t, signal.Presets[len(signal.Presets)-1].Label, sim.Preset())
}

func TestSimulationClearTrail(t *testing.T) {
	t.Parallel()

	sim, _ := newTestSim(t, nil)
	sim.Step(time.Millisecond)
	sim.Step(time.Millisecond)
	require.Equal(t, 2, sim.Beam().Len())
	sim.ClearTrail()
	assert.Equal(t, 0, sim.Beam().Len())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestAppKeys(t *testing.T) {
	t.Parallel()

	m := New(config.Default(), nil)
	sim := m.Simulation()

	m, _ = update(t, m, key("d"))
	m, _ = update(t, m, key("w"))
	m, _ = update(t, m, key("w"))
	assert.InDelta(t, 0.1, sim.manualX.Value(0), 1e-9)
	assert.InDelta(t, 0.2, sim.manualY.Value(0), 1e-9)

	m, _ = update(t, m, key("m"))
	assert.Equal(t, config.ModeSine, sim.Mode())
	m, _ = update(t, m, key("up"))
	_, y := sim.Sines()
	assert.InDelta(t, config.FreqDefault+config.FreqStep, y.Frequency(), 1e-9)

	m, _ = update(t, m, key("k"))
	assert.Equal(t, config.ModelKinematic, sim.Model())

	m, _ = update(t, m, key("g"))
	assert.Equal(t, config.PersistMsDefault+config.PersistMsStep, sim.Beam().Persistence())

	m, _ = update(t, m, key("]"))
	assert.Equal(t, signal.Presets[0].Label, sim.Preset())

	m, _ = update(t, m, key(" "))
	assert.False(t, m.Running())

	_, cmd := update(t, m, key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppTickAdvancesOnlyWhenRunning(t *testing.T) {
	t.Parallel()

	m := New(config.Default(), nil)
	start := time.Now()

	m, cmd := update(t, m, TickMsg(start))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.shared.traceX.Len())

	m, _ = update(t, m, TickMsg(start.Add(20*time.Millisecond)))
	assert.Equal(t, 2, m.shared.traceX.Len())

	m, _ = update(t, m, key(" "))
	m, _ = update(t, m, TickMsg(start.Add(40*time.Millisecond)))
	assert.Equal(t, 2, m.shared.traceX.Len())
	assert.InDelta(t, 0.02+config.TickInterval(config.TargetFPS).Seconds(), m.Simulation().elapsed, 1e-9)
}

func TestAppView(t *testing.T) {
	t.Parallel()

	m := New(config.Default(), nil)
	assert.Equal(t, "Warming up the CRT...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	m, _ = update(t, m, TickMsg(time.Now()))

	out := ansi.Strip(m.View())
	for _, want := range []string{"SCREEN", "SIDE (Z-Y)", "TOP (Z-X)", "PARAMETERS", "[RUNNING]", config.AppName} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "@", "beam spot is drawn")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 40)
}
