package app

import (
	"time"

	"crt-scope.klederson.com/internal/config"
	"crt-scope.klederson.com/internal/scope"
	"crt-scope.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// traceLen is the number of beam positions kept for the HUD sparklines.
const traceLen = 64

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sim      *Simulation
	fps      *FPSMeter
	traceX   *Ring
	traceY   *Ring
	lastTick time.Time
}

// AppModel is the root Bubble Tea model for the CRT scope.
type AppModel struct {
	width  int
	height int

	running bool
	fps     int

	shared *shared
	log    logrus.FieldLogger
}

// New creates a new AppModel from validated settings.
func New(s config.Settings, log logrus.FieldLogger) AppModel {
	sim := NewSimulation(s, log)
	return AppModel{
		running: true,
		fps:     s.FPS,
		shared: &shared{
			sim:    sim,
			fps:    NewFPSMeter(s.FPS),
			traceX: NewRing(traceLen),
			traceY: NewRing(traceLen),
		},
		log: sim.log,
	}
}

// Simulation exposes the underlying simulation.
func (m AppModel) Simulation() *Simulation {
	return m.shared.sim
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.tick(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// tick advances the simulation by the wall time since the previous frame.
func (m AppModel) tick(now time.Time) {
	s := m.shared
	dt := config.TickInterval(m.fps)
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.fps.Observe(dt)

	if !m.running {
		return
	}
	p := s.sim.Step(dt)
	s.traceX.Push(p.X)
	s.traceY.Push(p.Y)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sim := m.shared.sim

	switch msg.String() {
	case "esc", "ctrl+c":
		m.log.Info("quit")
		return m, tea.Quit

	case " ":
		m.running = !m.running

	case "m", "M":
		sim.ToggleMode()
	case "k", "K":
		sim.ToggleModel()
	case "c", "C":
		sim.ClearTrail()

	case "a":
		sim.NudgeManual(-config.VManualStep, 0)
	case "d":
		sim.NudgeManual(config.VManualStep, 0)
	case "w":
		sim.NudgeManual(0, config.VManualStep)
	case "s":
		sim.NudgeManual(0, -config.VManualStep)

	case "1":
		sim.AdjustAccel(-1)
	case "2":
		sim.AdjustAccel(1)

	case "left":
		sim.AdjustFrequency(-config.FreqStep, 0)
	case "right":
		sim.AdjustFrequency(config.FreqStep, 0)
	case "down":
		sim.AdjustFrequency(0, -config.FreqStep)
	case "up":
		sim.AdjustFrequency(0, config.FreqStep)

	case "q":
		sim.AdjustPhase(-config.PhaseStep)
	case "e":
		sim.AdjustPhase(config.PhaseStep)

	case "z":
		sim.AdjustAmplitude(-config.AmpStep)
	case "x":
		sim.AdjustAmplitude(config.AmpStep)

	case "t":
		sim.AdjustPersistence(-1)
	case "g":
		sim.AdjustPersistence(1)

	case "p", "]":
		sim.CyclePreset(1)
	case "[":
		sim.CyclePreset(-1)
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Warming up the CRT..."
	}

	sim := m.shared.sim
	beam := sim.Beam()

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 12 {
		bodyH = 12
	}

	paramsW := 36
	rest := m.width - paramsW
	if rest < 40 {
		rest = 40
	}
	tubeW := rest * 2 / 5
	screenW := rest - tubeW

	// Keep the screen roughly square on ~2:1 terminal cells.
	if maxW := int(float64(bodyH-3)/config.AspectRatio) + 2; screenW > maxW {
		tubeW += screenW - maxW
		screenW = maxW
	}

	sideH := bodyH / 2
	topH := bodyH - sideH

	start, end := sim.Geometry().PlateSpan()
	view := func(axis scope.Axis, h int) string {
		content := scope.RenderTube(tubeW-2, h-3, scope.TubeView{
			Axis:       axis,
			Path:       sim.Path(),
			PlateStart: start,
			PlateEnd:   end,
			Intensity:  sim.Intensity(),
		})
		return ui.RenderPanel(tubeW, h, axis.Label(), content, false)
	}

	screen := scope.RenderScreen(screenW-2, bodyH-3, scope.Frame{
		Beam:        beam.Position(),
		Trail:       beam.Trail(),
		Now:         beam.Now(),
		Persistence: beam.PersistenceDuration(),
		Intensity:   sim.Intensity(),
		Stale:       beam.Stale(),
	})

	sx, sy := sim.Sines()
	vx, vy := sim.Inputs()
	hud := ui.HUD{
		Mode:      sim.Mode(),
		Model:     sim.Model(),
		Va:        sim.Va(),
		Vacc:      sim.Vacc(),
		Vx:        vx,
		Vy:        vy,
		FreqX:     sx.Frequency(),
		FreqY:     sy.Frequency(),
		Phase:     sim.RelativePhase(),
		Amp:       sx.Amplitude(),
		PersistMs: beam.Persistence(),
		TraceX:    m.shared.traceX.Values(),
		TraceY:    m.shared.traceY.Values(),
	}

	status := ui.Status{
		Running:   m.running,
		Held:      beam.Stale(),
		Points:    beam.Len(),
		PersistMs: beam.Persistence(),
		FPS:       m.shared.fps.FPS(),
		Preset:    sim.Preset(),
	}

	return ui.ComposeLayout(
		ui.RenderMenuBar(m.width, sim.Mode(), sim.Model()),
		view(scope.AxisY, sideH),
		view(scope.AxisX, topH),
		ui.RenderPanel(screenW, bodyH, "SCREEN", screen, true),
		ui.RenderParamsPanel(paramsW, bodyH, hud),
		ui.RenderStatusBar(m.width, status),
	)
}

// Running reports whether the simulation is advancing.
func (m AppModel) Running() bool {
	return m.running
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(config.TickInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
