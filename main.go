package main

import (
	"fmt"
	"io"
	"os"

	"crt-scope.klederson.com/internal/app"
	"crt-scope.klederson.com/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var settings = config.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:   "crt-scope",
		Short: "CRT Scope - Terminal oscilloscope with a simulated electron beam",
		Long: `CRT Scope simulates the electron beam of a cathode-ray tube and draws its
phosphor trace in the terminal, alongside side and top views of the tube.

Drive the deflection plates by hand (manual mode) or with two sine
generators (sine mode) to draw Lissajous figures.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.StringVar(&settings.Mode, "mode", settings.Mode, "Input mode: manual or sine")
	f.StringVar(&settings.Model, "model", settings.Model, "Beam model: gain or kinematic")
	f.Float64Var(&settings.Va, "va", settings.Va, "Acceleration voltage for the gain model (abstract units)")
	f.Float64Var(&settings.Vacc, "vacc", settings.Vacc, "Accelerating voltage for the kinematic model [V]")
	f.Float64Var(&settings.FreqX, "freq-x", settings.FreqX, "X sine frequency [Hz]")
	f.Float64Var(&settings.FreqY, "freq-y", settings.FreqY, "Y sine frequency [Hz]")
	f.Float64Var(&settings.Phase, "phase", settings.Phase, "Initial sine phase [rad]")
	f.Float64Var(&settings.Amp, "amp", settings.Amp, "Sine amplitude")
	f.IntVar(&settings.PersistMs, "persist", settings.PersistMs, "Phosphor persistence [ms]")
	f.IntVar(&settings.FPS, "fps", settings.FPS, "Target frame rate")
	f.StringVar(&settings.LogFile, "log", settings.LogFile, "Write debug logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log.WithFields(logrus.Fields{
		"mode":  settings.Mode,
		"model": settings.Model,
		"fps":   settings.FPS,
	}).Info("starting")

	p := tea.NewProgram(
		app.New(settings, log),
		tea.WithAltScreen(),
		tea.WithFPS(settings.FPS),
	)

	_, err = p.Run()
	return err
}

// newLogger logs to path at debug level, or discards everything when path
// is empty. The terminal belongs to the UI.
func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
