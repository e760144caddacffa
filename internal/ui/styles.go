package ui

import "github.com/charmbracelet/lipgloss"

// Phosphor color palette
var (
	ColorPhosphor     = lipgloss.Color("#78FF78")
	ColorGreen        = lipgloss.Color("#28C83C")
	ColorMidGreen     = lipgloss.Color("#1E8C2D")
	ColorDimGreen     = lipgloss.Color("#2A3A2E")
	ColorText         = lipgloss.Color("#D2D2DC")
	ColorLabel        = lipgloss.Color("#B4B4C8")
	ColorBorderBright = lipgloss.Color("#78787E")
	ColorBorderNorm   = lipgloss.Color("#46464F")
	ColorWarning      = lipgloss.Color("#FFAA00")
	ColorPanelBg      = lipgloss.Color("#0F1116")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#16181F")).
			Foreground(ColorPhosphor).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorLabel)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#16181F")).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorPhosphor).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Padding(0, 1)

	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorLabel)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorBorderNorm)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorPhosphor).
			Bold(true)

	StyleListItem = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleHold = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)
