package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5a32a3", Dark: "#9b8fff"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#555555"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#0a7d33", Dark: "#2dd4a0"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#b3001b", Dark: "#ff6b7a"}

	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleReadout = lipgloss.NewStyle().
			Bold(true)

	styleRunning = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleStopped = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	styleAxis = lipgloss.NewStyle().
			Foreground(colorDim)

	styleAxisLabel = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleChartFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorDim)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorDim)
)
