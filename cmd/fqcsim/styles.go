package main

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles used by the terminal summary. Adapted from the same
// palette the interactive circuit renderer used, cut down to what a
// one-shot, non-interactive summary needs: a title, bordered sections, and
// an error style for diagnostics.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	amplitudeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e"))
)
