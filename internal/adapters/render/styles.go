package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thewilloftheshadow/bun-deps/internal/ui/style"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(style.Green)

	warnStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	criticalStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	highStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	moderateStyle = lipgloss.NewStyle().
			Foreground(style.Orange)

	lowStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)
)

// severityStyle picks the style for an advisory severity label.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "critical":
		return criticalStyle
	case "high":
		return highStyle
	case "moderate":
		return moderateStyle
	case "low":
		return lowStyle
	default:
		return dimStyle
	}
}
