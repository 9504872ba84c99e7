package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/auditrunner/internal/reporter"
)

var (
	colorAccent = lipgloss.Color("#7B68EE")
	colorBorder = lipgloss.Color("#444444")
	colorOK     = reporter.ColorLow
	colorFailed = reporter.ColorCritical
)

// Panel styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleDetailPanel = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(reporter.ColorMuted).
			Padding(0, 1)

	styleMuted = lipgloss.NewStyle().
			Foreground(reporter.ColorMuted)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// statusStyle colours the overall run status.
func statusStyle(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
}
