package reporter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/auditrunner/internal/models"
)

// Severity colors
var (
	ColorCritical = lipgloss.Color("#FF0000")
	ColorHigh     = lipgloss.Color("#FF8800")
	ColorMedium   = lipgloss.Color("#FFFF00")
	ColorLow      = lipgloss.Color("#00FF00")
	ColorInfo     = lipgloss.Color("#5FAFFF")
	ColorMuted    = lipgloss.Color("#888888")
)

// SeverityStyle returns the lipgloss style for a severity level.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case models.SeverityCritical:
		return lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	case models.SeverityHigh:
		return lipgloss.NewStyle().Foreground(ColorHigh).Bold(true)
	case models.SeverityMedium:
		return lipgloss.NewStyle().Foreground(ColorMedium)
	case models.SeverityLow:
		return lipgloss.NewStyle().Foreground(ColorLow)
	case models.SeverityInfo:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	default:
		return lipgloss.NewStyle()
	}
}

// SeverityLabel is the upper-cased, styled severity name.
func SeverityLabel(severity string) string {
	return SeverityStyle(severity).Render(strings.ToUpper(severity))
}
