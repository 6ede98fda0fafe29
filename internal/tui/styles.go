package tui

import (
	"github.com/amterp/swatch/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.AdaptiveColor{Dark: "#a78bfa", Light: "#7c3aed"}
	warningColor = lipgloss.AdaptiveColor{Dark: "#f59e0b", Light: "#d97706"}
	successColor = lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"}
	errorColor   = lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"}
	mutedColor   = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}
	borderColor  = lipgloss.AdaptiveColor{Dark: "#383838", Light: "#d1d5db"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// Card styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	nameStyle  = lipgloss.NewStyle().Bold(true)
	refStyle   = lipgloss.NewStyle().Foreground(primaryColor)
	starStyle  = lipgloss.NewStyle().Foreground(warningColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Padding(1, 2)

	// Status bar styles
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	pageStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	statusOKStyle  = lipgloss.NewStyle().Foreground(successColor)
	statusErrStyle = lipgloss.NewStyle().Foreground(errorColor)

	// Help overlay styles
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)
)

// swatchStyle renders a hex label on a block of its own color.
// Colors that don't parse fall back to muted text.
func swatchStyle(hex string) lipgloss.Style {
	bg := model.OpaqueHex(hex)
	if bg == "" {
		return mutedStyle.Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(model.ContrastText(hex))).
		Padding(0, 1)
}
