package cssprune

import "github.com/charmbracelet/lipgloss"

// Terminal styles for report output. Lipgloss degrades colors automatically
// based on terminal capabilities.
var (
	// styleHeader is used for the report header and category names.
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleUnused is used for unused selector names.
	styleUnused = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	// styleSuccess is used for the all-styles-in-use message.
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleDim is used for totals, stats, and hints.
	styleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render applies a lipgloss style when colors are enabled, otherwise
// returns the text unmodified.
func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
