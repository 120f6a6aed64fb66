// Package diag implements structured compile diagnostics for the Grimoire
// CSS pipeline: kinded errors carrying a message, labeled source spans, and
// optional help text, plus terminal rendering of that structured data.
package diag

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent diagnostic rendering. Lipgloss degrades
// colors automatically based on terminal capabilities.
var (
	StyleRed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StyleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
