package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: language codes, file names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "added" drift status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "modified" drift status.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (language codes, file names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Drift status constants.
const (
	StatusAdded     = "added"
	StatusModified  = "modified"
	StatusUnchanged = "unchanged"
)

// StatusStyle returns the style for a drift status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusAdded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusModified:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatusLine renders "<name>  <status>" with the status right-aligned.
func FormatStatusLine(name, status string) string {
	const width = 28
	pad := width - len(name)
	if pad < 2 {
		pad = 2
	}
	return StyleNoun.Render(name) + strings.Repeat(" ", pad) + StatusStyle(status).Render(status)
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
