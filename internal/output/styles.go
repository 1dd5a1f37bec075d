package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: collection IDs, file names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "valid" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "warning" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "invalid" file status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (collection IDs, file names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File validation status constants.
const (
	StatusValid   = "valid"
	StatusWarning = "warning"
	StatusInvalid = "invalid"
	StatusSkipped = "skipped"
)

// statusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusInvalid:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column before
// the status suffix. This keeps status words aligned across lines.
const minFileColumnWidth = 48

// FormatFileLine renders a validated file with a right-aligned, color-coded
// status suffix.
//
// Format: f:<collection/type/file>  <status>
//
// The "f:" prefix is dim, the path is cyan, and the status uses statusStyle.
func FormatFileLine(collectionID, dataType, file, status string) string {
	path := fmt.Sprintf("%s/%s/%s", collectionID, dataType, file)

	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatVetCheck renders a passed check line for vet-style commands.
//
// Format: ✔ <label>  (<detail>)
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}
	return check + " " + label + " " + StyleDim.Render("("+detail+")")
}
