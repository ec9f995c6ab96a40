// Package render holds the colours and symbols shared by the suggest field's
// terminal views.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI colour codes
const (
	ColorCyan   = lipgloss.Color("12") // Selected row
	ColorYellow = lipgloss.Color("11") // Matched span, panel border
	ColorGreen  = lipgloss.Color("10") // Committed value
	ColorRed    = lipgloss.Color("9")  // Errors
	ColorGray   = lipgloss.Color("8")  // Announcements, help
)

// Symbols
const (
	SymbolSelected     = "›" // Selected row marker
	SymbolAnnouncement = "♪" // Live region prefix
	SymbolSuccess      = "✓"
	SymbolError        = "✗"
)

var (
	// HighlightStyle marks the matched span inside a suggestion.
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// SelectedStyle is applied to the whole selected row.
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// PanelStyle frames the suggestion list.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow)

	// DimStyle is used for the announcement line and help.
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// SuccessStyle is used when a value is committed.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// ErrorStyle is used for error output.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)
)

// StyledSymbol returns symbol with its conventional style.
func StyledSymbol(symbol string) string {
	switch symbol {
	case SymbolSelected:
		return SelectedStyle.Render(symbol)
	case SymbolAnnouncement:
		return DimStyle.Render(symbol)
	case SymbolSuccess:
		return SuccessStyle.Render(symbol)
	case SymbolError:
		return ErrorStyle.Render(symbol)
	default:
		return symbol
	}
}
