package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title       lipgloss.Style // Bold accent color - for main titles
	Box         lipgloss.Style // Standard modal box with rounded border
	Selected    lipgloss.Style // Highlighted/selected items
	Muted       lipgloss.Style // Dimmed text
	Normal      lipgloss.Style // Normal text
	Hint        lipgloss.Style // Help/hint text
	Status      lipgloss.Style // Status line (accent)
	StatusWarn  lipgloss.Style // Status line for warnings
	StatusError lipgloss.Style // Status line for failures
	Empty       lipgloss.Style // Empty state text (muted, italic)
	ErrorInline lipgloss.Style // Inline validation feedback in prompts
	BarItem     lipgloss.Style // Status bar button (unfocused)
	BarFocused  lipgloss.Style // Status bar button (focused)
	BarAdd      lipgloss.Style // Permanent add button
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	StatusWarn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	ErrorInline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	BarItem: lipgloss.NewStyle().
		Padding(0, 1),
	BarFocused: lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Reverse(true),
	BarAdd: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// This factory standardizes list delegate configuration across the modals.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}

// buttonColor maps a record's color token to a lipgloss color.
// Named theme tokens resolve to the 256-color palette; anything else
// (hex literals, raw ANSI codes) passes through untouched. Empty means
// the default text color.
func buttonColor(token string) lipgloss.Color {
	switch token {
	case "":
		return lipgloss.Color(ColorText)
	case "red":
		return lipgloss.Color("196")
	case "green":
		return lipgloss.Color("82")
	case "yellow":
		return lipgloss.Color("220")
	case "blue":
		return lipgloss.Color("39")
	case "magenta":
		return lipgloss.Color("205")
	case "cyan":
		return lipgloss.Color("86")
	case "orange":
		return lipgloss.Color("208")
	default:
		return lipgloss.Color(token)
	}
}
