package ui

import (
	"github.com/charmbracelet/lipgloss"

	"click2run/internal/registry"
)

// addButtonLabel is the permanent add entry pinned at the start of the
// bar, outside the managed set. It survives every rebuild.
const addButtonLabel = "+"

// StatusBar renders the button row at the bottom of the screen and
// tracks which entry holds focus. Focus position 0 is the permanent
// add button; positions 1..n are the managed items in display order.
type StatusBar struct {
	items   []registry.Item
	focus   int
	width   int
	focused bool // whether the bar currently receives left/right/enter
}

// NewStatusBar creates an empty bar with focus on the add button.
func NewStatusBar() *StatusBar {
	return &StatusBar{focused: true}
}

// SetItems replaces the managed items after a registry rebuild and
// clamps focus into the new range.
func (b *StatusBar) SetItems(items []registry.Item) {
	b.items = items
	if b.focus > len(items) {
		b.focus = len(items)
	}
}

// SetWidth sets the render width.
func (b *StatusBar) SetWidth(width int) {
	b.width = width
}

// MoveFocus shifts focus left (-1) or right (+1), clamped to the bar.
func (b *StatusBar) MoveFocus(delta int) {
	b.focus += delta
	if b.focus < 0 {
		b.focus = 0
	}
	if b.focus > len(b.items) {
		b.focus = len(b.items)
	}
}

// FocusedCommandID returns the action key of the focused entry: the
// add command on position 0, otherwise the focused item's command.
func (b *StatusBar) FocusedCommandID() string {
	if b.focus == 0 {
		return registry.AddButtonCommandID
	}
	return b.items[b.focus-1].CommandID
}

// FocusedTooltip returns the tooltip of the focused entry.
func (b *StatusBar) FocusedTooltip() string {
	if b.focus == 0 {
		return "Click2Run: Add a new command button"
	}
	return b.items[b.focus-1].Tooltip
}

// View renders the bar: the add button first, then every managed item
// in display order, colored by its token, focus shown inverted.
func (b *StatusBar) View() string {
	cells := make([]string, 0, len(b.items)+1)

	addStyle := Styles.BarAdd
	if b.focused && b.focus == 0 {
		addStyle = Styles.BarFocused
	}
	cells = append(cells, addStyle.Render(addButtonLabel))

	for i, item := range b.items {
		style := Styles.BarItem.Foreground(buttonColor(item.Color))
		if b.focused && b.focus == i+1 {
			style = Styles.BarFocused
		}
		cells = append(cells, style.Render(item.Text))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if b.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(b.width).Render(bar)
	}
	return bar
}
