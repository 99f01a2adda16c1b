package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"click2run/internal/button"
)

// flowStep is one state of the prompt sequence. Steps advance strictly
// in order; cancelling any step aborts the whole flow with no side
// effects.
type flowStep int

const (
	stepIcon flowStep = iota
	stepColor
	stepLabel
	stepCommand
	stepMode
	stepTooltip
	stepPriority
)

// pickItem is a generic list entry for the choice steps.
type pickItem struct {
	title string
	desc  string
}

func (p pickItem) FilterValue() string { return p.title }
func (p pickItem) Title() string       { return p.title }
func (p pickItem) Description() string { return p.desc }

// ButtonFlowModal is the add/edit wizard: a linear state machine with
// one prompt per field. The edit flow skips the icon step (the icon is
// already part of the stored text) and pre-populates every prompt with
// the record's current values.
type ButtonFlowModal struct {
	editing bool
	record  button.Record // working copy; id preserved when editing

	step      flowStep
	iconGlyph string
	errText   string // inline validation feedback, cleared on input

	picker list.Model
	input  textinput.Model
}

// Ensure ButtonFlowModal implements View.
var _ View = (*ButtonFlowModal)(nil)

// NewAddButtonModal starts the add flow at the icon step.
func NewAddButtonModal() *ButtonFlowModal {
	m := &ButtonFlowModal{step: stepIcon}
	m.enterStep()
	return m
}

// NewEditButtonModal starts the edit flow at the color step,
// pre-populated from rec. The record's id is preserved.
func NewEditButtonModal(rec button.Record) *ButtonFlowModal {
	m := &ButtonFlowModal{editing: true, record: rec, step: stepColor}
	m.enterStep()
	return m
}

// Init implements View.
func (m *ButtonFlowModal) Init() tea.Cmd {
	return textinput.Blink
}

// enterStep builds the prompt widget for the current step.
func (m *ButtonFlowModal) enterStep() {
	m.errText = ""
	switch m.step {
	case stepIcon:
		items := make([]list.Item, len(Icons))
		for i, ic := range Icons {
			items[i] = pickItem{title: ic.Name, desc: ic.Description}
		}
		m.picker = newPickList("Select an icon for your button (optional)", items)
	case stepColor:
		items := make([]list.Item, len(Colors))
		selected := 0
		for i, c := range Colors {
			items[i] = pickItem{title: c.Name, desc: c.Description}
			if m.editing && c.Name == m.record.Color {
				selected = i
			}
		}
		m.picker = newPickList("Select a color for your button", items)
		m.picker.Select(selected)
	case stepLabel:
		m.input = newTextPrompt("Start Server", m.editValue(m.record.Text))
	case stepCommand:
		m.input = newTextPrompt("npm run dev", m.editValue(m.record.Command))
	case stepMode:
		items := []list.Item{
			pickItem{title: "shared", desc: "Reuse the shared Click2Run terminal"},
			pickItem{title: "new", desc: "Open a dedicated terminal per run"},
		}
		m.picker = newPickList("Where should the command run?", items)
		if m.editing && m.record.UseNewTerminal {
			m.picker.Select(1)
		}
	case stepTooltip:
		m.input = newTextPrompt(button.DefaultTooltip(m.record.Command), m.editValue(m.record.Tooltip))
	case stepPriority:
		prefill := ""
		if m.editing {
			prefill = strconv.Itoa(m.record.Priority)
		}
		m.input = newTextPrompt("0", prefill)
	}
}

// editValue returns v as a prompt prefill during edit, "" during add.
func (m *ButtonFlowModal) editValue(v string) string {
	if m.editing {
		return v
	}
	return ""
}

// Update implements View.
func (m *ButtonFlowModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	if m.isPickStep() {
		m.picker, cmd = m.picker.Update(msg)
	} else {
		m.errText = ""
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// advance captures the current step's value and moves to the next
// step, or finishes the flow after the last one.
func (m *ButtonFlowModal) advance() (View, tea.Cmd) {
	switch m.step {
	case stepIcon:
		sel, ok := m.picker.SelectedItem().(pickItem)
		if !ok {
			return m, nil
		}
		m.iconGlyph = ""
		for _, ic := range Icons {
			if ic.Name == sel.title {
				m.iconGlyph = ic.Glyph
			}
		}
	case stepColor:
		sel, ok := m.picker.SelectedItem().(pickItem)
		if !ok {
			return m, nil
		}
		if sel.title == colorDefault {
			m.record.Color = ""
		} else {
			m.record.Color = sel.title
		}
	case stepLabel:
		label := strings.TrimSpace(m.input.Value())
		if label == "" {
			// Required field left empty: the whole flow aborts, same
			// as cancelling.
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
		if m.editing {
			m.record.Text = label
		} else {
			m.record.Text = ComposeText(m.iconGlyph, label)
		}
	case stepCommand:
		command := strings.TrimSpace(m.input.Value())
		if command == "" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
		m.record.Command = command
	case stepMode:
		sel, ok := m.picker.SelectedItem().(pickItem)
		if !ok {
			return m, nil
		}
		m.record.UseNewTerminal = sel.title == "new"
	case stepTooltip:
		m.record.Tooltip = strings.TrimSpace(m.input.Value())
	case stepPriority:
		raw := strings.TrimSpace(m.input.Value())
		priority := 0
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				// Non-numeric input re-prompts with inline feedback,
				// never a thrown error.
				m.errText = fmt.Sprintf("%q is not a number", raw)
				return m, nil
			}
			priority = n
		}
		m.record.Priority = priority
		return m.finish()
	}

	m.step++
	m.enterStep()
	return m, textinput.Blink
}

// finish normalizes the record and hands it to the app for persistence.
func (m *ButtonFlowModal) finish() (View, tea.Cmd) {
	rec := m.record
	if !m.editing {
		rec.ID = button.NewID()
	}
	rec = rec.Normalize()
	editing := m.editing
	return m, func() tea.Msg { return SubmitButtonMsg{Record: rec, Editing: editing} }
}

func (m *ButtonFlowModal) isPickStep() bool {
	switch m.step {
	case stepIcon, stepColor, stepMode:
		return true
	}
	return false
}

// stepPrompt is the label rendered above the current prompt.
func (m *ButtonFlowModal) stepPrompt() string {
	switch m.step {
	case stepLabel:
		if m.editing {
			return "Button text"
		}
		return "Button text (the icon will be added automatically)"
	case stepCommand:
		return "Terminal command to run"
	case stepTooltip:
		return "Tooltip text (optional)"
	case stepPriority:
		return "Priority (optional, higher sorts first)"
	}
	return ""
}

// View implements View.
func (m *ButtonFlowModal) View() string {
	title := "Add button"
	if m.editing {
		title = "Edit button"
	}
	content := Styles.Title.Render(title) + "\n\n"
	if m.isPickStep() {
		content += m.picker.View() + "\n"
	} else {
		content += Styles.Normal.Render(m.stepPrompt()) + "\n"
		content += m.input.View() + "\n"
		if m.errText != "" {
			content += Styles.ErrorInline.Render(m.errText) + "\n"
		}
	}
	content += "\n" + Styles.Hint.Render("Enter: next  Esc: cancel")
	return Styles.Box.Render(content)
}

// newPickList builds a compact single-choice list for a prompt step.
func newPickList(title string, items []list.Item) list.Model {
	l := list.New(items, NewCompactListDelegate(), 48, 14)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return l
}

// newTextPrompt builds a focused text input with placeholder and
// optional prefill.
func newTextPrompt(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 44
	ti.SetValue(value)
	ti.Focus()
	return ti
}
