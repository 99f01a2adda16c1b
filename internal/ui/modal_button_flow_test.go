package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"click2run/internal/button"
)

func press(t *testing.T, m View, key tea.KeyType) (View, tea.Msg) {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: key})
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func typeText(t *testing.T, m View, text string) View {
	t.Helper()
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAddFlowDefaults(t *testing.T) {
	var m View = NewAddButtonModal()

	m, _ = press(t, m, tea.KeyEnter) // icon: none
	m, _ = press(t, m, tea.KeyEnter) // color: default
	m = typeText(t, m, "Serve")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "npm start")
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)    // mode: shared
	m, _ = press(t, m, tea.KeyEnter)    // tooltip: empty, default applies
	_, msg := press(t, m, tea.KeyEnter) // priority: empty

	submit, ok := msg.(SubmitButtonMsg)
	if !ok {
		t.Fatalf("expected SubmitButtonMsg, got %T", msg)
	}
	rec := submit.Record
	if submit.Editing {
		t.Error("add flow reported Editing")
	}
	if rec.ID == "" {
		t.Error("no id assigned")
	}
	if rec.Text != "Serve" {
		t.Errorf("Text = %q", rec.Text)
	}
	if rec.Command != "npm start" {
		t.Errorf("Command = %q", rec.Command)
	}
	if rec.Tooltip != button.DefaultTooltip("npm start") {
		t.Errorf("Tooltip = %q, want default", rec.Tooltip)
	}
	if rec.Priority != 0 || rec.UseNewTerminal || rec.Color != "" {
		t.Errorf("unexpected optional fields: %+v", rec)
	}
}

func TestAddFlowIconPrefixesLabel(t *testing.T) {
	var m View = NewAddButtonModal()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // none -> play
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter) // color
	m = typeText(t, m, "Deploy")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "make deploy")
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter) // mode
	m, _ = press(t, m, tea.KeyEnter) // tooltip
	_, msg := press(t, m, tea.KeyEnter)

	submit, ok := msg.(SubmitButtonMsg)
	if !ok {
		t.Fatalf("expected SubmitButtonMsg, got %T", msg)
	}
	if submit.Record.Text != "▶ Deploy" {
		t.Errorf("Text = %q, want icon prefix", submit.Record.Text)
	}
}

func TestAddFlowEmptyLabelAborts(t *testing.T) {
	var m View = NewAddButtonModal()

	m, _ = press(t, m, tea.KeyEnter)    // icon
	m, _ = press(t, m, tea.KeyEnter)    // color
	_, msg := press(t, m, tea.KeyEnter) // empty label

	if _, ok := msg.(DismissModalMsg); !ok {
		t.Fatalf("expected DismissModalMsg on empty label, got %T", msg)
	}
}

func TestAddFlowEscCancelsAnyStep(t *testing.T) {
	var m View = NewAddButtonModal()
	m, _ = press(t, m, tea.KeyEnter)
	_, msg := press(t, m, tea.KeyEsc)

	if _, ok := msg.(DismissModalMsg); !ok {
		t.Fatalf("expected DismissModalMsg on esc, got %T", msg)
	}
}

func TestAddFlowBadPriorityReprompts(t *testing.T) {
	var m View = NewAddButtonModal()

	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "Serve")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "npm start")
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "abc")
	m, msg := press(t, m, tea.KeyEnter)

	if msg != nil {
		t.Fatalf("non-numeric priority finished the flow with %T", msg)
	}
	flow := m.(*ButtonFlowModal)
	if flow.errText == "" {
		t.Error("no inline error after non-numeric priority")
	}

	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeText(t, m, "5")
	_, msg = press(t, m, tea.KeyEnter)

	submit, ok := msg.(SubmitButtonMsg)
	if !ok {
		t.Fatalf("expected SubmitButtonMsg after correction, got %T", msg)
	}
	if submit.Record.Priority != 5 {
		t.Errorf("Priority = %d, want 5", submit.Record.Priority)
	}
}

func TestEditFlowSkipsIconAndKeepsID(t *testing.T) {
	orig := button.Record{
		ID:       button.NewID(),
		Text:     "▶ Serve",
		Command:  "npm start",
		Tooltip:  "serve it",
		Color:    "green",
		Priority: 3,
	}
	var m View = NewEditButtonModal(orig)

	// First prompt is color, not icon.
	flow := m.(*ButtonFlowModal)
	if flow.step != stepColor {
		t.Fatalf("edit flow starts at step %d, want color", flow.step)
	}

	m, _ = press(t, m, tea.KeyEnter) // keep color
	m, _ = press(t, m, tea.KeyEnter) // keep prefilled label
	m, _ = press(t, m, tea.KeyEnter) // keep command
	m, _ = press(t, m, tea.KeyEnter) // keep mode
	m, _ = press(t, m, tea.KeyEnter) // keep tooltip
	_, msg := press(t, m, tea.KeyEnter)

	submit, ok := msg.(SubmitButtonMsg)
	if !ok {
		t.Fatalf("expected SubmitButtonMsg, got %T", msg)
	}
	if !submit.Editing {
		t.Error("edit flow did not report Editing")
	}
	rec := submit.Record
	if rec.ID != orig.ID {
		t.Error("edit changed the record id")
	}
	if rec.Text != orig.Text || rec.Command != orig.Command || rec.Priority != orig.Priority {
		t.Errorf("edit with no changes altered fields: %+v", rec)
	}
	if rec.Color != "green" {
		t.Errorf("Color = %q, want the prefilled selection", rec.Color)
	}
}
