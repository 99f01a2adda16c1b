package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"click2run/internal/button"
)

// manageStep is the stage of the manage flow.
type manageStep int

const (
	managePick   manageStep = iota // pick a record by its text
	manageAction                   // pick edit or delete
)

// ManageModal lets the user pick an existing button and then choose to
// edit or delete it. The caller only opens it when the list is
// non-empty.
type ManageModal struct {
	records  []button.Record
	step     manageStep
	selected button.Record
	picker   list.Model
}

// Ensure ManageModal implements View.
var _ View = (*ManageModal)(nil)

// NewManageModal creates the manage flow over the given records
// (display order).
func NewManageModal(records []button.Record) *ManageModal {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = pickItem{title: r.Text, desc: r.Command}
	}
	return &ManageModal{
		records: records,
		step:    managePick,
		picker:  newPickList("Manage buttons", items),
	}
}

// Init implements View.
func (m *ManageModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ManageModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			return m.advance()
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *ManageModal) advance() (View, tea.Cmd) {
	switch m.step {
	case managePick:
		idx := m.picker.Index()
		if idx < 0 || idx >= len(m.records) {
			return m, nil
		}
		m.selected = m.records[idx]
		m.step = manageAction
		m.picker = newPickList("'"+m.selected.Text+"'", []list.Item{
			pickItem{title: "edit", desc: "Change this button's fields"},
			pickItem{title: "delete", desc: "Remove this button"},
		})
		return m, nil
	case manageAction:
		sel, ok := m.picker.SelectedItem().(pickItem)
		if !ok {
			return m, nil
		}
		rec := m.selected
		if sel.title == "delete" {
			return m, func() tea.Msg { return DeleteButtonMsg{ID: rec.ID, Text: rec.Text} }
		}
		return m, func() tea.Msg { return EditButtonMsg{Record: rec} }
	}
	return m, nil
}

// View implements View.
func (m *ManageModal) View() string {
	content := m.picker.View() + "\n\n"
	content += Styles.Hint.Render("Enter: select  Esc: cancel")
	return Styles.Box.Render(content)
}
