package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"click2run/internal/button"
)

// ExportModal prompts for the destination file path. Only .json paths
// are accepted; anything else re-prompts with inline feedback.
type ExportModal struct {
	input   textinput.Model
	errText string
}

var _ View = (*ExportModal)(nil)

// NewExportModal creates the export prompt with the suggested default
// file name pre-filled.
func NewExportModal() *ExportModal {
	return &ExportModal{input: newTextPrompt(button.DefaultExportName, button.DefaultExportName)}
}

// Init implements View.
func (m *ExportModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ExportModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, func() tea.Msg { return DismissModalMsg{} }
			}
			if !strings.HasSuffix(path, ".json") {
				m.errText = "export path must end in .json"
				return m, nil
			}
			return m, func() tea.Msg { return ExportChosenMsg{Path: path} }
		}
	}
	m.errText = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ExportModal) View() string {
	content := Styles.Title.Render("Export buttons") + "\n\n"
	content += Styles.Normal.Render("Destination file (JSON)") + "\n"
	content += m.input.View() + "\n"
	if m.errText != "" {
		content += Styles.ErrorInline.Render(m.errText) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Enter: export  Esc: cancel")
	return Styles.Box.Render(content)
}

// ImportPathModal prompts for the source JSON file.
type ImportPathModal struct {
	input textinput.Model
}

var _ View = (*ImportPathModal)(nil)

// NewImportPathModal creates the import path prompt.
func NewImportPathModal() *ImportPathModal {
	return &ImportPathModal{input: newTextPrompt(button.DefaultExportName, "")}
}

// Init implements View.
func (m *ImportPathModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ImportPathModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, func() tea.Msg { return DismissModalMsg{} }
			}
			return m, func() tea.Msg { return ImportPathChosenMsg{Path: path} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ImportPathModal) View() string {
	content := Styles.Title.Render("Import buttons") + "\n\n"
	content += Styles.Normal.Render("Source file (JSON array of buttons)") + "\n"
	content += m.input.View() + "\n"
	content += "\n" + Styles.Hint.Render("Enter: import  Esc: cancel")
	return Styles.Box.Render(content)
}

// ImportModeModal asks whether imported records merge after the
// existing list or overwrite it wholly.
type ImportModeModal struct {
	picker list.Model
	count  int
}

var _ View = (*ImportModeModal)(nil)

// NewImportModeModal creates the merge-or-overwrite choice for count
// parsed records.
func NewImportModeModal(count int) *ImportModeModal {
	return &ImportModeModal{
		count: count,
		picker: newPickList("How should imported buttons be applied?", []list.Item{
			pickItem{title: "merge", desc: "Append imported buttons after existing ones"},
			pickItem{title: "overwrite", desc: "Replace the whole list"},
		}),
	}
}

// Init implements View.
func (m *ImportModeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ImportModeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			sel, ok := m.picker.SelectedItem().(pickItem)
			if !ok {
				return m, nil
			}
			mode := button.ImportMerge
			if sel.title == "overwrite" {
				mode = button.ImportOverwrite
			}
			return m, func() tea.Msg { return ImportModeChosenMsg{Mode: mode} }
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ImportModeModal) View() string {
	content := m.picker.View() + "\n\n"
	content += Styles.Hint.Render("Enter: select  Esc: cancel")
	return Styles.Box.Render(content)
}
