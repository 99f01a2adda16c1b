package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"click2run/internal/logging"
)

const (
	defaultLogWidth  = 80
	defaultLogHeight = 20
)

// LogView is an overlay showing the tail of the append-only log sink.
type LogView struct {
	sink     *logging.Sink
	viewport viewport.Model
}

// Ensure LogView implements View.
var _ View = (*LogView)(nil)

// NewLogView creates the log overlay over the given sink.
func NewLogView(sink *logging.Sink) *LogView {
	vp := viewport.New(defaultLogWidth, defaultLogHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	v := &LogView{sink: sink, viewport: vp}
	v.refresh()
	return v
}

func (v *LogView) refresh() {
	lines := v.sink.Lines()
	if len(lines) == 0 {
		v.viewport.SetContent(Styles.Empty.Render("log is empty"))
		return
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
	v.viewport.GotoBottom()
}

// Init implements View.
func (v *LogView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *LogView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width - 4
		v.viewport.Height = msg.Height - 6
		v.refresh()
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg { return DismissModalMsg{} }
		case "r":
			v.refresh()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *LogView) View() string {
	content := Styles.Title.Render("Logs") + "\n"
	content += v.viewport.View() + "\n"
	content += Styles.Hint.Render("r: refresh  Esc: close")
	return content
}
