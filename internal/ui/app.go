// Package ui is the Bubble Tea front end: the status bar of buttons,
// the prompt-flow modals, and the root AppModel that owns the
// process-wide singletons (store, registry, runner, log sink) from
// startup to shutdown.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"click2run/internal/button"
	"click2run/internal/config"
	"click2run/internal/logging"
	"click2run/internal/registry"
	"click2run/internal/runner"
)

// statusLevel classifies the status line: plain info, a warning (e.g.
// empty shortcut slot), or a surfaced error.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// Deps are the process-wide collaborators the app controls. They are
// constructed once in main and torn down via Close.
type Deps struct {
	Config     config.Config
	ConfigHome string
	Store      *button.Store
	Registry   *registry.Registry
	Runner     *runner.Runner
	Sink       *logging.Sink
	Logger     *slog.Logger
	Watcher    *button.Watcher
}

// AppModel is the root model: a status bar over a button listing, with
// modal prompt flows layered on top.
type AppModel struct {
	deps Deps
	keys *KeybindRegistry
	bar  *StatusBar

	modal         View
	pendingImport []button.Record

	status      string
	statusLevel statusLevel

	width  int
	height int
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)

// NewAppModel creates the root application model.
func NewAppModel(deps Deps) *AppModel {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	a := &AppModel{
		deps: deps,
		bar:  NewStatusBar(),
	}

	keys := NewKeybindRegistry()
	keys.BindWithDesc("a", func() tea.Msg { return InvokeCommandMsg{CommandID: registry.AddButtonCommandID} }, "add")
	keys.BindWithDesc("m", func() tea.Msg { return openManageMsg{} }, "manage")
	keys.BindWithDesc("e", func() tea.Msg { return openExportMsg{} }, "export")
	keys.BindWithDesc("i", func() tea.Msg { return openImportMsg{} }, "import")
	keys.BindWithDesc("o", func() tea.Msg { return openSettingsMsg{} }, "settings")
	keys.BindWithDesc("L", func() tea.Msg { return openLogsMsg{} }, "logs")
	keys.BindWithDesc("q", tea.Quit, "quit")
	keys.Bind("ctrl+c", tea.Quit)
	for slot := 0; slot < deps.Config.ShortcutSlots; slot++ {
		slot := slot
		keys.Bind(strconv.Itoa(slot+1), func() tea.Msg { return RunSlotMsg{Index: slot} })
	}
	a.keys = keys
	return a
}

// Init implements tea.Model: first rebuild, first-run welcome, and the
// storage watch.
func (a *AppModel) Init() tea.Cmd {
	a.rebuild()
	if a.deps.ConfigHome != "" && !config.Welcomed(a.deps.ConfigHome) {
		a.setStatus(statusInfo, "Welcome to Click2Run! Press 'a' to add your first command button.")
		if err := config.MarkWelcomed(a.deps.ConfigHome); err != nil {
			a.deps.Logger.Warn("persist welcome flag", "err", err)
		}
	}
	return a.watchCmd()
}

// watchCmd waits for the next external change to the buttons file.
func (a *AppModel) watchCmd() tea.Cmd {
	w := a.deps.Watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changed; !ok {
			return nil
		}
		return StoreChangedMsg{}
	}
}

// rebuild re-registers every binding from the store and refreshes the
// bar. Runs to completion before any newly registered action can fire.
func (a *AppModel) rebuild() {
	if err := a.deps.Registry.Rebuild(); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Load buttons: %v", err))
		return
	}
	a.bar.SetItems(a.deps.Registry.Items())
}

func (a *AppModel) setStatus(level statusLevel, text string) {
	a.status = text
	a.statusLevel = level
}

// Update implements tea.Model.
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.bar.SetWidth(msg.Width)
		if a.modal != nil {
			var cmd tea.Cmd
			a.modal, cmd = a.modal.Update(msg)
			return a, cmd
		}
		return a, nil

	case DismissModalMsg:
		// Cancellation: silent abort, nothing persisted.
		a.modal = nil
		a.pendingImport = nil
		return a, nil

	case SubmitButtonMsg:
		a.modal = nil
		return a, a.handleSubmit(msg)

	case EditButtonMsg:
		a.modal = NewEditButtonModal(msg.Record)
		return a, a.modal.Init()

	case DeleteButtonMsg:
		a.modal = nil
		return a, a.handleDelete(msg)

	case ExportChosenMsg:
		a.modal = nil
		return a, a.handleExport(msg.Path)

	case ImportPathChosenMsg:
		return a, a.handleImportPath(msg.Path)

	case ImportModeChosenMsg:
		a.modal = nil
		return a, a.handleImportMode(msg.Mode)

	case InvokeCommandMsg:
		return a, a.handleInvoke(msg.CommandID)

	case RunSlotMsg:
		return a, a.handleRunSlot(msg.Index)

	case openManageMsg:
		a.openManage()
		return a, a.initModal()

	case openExportMsg:
		a.openExport()
		return a, a.initModal()

	case openImportMsg:
		a.modal = NewImportPathModal()
		return a, a.initModal()

	case openLogsMsg:
		a.modal = NewLogView(a.deps.Sink)
		return a, a.initModal()

	case openSettingsMsg:
		return a, a.openSettings()

	case StoreChangedMsg:
		a.rebuild()
		return a, a.watchCmd()

	case editorFinishedMsg:
		if msg.err != nil {
			a.setStatus(statusError, fmt.Sprintf("Editor: %v", msg.err))
		} else {
			a.rebuild()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.modal != nil {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes keys: the active modal sees everything first; the
// keybind registry and the bar share the rest.
func (a *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal != nil {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}

	if consumed, cmd := a.keys.Handle(msg); consumed {
		return a, cmd
	}

	switch msg.String() {
	case "left", "h":
		a.bar.MoveFocus(-1)
	case "right", "l":
		a.bar.MoveFocus(1)
	case "enter":
		id := a.bar.FocusedCommandID()
		return a, func() tea.Msg { return InvokeCommandMsg{CommandID: id} }
	}
	return a, nil
}

// handleSubmit persists the completed prompt flow: append on add,
// overwrite in place on edit. The store is re-read here so the save
// builds on the latest persisted list.
func (a *AppModel) handleSubmit(msg SubmitButtonMsg) tea.Cmd {
	rec := msg.Record
	if err := rec.Validate(); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Save button: %v", err))
		return nil
	}
	records, err := a.deps.Store.Load()
	if err != nil {
		a.setStatus(statusError, fmt.Sprintf("Save button: %v", err))
		return nil
	}
	verb := "added to this workspace"
	if msg.Editing {
		idx := button.IndexByID(records, rec.ID)
		if idx < 0 {
			// Record vanished underneath the edit (external change).
			// Best effort: append it back.
			records = append(records, rec)
		} else {
			records[idx] = rec
		}
		verb = "updated"
	} else {
		records = append(records, rec)
	}
	if err := a.deps.Store.Save(records); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Save button: %v", err))
		return nil
	}
	a.rebuild()
	a.setStatus(statusInfo, fmt.Sprintf("Button '%s' was %s!", rec.Text, verb))
	return nil
}

func (a *AppModel) handleDelete(msg DeleteButtonMsg) tea.Cmd {
	records, err := a.deps.Store.Load()
	if err != nil {
		a.setStatus(statusError, fmt.Sprintf("Delete button: %v", err))
		return nil
	}
	if err := a.deps.Store.Save(button.RemoveByID(records, msg.ID)); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Delete button: %v", err))
		return nil
	}
	a.rebuild()
	a.setStatus(statusInfo, fmt.Sprintf("Button '%s' was deleted.", msg.Text))
	return nil
}

func (a *AppModel) handleExport(path string) tea.Cmd {
	records, err := a.deps.Store.Load()
	if err != nil {
		a.setStatus(statusError, fmt.Sprintf("Export: %v", err))
		return nil
	}
	if err := button.Export(records, path); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Export: %v", err))
		return nil
	}
	a.setStatus(statusInfo, fmt.Sprintf("Exported %d button(s) to %s", len(records), path))
	return nil
}

func (a *AppModel) handleImportPath(path string) tea.Cmd {
	imported, err := button.ReadImport(path)
	if err != nil {
		a.modal = nil
		a.setStatus(statusError, fmt.Sprintf("Import: %v", err))
		return nil
	}
	a.pendingImport = imported
	a.modal = NewImportModeModal(len(imported))
	return a.modal.Init()
}

func (a *AppModel) handleImportMode(mode button.ImportMode) tea.Cmd {
	imported := a.pendingImport
	a.pendingImport = nil
	records, err := a.deps.Store.Load()
	if err != nil {
		a.setStatus(statusError, fmt.Sprintf("Import: %v", err))
		return nil
	}
	if err := a.deps.Store.Save(button.ApplyImport(records, imported, mode)); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Import: %v", err))
		return nil
	}
	a.rebuild()
	a.setStatus(statusInfo, fmt.Sprintf("Imported %d button(s).", len(imported)))
	return nil
}

// handleInvoke fires a registered action key: the permanent add entry
// opens the add flow; everything else dispatches through the registry.
func (a *AppModel) handleInvoke(commandID string) tea.Cmd {
	if commandID == registry.AddButtonCommandID {
		a.modal = NewAddButtonModal()
		return a.modal.Init()
	}
	if err := a.deps.Registry.Invoke(commandID); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Run: %v", err))
		return nil
	}
	for _, rec := range a.deps.Registry.Records() {
		if registry.CommandID(rec.ID) == commandID {
			a.setStatus(statusInfo, fmt.Sprintf("Running '%s'", rec.Text))
			break
		}
	}
	return nil
}

func (a *AppModel) handleRunSlot(index int) tea.Cmd {
	rec, err := a.deps.Runner.RunByPosition(index)
	if err != nil {
		if errors.Is(err, runner.ErrNoSuchSlot) {
			a.setStatus(statusWarn, fmt.Sprintf("No button at shortcut slot %d", index+1))
		} else {
			a.setStatus(statusError, fmt.Sprintf("Run slot %d: %v", index+1, err))
		}
		return nil
	}
	a.setStatus(statusInfo, fmt.Sprintf("Running '%s'", rec.Text))
	return nil
}

// initModal runs the freshly opened modal's Init, if any.
func (a *AppModel) initModal() tea.Cmd {
	if a.modal == nil {
		return nil
	}
	return a.modal.Init()
}

// openManage opens the manage flow, or surfaces an informational
// message when there is nothing to manage.
func (a *AppModel) openManage() {
	records := a.deps.Registry.Records()
	if len(records) == 0 {
		a.setStatus(statusInfo, "No buttons configured yet. Press 'a' to add one.")
		return
	}
	a.modal = NewManageModal(records)
}

// openExport opens the export prompt; an empty list is an error before
// any prompt is shown.
func (a *AppModel) openExport() {
	if a.deps.Registry.Len() == 0 {
		a.setStatus(statusError, "No buttons to export.")
		return
	}
	a.modal = NewExportModal()
}

// openSettings suspends the TUI and opens the raw buttons file in the
// user's editor. The registry rebuilds when the editor exits.
func (a *AppModel) openSettings() tea.Cmd {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, a.deps.Store.Path())
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View implements tea.Model.
func (a *AppModel) View() string {
	header := Styles.Title.Render("Click2Run") + "  " +
		Styles.Muted.Render(a.deps.Store.Path())

	var body string
	if a.modal != nil {
		body = a.modal.View()
	} else {
		body = a.listing()
	}

	tooltip := Styles.Hint.Render(a.bar.FocusedTooltip())

	var status string
	switch a.statusLevel {
	case statusError:
		status = Styles.StatusError.Render(a.status)
	case statusWarn:
		status = Styles.StatusWarn.Render(a.status)
	default:
		status = Styles.Status.Render(a.status)
	}

	help := Styles.Hint.Render(a.keys.HelpLine() + "  ←/→: focus  enter: run")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		tooltip,
		a.bar.View(),
		status,
		help,
	)
}

// listing renders the configured buttons in display order.
func (a *AppModel) listing() string {
	records := a.deps.Registry.Records()
	if len(records) == 0 {
		return "\n" + Styles.Empty.Render("No buttons yet. Press 'a' to add one.") + "\n"
	}
	out := "\n"
	for i, rec := range records {
		mode := "shared terminal"
		if rec.UseNewTerminal {
			mode = "new terminal"
		}
		line := fmt.Sprintf("%d. %s  %s", i+1, rec.Text, Styles.Muted.Render(
			fmt.Sprintf("%s  (priority %d, %s)", rec.Command, rec.Priority, mode)))
		out += Styles.Normal.Render(line) + "\n"
	}
	return out
}
