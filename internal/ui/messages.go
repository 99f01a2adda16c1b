package ui

import "click2run/internal/button"

// DismissModalMsg closes the active modal with no side effects.
type DismissModalMsg struct{}

// SubmitButtonMsg is emitted when the prompt flow completes with a
// full record. Editing distinguishes the edit flow (record keeps its
// id and overwrites in place) from the add flow (record is appended).
type SubmitButtonMsg struct {
	Record  button.Record
	Editing bool
}

// DeleteButtonMsg is emitted when the manage flow confirms a delete.
type DeleteButtonMsg struct {
	ID   string
	Text string
}

// EditButtonMsg is emitted when the manage flow picks a record to edit.
type EditButtonMsg struct {
	Record button.Record
}

// ExportChosenMsg carries the destination path picked in the export flow.
type ExportChosenMsg struct {
	Path string
}

// ImportPathChosenMsg carries the source path picked in the import
// flow. The app reads and parses the file before asking for the mode.
type ImportPathChosenMsg struct {
	Path string
}

// ImportModeChosenMsg carries the merge-or-overwrite choice for a
// successfully parsed import.
type ImportModeChosenMsg struct {
	Mode button.ImportMode
}

// InvokeCommandMsg fires the registered action at a command key (the
// TUI equivalent of clicking a status bar button).
type InvokeCommandMsg struct {
	CommandID string
}

// RunSlotMsg runs the button at a numbered shortcut position (0-based).
type RunSlotMsg struct {
	Index int
}

// StoreChangedMsg signals that the persisted button list changed on
// disk (own save or external edit); the registry must rebuild.
type StoreChangedMsg struct{}

// openManageMsg opens the manage flow.
type openManageMsg struct{}

// openExportMsg opens the export prompt.
type openExportMsg struct{}

// openImportMsg opens the import path prompt.
type openImportMsg struct{}

// openLogsMsg opens the log tail overlay.
type openLogsMsg struct{}

// openSettingsMsg hands the terminal to $EDITOR on the buttons file.
type openSettingsMsg struct{}

// editorFinishedMsg is sent when the external $EDITOR session ends.
type editorFinishedMsg struct {
	err error
}
