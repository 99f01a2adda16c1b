package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"click2run/internal/button"
	"click2run/internal/config"
	"click2run/internal/logging"
	"click2run/internal/registry"
	"click2run/internal/runner"
	"click2run/internal/term"
)

type fakeSession struct {
	id    string
	sent  []string
	alive bool
}

func (s *fakeSession) ID() string   { return s.id }
func (s *fakeSession) Show() error  { return nil }
func (s *fakeSession) Alive() bool  { return s.alive }
func (s *fakeSession) Close() error { s.alive = false; return nil }
func (s *fakeSession) SendText(t string) error {
	s.sent = append(s.sent, t)
	return nil
}

type fakeFactory struct {
	sessions []*fakeSession
}

func (f *fakeFactory) New(title, workDir string) (term.Session, error) {
	s := &fakeSession{id: fmt.Sprintf("fake-%d", len(f.sessions)), alive: true}
	f.sessions = append(f.sessions, s)
	return s, nil
}

type testApp struct {
	app     *AppModel
	store   *button.Store
	factory *fakeFactory
}

func newTestApp(t *testing.T, records []button.Record) *testApp {
	t.Helper()
	dir := t.TempDir()
	store := button.NewStore(dir)
	if records != nil {
		if err := store.Save(records); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	factory := &fakeFactory{}
	run := runner.New(factory, store, dir, logging.Discard())
	reg := registry.New(store, run.Run)
	app := NewAppModel(Deps{
		Config:   config.Default(),
		Store:    store,
		Registry: reg,
		Runner:   run,
		Logger:   logging.Discard(),
	})
	app.Init()
	return &testApp{app: app, store: store, factory: factory}
}

func rec(text, command string, priority int) button.Record {
	return button.Record{
		ID:       button.NewID(),
		Text:     text,
		Command:  command,
		Tooltip:  button.DefaultTooltip(command),
		Priority: priority,
	}
}

func TestAddButtonOpensFlow(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.Update(InvokeCommandMsg{CommandID: registry.AddButtonCommandID})
	if _, ok := ta.app.modal.(*ButtonFlowModal); !ok {
		t.Fatalf("expected ButtonFlowModal, got %T", ta.app.modal)
	}
}

func TestSubmitButtonPersistsAndRegisters(t *testing.T) {
	ta := newTestApp(t, nil)
	r := rec("Build", "make build", 0)
	ta.app.Update(SubmitButtonMsg{Record: r})

	saved, err := ta.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(saved) != 1 || saved[0].Text != "Build" {
		t.Fatalf("unexpected saved records: %+v", saved)
	}
	if !ta.app.deps.Registry.Has(registry.CommandID(r.ID)) {
		t.Error("button not registered after submit")
	}
	if !strings.Contains(ta.app.status, "'Build' was added") {
		t.Errorf("unexpected status %q", ta.app.status)
	}
}

func TestSubmitEditOverwritesInPlace(t *testing.T) {
	orig := rec("Build", "make build", 0)
	other := rec("Test", "make test", 0)
	ta := newTestApp(t, []button.Record{orig, other})

	edited := orig
	edited.Command = "make build-all"
	ta.app.Update(SubmitButtonMsg{Record: edited, Editing: true})

	saved, _ := ta.store.Load()
	if len(saved) != 2 {
		t.Fatalf("expected 2 records, got %d", len(saved))
	}
	if saved[0].ID != orig.ID || saved[0].Command != "make build-all" {
		t.Errorf("edit did not overwrite in place: %+v", saved[0])
	}
	if !strings.Contains(ta.app.status, "updated") {
		t.Errorf("unexpected status %q", ta.app.status)
	}
}

func TestDeleteButton(t *testing.T) {
	r := rec("Build", "make build", 0)
	ta := newTestApp(t, []button.Record{r})

	ta.app.Update(DeleteButtonMsg{ID: r.ID, Text: r.Text})

	saved, _ := ta.store.Load()
	if len(saved) != 0 {
		t.Fatalf("expected empty store, got %d records", len(saved))
	}
	if ta.app.deps.Registry.Len() != 0 {
		t.Error("registry still holds bindings after delete")
	}
}

func TestInvokeDispatchesToRunner(t *testing.T) {
	r := rec("Build", "make build", 0)
	ta := newTestApp(t, []button.Record{r})

	ta.app.Update(InvokeCommandMsg{CommandID: registry.CommandID(r.ID)})

	if len(ta.factory.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(ta.factory.sessions))
	}
	sent := ta.factory.sessions[0].sent
	if len(sent) != 1 || sent[0] != "make build" {
		t.Errorf("unexpected sent text %v", sent)
	}
}

func TestRunSlotHonorsPriorityOrder(t *testing.T) {
	low := rec("Low", "echo low", 1)
	high := rec("High", "echo high", 10)
	ta := newTestApp(t, []button.Record{low, high})

	ta.app.Update(RunSlotMsg{Index: 0})

	if len(ta.factory.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(ta.factory.sessions))
	}
	if got := ta.factory.sessions[0].sent[0]; got != "echo high" {
		t.Errorf("slot 1 ran %q, want highest priority command", got)
	}
}

func TestRunSlotEmptyIsWarningNotError(t *testing.T) {
	ta := newTestApp(t, []button.Record{rec("Build", "make build", 0)})

	ta.app.Update(RunSlotMsg{Index: 2})

	if ta.app.statusLevel != statusWarn {
		t.Errorf("expected warning status, got level %d (%q)", ta.app.statusLevel, ta.app.status)
	}
	if len(ta.factory.sessions) != 0 {
		t.Error("empty slot should not create a session")
	}
}

func TestExportWithNoButtonsIsError(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.app.Update(openExportMsg{})

	if ta.app.modal != nil {
		t.Error("export prompt opened despite empty list")
	}
	if ta.app.statusLevel != statusError {
		t.Errorf("expected error status, got %q", ta.app.status)
	}
}

func TestImportFlowParsesBeforeModePrompt(t *testing.T) {
	existing := rec("Build", "make build", 0)
	ta := newTestApp(t, []button.Record{existing})

	path := filepath.Join(t.TempDir(), "in.json")
	incoming := []button.Record{rec("Test", "make test", 0)}
	if err := button.Export(incoming, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	ta.app.Update(ImportPathChosenMsg{Path: path})
	if _, ok := ta.app.modal.(*ImportModeModal); !ok {
		t.Fatalf("expected ImportModeModal after parse, got %T", ta.app.modal)
	}

	ta.app.Update(ImportModeChosenMsg{Mode: button.ImportOverwrite})
	saved, _ := ta.store.Load()
	if len(saved) != 1 || saved[0].Text != "Test" {
		t.Errorf("overwrite import left %+v", saved)
	}
}

func TestImportMergeAppends(t *testing.T) {
	existing := rec("Build", "make build", 0)
	ta := newTestApp(t, []button.Record{existing})

	path := filepath.Join(t.TempDir(), "in.json")
	if err := button.Export([]button.Record{rec("Test", "make test", 0)}, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	ta.app.Update(ImportPathChosenMsg{Path: path})
	ta.app.Update(ImportModeChosenMsg{Mode: button.ImportMerge})

	saved, _ := ta.store.Load()
	if len(saved) != 2 {
		t.Errorf("merge import left %d records, want 2", len(saved))
	}
}

func TestImportBadFileSurfacesErrorWithoutModePrompt(t *testing.T) {
	ta := newTestApp(t, nil)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ta.app.Update(ImportPathChosenMsg{Path: path})

	if ta.app.modal != nil {
		t.Errorf("mode prompt opened for invalid file, modal %T", ta.app.modal)
	}
	if ta.app.statusLevel != statusError {
		t.Errorf("expected error status, got %q", ta.app.status)
	}
}

func TestStoreChangeRebuildsRegistry(t *testing.T) {
	ta := newTestApp(t, nil)
	if ta.app.deps.Registry.Len() != 0 {
		t.Fatal("expected empty registry")
	}

	if err := ta.store.Save([]button.Record{rec("Build", "make build", 0)}); err != nil {
		t.Fatal(err)
	}
	ta.app.Update(StoreChangedMsg{})

	if ta.app.deps.Registry.Len() != 1 {
		t.Errorf("registry not rebuilt after store change, len %d", ta.app.deps.Registry.Len())
	}
}

func TestDismissModalAbortsSilently(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.Update(InvokeCommandMsg{CommandID: registry.AddButtonCommandID})
	ta.app.Update(DismissModalMsg{})

	if ta.app.modal != nil {
		t.Error("modal still active after dismiss")
	}
	saved, _ := ta.store.Load()
	if len(saved) != 0 {
		t.Error("dismiss persisted records")
	}
}
