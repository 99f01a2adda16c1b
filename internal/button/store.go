package button

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const (
	// DirEnv is the env var override for the workspace config directory.
	DirEnv = "CLICK2RUN_DIR"
	// DefaultDir is the default config directory inside the current workspace.
	DefaultDir = ".click2run"
	// buttonsFile is the file holding the full button list.
	buttonsFile = "buttons.json"
)

// ResolveDir returns the workspace config directory: CLICK2RUN_DIR if
// set, otherwise .click2run under the current working directory. The
// button list is always workspace-scoped, never user-wide.
func ResolveDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDir), nil
}

// Store reads and writes the ordered button list for one workspace.
// Load and Save always operate on the whole list; there is no
// per-record operation. Concurrent external edits between a Load and
// the following Save can clobber each other; that race is not guarded.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the absolute path of the buttons file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, buttonsFile)
}

// Load returns the persisted button list. A missing or empty file
// yields an empty list, not an error; external tools may truncate the
// file before writing it.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read buttons: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse buttons: %w", err)
	}
	return records, nil
}

// Save persists the full list, replacing any prior value. The write is
// atomic (temp file + rename) so a failed save never leaves a partial
// file behind.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode buttons: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, buttonsFile+".tmp-")
	if err != nil {
		return fmt.Errorf("write buttons: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write buttons: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write buttons: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write buttons: %w", err)
	}
	return nil
}

// Watcher notifies when the buttons file changes on disk, covering
// manual external edits of the underlying storage.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	Changed chan struct{}
}

// Watch starts watching the store's directory for changes to the
// buttons file. The directory is created if missing so the watch can
// be established before the first save.
func (s *Store) Watch() (*Watcher, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch buttons: %w", err)
	}
	// Watch the directory, not the file: atomic saves replace the file
	// by rename, which would drop a file-level watch.
	if err := fsw.Add(s.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch buttons: %w", err)
	}
	w := &Watcher{fsw: fsw, path: s.Path(), Changed: make(chan struct{}, 1)}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				close(w.Changed)
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// Coalesce bursts: a pending notification is enough.
			select {
			case w.Changed <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				close(w.Changed)
				return
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
