package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// stateFile holds one-time persisted flags (currently just the
// first-run welcome marker).
const stateFile = "state.json"

type appState struct {
	Welcomed bool `json:"welcomed"`
}

// Welcomed reports whether the first-run welcome message has already
// been shown. Any read failure counts as "not welcomed": the worst
// case is showing the welcome again.
func Welcomed(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, stateFile))
	if err != nil {
		return false
	}
	var st appState
	if err := json.Unmarshal(data, &st); err != nil {
		return false
	}
	return st.Welcomed
}

// MarkWelcomed persists the first-run flag.
func MarkWelcomed(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.Marshal(appState{Welcomed: true})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stateFile), data, 0644)
}
