package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands.
// Keys use tea.KeyMsg.String() notation: "a", "1", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order for the help line
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd) {
	r.BindWithDesc(key, cmd, "")
}

// BindWithDesc registers a key with a description for the help line.
func (r *KeybindRegistry) BindWithDesc(key string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[key]; !exists {
		r.order = append(r.order, key)
	}
	r.bindings[key] = cmd
	if desc != "" {
		r.descriptions[key] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(key string) tea.Cmd {
	return r.bindings[key]
}

// HelpLine renders "key: desc" pairs in registration order for keys
// that have descriptions. Undescribed bindings stay out of the line.
func (r *KeybindRegistry) HelpLine() string {
	var parts []string
	for _, key := range r.order {
		if d := r.descriptions[key]; d != "" {
			parts = append(parts, key+": "+d)
		}
	}
	return strings.Join(parts, "  ")
}

// Hints returns all described bindings, sorted by key.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for key, d := range r.descriptions {
		out[key] = d
	}
	return out
}

// Keys returns the described keys in sorted order.
func (r *KeybindRegistry) Keys() []string {
	keys := make([]string, 0, len(r.descriptions))
	for k := range r.descriptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Handle dispatches a KeyMsg. Returns (consumed, cmd): consumed means
// the key was bound and should not reach the focused view.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if cmd := r.Lookup(msg.String()); cmd != nil {
		return true, cmd
	}
	return false, nil
}
