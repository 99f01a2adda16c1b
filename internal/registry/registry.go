// Package registry keeps the visible button set and its invocable
// actions in lockstep with the persisted list. Every change to the
// store triggers a total rebuild: all prior actions are revoked and
// all widgets dropped before the new set is registered. Nothing is
// ever patched incrementally, so a stale action can never fire
// against a half-rebuilt widget set.
package registry

import (
	"fmt"

	"click2run/internal/button"
)

// CommandPrefix prefixes every per-button action key.
const CommandPrefix = "click2run.runCommand."

// AddButtonCommandID is the action key of the permanent "add new
// button" entry point. It lives outside the managed set and is never
// revoked during a rebuild.
const AddButtonCommandID = "click2run.addButton"

// CommandID returns the action key for a record id.
func CommandID(id string) string {
	return CommandPrefix + id
}

// Item is the status-bar widget materialized from one record.
type Item struct {
	Text      string
	Tooltip   string
	Color     string
	CommandID string
	Priority  int
}

// Binding pairs a record's invocable action key with its widget.
type Binding struct {
	Record    button.Record
	CommandID string
	Item      Item
}

// Registry owns the id→binding map and the action table.
type Registry struct {
	store    *button.Store
	dispatch func(button.Record) error

	bindings map[string]Binding      // record id -> binding
	actions  map[string]func() error // command id -> action
	order    []string                // record ids in display order
}

// New creates a registry over the store. dispatch is invoked when a
// registered action fires (in production: the command runner).
func New(store *button.Store, dispatch func(button.Record) error) *Registry {
	return &Registry{
		store:    store,
		dispatch: dispatch,
		bindings: make(map[string]Binding),
		actions:  make(map[string]func() error),
	}
}

// Rebuild tears down every live binding and rematerializes the set
// from the store. Safe to call when the set is already empty.
func (g *Registry) Rebuild() error {
	g.Dispose()

	records, err := g.store.Load()
	if err != nil {
		return err
	}
	for _, rec := range button.SortByPriority(records) {
		rec := rec
		id := CommandID(rec.ID)
		g.actions[id] = func() error { return g.dispatch(rec) }
		g.bindings[rec.ID] = Binding{
			Record:    rec,
			CommandID: id,
			Item: Item{
				Text:      rec.Text,
				Tooltip:   rec.Tooltip,
				Color:     rec.Color,
				CommandID: id,
				Priority:  rec.Priority,
			},
		}
		g.order = append(g.order, rec.ID)
	}
	return nil
}

// Dispose revokes all actions and drops all widgets. Idempotent.
func (g *Registry) Dispose() {
	g.bindings = make(map[string]Binding)
	g.actions = make(map[string]func() error)
	g.order = nil
}

// Items returns the visible widgets in display order (descending
// priority, stable on ties).
func (g *Registry) Items() []Item {
	items := make([]Item, 0, len(g.order))
	for _, id := range g.order {
		items = append(items, g.bindings[id].Item)
	}
	return items
}

// Records returns the records in display order.
func (g *Registry) Records() []button.Record {
	records := make([]button.Record, 0, len(g.order))
	for _, id := range g.order {
		records = append(records, g.bindings[id].Record)
	}
	return records
}

// Invoke fires the action registered at the given command key.
func (g *Registry) Invoke(commandID string) error {
	action, ok := g.actions[commandID]
	if !ok {
		return fmt.Errorf("no action registered at %s", commandID)
	}
	return action()
}

// Has reports whether an action is registered at the given key.
func (g *Registry) Has(commandID string) bool {
	_, ok := g.actions[commandID]
	return ok
}

// Len returns the number of live bindings.
func (g *Registry) Len() int {
	return len(g.order)
}
