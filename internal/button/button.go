// Package button holds the persisted button model and its store.
// A button is one clickable status-bar entry bound to a shell command.
// The full list is the unit of persistence: every mutation loads the
// whole list, changes it in memory, and writes the whole list back.
package button

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is the persisted definition of one button.
type Record struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Command        string `json:"command"`
	Tooltip        string `json:"tooltip,omitempty"`
	Color          string `json:"color,omitempty"`
	UseNewTerminal bool   `json:"useNewTerminal"`
	Priority       int    `json:"priority"`
}

// NewID returns a fresh unique id for a record, derived from the
// creation timestamp so ids sort roughly by creation order.
func NewID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// DefaultTooltip returns the tooltip used when the user leaves the
// tooltip prompt blank.
func DefaultTooltip(command string) string {
	return fmt.Sprintf("Runs the command: '%s'", command)
}

// Normalize resolves optional fields to their documented defaults.
// Called once at the data-model boundary before a record is persisted.
func (r Record) Normalize() Record {
	if strings.TrimSpace(r.Tooltip) == "" {
		r.Tooltip = DefaultTooltip(r.Command)
	}
	return r
}

// Validate reports whether the record may be persisted.
// Text and Command must be non-empty; everything else is optional.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("button text is empty")
	}
	if strings.TrimSpace(r.Command) == "" {
		return fmt.Errorf("button command is empty")
	}
	return nil
}

// SortByPriority returns a copy of records ordered by descending
// priority. Ties keep their relative storage order (stable sort), so
// display and shortcut order stay deterministic.
func SortByPriority(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// IndexByID returns the position of the record with the given id in
// records, or -1 if absent.
func IndexByID(records []Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// RemoveByID returns records without the record matching id. All other
// records and their ids are untouched.
func RemoveByID(records []Record, id string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
