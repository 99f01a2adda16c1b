package button

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportMode selects how imported records combine with the existing list.
type ImportMode int

const (
	// ImportMerge concatenates imported records after existing ones.
	// No deduplication or id-collision resolution is attempted.
	ImportMerge ImportMode = iota
	// ImportOverwrite replaces the list wholly.
	ImportOverwrite
)

// DefaultExportName is the suggested file name for exports.
const DefaultExportName = "click2run-buttons.json"

// Export writes records to path as a pretty-printed JSON array.
// An empty list is an error: there is nothing to export.
func Export(records []Record, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no buttons to export")
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ReadImport reads and parses a JSON export file. The file must
// contain exactly a JSON array of button records.
func ReadImport(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	// Reject non-array documents up front with a descriptive error
	// instead of the generic unmarshal failure.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, fmt.Errorf("import file is not a JSON array of buttons")
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}
	return records, nil
}

// ApplyImport combines existing and imported records according to mode.
func ApplyImport(existing, imported []Record, mode ImportMode) []Record {
	if mode == ImportOverwrite {
		out := make([]Record, len(imported))
		copy(out, imported)
		return out
	}
	out := make([]Record, 0, len(existing)+len(imported))
	out = append(out, existing...)
	out = append(out, imported...)
	return out
}
