// Package logging provides the process-wide append-only log sink: a
// log file on disk plus a bounded in-memory tail that feeds the "show
// logs" view. The sink is an io.Writer, so slog, the tracer, and PTY
// session output all funnel into the same place.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// maxLines bounds the in-memory tail shown in the log view.
const maxLines = 500

// Sink is an append-only text log. Safe for concurrent use: the PTY
// reader goroutine and the UI flow both write to it.
type Sink struct {
	mu      sync.Mutex
	file    *os.File
	lines   []string
	pending string // unterminated trailing line
}

// NewSink opens (or creates) the log file at path in append mode.
func NewSink(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Sink{file: f}, nil
}

// Write appends to the file and to the in-memory tail.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.pending + string(p)
	parts := strings.Split(text, "\n")
	s.pending = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		// Strip carriage returns from PTY output.
		s.lines = append(s.lines, strings.TrimRight(line, "\r"))
	}
	if len(s.lines) > maxLines {
		s.lines = s.lines[len(s.lines)-maxLines:]
	}

	if s.file != nil {
		return s.file.Write(p)
	}
	return len(p), nil
}

// Lines returns a copy of the in-memory tail, oldest first.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Close flushes and closes the underlying file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// NewLogger returns a slog.Logger writing text records to the sink.
func NewLogger(sink *Sink) *slog.Logger {
	return slog.New(slog.NewTextHandler(sink, nil))
}

// Discard returns a logger that drops everything. Used by tests and
// early startup before the sink exists.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
