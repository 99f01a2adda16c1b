// Package term abstracts the terminal sessions that button commands run
// in. Two backends exist: tmux panes (when running inside tmux, the
// preferred setup) and plain PTY sessions (anywhere else). Both
// implement Session so the command runner and tests can swap them.
package term

import "io"

// Session is one live command-execution session.
type Session interface {
	// ID identifies the session (tmux pane id or pty label).
	ID() string
	// Show brings the session into view.
	Show() error
	// SendText sends text to the session followed by an implicit
	// execute (equivalent to pressing enter).
	SendText(text string) error
	// Alive reports whether the session can still accept text.
	Alive() bool
	// Close disposes the session.
	Close() error
}

// Factory creates sessions. The title labels the session (pane title or
// pty name); workDir is the session's working directory.
type Factory interface {
	New(title, workDir string) (Session, error)
}

// Output is where non-interactive backends stream session output.
// The PTY backend writes everything the shell prints to it; the tmux
// backend displays output in the pane itself and never uses it.
type Output interface {
	io.Writer
}
