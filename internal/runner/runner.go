// Package runner dispatches button commands to terminal sessions.
// Buttons either get a dedicated session per invocation or reuse one
// process-wide shared session that is recreated only after it exits.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"click2run/internal/button"
	"click2run/internal/term"
)

// SharedSessionTitle labels the shared terminal session.
const SharedSessionTitle = "Click2Run"

// ErrNoSuchSlot is returned by RunByPosition when no button exists at
// the requested position. Callers surface it as a warning, not an
// error: no command runs, nothing is broken.
var ErrNoSuchSlot = errors.New("no button at this shortcut slot")

// Runner executes button commands. It owns the shared session and any
// dedicated sessions it created, and disposes them on Close.
type Runner struct {
	factory term.Factory
	store   *button.Store
	log     *slog.Logger
	workDir string

	shared    term.Session
	dedicated []term.Session
}

// New creates a runner. Sessions start in workDir ("" means the
// process's working directory).
func New(factory term.Factory, store *button.Store, workDir string, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{factory: factory, store: store, workDir: workDir, log: log}
}

// Run executes the record's command in the session its terminal mode
// asks for. The target session is shown, then the command text is sent
// followed by an implicit execute. Output, exit codes, and retries are
// the terminal's concern, not ours.
func (r *Runner) Run(rec button.Record) error {
	_, span := otel.Tracer("click2run/runner").Start(context.Background(), "button.run")
	span.SetAttributes(
		attribute.String("button.id", rec.ID),
		attribute.String("button.text", rec.Text),
		attribute.Bool("button.new_terminal", rec.UseNewTerminal),
	)
	defer span.End()

	sess, err := r.sessionFor(rec)
	if err != nil {
		return err
	}
	if err := sess.Show(); err != nil {
		return fmt.Errorf("show terminal: %w", err)
	}
	if err := sess.SendText(rec.Command); err != nil {
		return fmt.Errorf("run %q: %w", rec.Text, err)
	}
	r.log.Info("command dispatched", "button", rec.Text, "command", rec.Command, "session", sess.ID())
	return nil
}

// RunByPosition resolves the current priority-sorted list and runs the
// record at the given position (0 = highest priority). Out-of-range
// positions return ErrNoSuchSlot wrapped with the slot number.
func (r *Runner) RunByPosition(index int) (button.Record, error) {
	records, err := r.store.Load()
	if err != nil {
		return button.Record{}, err
	}
	sorted := button.SortByPriority(records)
	if index < 0 || index >= len(sorted) {
		return button.Record{}, fmt.Errorf("slot %d: %w", index+1, ErrNoSuchSlot)
	}
	rec := sorted[index]
	return rec, r.Run(rec)
}

// sessionFor picks the session to run in: a fresh dedicated one when
// the record asks for its own terminal, otherwise the shared session,
// recreated if it was never made or has already exited.
func (r *Runner) sessionFor(rec button.Record) (term.Session, error) {
	if rec.UseNewTerminal {
		r.pruneDedicated()
		sess, err := r.factory.New(rec.Text, r.workDir)
		if err != nil {
			return nil, fmt.Errorf("create terminal: %w", err)
		}
		r.dedicated = append(r.dedicated, sess)
		return sess, nil
	}
	if r.shared == nil || !r.shared.Alive() {
		sess, err := r.factory.New(SharedSessionTitle, r.workDir)
		if err != nil {
			return nil, fmt.Errorf("create terminal: %w", err)
		}
		r.shared = sess
	}
	return r.shared, nil
}

// pruneDedicated releases sessions that have already exited so the
// tracked set only holds live ones.
func (r *Runner) pruneDedicated() {
	live := r.dedicated[:0]
	for _, s := range r.dedicated {
		if s.Alive() {
			live = append(live, s)
			continue
		}
		if err := s.Close(); err != nil {
			r.log.Warn("close session", "session", s.ID(), "err", err)
		}
	}
	r.dedicated = live
}

// SharedSession returns the current shared session, or nil if none has
// been created yet.
func (r *Runner) SharedSession() term.Session {
	return r.shared
}

// Close disposes every session the runner created.
func (r *Runner) Close() {
	if r.shared != nil {
		if err := r.shared.Close(); err != nil {
			r.log.Warn("close shared session", "err", err)
		}
		r.shared = nil
	}
	for _, s := range r.dedicated {
		if err := s.Close(); err != nil {
			r.log.Warn("close session", "session", s.ID(), "err", err)
		}
	}
	r.dedicated = nil
}
