package term

import (
	"fmt"
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/creack/pty"
)

// ptyRows and ptyCols size the PTY; output is streamed, not rendered,
// so the exact dimensions only matter to programs that query them.
const (
	ptyRows = 24
	ptyCols = 120
)

// PTYFactory creates sessions by spawning a shell in a PTY. Used when
// the process is not running inside tmux. Session output streams to
// the configured Output sink (the app log).
type PTYFactory struct {
	// Shell is the shell binary to spawn. Empty means bash, falling
	// back to sh.
	Shell string
	// Sink receives everything the session prints. Nil discards.
	Sink Output
}

var _ Factory = (*PTYFactory)(nil)

// New spawns the shell in a fresh PTY rooted at workDir.
func (f *PTYFactory) New(title, workDir string) (Session, error) {
	shell := f.Shell
	if shell == "" {
		shell = "sh"
		if path, err := exec.LookPath("bash"); err == nil {
			shell = path
		}
	}
	cmd := exec.Command(shell)
	cmd.Dir = workDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: ptyRows, Cols: ptyCols})
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", shell, err)
	}

	s := &ptySession{title: title, cmd: cmd, ptmx: ptmx}

	// Drain the PTY into the sink; EOF or read error marks the session
	// exited so the runner stops reusing it.
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 && f.Sink != nil {
				_, _ = f.Sink.Write(buf[:n])
			}
			if err != nil {
				s.exited.Store(true)
				return
			}
		}
	}()
	go func() {
		_ = cmd.Wait()
		s.exited.Store(true)
	}()

	return s, nil
}

// ptySession is a Session backed by a shell running in a PTY.
type ptySession struct {
	title  string
	cmd    *exec.Cmd
	ptmx   io.ReadWriteCloser
	exited atomic.Bool
}

var _ Session = (*ptySession)(nil)

func (s *ptySession) ID() string { return s.title }

// Show is a no-op: PTY sessions have no window of their own; their
// output lands in the log sink.
func (s *ptySession) Show() error { return nil }

// SendText writes the text plus a newline to the shell's stdin.
func (s *ptySession) SendText(text string) error {
	if s.exited.Load() {
		return fmt.Errorf("session %s has exited", s.title)
	}
	if _, err := io.WriteString(s.ptmx, text+"\n"); err != nil {
		return fmt.Errorf("send to %s: %w", s.title, err)
	}
	return nil
}

func (s *ptySession) Alive() bool {
	return !s.exited.Load()
}

// Close terminates the shell and releases the PTY.
func (s *ptySession) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.ptmx.Close()
}
