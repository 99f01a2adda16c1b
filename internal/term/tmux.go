package term

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// InsideTmux reports whether the process is running inside tmux.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// TmuxFactory creates sessions as tmux panes in the current window.
type TmuxFactory struct{}

// Ensure TmuxFactory implements Factory.
var _ Factory = (*TmuxFactory)(nil)

// New splits a new pane with cwd set to workDir and titles it.
func (TmuxFactory) New(title, workDir string) (Session, error) {
	paneID, err := splitPane(workDir)
	if err != nil {
		return nil, err
	}
	// Title is cosmetic; ignore failures on tmux versions without -T.
	_ = exec.Command("tmux", "select-pane", "-t", paneID, "-T", title).Run()
	return &tmuxPane{id: paneID}, nil
}

// tmuxPane is a Session backed by one tmux pane.
type tmuxPane struct {
	id string
}

var _ Session = (*tmuxPane)(nil)

func (p *tmuxPane) ID() string { return p.id }

// Show focuses the pane.
func (p *tmuxPane) Show() error {
	cmd := exec.Command("tmux", "select-pane", "-t", p.id)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux select-pane: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// SendText sends the text literally followed by Enter.
func (p *tmuxPane) SendText(text string) error {
	cmd := exec.Command("tmux", "send-keys", "-l", "-t", p.id, text+"\n")
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux send-keys: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Alive checks the pane still exists via tmux list-panes.
func (p *tmuxPane) Alive() bool {
	live, err := listPaneIDs()
	if err != nil {
		return false
	}
	return live[p.id]
}

// Close kills the pane. Killing an already-dead pane is not an error.
func (p *tmuxPane) Close() error {
	if !p.Alive() {
		return nil
	}
	cmd := exec.Command("tmux", "kill-pane", "-t", p.id)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux kill-pane: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// splitPane creates a new pane in the current window with cwd set to
// workDir. Returns the new pane ID (e.g. %4).
func splitPane(workDir string) (string, error) {
	cmd := exec.Command("tmux", "split-window", "-P", "-F", "#{pane_id}", "-c", workDir)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux split-window: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// listPaneIDs returns all live pane IDs across all tmux sessions.
func listPaneIDs() (map[string]bool, error) {
	cmd := exec.Command("tmux", "list-panes", "-a", "-F", "#{pane_id}")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w: %s", err, strings.TrimSpace(out.String()))
	}
	panes := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			panes[line] = true
		}
	}
	return panes, nil
}
