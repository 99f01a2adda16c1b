package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"click2run/internal/button"
	"click2run/internal/config"
	"click2run/internal/logging"
	"click2run/internal/registry"
	"click2run/internal/runner"
	"click2run/internal/telemetry"
	"click2run/internal/term"
	"click2run/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := config.ResolveHome()
	if err != nil {
		return fmt.Errorf("resolve config home: %w", err)
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("create config home: %w", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sink, err := logging.NewSink(cfg.LogPath(home))
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer sink.Close()
	logger := logging.NewLogger(sink)

	shutdown, err := telemetry.Setup(sink, telemetry.Enabled())
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer shutdown(context.Background())

	workDir, storeDir, err := resolveDirs()
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	store := button.NewStore(storeDir)

	factory, err := pickFactory(cfg, sink)
	if err != nil {
		return err
	}

	cmdRunner := runner.New(factory, store, workDir, logger)
	defer cmdRunner.Close()

	reg := registry.New(store, cmdRunner.Run)
	defer reg.Dispose()

	watcher, err := store.Watch()
	if err != nil {
		// Still usable without live reload.
		logger.Warn("watch buttons file", "err", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	app := ui.NewAppModel(ui.Deps{
		Config:     cfg,
		ConfigHome: home,
		Store:      store,
		Registry:   reg,
		Runner:     cmdRunner,
		Sink:       sink,
		Logger:     logger,
		Watcher:    watcher,
	})

	logger.Info("click2run starting", "workspace", workDir, "terminal", cfg.Terminal)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// resolveDirs splits the two directories the app cares about: workDir
// is the workspace root where button commands run (the cwd), storeDir
// is the hidden config directory holding buttons.json.
func resolveDirs() (workDir, storeDir string, err error) {
	workDir, err = os.Getwd()
	if err != nil {
		return "", "", err
	}
	storeDir, err = button.ResolveDir()
	if err != nil {
		return "", "", err
	}
	return workDir, storeDir, nil
}

// pickFactory chooses the terminal backend: tmux panes when running
// inside tmux, plain PTY sessions otherwise.
func pickFactory(cfg config.Config, sink *logging.Sink) (term.Factory, error) {
	switch cfg.Terminal {
	case config.TerminalTmux:
		if !term.InsideTmux() {
			return nil, fmt.Errorf("terminal %q configured but not running inside tmux", cfg.Terminal)
		}
		return term.TmuxFactory{}, nil
	case config.TerminalPTY:
		return &term.PTYFactory{Shell: cfg.Shell, Sink: sink}, nil
	default:
		if term.InsideTmux() {
			return term.TmuxFactory{}, nil
		}
		return &term.PTYFactory{Shell: cfg.Shell, Sink: sink}, nil
	}
}
