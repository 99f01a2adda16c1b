// Package config loads the user-wide application config. This is
// app-level tuning only (terminal backend, shell, log file); the
// button list itself is workspace-scoped and lives in internal/button.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// HomeEnv is the env var override for the user config directory.
	HomeEnv = "CLICK2RUN_HOME"
	// DefaultHome is the default user config directory under $HOME.
	DefaultHome = ".click2run"
	// configFile is the app config file name.
	configFile = "config.yaml"
)

// Terminal backend selection values.
const (
	TerminalAuto = "auto" // tmux when inside tmux, otherwise pty
	TerminalTmux = "tmux"
	TerminalPTY  = "pty"
)

// Config is the user-wide application configuration.
type Config struct {
	// Terminal picks the session backend: auto, tmux, or pty.
	Terminal string `yaml:"terminal"`
	// Shell overrides the shell spawned by the pty backend.
	Shell string `yaml:"shell,omitempty"`
	// LogFile overrides the append-only log path.
	LogFile string `yaml:"log_file,omitempty"`
	// ShortcutSlots is how many numbered shortcut keys are bound.
	ShortcutSlots int `yaml:"shortcut_slots"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Terminal:      TerminalAuto,
		ShortcutSlots: 3,
	}
}

// ResolveHome returns the user config directory: CLICK2RUN_HOME if
// set, otherwise ~/.click2run.
func ResolveHome() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHome), nil
}

// Load reads config.yaml from dir, applying defaults for anything
// unset. A missing file yields the defaults, not an error.
func Load(dir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Terminal == "" {
		cfg.Terminal = TerminalAuto
	}
	if cfg.ShortcutSlots <= 0 {
		cfg.ShortcutSlots = Default().ShortcutSlots
	}
	return cfg, nil
}

// LogPath returns the log file path: the configured override, or
// <dir>/click2run.log.
func (c Config) LogPath(dir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(dir, "click2run.log")
}
