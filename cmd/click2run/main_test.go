package main

import (
	"path/filepath"
	"testing"

	"click2run/internal/button"
)

func TestResolveDirsSeparatesWorkspaceFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	workDir, storeDir, err := resolveDirs()
	if err != nil {
		t.Fatalf("resolveDirs() = %v", err)
	}
	if workDir != dir {
		t.Errorf("workDir = %q, want the workspace root %q", workDir, dir)
	}
	if storeDir != filepath.Join(dir, button.DefaultDir) {
		t.Errorf("storeDir = %q, want %q", storeDir, filepath.Join(dir, button.DefaultDir))
	}
	// Commands must run in the workspace, never inside the hidden
	// config directory.
	if workDir == storeDir {
		t.Error("workDir and storeDir are the same directory")
	}
}

func TestResolveDirsStoreOverrideKeepsWorkspace(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(button.DirEnv, "/tmp/custom-buttons")

	workDir, storeDir, err := resolveDirs()
	if err != nil {
		t.Fatalf("resolveDirs() = %v", err)
	}
	if storeDir != "/tmp/custom-buttons" {
		t.Errorf("storeDir = %q, want the env override", storeDir)
	}
	if workDir != dir {
		t.Errorf("workDir = %q, want the workspace root %q", workDir, dir)
	}
}
