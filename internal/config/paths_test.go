package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("uses TDDGUARD_ROOT when set", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("TDDGUARD_ROOT", root)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != root {
			t.Errorf("Root = %q, want %q", paths.Root, root)
		}
		if paths.SessionFile != filepath.Join(root, "state", "session.json") {
			t.Errorf("SessionFile = %q", paths.SessionFile)
		}
		if paths.Config != filepath.Join(root, "config.yaml") {
			t.Errorf("Config = %q", paths.Config)
		}
	})

	t.Run("defaults to home directory", func(t *testing.T) {
		t.Setenv("TDDGUARD_ROOT", "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}
		if paths.Root != filepath.Join(home, ".tddguard") {
			t.Errorf("Root = %q, want under home", paths.Root)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	t.Run("creates root and state directories", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "guard")
		t.Setenv("TDDGUARD_ROOT", root)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories failed: %v", err)
		}

		for _, dir := range []string{paths.Root, paths.State} {
			info, err := os.Stat(dir)
			if err != nil {
				t.Fatalf("expected directory %s: %v", dir, err)
			}
			if !info.IsDir() {
				t.Errorf("%s is not a directory", dir)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "guard")
		t.Setenv("TDDGUARD_ROOT", root)

		paths, _ := DefaultPaths()
		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("first EnsureDirectories failed: %v", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("second EnsureDirectories failed: %v", err)
		}
	})
}
