package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()

	t.Run("writes file with content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := fs.AtomicWrite(path, []byte(`{"ok":true}`), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(data) != `{"ok":true}` {
			t.Errorf("unexpected content: %q", string(data))
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "deep", "state.json")

		if err := fs.AtomicWrite(path, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("overwrites existing file wholesale", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
			t.Fatalf("setup write failed: %v", err)
		}
		if err := fs.AtomicWrite(path, []byte("new"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("expected full overwrite, got %q", string(data))
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := fs.AtomicWrite(path, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 1 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("expected only the target file, found %v", names)
		}
	})
}

func TestRealFS_ReadFile(t *testing.T) {
	fs := NewRealFS()

	t.Run("returns os.ErrNotExist style error for missing file", func(t *testing.T) {
		_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
		if !os.IsNotExist(err) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}
