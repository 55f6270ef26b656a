package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsComponentFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/components/Button.tsx", true},
		{"src/features/search/SearchBar.jsx", true},
		{"src/ui/Card.tsx", true},
		{"src/atoms/Icon.tsx", true},
		{"src/Widget.tsx", true},

		// lowercase name outside a component dir
		{"src/helpers/widget.tsx", false},
		// support directories
		{"src/hooks/useThing.tsx", false},
		{"src/utils/Format.tsx", false},
		{"src/providers/ThemeProvider.tsx", false},
		// skipped name fragments
		{"src/components/Button.test.tsx", false},
		{"src/components/Button.stories.tsx", false},
		{"src/components/index.tsx", false},
		{"src/components/types.ts", false},
		// wrong extension
		{"src/components/button.ts", false},
		{"src/components/style.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsComponentFile(tt.path); got != tt.want {
				t.Errorf("IsComponentFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("setup mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte("export {}\n"), 0644); err != nil {
			t.Fatalf("setup write failed: %v", err)
		}
	}
}

func TestStorybookCheck_Evaluate(t *testing.T) {
	check := NewStorybookCheck()

	t.Run("silent for component with sibling story", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "components/Button.tsx", "components/Button.stories.tsx")

		outcome := check.Evaluate(filepath.Join(root, "components", "Button.tsx"))
		if outcome.Block || outcome.Reason != "" {
			t.Errorf("expected silent allow, got %+v", outcome)
		}
	})

	t.Run("finds story in __stories__ subdirectory", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "components/Card.tsx", "components/__stories__/Card.stories.tsx")

		outcome := check.Evaluate(filepath.Join(root, "components", "Card.tsx"))
		if outcome.Reason != "" {
			t.Errorf("expected silent allow, got reason %q", outcome.Reason)
		}
	})

	t.Run("advises without blocking when no story exists", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "components/Modal.tsx")

		outcome := check.Evaluate(filepath.Join(root, "components", "Modal.tsx"))
		if outcome.Block {
			t.Fatal("storybook check must never block")
		}
		if !strings.Contains(outcome.Reason, "Modal.stories.tsx") {
			t.Errorf("expected suggested story path in reason, got %q", outcome.Reason)
		}
	})

	t.Run("silent for non-component files", func(t *testing.T) {
		outcome := check.Evaluate("src/utils/format.ts")
		if outcome.Block || outcome.Reason != "" {
			t.Errorf("expected silent allow, got %+v", outcome)
		}
	})
}
