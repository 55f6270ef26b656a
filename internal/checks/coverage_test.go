package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/tddguard/internal/config"
)

func TestParseCoverage(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		found  bool
	}{
		{
			name:   "vitest table format",
			output: "File      | % Stmts |\nAll files |   87.5  |  91.2 |",
			want:   87.5,
			found:  true,
		},
		{
			name:   "istanbul statements format",
			output: "=============================\nStatements   : 92.31% ( 24/26 )",
			want:   92.31,
			found:  true,
		},
		{
			name:   "istanbul lines format",
			output: "Lines        : 85% ( 17/20 )",
			want:   85,
			found:  true,
		},
		{
			name:   "simple coverage format",
			output: "Coverage: 78.4%",
			want:   78.4,
			found:  true,
		},
		{
			name:   "generic percentage before keyword",
			output: "achieved 66.7% coverage overall",
			want:   66.7,
			found:  true,
		},
		{
			name:   "total row",
			output: "Total lines covered 73%",
			want:   73,
			found:  true,
		},
		{
			name:   "case-insensitive",
			output: "COVERAGE: 50%",
			want:   50,
			found:  true,
		},
		{
			name:   "no percentage",
			output: "12 tests passed in 3.2s",
			found:  false,
		},
		{
			name:   "empty output",
			output: "",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseCoverage(tt.output)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("ParseCoverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func setupProject(t *testing.T, packageJSON string) string {
	t.Helper()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(packageJSON), 0644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}
	return root
}

func TestCoverageCheck_Evaluate(t *testing.T) {
	ctx := context.Background()
	withTests := `{"scripts":{"test:coverage":"vitest run --coverage"}}`

	t.Run("allows when coverage meets threshold", func(t *testing.T) {
		root := setupProject(t, withTests)
		runner := &fakeRunner{results: []fakeResult{
			{ok: true, output: "All files |   91.0  | 88 |"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if outcome.Block {
			t.Fatalf("expected allow, got block: %s", outcome.Reason)
		}
		if !strings.Contains(outcome.Reason, "91.0%") {
			t.Errorf("Reason = %q", outcome.Reason)
		}
	})

	t.Run("blocks when coverage is below threshold", func(t *testing.T) {
		root := setupProject(t, withTests)
		runner := &fakeRunner{results: []fakeResult{
			{ok: true, output: "All files |   42.0  | 40 |"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if !outcome.Block {
			t.Fatal("expected block for low coverage")
		}
		if !strings.Contains(outcome.Reason, "42.0%") {
			t.Errorf("Reason = %q", outcome.Reason)
		}
	})

	t.Run("respects COVERAGE_THRESHOLD override", func(t *testing.T) {
		t.Setenv("COVERAGE_THRESHOLD", "40")

		root := setupProject(t, withTests)
		runner := &fakeRunner{results: []fakeResult{
			{ok: true, output: "All files |   42.0  | 40 |"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		if outcome := check.Evaluate(ctx, root); outcome.Block {
			t.Errorf("expected allow with lowered threshold, got block: %s", outcome.Reason)
		}
	})

	t.Run("allows with advisory when coverage is unknown", func(t *testing.T) {
		root := setupProject(t, withTests)
		runner := &fakeRunner{results: []fakeResult{
			{ok: false, output: "tests failed"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if outcome.Block {
			t.Fatal("expected allow for unknown coverage")
		}
		if !strings.Contains(outcome.Reason, "Could not determine") {
			t.Errorf("Reason = %q", outcome.Reason)
		}
	})

	t.Run("skips projects without test scripts", func(t *testing.T) {
		root := setupProject(t, `{"scripts":{"build":"tsc"}}`)
		runner := &fakeRunner{}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if outcome.Block {
			t.Error("expected allow for project without tests")
		}
		if len(runner.calls) != 0 {
			t.Errorf("expected no commands run, got %d", len(runner.calls))
		}
	})

	t.Run("tries the next command after missing script", func(t *testing.T) {
		root := setupProject(t, withTests)
		runner := &fakeRunner{results: []fakeResult{
			{ok: false, output: "ERR_PNPM missing script: test:coverage"},
			{ok: true, output: "Coverage: 90%"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if outcome.Block {
			t.Errorf("expected allow, got block: %s", outcome.Reason)
		}
		if len(runner.calls) != 2 {
			t.Errorf("expected 2 commands tried, got %d", len(runner.calls))
		}
	})

	t.Run("falls back to coverage summary file", func(t *testing.T) {
		root := setupProject(t, withTests)
		covDir := filepath.Join(root, "coverage")
		if err := os.MkdirAll(covDir, 0755); err != nil {
			t.Fatalf("setup mkdir failed: %v", err)
		}
		summary := `{"total":{"lines":{"total":20,"covered":19,"pct":95}}}`
		if err := os.WriteFile(filepath.Join(covDir, "coverage-summary.json"), []byte(summary), 0644); err != nil {
			t.Fatalf("setup write failed: %v", err)
		}

		runner := &fakeRunner{results: []fakeResult{
			{ok: true, output: "all tests passed"},
		}}

		check := NewCoverageCheck(runner, config.DefaultConfig())
		outcome := check.Evaluate(ctx, root)

		if outcome.Block {
			t.Fatalf("expected allow from summary file, got block: %s", outcome.Reason)
		}
		if !strings.Contains(outcome.Reason, "95.0%") {
			t.Errorf("Reason = %q", outcome.Reason)
		}
	})
}

func TestReadCoverageFinal(t *testing.T) {
	t.Run("computes ratio from statement hits", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "coverage-final.json")
		doc := `{
			"/repo/src/a.ts": {"s": {"0": 1, "1": 1, "2": 0}},
			"/repo/src/b.ts": {"s": {"0": 5}}
		}`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatalf("setup write failed: %v", err)
		}

		pct, ok := readCoverageFinal(path)
		if !ok {
			t.Fatal("expected coverage to be computed")
		}
		if pct != 75 {
			t.Errorf("pct = %v, want 75", pct)
		}
	})

	t.Run("missing file returns not found", func(t *testing.T) {
		if _, ok := readCoverageFinal(filepath.Join(t.TempDir(), "nope.json")); ok {
			t.Error("expected not found")
		}
	})
}
