package checks

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/danieljhkim/tddguard/internal/config"
	"github.com/danieljhkim/tddguard/internal/log"
)

// LintTimeout bounds one lint run.
const LintTimeout = 30 * time.Second

// lintableExtensions are the file types the lint validator covers.
var lintableExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
}

// LintCheck runs the linter on a just-written file. Used as a PostToolUse
// hook so the agent fixes lint errors before moving on.
type LintCheck struct {
	runner Runner
	cfg    *config.Config
}

// NewLintCheck creates a LintCheck.
func NewLintCheck(runner Runner, cfg *config.Config) *LintCheck {
	return &LintCheck{runner: runner, cfg: cfg}
}

// IsLintable reports whether the lint validator applies to the file.
func IsLintable(path string) bool {
	if !lintableExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	return !inSkippedDir(path)
}

// Evaluate lints the file and blocks on errors.
func (c *LintCheck) Evaluate(ctx context.Context, filePath string) Outcome {
	if !IsLintable(filePath) {
		return allowOutcome("")
	}

	root, ok := FindProjectRoot(filePath, "package.json")
	if !ok {
		return allowOutcome("")
	}

	argv := make([]string, 0, len(c.cfg.Lint.Command)+1)
	argv = append(argv, c.cfg.Lint.Command...)
	argv = append(argv, filePath)

	passed, output, err := c.runner.Run(ctx, root, argv)
	if err != nil {
		// Linter missing or timed out; never block on that
		log.Debug("lint inconclusive for %s: %v", filePath, err)
		return allowOutcome("")
	}
	if passed {
		return allowOutcome("")
	}

	return blockOutcome("Lint errors found! Fix before continuing:\n\n" + ExtractLintErrors(output))
}

// ExtractLintErrors pulls the relevant diagnostic lines out of linter output,
// capped at 10 lines.
func ExtractLintErrors(output string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return "Lint errors found"
	}

	var relevant []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "error") || strings.Contains(lower, "warning") ||
			strings.HasPrefix(trimmed, "×") || strings.HasPrefix(trimmed, "⚠") {
			relevant = append(relevant, line)
		}
	}

	if len(relevant) > 0 {
		if len(relevant) > 10 {
			relevant = relevant[:10]
		}
		return strings.Join(relevant, "\n")
	}

	return truncate(output, 500)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
