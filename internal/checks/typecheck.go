package checks

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/danieljhkim/tddguard/internal/config"
	"github.com/danieljhkim/tddguard/internal/log"
)

// TypecheckTimeout bounds one type-check run.
const TypecheckTimeout = 60 * time.Second

// typescriptExtensions are the file types the type-check validator covers.
var typescriptExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".mts": true,
	".cts": true,
}

// TypecheckCheck runs the TypeScript compiler after a write. Used as a
// PostToolUse hook so type errors surface immediately.
type TypecheckCheck struct {
	runner Runner
	cfg    *config.Config
}

// NewTypecheckCheck creates a TypecheckCheck.
func NewTypecheckCheck(runner Runner, cfg *config.Config) *TypecheckCheck {
	return &TypecheckCheck{runner: runner, cfg: cfg}
}

// IsTypeScript reports whether the type-check validator applies to the file.
// Declaration files carry no checkable implementation and are skipped.
func IsTypeScript(path string) bool {
	if !typescriptExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	if strings.HasSuffix(strings.ToLower(filepath.Base(path)), ".d.ts") {
		return false
	}
	return !inSkippedDir(path)
}

// Evaluate type-checks the project containing the file and blocks on errors.
func (c *TypecheckCheck) Evaluate(ctx context.Context, filePath string) Outcome {
	if !IsTypeScript(filePath) {
		return allowOutcome("")
	}

	root, ok := FindProjectRoot(filePath, "tsconfig.json", "package.json")
	if !ok {
		return allowOutcome("")
	}

	passed, output, err := c.runner.Run(ctx, root, c.cfg.Typecheck.Command)
	if err != nil {
		log.Debug("typecheck inconclusive for %s: %v", filePath, err)
		return allowOutcome("")
	}
	if passed {
		return allowOutcome("")
	}

	return blockOutcome("Type errors found! Fix before continuing:\n\n" + ExtractTypeErrors(output, filePath))
}

// ExtractTypeErrors pulls the diagnostics relevant to filePath out of tsc
// output: lines naming the file plus their indented continuations. Falls back
// to the first few generic "error TS" lines, capped at 10 lines total.
func ExtractTypeErrors(output, filePath string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return "Type errors found"
	}

	fileName := filepath.Base(filePath)
	lines := strings.Split(output, "\n")

	var relevant []string
	inRelevantError := false
	for _, line := range lines {
		switch {
		case strings.Contains(line, fileName) || strings.Contains(line, filePath):
			relevant = append(relevant, line)
			inRelevantError = true
		case inRelevantError && (strings.HasPrefix(line, " ") || strings.TrimSpace(line) == ""):
			relevant = append(relevant, line)
		default:
			inRelevantError = false
		}
	}

	if len(relevant) == 0 {
		for _, line := range lines {
			if strings.Contains(line, "error TS") {
				relevant = append(relevant, line)
				if len(relevant) == 5 {
					break
				}
			}
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
