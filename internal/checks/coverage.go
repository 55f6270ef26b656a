package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danieljhkim/tddguard/internal/config"
	"github.com/danieljhkim/tddguard/internal/log"
)

// CoverageTimeout bounds one coverage command run.
const CoverageTimeout = 120 * time.Second

// coveragePatterns match a coverage percentage in tool output, most specific
// first: vitest/jest summary table, istanbul text summary, then generic forms.
var coveragePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)All files\s*\|\s*([\d.]+)\s*\|`),
	regexp.MustCompile(`(?i)Statements\s*:\s*([\d.]+)%`),
	regexp.MustCompile(`(?i)Lines\s*:\s*([\d.]+)%`),
	regexp.MustCompile(`(?i)Coverage:\s*([\d.]+)%`),
	regexp.MustCompile(`(?i)([\d.]+)%\s*coverage`),
	regexp.MustCompile(`(?i)Total.*?([\d.]+)%`),
}

// CoverageCheck runs the project's coverage command and gates completion on a
// minimum percentage. Used as a Stop hook: it runs when the agent tries to
// finish its work.
type CoverageCheck struct {
	runner Runner
	cfg    *config.Config
}

// NewCoverageCheck creates a CoverageCheck.
func NewCoverageCheck(runner Runner, cfg *config.Config) *CoverageCheck {
	return &CoverageCheck{runner: runner, cfg: cfg}
}

// Evaluate measures coverage for the project containing cwd.
func (c *CoverageCheck) Evaluate(ctx context.Context, cwd string) Outcome {
	root, ok := FindProjectRoot(cwd, "package.json")
	if !ok {
		root = cwd
	}

	if !hasTestScript(root) {
		return allowOutcome("")
	}

	pct, found := c.measure(ctx, root)
	if !found {
		return allowOutcome("Could not determine test coverage. Consider adding coverage reporting.")
	}

	threshold := c.cfg.CoverageThreshold()
	if pct >= float64(threshold) {
		return allowOutcome(fmt.Sprintf("Coverage: %.1f%% (threshold: %d%%)", pct, threshold))
	}

	return blockOutcome(fmt.Sprintf("Coverage too low: %.1f%% (required: %d%%)\n\n"+
		"Add more tests to reach the coverage threshold before completing this task.", pct, threshold))
}

// measure tries the configured coverage commands in order and returns the
// first percentage it can extract.
func (c *CoverageCheck) measure(ctx context.Context, root string) (float64, bool) {
	for _, argv := range c.cfg.Coverage.Commands {
		ok, output, err := c.runner.Run(ctx, root, argv)
		if err != nil {
			log.Debug("coverage command %v inconclusive: %v", argv, err)
			continue
		}

		lower := strings.ToLower(output)
		if strings.Contains(lower, "not found") || strings.Contains(lower, "missing script") {
			continue
		}

		if pct, parsed := ParseCoverage(output); parsed {
			return pct, true
		}

		// Tests passed but printed no percentage; fall back to report files
		if ok {
			if pct, read := readCoverageFile(root); read {
				return pct, true
			}
		}
		return 0, false
	}

	return 0, false
}

// ParseCoverage extracts a coverage percentage from command output.
func ParseCoverage(output string) (float64, bool) {
	for _, pattern := range coveragePatterns {
		match := pattern.FindStringSubmatch(output)
		if match == nil {
			continue
		}
		pct, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return pct, true
	}
	return 0, false
}

// readCoverageFile extracts a percentage from the istanbul report files a
// coverage run leaves behind.
func readCoverageFile(root string) (float64, bool) {
	if pct, ok := readCoverageSummary(filepath.Join(root, "coverage", "coverage-summary.json")); ok {
		return pct, true
	}
	return readCoverageFinal(filepath.Join(root, "coverage", "coverage-final.json"))
}

func readCoverageSummary(path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	var doc struct {
		Total struct {
			Lines *struct {
				Pct float64 `json:"pct"`
			} `json:"lines"`
		} `json:"total"`
	}
	if err := json.Unmarshal(data, &doc); err != nil || doc.Total.Lines == nil {
		return 0, false
	}
	return doc.Total.Lines.Pct, true
}

func readCoverageFinal(path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	var doc map[string]struct {
		S map[string]float64 `json:"s"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, false
	}

	total := 0
	covered := 0
	for _, file := range doc {
		for _, hits := range file.S {
			total++
			if hits > 0 {
				covered++
			}
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(covered) / float64(total) * 100, true
}

// hasTestScript reports whether the project's package.json declares any
// test-like script. Projects without tests skip the coverage gate.
func hasTestScript(root string) bool {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		// No package.json to inspect; don't skip the gate
		return true
	}

	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return true
	}

	for name := range pkg.Scripts {
		if strings.Contains(name, "test") {
			return true
		}
	}
	return false
}
