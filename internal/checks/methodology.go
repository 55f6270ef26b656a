package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// playPatterns match a Storybook play function declaration, in either the
// CSF object form or the assignment form.
var playPatterns = []*regexp.Regexp{
	regexp.MustCompile(`play:\s*async`),
	regexp.MustCompile(`play:\s*\(`),
	regexp.MustCompile(`play\s*=\s*async`),
}

// methodologySkipNames mirror the component filter of the storybook check
// minus declaration files, which the narrower extension set already excludes.
var methodologySkipNames = []string{
	".test.", ".spec.", ".stories.", "index.", "types.",
}

// MethodologyCheck verifies the two-layer component testing pattern: a unit
// test for structure and a story with play functions for interactions. Used
// as a PostToolUse hook; like the storybook check it annotates allows
// instead of blocking.
type MethodologyCheck struct{}

// NewMethodologyCheck creates a MethodologyCheck.
func NewMethodologyCheck() *MethodologyCheck {
	return &MethodologyCheck{}
}

// Evaluate inspects either a story file (for play functions) or a component
// file (for its unit test and story coverage).
func (c *MethodologyCheck) Evaluate(filePath string) Outcome {
	if isStoryFile(filePath) {
		return c.evaluateStory(filePath)
	}
	if isTestedComponent(filePath) {
		return c.evaluateComponent(filePath)
	}
	return allowOutcome("")
}

func (c *MethodologyCheck) evaluateStory(storyPath string) Outcome {
	content, err := os.ReadFile(storyPath)
	if err != nil {
		// Story not on disk yet; nothing to inspect
		return allowOutcome("")
	}

	if hasPlayFunction(content) {
		return allowOutcome("")
	}

	return allowOutcome("Storybook Interaction Tests Missing!\n\n" +
		"Your story file should include play functions for interaction testing:\n\n" +
		"```tsx\n" +
		"export const ClickInteraction: Story = {\n" +
		"  play: async ({ canvasElement }) => {\n" +
		"    const canvas = within(canvasElement);\n" +
		"    const button = canvas.getByRole(\"button\");\n\n" +
		"    await userEvent.click(button);\n" +
		"    await expect(button).toHaveAttribute(\"aria-expanded\", \"true\");\n" +
		"  },\n" +
		"};\n" +
		"```\n\n" +
		"Stories with play functions test real user interactions in a browser environment.\n" +
		"This catches issues that unit tests miss.")
}

func (c *MethodologyCheck) evaluateComponent(componentPath string) Outcome {
	dir := filepath.Dir(componentPath)
	stem := strings.TrimSuffix(filepath.Base(componentPath), filepath.Ext(componentPath))

	var issues []string

	if _, found := findUnitTest(componentPath); !found {
		issues = append(issues, fmt.Sprintf("Unit test missing: %s",
			filepath.Join(dir, stem+".test.tsx")))
	}

	if storyPath, found := findMethodologyStory(componentPath); !found {
		issues = append(issues, fmt.Sprintf("Story file missing: %s",
			filepath.Join(dir, stem+".stories.tsx")))
	} else if content, err := os.ReadFile(storyPath); err == nil && !hasPlayFunction(content) {
		issues = append(issues, fmt.Sprintf("Story file lacks play functions for interaction tests: %s", storyPath))
	}

	if len(issues) == 0 {
		return allowOutcome("")
	}

	var b strings.Builder
	b.WriteString("Test Methodology Check:\n\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "⚠  %s\n", issue)
	}
	b.WriteString("\nRequired testing pattern:\n" +
		"1. Unit tests (.test.tsx) - Rendering, props, variants\n" +
		"2. Storybook play functions - User interactions, state changes")
	return allowOutcome(b.String())
}

// isStoryFile reports whether the path names a Storybook story file.
func isStoryFile(path string) bool {
	return strings.Contains(strings.ToLower(filepath.Base(path)), ".stories.")
}

// isTestedComponent reports whether the methodology check applies: a
// .tsx/.jsx/.vue file living in a component directory.
func isTestedComponent(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".tsx" && ext != ".jsx" && ext != ".vue" {
		return false
	}

	name := strings.ToLower(filepath.Base(path))
	for _, fragment := range methodologySkipNames {
		if strings.Contains(name, fragment) {
			return false
		}
	}

	return hasSegment(path, componentDirs)
}

// hasPlayFunction reports whether story source declares any play function.
func hasPlayFunction(content []byte) bool {
	for _, pattern := range playPatterns {
		if pattern.Match(content) {
			return true
		}
	}
	return false
}

// findUnitTest returns the first existing unit test file for the component.
func findUnitTest(componentPath string) (string, bool) {
	dir := filepath.Dir(componentPath)
	stem := strings.TrimSuffix(filepath.Base(componentPath), filepath.Ext(componentPath))

	candidates := []string{
		filepath.Join(dir, stem+".test.tsx"),
		filepath.Join(dir, stem+".test.ts"),
		filepath.Join(dir, stem+".spec.tsx"),
		filepath.Join(dir, stem+".spec.ts"),
		filepath.Join(dir, "__tests__", stem+".test.tsx"),
		filepath.Join(dir, "__tests__", stem+".test.ts"),
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// findMethodologyStory returns the first existing story file; a narrower
// pattern set than the storybook check because play functions only live in
// TypeScript stories.
func findMethodologyStory(componentPath string) (string, bool) {
	dir := filepath.Dir(componentPath)
	stem := strings.TrimSuffix(filepath.Base(componentPath), filepath.Ext(componentPath))

	candidates := []string{
		filepath.Join(dir, stem+".stories.tsx"),
		filepath.Join(dir, stem+".stories.ts"),
		filepath.Join(dir, "__stories__", stem+".stories.tsx"),
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
