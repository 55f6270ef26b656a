package checks

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// componentSkipNames are file name fragments that disqualify a path from
// being treated as a UI component.
var componentSkipNames = []string{
	".test.", ".spec.", ".stories.", "index.", "types.", ".d.",
}

// nonComponentDirs hold support code that never needs a story.
var nonComponentDirs = map[string]bool{
	"hooks":     true,
	"utils":     true,
	"lib":       true,
	"types":     true,
	"api":       true,
	"services":  true,
	"providers": true,
}

// componentDirs mark a path as a UI component regardless of file name casing.
var componentDirs = map[string]bool{
	"components": true,
	"atoms":      true,
	"molecules":  true,
	"organisms":  true,
	"features":   true,
	"ui":         true,
}

// IsComponentFile reports whether the path names a React component: a
// .tsx/.jsx file in a component directory, or any PascalCase-named one
// outside the known support directories.
func IsComponentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".tsx" && ext != ".jsx" {
		return false
	}

	name := strings.ToLower(filepath.Base(path))
	for _, fragment := range componentSkipNames {
		if strings.Contains(name, fragment) {
			return false
		}
	}

	if hasSegment(path, nonComponentDirs) {
		return false
	}
	if hasSegment(path, componentDirs) {
		return true
	}

	stem := []rune(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return len(stem) > 0 && unicode.IsUpper(stem[0])
}

// StorybookCheck nudges toward a Storybook story for every UI component.
// Used as a PostToolUse hook. It is advisory: a missing story annotates the
// allow rather than blocking, so it never stalls non-UI work.
type StorybookCheck struct{}

// NewStorybookCheck creates a StorybookCheck.
func NewStorybookCheck() *StorybookCheck {
	return &StorybookCheck{}
}

// Evaluate looks for a story file next to the component.
func (c *StorybookCheck) Evaluate(filePath string) Outcome {
	if !IsComponentFile(filePath) {
		return allowOutcome("")
	}

	if _, found := findStoryFile(filePath); found {
		return allowOutcome("")
	}

	suggested := suggestedStoryPath(filePath)
	return allowOutcome(fmt.Sprintf("UI Component without Storybook story.\n\n"+
		"Consider creating: %s\n\n"+
		"Stories help document component variants and enable visual testing.", suggested))
}

// findStoryFile returns the first existing story file for the component.
func findStoryFile(componentPath string) (string, bool) {
	dir := filepath.Dir(componentPath)
	ext := filepath.Ext(componentPath)
	stem := strings.TrimSuffix(filepath.Base(componentPath), ext)

	candidates := []string{
		filepath.Join(dir, stem+".stories"+ext),
		filepath.Join(dir, stem+".stories.tsx"),
		filepath.Join(dir, stem+".stories.ts"),
		filepath.Join(dir, "__stories__", stem+".stories"+ext),
		filepath.Join(dir, "stories", stem+".stories"+ext),
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func suggestedStoryPath(componentPath string) string {
	dir := filepath.Dir(componentPath)
	stem := strings.TrimSuffix(filepath.Base(componentPath), filepath.Ext(componentPath))
	return filepath.Join(dir, stem+".stories.tsx")
}
