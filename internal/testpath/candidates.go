// Package testpath derives plausible test file locations for an
// implementation file.
//
// Candidates follow the conventions of the TypeScript/JavaScript ecosystem:
// same-directory siblings with a test infix, a __tests__ subdirectory, and a
// tests/ tree mirroring src/. Generation is pure; no candidate needs to exist
// on disk.
package testpath

import (
	"path/filepath"
	"strings"
)

// Candidates returns the ordered, non-empty list of plausible test paths for
// an implementation file. The first entry is the preferred suggestion shown
// to the user when a write is blocked; matching treats the set as unordered.
func Candidates(implPath string) []string {
	dir := filepath.Dir(implPath)
	ext := filepath.Ext(implPath)
	stem := strings.TrimSuffix(filepath.Base(implPath), ext)

	candidates := []string{
		filepath.Join(dir, stem+".test"+ext),
		filepath.Join(dir, stem+".spec"+ext),
		filepath.Join(dir, stem+"_test"+ext),
		filepath.Join(dir, stem+"_spec"+ext),
	}

	testsDir := filepath.Join(dir, "__tests__")
	candidates = append(candidates,
		filepath.Join(testsDir, stem+".test"+ext),
		filepath.Join(testsDir, stem+".spec"+ext),
		filepath.Join(testsDir, stem+ext),
	)

	if mirrored, ok := mirrorSourceDir(dir); ok {
		candidates = append(candidates,
			filepath.Join(mirrored, stem+".test"+ext),
			filepath.Join(mirrored, stem+".spec"+ext),
		)
	}

	return candidates
}

// mirrorSourceDir replaces the first "src" segment of dir with "tests".
// Returns false when dir has no "src" segment.
func mirrorSourceDir(dir string) (string, bool) {
	segments := strings.Split(dir, string(filepath.Separator))
	for i, segment := range segments {
		if segment == "src" {
			mirrored := make([]string, len(segments))
			copy(mirrored, segments)
			mirrored[i] = "tests"
			return strings.Join(mirrored, string(filepath.Separator)), true
		}
	}
	return "", false
}
