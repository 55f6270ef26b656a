package checks

import (
	"os"
	"path/filepath"
	"strings"
)

// FindProjectRoot walks up from start looking for a directory containing any
// of the marker files (e.g. package.json, tsconfig.json). start may be a file
// or a directory. Returns false when no ancestor carries a marker.
func FindProjectRoot(start string, markers ...string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	} else if err != nil {
		// start need not exist; treat it as a file path
		dir = filepath.Dir(dir)
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// skipDirNames are directory segments excluded from validation: generated or
// vendored trees whose diagnostics are not actionable.
var skipDirNames = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"out":          true,
}

// inSkippedDir reports whether any segment of the path is a skipped directory.
func inSkippedDir(path string) bool {
	return hasSegment(path, skipDirNames)
}

// hasSegment reports whether any path segment is in names.
func hasSegment(path string, names map[string]bool) bool {
	for _, segment := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if names[segment] {
			return true
		}
	}
	return false
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
