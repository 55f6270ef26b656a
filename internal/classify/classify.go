// Package classify assigns a role to a file path.
//
// Classification is a pure function over the path string: no filesystem
// access, so the same input always yields the same role. The roles drive the
// enforcement engine: tests are recorded, implementation writes are gated,
// everything else passes through.
package classify

import (
	"path/filepath"
	"strings"
)

// FileRole is the role a path plays in the TDD workflow.
type FileRole int

const (
	// RoleIgnored is anything outside the recognized source extensions.
	RoleIgnored FileRole = iota

	// RoleTest is a test file; writing one is always allowed and recorded.
	RoleTest

	// RoleConfig is a build/tool configuration source file.
	RoleConfig

	// RoleImplementation is a gated source file.
	RoleImplementation
)

// String returns the role name for logging and test failures.
func (r FileRole) String() string {
	switch r {
	case RoleTest:
		return "test"
	case RoleConfig:
		return "config"
	case RoleImplementation:
		return "implementation"
	default:
		return "ignored"
	}
}

// sourceExtensions are the extensions eligible for Test/Implementation roles.
var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
}

// testDirNames are directory segments that mark everything below them as tests.
var testDirNames = map[string]bool{
	"__tests__": true,
	"tests":     true,
}

// testMarkers are substrings of the lower-cased file name that mark a test file.
var testMarkers = []string{
	".test.", ".spec.", "_test.", "_spec.", "test_", "spec_",
}

// configMarkers are substrings of the lower-cased file name that mark a
// configuration file. Checked only after the test markers; "vitest.config.ts"
// is config, "config.test.ts" is a test.
var configMarkers = []string{
	"config.", ".config.", "rc.", ".d.ts",
	"vite.config", "vitest.config", "jest.config",
	"tsconfig", "eslint", "prettier",
}

// Role classifies a path. The path need not exist on disk.
func Role(path string) FileRole {
	if path == "" {
		return RoleIgnored
	}

	if !sourceExtensions[strings.ToLower(filepath.Ext(path))] {
		return RoleIgnored
	}
	if isTest(path) {
		return RoleTest
	}
	if isConfig(path) {
		return RoleConfig
	}
	return RoleImplementation
}

// isTest reports whether the path names a test file, by directory segment or
// file name marker. Substring match on the lower-cased name; first match wins.
func isTest(path string) bool {
	for _, segment := range splitSegments(path) {
		if testDirNames[segment] {
			return true
		}
	}

	name := strings.ToLower(filepath.Base(path))
	for _, marker := range testMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

func isConfig(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, marker := range configMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// splitSegments splits a path into its directory and file segments,
// accepting both forward and backward separators.
func splitSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
