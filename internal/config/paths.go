// Package config manages tddguard configuration and filesystem paths.
//
// Configuration includes the locations of tddguard data directories, which can
// be customized via environment variables. The default root is ~/.tddguard/
// containing the session state file and an optional config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by tddguard.
type Paths struct {
	// Root is the base directory for all tddguard data (default: ~/.tddguard)
	Root string

	// State is the directory containing session state files
	State string

	// SessionFile is the path to the persisted TDD session state
	SessionFile string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for tddguard.
// Paths can be overridden with environment variables:
// - TDDGUARD_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TDDGUARD_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".tddguard")
	}

	return &Paths{
		Root:        root,
		State:       filepath.Join(root, "state"),
		SessionFile: filepath.Join(root, "state", "session.json"),
		Config:      filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.State,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
