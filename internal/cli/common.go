package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danieljhkim/tddguard/internal/checks"
	"github.com/danieljhkim/tddguard/internal/config"
	"github.com/danieljhkim/tddguard/internal/engine"
	"github.com/danieljhkim/tddguard/internal/fsops"
	"github.com/danieljhkim/tddguard/internal/hook"
	"github.com/danieljhkim/tddguard/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	store := state.NewFileSessionStore(fs, paths.SessionFile)

	return engine.New(store), nil
}

// loadConfig loads config.yaml from the default location, falling back to
// defaults when paths cannot be resolved.
func loadConfig() *config.Config {
	paths, err := config.DefaultPaths()
	if err != nil {
		return config.DefaultConfig()
	}
	return config.Load(paths.Config)
}

// responseFrom converts a validator outcome into a hook response.
func responseFrom(outcome checks.Outcome) hook.Response {
	if outcome.Block {
		return hook.BlockResponse(outcome.Reason)
	}
	resp := hook.AllowResponse()
	resp.Reason = outcome.Reason
	return resp
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
