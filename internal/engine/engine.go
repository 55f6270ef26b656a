// Package engine provides the TDD enforcement decision logic.
//
// The engine combines the path classifier, the candidate test path generator,
// and the session store into a single decision: may this write proceed? It is
// a monotone set-membership automaton over one session — the recorded-test
// set only grows until a reset empties it.
//
// The engine is fail-open. Any internal fault (store errors included)
// degrades to Allow; a Block is only produced by a confident classification
// of an implementation file with no matching recorded test. The enforcement
// mechanism must never stall a healthy workflow because of its own errors.
package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/tddguard/internal/classify"
	"github.com/danieljhkim/tddguard/internal/log"
	"github.com/danieljhkim/tddguard/internal/state"
	"github.com/danieljhkim/tddguard/internal/testpath"
)

// Engine makes allow/block decisions for file write intents.
type Engine struct {
	store state.SessionStore
}

// New creates a new Engine over the given session store.
func New(store state.SessionStore) *Engine {
	return &Engine{store: store}
}

// Enforce decides whether a write to the requested file may proceed.
// Test writes are allowed unconditionally and recorded; implementation
// writes are allowed only when a plausibly matching test was recorded
// earlier in the session.
func (e *Engine) Enforce(req *EnforceRequest) *Decision {
	if req == nil || req.FilePath == "" {
		return Allow()
	}

	role := classify.Role(req.FilePath)
	log.Debug("enforce: %s classified as %s", req.FilePath, role)

	switch role {
	case classify.RoleTest:
		if err := e.store.RecordTest(req.FilePath); err != nil {
			log.Warn("failed to record test file, allowing anyway: %v", err)
		}
		return Allow()

	case classify.RoleConfig, classify.RoleIgnored:
		return Allow()
	}

	candidates := testpath.Candidates(req.FilePath)
	recorded := e.store.Load()

	if matchesRecorded(recorded, candidates) {
		return Allow()
	}

	return Block(blockReason(candidates[0]))
}

// Reset empties the session store: a fresh recorded-test set and null
// identifiers, matching the document a brand-new session starts from.
func (e *Engine) Reset() error {
	return e.store.Reset()
}

// Status returns the current session state for display.
func (e *Engine) Status() *state.SessionState {
	return e.store.Load()
}

// matchesRecorded reports whether any candidate matches the recorded set,
// either by exact normalized path or by case-insensitive file name. The name
// fallback tolerates a test living in an unconventional directory; it also
// means a same-named test anywhere in the tree satisfies the match.
func matchesRecorded(recorded *state.SessionState, candidates []string) bool {
	for _, candidate := range candidates {
		normalized := state.NormalizePath(candidate)
		if recorded.Contains(normalized) {
			return true
		}

		candidateName := filepath.Base(candidate)
		for _, recordedPath := range recorded.TestFilesModified {
			if strings.EqualFold(filepath.Base(recordedPath), candidateName) {
				return true
			}
		}
	}
	return false
}

func blockReason(suggested string) string {
	return fmt.Sprintf("TDD violation: write the test first.\n\n"+
		"You're trying to write implementation code without touching a matching test this session.\n\n"+
		"Suggested test file: %s\n\n"+
		"Write and save the test file first, then retry the implementation change.", suggested)
}
