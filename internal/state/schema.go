package state

import (
	"path/filepath"
	"time"
)

// SessionState records which test files were touched since the last session
// reset. This is the authoritative record the enforcement engine consults
// before allowing an implementation write.
type SessionState struct {
	// TestFilesModified holds normalized absolute paths, de-duplicated by
	// construction via Record
	TestFilesModified []string `json:"test_files_modified"`

	// SessionID identifies the session that last reset the state, if known
	SessionID *string `json:"session_id"`

	// StartedAt is when the session began, if known
	StartedAt *time.Time `json:"started_at"`
}

// NewSessionState creates a new empty SessionState.
func NewSessionState() *SessionState {
	return &SessionState{
		TestFilesModified: []string{},
		SessionID:         nil,
		StartedAt:         nil,
	}
}

// Contains reports whether the exact path is recorded.
func (s *SessionState) Contains(path string) bool {
	for _, recorded := range s.TestFilesModified {
		if recorded == path {
			return true
		}
	}
	return false
}

// Record inserts the path if absent and reports whether it was inserted.
// Calling it again with the same path is a no-op.
func (s *SessionState) Record(path string) bool {
	if s.Contains(path) {
		return false
	}
	s.TestFilesModified = append(s.TestFilesModified, path)
	return true
}

// NormalizePath converts a path to its canonical absolute form for storage
// and comparison. Relative paths are resolved against the working directory.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
