package state

import "sync"

// MemSessionStore implements SessionStore in memory for tests.
// Error fields, when set, are returned by the corresponding operation so
// callers can exercise their fail-open paths.
type MemSessionStore struct {
	mu    sync.Mutex
	state *SessionState

	// RecordErr is returned by RecordTest when non-nil.
	RecordErr error

	// ResetErr is returned by Reset when non-nil.
	ResetErr error
}

// NewMemSessionStore creates an empty in-memory store.
func NewMemSessionStore() *MemSessionStore {
	return &MemSessionStore{state: NewSessionState()}
}

// Load returns a copy of the current state.
func (s *MemSessionStore) Load() *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := &SessionState{
		TestFilesModified: append([]string{}, s.state.TestFilesModified...),
		SessionID:         s.state.SessionID,
		StartedAt:         s.state.StartedAt,
	}
	return copied
}

// RecordTest normalizes and inserts the path.
func (s *MemSessionStore) RecordTest(path string) error {
	if s.RecordErr != nil {
		return s.RecordErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Record(NormalizePath(path))
	return nil
}

// Reset replaces the state with an empty one.
func (s *MemSessionStore) Reset() error {
	if s.ResetErr != nil {
		return s.ResetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = NewSessionState()
	return nil
}
