package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/danieljhkim/tddguard/internal/fsops"
	"github.com/danieljhkim/tddguard/internal/log"
)

// SessionStore provides an interface for persisting TDD session state.
type SessionStore interface {
	// Load returns the current session state. It is fail-soft: a missing,
	// unreadable, or corrupt backing file yields an empty default state,
	// never an error.
	Load() *SessionState

	// RecordTest normalizes the path and inserts it into the recorded set,
	// persisting the result. Recording the same path repeatedly is idempotent.
	RecordTest(path string) error

	// Reset unconditionally overwrites the state with an empty recorded-test
	// set and null identifiers, creating the backing location if absent.
	Reset() error
}

// FileSessionStore implements SessionStore over a single JSON file.
//
// Concurrent hook invocations share the file, so every read-modify-write
// cycle runs under an exclusive flock on a sibling lock file. The document
// itself is replaced via atomic rename, so readers that skip the lock (Load)
// still never observe a torn write.
type FileSessionStore struct {
	fs   fsops.FS
	path string
}

// NewFileSessionStore creates a new FileSessionStore backed by the file at path.
func NewFileSessionStore(fs fsops.FS, path string) *FileSessionStore {
	return &FileSessionStore{fs: fs, path: path}
}

// Load returns the current session state, or an empty state if the backing
// file is missing or unreadable.
func (s *FileSessionStore) Load() *SessionState {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read session state, treating as empty: %v", err)
		}
		return NewSessionState()
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warn("corrupt session state, treating as empty: %v", err)
		return NewSessionState()
	}

	if state.TestFilesModified == nil {
		state.TestFilesModified = []string{}
	}
	return &state
}

// RecordTest normalizes the path, inserts it if absent, and persists the
// state. The whole cycle holds the store lock so a concurrent RecordTest
// from another invocation cannot lose the update.
func (s *FileSessionStore) RecordTest(path string) error {
	normalized := NormalizePath(path)

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	state := s.Load()
	if !state.Record(normalized) {
		return nil
	}
	return s.write(state)
}

// Reset overwrites the state with an empty recorded-test set and null
// identifiers.
func (s *FileSessionStore) Reset() error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	return s.write(NewSessionState())
}

// lock acquires the exclusive cross-process lock, creating the parent
// directory if needed. The returned function releases the lock.
func (s *FileSessionStore) lock() (func(), error) {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	fl := flock.New(s.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock session state: %w", err)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			log.Warn("failed to unlock session state: %v", err)
		}
	}, nil
}

// write persists the state atomically. Callers must hold the store lock.
func (s *FileSessionStore) write(state *SessionState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}
