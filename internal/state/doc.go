// Package state manages TDD session state persistence.
//
// The state package provides abstractions for storing and retrieving the set
// of test files touched during a session. State is persisted as a single JSON
// document; a cross-process file lock serializes read-modify-write cycles so
// concurrent hook invocations cannot lose updates.
//
// Key concepts:
//   - SessionState: The recorded-test set plus session identifiers
//   - SessionStore: Interface for loading, recording into, and resetting state
//   - FileSessionStore: Durable implementation over a locked JSON file
//   - MemSessionStore: In-memory double for engine tests
package state
