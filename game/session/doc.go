// Package session provides game session lifecycle management for King
// of the Hill chess.
//
// The session package implements:
//   - In-memory session storage with case-insensitive IDs
//   - Random session ID generation
//   - Optional file-based persistence (one JSON file per session)
//
// The Manager satisfies service.SessionManager. When created with a
// SessionPersistence, sessions are written through on create and save,
// and lazily reloaded from disk on Get after a restart. A persisted
// session stores its config by ID and the engine's snapshot, so loading
// rebuilds the engine and restores the exact game position.
package session
