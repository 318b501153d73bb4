// Package session provides session management for the Cambio game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval keyed by session id
//   - Unique session ID generation
//   - Session lifecycle management and TTL-based cleanup
//   - Optional persistence behind the SessionPersistence interface
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// It stores service.Session values, each of which wraps one game engine and
// carries its own lock; the manager's lock guards only the map, so moves on
// different sessions never serialize against each other.
//
// Session Identifiers:
//
// Sessions use UUIDs generated at creation time. Callers may also supply
// their own id; duplicates are rejected.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", []string{"Alice", "Bob"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Cleanup:
//
// Sessions can be explicitly deleted or expire based on inactivity via
// CleanupExpiredSessions, typically driven by a ticker in main.
package session
