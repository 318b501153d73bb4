// Package websocket provides WebSocket transport for the Cambio game server.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - State snapshot broadcasting after accepted moves
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded snapshots:
//
//	{"session_id": "...", "event": "state_update", "game_state": {...}}
//
// Clients do not submit moves over the socket; moves go through the REST
// path so that every mutation passes validation.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=...) when
// establishing the connection. State updates are broadcast only to clients
// watching the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	// after an accepted move:
//	hub.BroadcastToSession(sessionID, snapshot)
package websocket
