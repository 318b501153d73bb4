package session

import (
	"time"

	"github.com/cardroom/cambio/game/engine"
	"github.com/cardroom/cambio/game/service"
)

// SessionPersistence defines the interface for persisting sessions. The
// in-memory store is authoritative; persistence is optional wiring behind
// this boundary, so a durable backend can be swapped in without touching the
// core.
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the JSON structure for persisted sessions
type PersistedSessionData struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}
