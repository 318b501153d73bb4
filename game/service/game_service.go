package service

import (
	"context"
	"sync"
	"time"

	"github.com/cardroom/cambio/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, playerNames []string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	SubmitMove(ctx context.Context, sessionID string, mv engine.Move) (*engine.MoveOutcome, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Advisor integration
	GetAdvisorView(ctx context.Context, sessionID string) (*AdvisorView, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, playerNames []string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// Session represents an active game session. Sessions are independent units
// of concurrency: each carries its own lock so that exactly one move is
// validated-and-applied at a time, while operations on other sessions proceed
// unblocked.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time

	mu sync.Mutex
}

// Submit validates and applies one move as a single atomic unit under the
// session lock.
func (s *Session) Submit(mv engine.Move) *engine.MoveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Submit(mv)
}

// Snapshot returns an immutable deep copy of the session state, taken under
// the session lock to avoid torn reads.
func (s *Session) Snapshot() *engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Snapshot()
}
