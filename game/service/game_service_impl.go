package service

import (
	"context"
	"fmt"
	"log"

	"github.com/cardroom/cambio/game/engine"
)

// gameServiceImpl implements the GameService interface. It carries no lock of
// its own: the session manager guards its map and each session serializes its
// own validate-and-apply, so moves on different sessions never block one
// another.
type gameServiceImpl struct {
	sessions SessionManager
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateSession creates a new game session for the given players. An empty
// name list falls back to two default seats, matching the reference behavior.
func (s *gameServiceImpl) CreateSession(ctx context.Context, playerNames []string) (*SessionInfo, error) {
	if len(playerNames) == 0 {
		playerNames = []string{"Player1", "Player2"}
	}

	session, err := s.sessions.Create("", playerNames)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// SubmitMove validates and applies one move against a session. Rule
// violations come back as MoveOutcome{Valid:false}; only an unknown session
// id produces an error.
func (s *gameServiceImpl) SubmitMove(ctx context.Context, sessionID string, mv engine.Move) (*engine.MoveOutcome, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(sessionID)

	outcome := sess.Submit(mv)

	// Auto-save accepted moves when persistence is configured.
	if outcome.Valid {
		if err := s.sessions.Save(sessionID); err != nil {
			log.Printf("Warning: failed to persist session %s after move: %v", sessionID, err)
		}
	}

	return outcome, nil
}

// GetGameState retrieves an immutable snapshot of the session state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Snapshot(), nil
}

// GetHistory returns paginated move history
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Snapshot().History
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.HistoryEntry
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.HistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// GetAdvisorView returns the sanitized snapshot for the automated advisor:
// hidden slots are masked with the "unknown" marker and the draw pile
// contents are omitted entirely.
func (s *gameServiceImpl) GetAdvisorView(ctx context.Context, sessionID string) (*AdvisorView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Snapshot()

	view := &AdvisorView{
		GameID:        state.ID,
		CurrentPlayer: state.CurrentPlayer,
		TurnPhase:     state.TurnPhase,
		DrawPileCount: state.DrawPileCount,
		Players:       make([]AdvisorPlayer, 0, len(state.Players)),
	}
	if state.TopDiscard != nil {
		view.TopDiscard = state.TopDiscard.String()
	}

	for _, p := range state.Players {
		ap := AdvisorPlayer{
			PlayerID: p.ID,
			Name:     p.Name,
			Hand:     make([]AdvisorSlot, 0, engine.HandSize),
		}
		for i, slot := range p.Hand {
			if slot.Visible {
				value := engine.CardValue(slot.Card)
				ap.Hand = append(ap.Hand, AdvisorSlot{
					Slot:  i,
					Card:  slot.Card.String(),
					Value: &value,
				})
			} else {
				ap.Hand = append(ap.Hand, AdvisorSlot{
					Slot: i,
					Card: UnknownCard,
				})
			}
		}
		view.Players = append(view.Players, ap)
	}

	return view, nil
}

// sessionInfo builds the service-level view of a session.
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Snapshot(),
	}
}
