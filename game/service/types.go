package service

import (
	"time"

	"github.com/cardroom/cambio/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.HistoryEntry `json:"moves"`
	TotalMoves  int                   `json:"total_moves"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalPages  int                   `json:"total_pages"`
	HasNext     bool                  `json:"has_next"`
	HasPrevious bool                  `json:"has_previous"`
}

// AdvisorView is the sanitized snapshot handed to the automated move advisor.
// Hidden slots report the opaque "unknown" marker instead of a card value, so
// the advisor never learns more than a player at the table would. It carries
// no write access; the advisor submits proposals through the normal validated
// move path.
type AdvisorView struct {
	GameID        string           `json:"game_id"`
	CurrentPlayer string           `json:"current_player"`
	TurnPhase     engine.TurnPhase `json:"turn_phase"`
	Players       []AdvisorPlayer  `json:"players"`
	TopDiscard    string           `json:"top_discard,omitempty"`
	DrawPileCount int              `json:"draw_pile_count"`
}

// AdvisorPlayer is one player's hand as the advisor may see it.
type AdvisorPlayer struct {
	PlayerID string        `json:"player_id"`
	Name     string        `json:"name"`
	Hand     []AdvisorSlot `json:"hand"`
}

// AdvisorSlot reports a single hand slot. Card is the textual encoding for
// disclosed slots and "unknown" otherwise; Value is omitted for hidden slots.
type AdvisorSlot struct {
	Slot  int    `json:"slot"`
	Card  string `json:"card"`
	Value *int   `json:"value,omitempty"`
}

// UnknownCard is the opaque marker for a slot the advisor may not see.
const UnknownCard = "unknown"
