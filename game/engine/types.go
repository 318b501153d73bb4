package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Suit is the single-character suit token used in the card wire encoding.
type Suit string

const (
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Spades   Suit = "S"
)

// Rank is the rank token of a card: A, 2..10, J, Q, K.
type Rank string

const (
	DeckSize = 52
	HandSize = 4

	// Validation constants
	MinPlayers = 2
	MaxPlayers = DeckSize / HandSize
	MinSlot    = 0
	MaxSlot    = HandSize - 1

	DefaultVariant = "cambio_standard"
)

// Suits and Ranks enumerate the full card set in deck-building order.
var (
	Suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card is an immutable rank/suit pair. It marshals to the compact textual
// encoding rank+suit (e.g. "10H", "KS"), which is the format clients and the
// advisor see.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the textual encoding of the card.
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// ParseCard decodes the textual encoding back into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card encoding: %q", s)
	}
	rank := Rank(s[:len(s)-1])
	suit := Suit(s[len(s)-1:])

	validRank := false
	for _, r := range Ranks {
		if r == rank {
			validRank = true
			break
		}
	}
	validSuit := false
	for _, su := range Suits {
		if su == suit {
			validSuit = true
			break
		}
	}
	if !validRank || !validSuit {
		return Card{}, fmt.Errorf("invalid card encoding: %q", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalJSON encodes the card as its textual token.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the textual token.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CardSlot is one of the four fixed positions in a player's hand. Visible is
// a single global flag: once true, the card value is considered disclosed to
// every reader of the session, opponents included. Per-observer privacy is
// intentionally not modeled; the advisor view applies its own masking on top.
type CardSlot struct {
	Card    Card `json:"card"`
	Visible bool `json:"visible"`
}

// Hand is a fixed-size ordered sequence of card slots. Slots are only ever
// replaced, never inserted or removed.
type Hand [HandSize]CardSlot

// Player holds a participant's identity and hand. Score is meaningful only
// after the round has ended.
type Player struct {
	ID    string `json:"player_id"`
	Name  string `json:"name"`
	Seat  int    `json:"seat"`
	Hand  Hand   `json:"hand"`
	Score int    `json:"score"`
}

// TurnPhase distinguishes ongoing play from a finished round.
type TurnPhase string

const (
	PhaseAwaitingAction TurnPhase = "awaiting_action"
	PhaseRoundEnd       TurnPhase = "round_end"
)

// MoveType identifies one of the four legal move kinds.
type MoveType string

const (
	MoveDrawDeck        MoveType = "draw_deck"
	MoveDrawDiscardSwap MoveType = "draw_discard_swap"
	MovePeek            MoveType = "peek"
	MoveCallCambio      MoveType = "call_cambio"
)

// Move is a proposed action. Slot is required only for draw_discard_swap and
// peek; a nil Slot on those kinds is rejected by validation.
type Move struct {
	Type MoveType `json:"type"`
	Slot *int     `json:"slot,omitempty"`
}

// SlotOf is a convenience constructor for moves that target a hand slot.
func SlotOf(n int) *int {
	return &n
}

// HistoryEntry records one accepted move. Turn is a 1-based sequence index.
type HistoryEntry struct {
	Turn   int    `json:"turn"`
	Player string `json:"player"`
	Action string `json:"action"`
}

// GameState is the complete state of one Cambio session.
//
// Card conservation: the 52 distinct cards are partitioned across DrawPile,
// all player hands, TopDiscard and RemovedFromPlay at all times. Cards
// superseded on the discard top are moved to RemovedFromPlay rather than
// dropped, so conservation checks stay deterministic.
type GameState struct {
	ID              string         `json:"game_id"`
	Variant         string         `json:"variant"`
	Players         []Player       `json:"players"`
	DrawPile        []Card         `json:"draw_pile"`
	DrawPileCount   int            `json:"draw_pile_count"`
	TopDiscard      *Card          `json:"top_discard"`
	RemovedFromPlay []Card         `json:"removed_from_play"`
	CurrentPlayer   string         `json:"current_player"`
	TurnPhase       TurnPhase      `json:"turn_phase"`
	History         []HistoryEntry `json:"history"`
	StartedAt       time.Time      `json:"started_at"`
	Round           int            `json:"round"`
}

// Clone returns a deep copy of the state. Callers mutating the copy cannot
// corrupt the live session.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	out := *s

	out.Players = make([]Player, len(s.Players))
	copy(out.Players, s.Players)

	out.DrawPile = make([]Card, len(s.DrawPile))
	copy(out.DrawPile, s.DrawPile)

	out.RemovedFromPlay = make([]Card, len(s.RemovedFromPlay))
	copy(out.RemovedFromPlay, s.RemovedFromPlay)

	out.History = make([]HistoryEntry, len(s.History))
	copy(out.History, s.History)

	if s.TopDiscard != nil {
		top := *s.TopDiscard
		out.TopDiscard = &top
	}

	return &out
}

// PlayerByID returns the player with the given id, or nil.
func (s *GameState) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// playerIndex returns the position of a player id in session order, or -1.
func (s *GameState) playerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// MoveOutcome is the result of submitting a move. Valid=false carries a
// human-readable rejection reason and leaves the session unchanged; Valid=true
// carries the post-move snapshot and, for call_cambio, RoundEnd=true.
type MoveOutcome struct {
	Valid    bool       `json:"valid"`
	Reason   string     `json:"reason,omitempty"`
	State    *GameState `json:"state,omitempty"`
	RoundEnd bool       `json:"round_end,omitempty"`
}
