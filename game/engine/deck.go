package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewDeck returns all 52 distinct cards in deck-building order (by suit,
// then rank).
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// ShuffledDeck returns a freshly built deck in uniformly random order.
func ShuffledDeck() []Card {
	deck := NewDeck()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Deal builds the initial session state from an ordered deck: each player
// receives the next four cards in sequence, slots 0 and 2 start visible
// (the two-card initial peek rule), and the remainder becomes the draw pile.
// The first player acts first.
func Deal(id string, deck []Card, playerNames []string) (*GameState, error) {
	if len(playerNames) < MinPlayers {
		return nil, fmt.Errorf("need at least %d players, got %d", MinPlayers, len(playerNames))
	}
	if len(playerNames)*HandSize > len(deck) {
		return nil, fmt.Errorf("cannot deal %d cards to %d players from a %d-card deck",
			HandSize, len(playerNames), len(deck))
	}

	players := make([]Player, 0, len(playerNames))
	idx := 0
	for i, name := range playerNames {
		var hand Hand
		for slot := 0; slot < HandSize; slot++ {
			hand[slot] = CardSlot{Card: deck[idx+slot]}
		}
		hand[0].Visible = true
		hand[2].Visible = true

		players = append(players, Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: name,
			Seat: i,
			Hand: hand,
		})
		idx += HandSize
	}

	drawPile := make([]Card, len(deck)-idx)
	copy(drawPile, deck[idx:])

	return &GameState{
		ID:              id,
		Variant:         DefaultVariant,
		Players:         players,
		DrawPile:        drawPile,
		DrawPileCount:   len(drawPile),
		RemovedFromPlay: []Card{},
		CurrentPlayer:   players[0].ID,
		TurnPhase:       PhaseAwaitingAction,
		History:         []HistoryEntry{},
		StartedAt:       time.Now().UTC(),
		Round:           1,
	}, nil
}
