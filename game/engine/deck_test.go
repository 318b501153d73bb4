package engine

import (
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	if len(deck) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(deck))
	}

	// All 52 cards must be distinct
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("Duplicate card in deck: %s", c)
		}
		seen[c] = true
	}

	// Every suit should carry 13 ranks
	bySuit := make(map[Suit]int)
	for _, c := range deck {
		bySuit[c.Suit]++
	}
	for _, suit := range Suits {
		if bySuit[suit] != 13 {
			t.Errorf("Expected 13 cards of suit %s, got %d", suit, bySuit[suit])
		}
	}
}

func TestShuffledDeck(t *testing.T) {
	deck := ShuffledDeck()

	if len(deck) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(deck))
	}

	// Shuffling must preserve the card set
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("Duplicate card after shuffle: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("Expected %d distinct cards after shuffle, got %d", DeckSize, len(seen))
	}
}

func TestDeal(t *testing.T) {
	deck := NewDeck()
	state, err := Deal("test-game", deck, []string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("Failed to deal: %v", err)
	}

	if state.ID != "test-game" {
		t.Errorf("Expected game id 'test-game', got %q", state.ID)
	}
	if state.Variant != DefaultVariant {
		t.Errorf("Expected variant %q, got %q", DefaultVariant, state.Variant)
	}
	if len(state.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(state.Players))
	}

	// Each player holds 4 cards dealt in deck order
	for i, p := range state.Players {
		expectedID := []string{"p1", "p2"}[i]
		if p.ID != expectedID {
			t.Errorf("Expected player id %s, got %s", expectedID, p.ID)
		}
		if p.Seat != i {
			t.Errorf("Expected seat %d, got %d", i, p.Seat)
		}
		for slot := 0; slot < HandSize; slot++ {
			want := deck[i*HandSize+slot]
			if p.Hand[slot].Card != want {
				t.Errorf("Player %s slot %d: expected %s, got %s", p.ID, slot, want, p.Hand[slot].Card)
			}
		}
	}

	// Initial peek rule: slots 0 and 2 visible, 1 and 3 hidden
	for _, p := range state.Players {
		for slot, wantVisible := range map[int]bool{0: true, 1: false, 2: true, 3: false} {
			if p.Hand[slot].Visible != wantVisible {
				t.Errorf("Player %s slot %d: expected visible=%t", p.ID, slot, wantVisible)
			}
		}
	}

	// Remaining cards form the draw pile
	wantDraw := DeckSize - 2*HandSize
	if state.DrawPileCount != wantDraw {
		t.Errorf("Expected draw pile count %d, got %d", wantDraw, state.DrawPileCount)
	}
	if len(state.DrawPile) != wantDraw {
		t.Errorf("Expected %d cards in draw pile, got %d", wantDraw, len(state.DrawPile))
	}

	if state.TopDiscard != nil {
		t.Error("Expected empty discard at deal")
	}
	if state.CurrentPlayer != "p1" {
		t.Errorf("Expected first player to act, got %s", state.CurrentPlayer)
	}
	if state.TurnPhase != PhaseAwaitingAction {
		t.Errorf("Expected phase %s, got %s", PhaseAwaitingAction, state.TurnPhase)
	}
	if len(state.History) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(state.History))
	}
}

func TestDeal_TooFewPlayers(t *testing.T) {
	_, err := Deal("x", NewDeck(), []string{"Solo"})
	if err == nil {
		t.Error("Expected error for single player")
	}
}

func TestDeal_TooManyPlayers(t *testing.T) {
	names := make([]string, MaxPlayers+1)
	for i := range names {
		names[i] = "P"
	}
	_, err := Deal("x", NewDeck(), names)
	if err == nil {
		t.Error("Expected error when players would exhaust the deck")
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{"KS", Card{Rank: "K", Suit: Spades}, false},
		{"10H", Card{Rank: "10", Suit: Hearts}, false},
		{"AD", Card{Rank: "A", Suit: Diamonds}, false},
		{"2C", Card{Rank: "2", Suit: Clubs}, false},
		{"", Card{}, true},
		{"K", Card{}, true},
		{"ZX", Card{}, true},
		{"11H", Card{}, true},
	}

	for _, tt := range tests {
		got, err := ParseCard(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCard(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCard(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
