package engine

import "testing"

func TestCardValue(t *testing.T) {
	tests := []struct {
		card Card
		want int
	}{
		{Card{Rank: "K", Suit: Spades}, 0},
		{Card{Rank: "A", Suit: Hearts}, 1},
		{Card{Rank: "2", Suit: Clubs}, 2},
		{Card{Rank: "7", Suit: Diamonds}, 7},
		{Card{Rank: "10", Suit: Hearts}, 10},
		{Card{Rank: "J", Suit: Spades}, 11},
		{Card{Rank: "Q", Suit: Clubs}, 12},
	}

	for _, tt := range tests {
		if got := CardValue(tt.card); got != tt.want {
			t.Errorf("CardValue(%s) = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestHandValue(t *testing.T) {
	hand := Hand{
		{Card: Card{Rank: "K", Suit: Spades}},
		{Card: Card{Rank: "A", Suit: Hearts}},
		{Card: Card{Rank: "10", Suit: Clubs}},
		{Card: Card{Rank: "Q", Suit: Diamonds}},
	}

	if got := HandValue(hand); got != 23 {
		t.Errorf("HandValue = %d, want 23", got)
	}
}

func TestHandValue_IgnoresVisibility(t *testing.T) {
	// Concealed cards count at their real value
	hand := Hand{
		{Card: Card{Rank: "5", Suit: Hearts}, Visible: false},
		{Card: Card{Rank: "5", Suit: Clubs}, Visible: true},
		{Card: Card{Rank: "K", Suit: Spades}, Visible: false},
		{Card: Card{Rank: "K", Suit: Diamonds}, Visible: true},
	}

	if got := HandValue(hand); got != 10 {
		t.Errorf("HandValue = %d, want 10", got)
	}
}

func TestHandValue_AllKingsIsZero(t *testing.T) {
	hand := Hand{
		{Card: Card{Rank: "K", Suit: Hearts}},
		{Card: Card{Rank: "K", Suit: Diamonds}},
		{Card: Card{Rank: "K", Suit: Clubs}},
		{Card: Card{Rank: "K", Suit: Spades}},
	}

	if got := HandValue(hand); got != 0 {
		t.Errorf("HandValue = %d, want 0", got)
	}
}
