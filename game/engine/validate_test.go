package engine

import (
	"strings"
	"testing"
)

// dealTestState builds a fresh two-player state from an unshuffled deck.
func dealTestState(t *testing.T) *GameState {
	t.Helper()
	state, err := Deal("validate-test", NewDeck(), []string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("Failed to deal: %v", err)
	}
	return state
}

func TestValidateMove(t *testing.T) {
	discard := Card{Rank: "7", Suit: Hearts}

	tests := []struct {
		name       string
		mutate     func(*GameState)
		move       Move
		wantValid  bool
		wantReason string
	}{
		{
			name:      "draw_deck with cards available",
			move:      Move{Type: MoveDrawDeck},
			wantValid: true,
		},
		{
			name: "draw_deck with empty pile",
			mutate: func(s *GameState) {
				s.DrawPile = nil
				s.DrawPileCount = 0
			},
			move:       Move{Type: MoveDrawDeck},
			wantValid:  false,
			wantReason: ReasonEmptyPile,
		},
		{
			name: "swap with discard present",
			mutate: func(s *GameState) {
				s.TopDiscard = &discard
			},
			move:      Move{Type: MoveDrawDiscardSwap, Slot: SlotOf(1)},
			wantValid: true,
		},
		{
			name:       "swap with empty discard",
			move:       Move{Type: MoveDrawDiscardSwap, Slot: SlotOf(1)},
			wantValid:  false,
			wantReason: ReasonNoDiscard,
		},
		{
			name: "swap with slot out of range",
			mutate: func(s *GameState) {
				s.TopDiscard = &discard
			},
			move:       Move{Type: MoveDrawDiscardSwap, Slot: SlotOf(5)},
			wantValid:  false,
			wantReason: ReasonInvalidSlot,
		},
		{
			name: "swap with negative slot",
			mutate: func(s *GameState) {
				s.TopDiscard = &discard
			},
			move:       Move{Type: MoveDrawDiscardSwap, Slot: SlotOf(-1)},
			wantValid:  false,
			wantReason: ReasonInvalidSlot,
		},
		{
			name: "swap with missing slot",
			mutate: func(s *GameState) {
				s.TopDiscard = &discard
			},
			move:       Move{Type: MoveDrawDiscardSwap},
			wantValid:  false,
			wantReason: ReasonInvalidSlot,
		},
		{
			name:      "peek valid slot",
			move:      Move{Type: MovePeek, Slot: SlotOf(3)},
			wantValid: true,
		},
		{
			name:       "peek slot out of range",
			move:       Move{Type: MovePeek, Slot: SlotOf(4)},
			wantValid:  false,
			wantReason: ReasonInvalidSlot,
		},
		{
			name:       "peek missing slot",
			move:       Move{Type: MovePeek},
			wantValid:  false,
			wantReason: ReasonInvalidSlot,
		},
		{
			name:      "call_cambio always legal in play",
			move:      Move{Type: MoveCallCambio},
			wantValid: true,
		},
		{
			name: "any move after round end",
			mutate: func(s *GameState) {
				s.TurnPhase = PhaseRoundEnd
			},
			move:       Move{Type: MoveDrawDeck},
			wantValid:  false,
			wantReason: ReasonRoundEnded,
		},
		{
			name: "call_cambio after round end",
			mutate: func(s *GameState) {
				s.TurnPhase = PhaseRoundEnd
			},
			move:       Move{Type: MoveCallCambio},
			wantValid:  false,
			wantReason: ReasonRoundEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := dealTestState(t)
			if tt.mutate != nil {
				tt.mutate(state)
			}

			valid, reason := ValidateMove(state, tt.move)
			if valid != tt.wantValid {
				t.Errorf("ValidateMove valid = %t, want %t (reason %q)", valid, tt.wantValid, reason)
			}
			if tt.wantReason != "" && reason != tt.wantReason {
				t.Errorf("ValidateMove reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestValidateMove_UnknownType(t *testing.T) {
	state := dealTestState(t)

	valid, reason := ValidateMove(state, Move{Type: "do_a_barrel_roll"})
	if valid {
		t.Error("Expected unknown move type to be rejected")
	}
	if !strings.Contains(reason, "unknown move type") {
		t.Errorf("Expected reason to name the unknown type, got %q", reason)
	}
	if !strings.Contains(reason, "do_a_barrel_roll") {
		t.Errorf("Expected reason to echo the move kind, got %q", reason)
	}
}

func TestValidateMove_DoesNotMutate(t *testing.T) {
	state := dealTestState(t)
	before := state.Clone()

	ValidateMove(state, Move{Type: MoveDrawDeck})
	ValidateMove(state, Move{Type: MovePeek, Slot: SlotOf(9)})
	ValidateMove(state, Move{Type: MoveCallCambio})

	if len(state.History) != len(before.History) {
		t.Error("Validation appended history")
	}
	if state.DrawPileCount != before.DrawPileCount {
		t.Error("Validation changed the draw pile")
	}
	if state.TurnPhase != before.TurnPhase {
		t.Error("Validation changed the turn phase")
	}
	if state.CurrentPlayer != before.CurrentPlayer {
		t.Error("Validation changed the current player")
	}
}
