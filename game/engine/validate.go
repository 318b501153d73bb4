package engine

import "fmt"

// Rejection reasons returned by ValidateMove. Kept as stable strings because
// they travel over the wire in MoveOutcome.Reason.
const (
	ReasonRoundEnded  = "round has ended"
	ReasonEmptyPile   = "draw pile is empty"
	ReasonNoDiscard   = "no card in discard pile"
	ReasonInvalidSlot = "invalid slot"
)

// ValidateMove is a pure predicate over a read-only view of the state and a
// candidate move. It never mutates anything and is safe to call repeatedly.
// The second return value is a human-readable rejection reason when the move
// is illegal.
func ValidateMove(state *GameState, mv Move) (bool, string) {
	if state.TurnPhase == PhaseRoundEnd {
		return false, ReasonRoundEnded
	}

	switch mv.Type {
	case MoveDrawDeck:
		if state.DrawPileCount == 0 {
			return false, ReasonEmptyPile
		}
		return true, ""

	case MoveDrawDiscardSwap:
		if state.TopDiscard == nil {
			return false, ReasonNoDiscard
		}
		if !validSlot(mv.Slot) {
			return false, ReasonInvalidSlot
		}
		return true, ""

	case MovePeek:
		if !validSlot(mv.Slot) {
			return false, ReasonInvalidSlot
		}
		return true, ""

	case MoveCallCambio:
		return true, ""
	}

	return false, fmt.Sprintf("unknown move type: %s", mv.Type)
}

func validSlot(slot *int) bool {
	return slot != nil && *slot >= MinSlot && *slot <= MaxSlot
}
