package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	Snapshot() *GameState
	SetState(state *GameState) error
	IsRoundOver() bool

	// Move operations
	Validate(mv Move) (bool, string)
	Submit(mv Move) *MoveOutcome

	// History
	History() []HistoryEntry
	LastMove() *HistoryEntry
}

// GameEngine implements the Engine interface. It owns one session's state and
// applies moves to it. It performs no locking of its own; callers serialize
// access (the session layer holds a per-session lock around Submit and
// Snapshot).
type GameEngine struct {
	state *GameState
}

// NewEngine creates an engine with a freshly shuffled deck dealt to the given
// players. Fails if fewer than two player names are supplied or the player
// count would exhaust the deck.
func NewEngine(id string, playerNames []string) (*GameEngine, error) {
	state, err := Deal(id, ShuffledDeck(), playerNames)
	if err != nil {
		return nil, err
	}
	return &GameEngine{state: state}, nil
}

// NewEngineFromState wraps an existing state (used for persistence loading).
// The state is rejected if its card accounting is inconsistent, so a corrupt
// session file cannot reach Submit.
func NewEngineFromState(state *GameState) (*GameEngine, error) {
	if state == nil {
		return nil, fmt.Errorf("state cannot be nil")
	}
	if len(state.Players) < MinPlayers {
		return nil, fmt.Errorf("state has %d players, need at least %d", len(state.Players), MinPlayers)
	}
	if state.PlayerByID(state.CurrentPlayer) == nil {
		return nil, fmt.Errorf("current player %q not present in session", state.CurrentPlayer)
	}
	if state.DrawPileCount != len(state.DrawPile) {
		return nil, fmt.Errorf("draw pile count %d does not match %d cards in pile", state.DrawPileCount, len(state.DrawPile))
	}
	total := len(state.DrawPile) + len(state.RemovedFromPlay) + len(state.Players)*HandSize
	if state.TopDiscard != nil {
		total++
	}
	if total != DeckSize {
		return nil, fmt.Errorf("state accounts for %d cards, want %d", total, DeckSize)
	}
	return &GameEngine{state: state}, nil
}

// Snapshot returns a deep copy of the current state, never a live alias.
func (e *GameEngine) Snapshot() *GameState {
	return e.state.Clone()
}

// SetState replaces the engine's state (used for persistence loading).
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// IsRoundOver reports whether the terminal round_end phase has been entered.
func (e *GameEngine) IsRoundOver() bool {
	return e.state.TurnPhase == PhaseRoundEnd
}

// Validate checks a candidate move without side effects.
func (e *GameEngine) Validate(mv Move) (bool, string) {
	return ValidateMove(e.state, mv)
}

// Submit validates and applies one move. A rejected move returns
// Valid=false with a reason and leaves the state untouched. An accepted move
// mutates the state, appends exactly one history entry, advances the turn
// (except for call_cambio, which ends the round) and returns the updated
// snapshot.
func (e *GameEngine) Submit(mv Move) *MoveOutcome {
	if ok, reason := ValidateMove(e.state, mv); !ok {
		return &MoveOutcome{Valid: false, Reason: reason}
	}

	roundEnd := e.apply(mv)

	return &MoveOutcome{
		Valid:    true,
		State:    e.state.Clone(),
		RoundEnd: roundEnd,
	}
}

// apply executes an already-validated move for the current player and
// reports whether it ended the round.
func (e *GameEngine) apply(mv Move) bool {
	s := e.state
	actor := s.PlayerByID(s.CurrentPlayer)

	switch mv.Type {
	case MoveDrawDeck:
		drawn := s.DrawPile[0]
		s.DrawPile = s.DrawPile[1:]
		s.DrawPileCount = len(s.DrawPile)
		if s.TopDiscard != nil {
			// The superseded discard leaves play permanently; account for it
			// rather than losing it.
			s.RemovedFromPlay = append(s.RemovedFromPlay, *s.TopDiscard)
		}
		s.TopDiscard = &drawn
		e.record(actor.ID, "drew from deck")

	case MoveDrawDiscardSwap:
		slot := *mv.Slot
		old := actor.Hand[slot].Card
		actor.Hand[slot] = CardSlot{Card: *s.TopDiscard, Visible: true}
		s.TopDiscard = &old
		e.record(actor.ID, fmt.Sprintf("drew from discard and swapped slot %d", slot))

	case MovePeek:
		actor.Hand[*mv.Slot].Visible = true
		e.record(actor.ID, fmt.Sprintf("peeked at slot %d", *mv.Slot))

	case MoveCallCambio:
		for i := range s.Players {
			p := &s.Players[i]
			for slot := range p.Hand {
				p.Hand[slot].Visible = true
			}
			p.Score = HandValue(p.Hand)
		}
		s.TurnPhase = PhaseRoundEnd
		e.record(actor.ID, "called Cambio!")
		// Round is over; the turn does not advance.
		return true
	}

	e.advanceTurn()
	return false
}

// record appends one history entry for an accepted move.
func (e *GameEngine) record(playerID, action string) {
	s := e.state
	s.History = append(s.History, HistoryEntry{
		Turn:   len(s.History) + 1,
		Player: playerID,
		Action: action,
	})
}

// advanceTurn hands the turn to the next player in creation order, wrapping
// from the last back to the first.
func (e *GameEngine) advanceTurn() {
	s := e.state
	idx := s.playerIndex(s.CurrentPlayer)
	next := (idx + 1) % len(s.Players)
	s.CurrentPlayer = s.Players[next].ID
}

// History returns the complete move history.
func (e *GameEngine) History() []HistoryEntry {
	return e.state.History
}

// LastMove returns the last accepted move, or nil if none.
func (e *GameEngine) LastMove() *HistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	return &e.state.History[len(e.state.History)-1]
}
