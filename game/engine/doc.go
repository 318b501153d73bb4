// Package engine provides the core game logic for the Cambio card game.
//
// The engine package implements the game mechanics including:
//   - Deck construction, shuffling and the initial deal
//   - Move validation (pure, side-effect free)
//   - The turn state machine: draw, discard swap, peek, call Cambio
//   - Round-end resolution with full reveal and scoring
//   - Deep-copy snapshots of session state
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents one session's complete
// state; Move is a proposed action and MoveOutcome the validated result of
// submitting it.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine("g1", []string{"Alice", "Bob"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome := gameEngine.Submit(engine.Move{Type: engine.MoveDrawDeck})
//	if !outcome.Valid {
//		log.Println("rejected:", outcome.Reason)
//	}
//
// Game Rules:
//
// Each of 2+ players holds four face-down cards in fixed slots 0-3; slots 0
// and 2 are peeked at deal time. On a turn a player may draw from the deck to
// the discard top, swap a hand slot with the discard top, peek at one of
// their own slots, or call Cambio to end the round. At round end all cards
// are revealed and each hand is scored (K=0, A=1, 2-10 face value, J=11,
// Q=12); the lowest total wins.
//
// Visibility is a single global flag per slot: once a card is peeked or
// swapped into view it is disclosed to every reader of the session. Snapshot
// consumers that need hidden-information masking (the automated advisor)
// apply it on top of the snapshot, outside this package.
//
// The engine itself is not safe for concurrent use; the session layer
// serializes Submit and Snapshot per session.
package engine
