// Command simulate runs offline self-play rounds against the game engine with
// a simple random policy and prints aggregate statistics: how long rounds run,
// the spread of final scores, and how often the caller actually wins. Useful
// for eyeballing rule changes without standing up the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"

	"github.com/cardroom/cambio/game/engine"
)

var (
	games    = flag.Int("games", 1000, "Number of rounds to simulate")
	players  = flag.Int("players", 2, "Players per round")
	maxTurns = flag.Int("max-turns", 200, "Abort a round after this many turns")
	seed     = flag.Uint64("seed", 0, "PRNG seed (0 uses a random seed)")
)

// simResult captures one finished round.
type simResult struct {
	turns       int
	scores      []int
	callerWon   bool
	callerScore int
}

func main() {
	flag.Parse()

	if *players < engine.MinPlayers || *players > engine.MaxPlayers {
		log.Fatalf("players must be between %d and %d", engine.MinPlayers, engine.MaxPlayers)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	names := make([]string, *players)
	for i := range names {
		names[i] = fmt.Sprintf("Bot%d", i+1)
	}

	var results []simResult
	aborted := 0

	for i := 0; i < *games; i++ {
		res, ok := playRound(rng, names)
		if !ok {
			aborted++
			continue
		}
		results = append(results, res)
	}

	report(results, aborted)
}

// playRound plays one round to completion with a random policy. Returns false
// if the round hit the turn cap without anyone calling Cambio.
func playRound(rng *rand.Rand, names []string) (simResult, bool) {
	eng, err := engine.NewEngine("sim", names)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}

	for turn := 0; turn < *maxTurns; turn++ {
		state := eng.Snapshot()
		if state.TurnPhase == engine.PhaseRoundEnd {
			break
		}

		mv := pickMove(rng, state, turn)
		outcome := eng.Submit(mv)
		if !outcome.Valid {
			// Random policy occasionally proposes an impossible move
			// (e.g. swap with an empty discard); just try again.
			continue
		}

		if outcome.RoundEnd {
			final := outcome.State
			scores := make([]int, len(final.Players))
			var callerScore int
			for j, p := range final.Players {
				scores[j] = p.Score
				if p.ID == final.CurrentPlayer {
					callerScore = p.Score
				}
			}
			sort.Ints(scores)
			lowest := scores[0]

			return simResult{
				turns:       len(final.History),
				scores:      scores,
				callerWon:   callerScore == lowest,
				callerScore: callerScore,
			}, true
		}
	}

	return simResult{}, false
}

// pickMove chooses a random move, weighted so rounds terminate: the longer a
// round runs, the more likely the bot is to call Cambio.
func pickMove(rng *rand.Rand, state *engine.GameState, turn int) engine.Move {
	// Push toward calling as the round drags on.
	callChance := 0.02 + float64(turn)*0.005
	if rng.Float64() < callChance {
		return engine.Move{Type: engine.MoveCallCambio}
	}

	switch rng.IntN(3) {
	case 0:
		return engine.Move{Type: engine.MoveDrawDeck}
	case 1:
		return engine.Move{Type: engine.MoveDrawDiscardSwap, Slot: engine.SlotOf(rng.IntN(engine.HandSize))}
	default:
		return engine.Move{Type: engine.MovePeek, Slot: engine.SlotOf(rng.IntN(engine.HandSize))}
	}
}

func report(results []simResult, aborted int) {
	fmt.Printf("\n=== Simulation Report ===\n")
	fmt.Printf("Completed rounds: %d (aborted at turn cap: %d)\n", len(results), aborted)
	if len(results) == 0 {
		return
	}

	var totalTurns, totalCaller, callerWins int
	minTurns, maxTurnsSeen := results[0].turns, results[0].turns
	scoreCounts := make(map[int]int)

	for _, r := range results {
		totalTurns += r.turns
		totalCaller += r.callerScore
		if r.callerWon {
			callerWins++
		}
		if r.turns < minTurns {
			minTurns = r.turns
		}
		if r.turns > maxTurnsSeen {
			maxTurnsSeen = r.turns
		}
		for _, s := range r.scores {
			scoreCounts[s]++
		}
	}

	fmt.Printf("Turns per round: avg %.1f, min %d, max %d\n",
		float64(totalTurns)/float64(len(results)), minTurns, maxTurnsSeen)
	fmt.Printf("Caller win rate: %.1f%% (avg caller score %.1f)\n",
		100*float64(callerWins)/float64(len(results)),
		float64(totalCaller)/float64(len(results)))

	fmt.Printf("\nFinal score distribution:\n")
	var keys []int
	for k := range scoreCounts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Printf("  %2d: %d\n", k, scoreCounts[k])
	}
}
