package engine

import "strconv"

// CardValue maps a card to its scoring value: K=0, A=1, numeric ranks their
// face value, J=11, Q=12. Lower hand totals win.
func CardValue(c Card) int {
	switch c.Rank {
	case "K":
		return 0
	case "A":
		return 1
	case "J":
		return 11
	case "Q":
		return 12
	}
	n, err := strconv.Atoi(string(c.Rank))
	if err != nil {
		return 0
	}
	return n
}

// HandValue sums the true card values of all four slots. Scoring ignores
// visibility: concealed cards count at their real value.
func HandValue(h Hand) int {
	total := 0
	for _, slot := range h {
		total += CardValue(slot.Card)
	}
	return total
}
