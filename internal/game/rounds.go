package game

import (
	"strconv"
	"strings"
)

const (
	// MaxPlayers is the fixed number of player slots at the table
	MaxPlayers = 6

	// MinStartingCards and MaxStartingCards bound the first hand size
	MinStartingCards = 8
	MaxStartingCards = 15

	// DefaultStartingCards is used for every new or reset session
	DefaultStartingCards = 12

	// MadeBidBonus is added to the bid when a player makes it exactly
	MadeBidBonus = 10
)

// Rounds returns the cards dealt in each round for a game that starts with
// startingCards cards: a descending run down to 1 followed by an ascending
// run back up. Invalid counts yield an empty sequence.
func Rounds(startingCards int) []int {
	if !ValidStartingCards(startingCards) {
		return []int{}
	}

	rounds := make([]int, 0, 2*startingCards)
	for cards := startingCards; cards >= 1; cards-- {
		rounds = append(rounds, cards)
	}
	for cards := 1; cards <= startingCards; cards++ {
		rounds = append(rounds, cards)
	}
	return rounds
}

// ValidStartingCards reports whether n is an allowed starting hand size
func ValidStartingCards(n int) bool {
	return n >= MinStartingCards && n <= MaxStartingCards
}

// ParseStartingCards converts raw text input to a starting card count.
// Text without a leading integer returns 0, which Rounds treats as invalid.
func ParseStartingCards(raw string) int {
	n, ok := leadingInt(raw)
	if !ok {
		return 0
	}
	return n
}

// ParseBid converts raw text input to a bid, clamped to a floor of 0.
// Leading integer digits are honoured ("3 tricks" is 3); anything else is 0.
func ParseBid(raw string) int {
	n, ok := leadingInt(raw)
	if !ok {
		return 0
	}
	return ClampBid(n)
}

// ClampBid floors a bid at 0. There is no upper bound.
func ClampBid(bid int) int {
	if bid < 0 {
		return 0
	}
	return bid
}

// leadingInt parses an optional sign followed by decimal digits at the start
// of s, ignoring surrounding whitespace and any trailing text.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: treat as unparseable rather than guessing a bound
		return 0, false
	}
	return n, true
}
