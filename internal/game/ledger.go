package game

// Cell is one entry of a player's scoreboard row
type Cell struct {
	Score    int
	Recorded bool
}

// Tally summarises a player's recorded rounds
type Tally struct {
	Recorded int
	Made     int
	Missed   int
}

// Ledger holds each player's per-round scores. Rounds are 1-based and sparse:
// a round with no entry has no result yet. An entry is never overwritten.
type Ledger struct {
	scores [MaxPlayers]map[int]int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	l := &Ledger{}
	l.Clear()
	return l
}

// RoundScore is the score for a round: 10 plus the bid if the bid was made
// exactly, otherwise nothing.
func RoundScore(bid int, made bool) int {
	if !made {
		return 0
	}
	return MadeBidBonus + ClampBid(bid)
}

// Record writes the score for player in round unless one already exists.
// It returns true if the ledger changed.
func (l *Ledger) Record(player, round, bid int, made bool) bool {
	if !validPlayer(player) || round < 1 {
		return false
	}
	if _, exists := l.scores[player][round]; exists {
		return false
	}
	l.scores[player][round] = RoundScore(bid, made)
	return true
}

// Score returns the recorded score for player in round
func (l *Ledger) Score(player, round int) (int, bool) {
	if !validPlayer(player) {
		return 0, false
	}
	score, ok := l.scores[player][round]
	return score, ok
}

// Has reports whether player has a result for round
func (l *Ledger) Has(player, round int) bool {
	_, ok := l.Score(player, round)
	return ok
}

// Total sums a player's recorded scores. Unrecorded rounds count as 0.
func (l *Ledger) Total(player int) int {
	if !validPlayer(player) {
		return 0
	}
	total := 0
	for _, score := range l.scores[player] {
		total += score
	}
	return total
}

// Row returns the player's scores for rounds 1..rounds in order
func (l *Ledger) Row(player, rounds int) []Cell {
	row := make([]Cell, rounds)
	if !validPlayer(player) {
		return row
	}
	for round, score := range l.scores[player] {
		if round >= 1 && round <= rounds {
			row[round-1] = Cell{Score: score, Recorded: true}
		}
	}
	return row
}

// Tally counts the player's made and missed rounds. A made bid always scores
// at least MadeBidBonus, so a zero score is a miss.
func (l *Ledger) Tally(player int) Tally {
	var t Tally
	if !validPlayer(player) {
		return t
	}
	for _, score := range l.scores[player] {
		t.Recorded++
		if score >= MadeBidBonus {
			t.Made++
		} else {
			t.Missed++
		}
	}
	return t
}

// Clear removes every recorded score
func (l *Ledger) Clear() {
	for i := range l.scores {
		l.scores[i] = make(map[int]int)
	}
}

func validPlayer(index int) bool {
	return index >= 0 && index < MaxPlayers
}
