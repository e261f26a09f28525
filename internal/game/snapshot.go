package game

import "sort"

// Standing is an active player's position by running total
type Standing struct {
	Seat  int
	Name  string
	Total int
}

// PlayerView is one seat as seen by a renderer
type PlayerView struct {
	Seat     int
	Name     string
	Active   bool
	Bid      int
	Cells    []Cell
	Total    int
	Tally    Tally
	Recorded bool // result entered for the current round

	// RoundScore is the current round's score when Recorded. It is read
	// from the ledger, so it holds even when Cells is empty because the
	// starting cards were changed to an invalid count.
	RoundScore int
}

// Snapshot is a copy of the session state. It does not change when the
// session does.
type Snapshot struct {
	SessionID     string
	Phase         Phase
	StartingCards int
	Rounds        []int
	TotalRounds   int
	CurrentRound  int
	CardsInRound  int
	FinalRound    bool
	SetupLocked   bool
	GameOver      bool
	Players       [MaxPlayers]PlayerView
}

// Active returns the views of named seats in seat order
func (snap Snapshot) Active() []PlayerView {
	var active []PlayerView
	for _, p := range snap.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	rounds := s.Rounds()
	snap := Snapshot{
		SessionID:     s.id,
		Phase:         s.phase,
		StartingCards: s.startingCards,
		Rounds:        rounds,
		TotalRounds:   len(rounds),
		CurrentRound:  s.round,
		CardsInRound:  s.CardsInRound(),
		FinalRound:    s.IsFinalRound(),
		SetupLocked:   s.IsSetupLocked(),
		GameOver:      s.IsGameOver(),
	}

	for i := range s.players {
		roundScore, recorded := s.ledger.Score(i, s.round)
		snap.Players[i] = PlayerView{
			Seat:       i,
			Name:       s.players[i],
			Active:     s.players[i] != "",
			Bid:        s.bids[i],
			Cells:      s.ledger.Row(i, len(rounds)),
			Total:      s.ledger.Total(i),
			Tally:      s.ledger.Tally(i),
			Recorded:   recorded,
			RoundScore: roundScore,
		}
	}
	return snap
}

// Standings returns active players ordered by total, highest first. Ties
// keep seat order.
func (s *Session) Standings() []Standing {
	return s.Snapshot().Standings()
}

// Standings ranks the snapshot's active players by total, highest first.
// Ties keep seat order.
func (snap Snapshot) Standings() []Standing {
	standings := make([]Standing, 0, MaxPlayers)
	for _, p := range snap.Active() {
		standings = append(standings, Standing{Seat: p.Seat, Name: p.Name, Total: p.Total})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})
	return standings
}
