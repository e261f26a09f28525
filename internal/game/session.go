package game

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Session is a single O'Hell game from setup to final scores. It is not safe
// for concurrent use; callers serialise operations.
type Session struct {
	id            string
	phase         Phase
	players       [MaxPlayers]string
	bids          [MaxPlayers]int
	startingCards int
	round         int
	ledger        *Ledger

	clock    quartz.Clock
	logger   *log.Logger
	eventBus EventBus
	newID    func() string
}

// NewSession creates a session in the Setup phase with default settings
func NewSession(opts ...SessionOption) *Session {
	cfg := newSessionConfig(opts)

	s := &Session{
		ledger:   NewLedger(),
		clock:    cfg.clock,
		logger:   cfg.logger.WithPrefix("session"),
		eventBus: cfg.eventBus,
		newID:    cfg.newID,
	}
	s.init()
	return s
}

func (s *Session) init() {
	s.id = s.newID()
	s.phase = PhaseSetup
	s.players = [MaxPlayers]string{}
	s.bids = [MaxPlayers]int{}
	s.startingCards = DefaultStartingCards
	s.round = 1
	s.ledger.Clear()
}

// EventBus returns the bus that session events are published on
func (s *Session) EventBus() EventBus {
	return s.eventBus
}

// SetStartingCards changes the starting hand size while setup is unlocked.
// Out-of-range values are kept and leave the session with no playable rounds.
func (s *Session) SetStartingCards(n int) {
	if s.phase.SetupLocked() {
		s.logger.Debug("Ignoring starting cards change, setup locked", "cards", n)
		return
	}
	if n == s.startingCards {
		return
	}

	s.startingCards = n
	total := len(s.Rounds())
	s.logger.Debug("Starting cards changed", "cards", n, "rounds", total)
	s.eventBus.Publish(StartingCardsEvent{
		StartingCards: n,
		TotalRounds:   total,
		timestamp:     s.clock.Now(),
	})
}

// SetStartingCardsInput is SetStartingCards for raw text input
func (s *Session) SetStartingCardsInput(raw string) {
	s.SetStartingCards(ParseStartingCards(raw))
}

// SetPlayerName names a seat while setup is unlocked. An empty name makes
// the seat inactive.
func (s *Session) SetPlayerName(index int, name string) {
	if !validPlayer(index) {
		return
	}
	if s.phase.SetupLocked() {
		s.logger.Debug("Ignoring name change, setup locked", "seat", index)
		return
	}

	name = strings.TrimSpace(name)
	if s.players[index] == name {
		return
	}

	s.players[index] = name
	s.logger.Debug("Player named", "seat", index, "name", name)
	s.eventBus.Publish(PlayerNameEvent{
		Seat:      index,
		Name:      name,
		timestamp: s.clock.Now(),
	})
}

// SetBid sets a player's bid for the current round, flooring it at 0.
// Bids above the cards in the round are accepted and score normally.
func (s *Session) SetBid(index, bid int) {
	if !validPlayer(index) || !s.phase.Playable() {
		return
	}

	bid = ClampBid(bid)
	s.bids[index] = bid
	s.eventBus.Publish(BidEvent{
		Seat:      index,
		Name:      s.players[index],
		Round:     s.round,
		Bid:       bid,
		timestamp: s.clock.Now(),
	})
}

// SetBidInput is SetBid for raw text input
func (s *Session) SetBidInput(index int, raw string) {
	s.SetBid(index, ParseBid(raw))
}

// RecordResult scores the player's current bid for the current round.
// It returns false, changing nothing, if the game is over, the player
// already has a result this round, the seat is invalid or no rounds are
// playable.
func (s *Session) RecordResult(index int, made bool) bool {
	if !s.phase.Playable() || !s.hasRounds() {
		return false
	}
	bid := 0
	if validPlayer(index) {
		bid = s.bids[index]
	}
	if !s.ledger.Record(index, s.round, bid, made) {
		s.logger.Debug("Result not recorded", "seat", index, "round", s.round)
		return false
	}

	score, _ := s.ledger.Score(index, s.round)
	total := s.ledger.Total(index)
	s.logger.Debug("Result recorded", "seat", index, "round", s.round, "bid", bid, "made", made, "score", score)
	s.eventBus.Publish(ResultRecordedEvent{
		Seat:      index,
		Name:      s.players[index],
		Round:     s.round,
		Cards:     s.CardsInRound(),
		Bid:       bid,
		Made:      made,
		Score:     score,
		Total:     total,
		timestamp: s.clock.Now(),
	})
	return true
}

// AdvanceRound moves to the next round and zeroes every bid, or ends the
// game when the current round is the last one. The round pointer never moves
// past the final round.
func (s *Session) AdvanceRound() {
	if !s.phase.Playable() || !s.hasRounds() {
		return
	}

	total := s.TotalRounds()
	if s.round >= total {
		s.transition(PhaseGameOver)
		s.logger.Debug("Game over", "session", s.id, "rounds", total)
		s.eventBus.Publish(GameOverEvent{
			SessionID: s.id,
			Standings: s.Standings(),
			timestamp: s.clock.Now(),
		})
		return
	}

	if s.phase == PhaseSetup {
		s.transition(PhaseInProgress)
	}
	s.round++
	s.bids = [MaxPlayers]int{}
	s.logger.Debug("Round advanced", "round", s.round, "cards", s.CardsInRound())
	s.eventBus.Publish(RoundAdvancedEvent{
		Round:       s.round,
		TotalRounds: total,
		Cards:       s.CardsInRound(),
		timestamp:   s.clock.Now(),
	})
}

// Reset clears every player, bid and score and returns to round 1 of a new
// session with the default starting cards.
func (s *Session) Reset() {
	s.transition(PhaseSetup)
	s.init()
	s.logger.Debug("Session reset", "session", s.id)
	s.eventBus.Publish(GameResetEvent{
		SessionID: s.id,
		timestamp: s.clock.Now(),
	})
}

func (s *Session) transition(next Phase) {
	if !s.phase.CanTransition(next) {
		// Callers check the phase first; reaching here is a programming error
		panic("invalid phase transition from " + s.phase.String() + " to " + next.String())
	}
	s.phase = next
}

func (s *Session) hasRounds() bool {
	return s.TotalRounds() > 0
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase
func (s *Session) Phase() Phase { return s.phase }

// StartingCards returns the configured starting hand size
func (s *Session) StartingCards() int { return s.startingCards }

// Rounds returns the cards dealt in each round
func (s *Session) Rounds() []int { return Rounds(s.startingCards) }

// TotalRounds returns the number of rounds in the game
func (s *Session) TotalRounds() int {
	if !ValidStartingCards(s.startingCards) {
		return 0
	}
	return 2 * s.startingCards
}

// CurrentRound returns the 1-based round pointer
func (s *Session) CurrentRound() int { return s.round }

// CardsInRound returns the cards dealt this round, or 0 if no rounds are
// playable.
func (s *Session) CardsInRound() int {
	rounds := s.Rounds()
	if s.round < 1 || s.round > len(rounds) {
		return 0
	}
	return rounds[s.round-1]
}

// IsFinalRound reports whether advancing will end the game
func (s *Session) IsFinalRound() bool {
	return s.hasRounds() && s.round == s.TotalRounds()
}

// IsSetupLocked reports whether starting cards and names are frozen
func (s *Session) IsSetupLocked() bool { return s.phase.SetupLocked() }

// IsGameOver reports whether the final round has been finished
func (s *Session) IsGameOver() bool { return s.phase == PhaseGameOver }

// PlayerName returns the name in a seat, empty if inactive or out of range
func (s *Session) PlayerName(index int) string {
	if !validPlayer(index) {
		return ""
	}
	return s.players[index]
}

// Bid returns a player's bid for the current round
func (s *Session) Bid(index int) int {
	if !validPlayer(index) {
		return 0
	}
	return s.bids[index]
}

// HasResult reports whether a player has a result for the current round
func (s *Session) HasResult(index int) bool {
	return s.ledger.Has(index, s.round)
}

// Total returns a player's running total
func (s *Session) Total(index int) int {
	return s.ledger.Total(index)
}

// ActivePlayers returns the seat indexes that have a name, in seat order
func (s *Session) ActivePlayers() []int {
	var active []int
	for i, name := range s.players {
		if name != "" {
			active = append(active, i)
		}
	}
	return active
}
