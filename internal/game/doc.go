// Package game implements the scorekeeping core for O'Hell.
//
// The main type is Session, which owns the player slots, the round sequence,
// the per-round bids and the score Ledger, and moves between three phases:
// Setup, InProgress and GameOver.
//
// # Basic Usage
//
//	s := game.NewSession()
//	s.SetStartingCards(8)        // rounds: 8 7 6 5 4 3 2 1 1 2 3 4 5 6 7 8
//	s.SetPlayerName(0, "Alice")
//	s.SetPlayerName(1, "Bob")
//	s.SetBid(0, 3)
//	s.RecordResult(0, true)      // Alice scores 13
//	s.RecordResult(1, false)     // Bob scores 0
//	s.AdvanceRound()             // round 2, setup locked, bids back to 0
//
// Renderers read state through Snapshot, which returns a copy that is safe
// to keep after further operations.
//
// # Input Handling
//
// Nothing in this package returns an error. Malformed input is clamped
// (negative or non-numeric bids become 0, an out-of-range starting count
// yields an empty round sequence) and operations that are not allowed in the
// current phase are no-ops that publish no event.
//
// # Events
//
// Every effective mutation publishes a GameEvent on the session's EventBus.
// Timestamps come from a quartz.Clock so tests can pin them:
//
//	clock := quartz.NewMock(t)
//	s := game.NewSession(game.WithClock(clock))
package game
