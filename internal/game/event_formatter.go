package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowTimestamps bool // Prefix lines with the event time
	ShowBids       bool // Log every bid change, not just results
}

// EventFormatter provides centralized formatting for session events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders an event as a log line. It returns an empty string for
// events the options hide.
func (ef *EventFormatter) Format(event GameEvent) string {
	var text string
	switch e := event.(type) {
	case StartingCardsEvent:
		text = ef.FormatStartingCards(e)
	case PlayerNameEvent:
		text = ef.FormatPlayerName(e)
	case BidEvent:
		if !ef.opts.ShowBids {
			return ""
		}
		text = fmt.Sprintf("%s bids %d", seatLabel(e.Seat, e.Name), e.Bid)
	case ResultRecordedEvent:
		text = ef.FormatResult(e)
	case RoundAdvancedEvent:
		text = ef.FormatRoundAdvanced(e)
	case GameOverEvent:
		text = ef.FormatGameOver(e)
	case GameResetEvent:
		text = fmt.Sprintf("New game %s", e.SessionID)
	default:
		text = event.EventType().String()
	}

	if ef.opts.ShowTimestamps {
		text = fmt.Sprintf("[%s] %s", event.Timestamp().Format("15:04:05"), text)
	}
	return text
}

// FormatStartingCards formats a starting hand size change
func (ef *EventFormatter) FormatStartingCards(e StartingCardsEvent) string {
	if e.TotalRounds == 0 {
		return fmt.Sprintf("Starting cards %d is out of range (%d-%d): no rounds to play",
			e.StartingCards, MinStartingCards, MaxStartingCards)
	}
	return fmt.Sprintf("Starting with %d cards (%d rounds)", e.StartingCards, e.TotalRounds)
}

// FormatPlayerName formats a seat naming
func (ef *EventFormatter) FormatPlayerName(e PlayerNameEvent) string {
	if e.Name == "" {
		return fmt.Sprintf("Seat %d cleared", e.Seat+1)
	}
	return fmt.Sprintf("Seat %d: %s", e.Seat+1, e.Name)
}

// FormatResult formats a recorded round result
func (ef *EventFormatter) FormatResult(e ResultRecordedEvent) string {
	who := seatLabel(e.Seat, e.Name)
	if e.Made {
		return fmt.Sprintf("%s made %d: +%d (total %d)", who, e.Bid, e.Score, e.Total)
	}
	return fmt.Sprintf("%s missed %d: +0 (total %d)", who, e.Bid, e.Total)
}

// FormatRoundAdvanced formats the start of a new round
func (ef *EventFormatter) FormatRoundAdvanced(e RoundAdvancedEvent) string {
	return fmt.Sprintf("\n*** ROUND %d/%d (%d cards) ***", e.Round, e.TotalRounds, e.Cards)
}

// FormatGameOver formats the final standings
func (ef *EventFormatter) FormatGameOver(e GameOverEvent) string {
	var result strings.Builder

	result.WriteString("=== Game Over ===")
	for i, standing := range e.Standings {
		result.WriteString(fmt.Sprintf("\n%d. %s %d", i+1, standing.Name, standing.Total))
	}
	return result.String()
}

func seatLabel(seat int, name string) string {
	if name == "" {
		return fmt.Sprintf("Seat %d", seat+1)
	}
	return name
}
